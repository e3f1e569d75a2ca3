// Package leaders filters, ranks, and formats tabular seasonal statistics
// into leaderboard entries.
package leaders

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Batting and pitching statistics tracked on leaderboards, in display
// order.
var (
	BattingStats  = []string{"HR", "AVG", "RBI", "SB", "SLG", "OPS"}
	PitchingStats = []string{"ERA", "SO", "W", "SV", "WHIP"}
)

// QualifyingThreshold is the minimum playing time (plate appearances or
// innings pitched) for leaderboard eligibility. Inclusive.
const QualifyingThreshold = 50

// LeagueTopN and TeamTopN size the league-wide leaderboards and the
// per-team leader widgets.
const (
	LeagueTopN = 5
	TeamTopN   = 1
)

// Row is one player-season record keyed by column name.
type Row map[string]any

// Table is a row-oriented statistics table as returned by the upstream
// leaderboard feeds.
type Table struct {
	Rows []Row
}

// Entry is one ranked leaderboard entry. ID is always the aggregator id
// as a string, never an internal surrogate key.
type Entry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Ascending reports the sort direction for a statistic: lower is better
// only for ERA and WHIP.
func Ascending(stat string) bool {
	return stat == "ERA" || stat == "WHIP"
}

// Float reads a column as a float64, tolerating the numeric encodings the
// upstream feeds produce (JSON numbers, integers, numeric strings).
func (r Row) Float(col string) (float64, bool) {
	switch v := r[col].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String reads a column as a string, empty when absent or non-string.
func (r Row) String(col string) string {
	if s, ok := r[col].(string); ok {
		return s
	}
	return ""
}

// Filter returns the rows matching pred.
func (t *Table) Filter(pred func(Row) bool) *Table {
	out := &Table{}
	for _, r := range t.Rows {
		if pred(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// QualifyBatting keeps rows with at least min plate appearances.
func QualifyBatting(t *Table, min float64) *Table {
	return t.Filter(func(r Row) bool {
		pa, ok := r.Float("PA")
		return ok && pa >= min
	})
}

// positionColumns are the column names the upstream feeds have used for a
// player's position, in lookup order.
var positionColumns = []string{"Pos", "Position", "POS"}

// QualifyPitching keeps pitcher rows (position starts with "P",
// case-insensitive) with at least min innings pitched.
func QualifyPitching(t *Table, min float64) *Table {
	return t.Filter(func(r Row) bool {
		pos := ""
		for _, col := range positionColumns {
			if s := r.String(col); s != "" {
				pos = s
				break
			}
		}
		if !strings.HasPrefix(strings.ToUpper(pos), "P") {
			return false
		}
		ip, ok := r.Float("IP")
		return ok && ip >= min
	})
}

// FilterTeam keeps rows whose team abbreviation matches abbrev.
func FilterTeam(t *Table, abbrev string) *Table {
	return t.Filter(func(r Row) bool {
		return r.String("TeamNameAbb") == abbrev
	})
}

var markupRe = regexp.MustCompile(`<[^<]+?>`)

// CleanName strips HTML-like markup fragments that the upstream feeds
// occasionally embed in player display names.
func CleanName(name string) string {
	return markupRe.ReplaceAllString(name, "")
}

// FormatValue renders a statistic value per the API contract: OPS as a
// fixed 3-decimal string, ERA and WHIP rounded to 2 decimals; everything
// else passes through unchanged.
func FormatValue(stat string, v any) any {
	switch stat {
	case "OPS":
		if f, ok := (Row{"v": v}).Float("v"); ok {
			return fmt.Sprintf("%.3f", f)
		}
	case "ERA", "WHIP":
		if f, ok := (Row{"v": v}).Float("v"); ok {
			return math.Round(f*100) / 100
		}
	}
	return v
}

// Rank sorts an already-qualified table by stat and returns the top n
// entries. Rows missing the stat column sort last.
func Rank(t *Table, stat string, ascending bool, n int) []Entry {
	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if _, ok := r.Float(stat); ok {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, _ := rows[i].Float(stat)
		b, _ := rows[j].Float(stat)
		if ascending {
			return a < b
		}
		return a > b
	})

	if n > len(rows) {
		n = len(rows)
	}
	out := make([]Entry, 0, n)
	for _, r := range rows[:n] {
		id := ""
		if f, ok := r.Float("xMLBAMID"); ok {
			id = strconv.FormatInt(int64(f), 10)
		}
		out = append(out, Entry{
			ID:    id,
			Name:  CleanName(r.String("Name")),
			Value: FormatValue(stat, r[stat]),
		})
	}
	return out
}

// Leaderboards builds the {batting: {stat: entries}, pitching: {...}}
// payload from qualified batting and pitching tables.
func Leaderboards(bat, pit *Table, topN int) map[string]map[string][]Entry {
	out := map[string]map[string][]Entry{
		"batting":  {},
		"pitching": {},
	}
	for _, stat := range BattingStats {
		if entries := Rank(bat, stat, Ascending(stat), topN); len(entries) > 0 {
			out["batting"][stat] = entries
		}
	}
	for _, stat := range PitchingStats {
		if entries := Rank(pit, stat, Ascending(stat), topN); len(entries) > 0 {
			out["pitching"][stat] = entries
		}
	}
	return out
}

// TeamLeaders builds the per-team leader widget payload: a single entry
// per statistic.
func TeamLeaders(bat, pit *Table) map[string]map[string]Entry {
	out := map[string]map[string]Entry{
		"batting":  {},
		"pitching": {},
	}
	for _, stat := range BattingStats {
		if entries := Rank(bat, stat, Ascending(stat), TeamTopN); len(entries) > 0 {
			out["batting"][stat] = entries[0]
		}
	}
	for _, stat := range PitchingStats {
		if entries := Rank(pit, stat, Ascending(stat), TeamTopN); len(entries) > 0 {
			out["pitching"][stat] = entries[0]
		}
	}
	return out
}
