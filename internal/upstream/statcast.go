package upstream

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
)

// StatcastBatter fetches pitch-level Statcast rows for a batter over a
// date range from the Baseball Savant search CSV.
func (c *HTTPClient) StatcastBatter(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error) {
	return c.statcast(ctx, "batter", "batters_lookup%5B%5D", mlbamID, startDate, endDate)
}

// StatcastPitcher fetches pitch-level Statcast rows for a pitcher.
func (c *HTTPClient) StatcastPitcher(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error) {
	return c.statcast(ctx, "pitcher", "pitchers_lookup%5B%5D", mlbamID, startDate, endDate)
}

func (c *HTTPClient) statcast(ctx context.Context, playerType, lookupParam string, mlbamID int64, startDate, endDate string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("all", "true")
	params.Set("player_type", playerType)
	params.Set("game_date_gt", startDate)
	params.Set("game_date_lt", endDate)
	params.Set("type", "details")

	// The lookup key contains literal brackets Savant expects unescaped
	// by name, so it is appended pre-encoded.
	u := fmt.Sprintf("%s/statcast_search/csv?%s&%s=%d",
		c.savantBase, params.Encode(), lookupParam, mlbamID)

	body, err := c.get(ctx, c.httpClient, u)
	if err != nil {
		return nil, err
	}
	return parseCSVRows(body)
}

// parseCSVRows converts a CSV body into row objects keyed by header.
// Empty cells become nil so the JSON contract distinguishes missing
// measurements.
func parseCSVRows(body []byte) ([]map[string]any, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []map[string]any
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		row := make(map[string]any, len(header))
		for i, col := range header {
			if i >= len(record) || record[i] == "" {
				row[col] = nil
				continue
			}
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}
