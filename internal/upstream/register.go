package upstream

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// registerShards enumerates the Chadwick register people files. The
// shard key is unrelated to the bbref id, so a reverse lookup scans the
// shards in order until the id is found. Callers memoize the result.
var registerShards = []string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "a", "b", "c", "d", "e", "f",
}

// ReverseLookup resolves a bbref id to an identity record by scanning
// the Chadwick register. Returns nil when the id is unknown.
func (c *HTTPClient) ReverseLookup(ctx context.Context, bbrefID string) (*IdentityRecord, error) {
	for _, shard := range registerShards {
		rec, err := c.scanRegisterShard(ctx, shard, bbrefID)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}
	return nil, nil
}

func (c *HTTPClient) scanRegisterShard(ctx context.Context, shard, bbrefID string) (*IdentityRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := fmt.Sprintf("%s/people-%s.csv", c.registerBase, shard)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("register shard %s returned %d", shard, resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read register header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	bbrefCol, ok := cols["key_bbref"]
	if !ok {
		return nil, fmt.Errorf("register shard %s missing key_bbref column", shard)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read register row: %w", err)
		}
		if bbrefCol >= len(record) || record[bbrefCol] != bbrefID {
			continue
		}
		rec := &IdentityRecord{}
		if i, ok := cols["key_mlbam"]; ok && i < len(record) {
			rec.KeyMLBAM = record[i]
		}
		if i, ok := cols["name_first"]; ok && i < len(record) {
			rec.NameFirst = record[i]
		}
		if i, ok := cols["name_last"]; ok && i < len(record) {
			rec.NameLast = record[i]
		}
		return rec, nil
	}
}
