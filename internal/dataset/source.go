// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package dataset

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/reelist/reelist/internal/csvio"
	"github.com/reelist/reelist/internal/logging"
	"github.com/reelist/reelist/internal/watchlist"
)

// DefaultFetchTimeout bounds the remote starter dataset download.
const DefaultFetchTimeout = 30 * time.Second

// LoadFile reads and normalizes a local CSV dataset.
func LoadFile(path string) (*watchlist.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	raw, err := csvio.Read(f)
	if err != nil {
		return nil, err
	}

	table, err := watchlist.Load(raw)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("path", path).
		Int("records", table.Len()).
		Msg("Loaded dataset from file")
	return table, nil
}

// Fetch downloads and normalizes the remote starter dataset. A timeout <= 0
// applies DefaultFetchTimeout.
func Fetch(ctx context.Context, url string, timeout time.Duration) (*watchlist.Table, error) {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %d", resp.StatusCode)
	}

	raw, err := csvio.Read(resp.Body)
	if err != nil {
		return nil, err
	}

	table, err := watchlist.Load(raw)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("url", url).
		Int("records", table.Len()).
		Msg("Fetched starter dataset")
	return table, nil
}
