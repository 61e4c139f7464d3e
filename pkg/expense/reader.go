// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package expense

import (
	"context"
	"database/sql"
)

// DefaultListLimit caps ListRange when the caller does not supply one.
const DefaultListLimit = 100

// ListRange returns records whose date lies in the inclusive range
// [startDate, endDate] under string comparison (callers supply ISO-8601
// dates so this is chronological). Ordered by date descending then id
// descending, capped at limit rows.
func (c *Client) ListRange(ctx context.Context, startDate, endDate string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, date, amount, category, subcategory, note
		FROM expenses
		WHERE date BETWEEN ? AND ?
		ORDER BY date DESC, id DESC
		LIMIT ?
	`, startDate, endDate, limit)
	if err != nil {
		return nil, storageError("list expenses", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Date, &r.Amount, &r.Category, &r.Subcategory, &r.Note); err != nil {
			return nil, storageError("scan expense", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list expenses", err)
	}
	return records, nil
}

// Summarize groups records in the inclusive date range by category,
// returning each category's total amount and row count ordered by total
// descending. A non-empty category restricts the result to that single
// category. Totals carry SQLite's float summation semantics; there is no
// fixed-point guarantee.
func (c *Client) Summarize(ctx context.Context, startDate, endDate, category string) ([]CategorySummary, error) {
	query := `
		SELECT category, SUM(amount) AS total_amount, COUNT(*) AS count
		FROM expenses
		WHERE date BETWEEN ? AND ?
	`
	args := []any{startDate, endDate}

	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}

	query += `
		GROUP BY category
		ORDER BY total_amount DESC
	`

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("summarize expenses", err)
	}
	defer rows.Close()

	summaries := make([]CategorySummary, 0)
	for rows.Next() {
		var s CategorySummary
		if err := rows.Scan(&s.Category, &s.TotalAmount, &s.Count); err != nil {
			return nil, storageError("scan summary", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("summarize expenses", err)
	}
	return summaries, nil
}

// GetStats returns whole-ledger statistics for the status command.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	var total sql.NullFloat64
	var first, last sql.NullString

	err := c.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT category), COALESCE(SUM(amount), 0),
		       MIN(date), MAX(date)
		FROM expenses
	`).Scan(&stats.Records, &stats.Categories, &total, &first, &last)
	if err != nil {
		return nil, storageError("ledger stats", err)
	}

	stats.TotalAmount = total.Float64
	stats.FirstDate = first.String
	stats.LastDate = last.String
	return &stats, nil
}
