// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kraklabs/expensed/pkg/expense"
)

func TestList_ReturnsRecordArray(t *testing.T) {
	mock := &MockStore{
		ListRangeFunc: func(ctx context.Context, startDate, endDate string, limit int) ([]expense.Record, error) {
			if startDate != "2026-01-01" || endDate != "2026-01-31" {
				t.Errorf("Unexpected range: %s..%s", startDate, endDate)
			}
			if limit != 100 {
				t.Errorf("Expected default limit 100, got %d", limit)
			}
			return []expense.Record{
				{ID: 2, Date: "2026-01-20", Amount: 30, Category: "Travel"},
				{ID: 1, Date: "2026-01-10", Amount: 12.5, Category: "Food & Dining", Subcategory: "lunch", Note: "soup"},
			}, nil
		},
	}

	result, err := List(context.Background(), mock, map[string]any{
		"start_date": "2026-01-01",
		"end_date":   "2026-01-31",
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("List() returned error: %s", result.Text)
	}

	var records []expense.Record
	if err := json.Unmarshal([]byte(result.Text), &records); err != nil {
		t.Fatalf("List() payload is not a JSON array: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != 2 || records[1].Subcategory != "lunch" {
		t.Errorf("List() records = %+v", records)
	}
}

func TestList_EmptyRangeIsEmptyArray(t *testing.T) {
	result, err := List(context.Background(), &MockStore{}, map[string]any{
		"start_date": "2026-01-01",
		"end_date":   "2026-01-31",
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Text != "[]" {
		t.Errorf("List() over empty range should be [], got %s", result.Text)
	}
}

func TestList_LimitClamped(t *testing.T) {
	var gotLimit int
	mock := &MockStore{
		ListRangeFunc: func(ctx context.Context, startDate, endDate string, limit int) ([]expense.Record, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	for _, tc := range []struct {
		in   any
		want int
	}{
		{float64(50), 50},
		{float64(0), 1},
		{float64(-5), 1},
		{float64(99999), MaxListLimit},
	} {
		_, _ = List(context.Background(), mock, map[string]any{
			"start_date": "2026-01-01",
			"end_date":   "2026-01-31",
			"limit":      tc.in,
		})
		if gotLimit != tc.want {
			t.Errorf("limit %v: expected clamp to %d, got %d", tc.in, tc.want, gotLimit)
		}
	}
}

func TestList_MissingRange(t *testing.T) {
	result, _ := List(context.Background(), &MockStore{}, map[string]any{
		"start_date": "2026-01-01",
	})
	if !result.IsError {
		t.Error("List() should require end_date")
	}

	result, _ = List(context.Background(), &MockStore{}, map[string]any{
		"end_date": "2026-01-31",
	})
	if !result.IsError {
		t.Error("List() should require start_date")
	}
}
