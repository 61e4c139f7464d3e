// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/kraklabs/expensed/pkg/expense"
)

// MockStore implements Store for handler tests. Unset funcs return zero
// values and no error.
type MockStore struct {
	AddFunc         func(ctx context.Context, date string, amount float64, category, subcategory, note string) (int64, error)
	ListRangeFunc   func(ctx context.Context, startDate, endDate string, limit int) ([]expense.Record, error)
	SummarizeFunc   func(ctx context.Context, startDate, endDate, category string) ([]expense.CategorySummary, error)
	RemoveByFunc    func(ctx context.Context, field, value string) (int64, error)
	UpdateFieldFunc func(ctx context.Context, id int64, field, newValue string) (int64, error)
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Add(ctx context.Context, date string, amount float64, category, subcategory, note string) (int64, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, date, amount, category, subcategory, note)
	}
	return 1, nil
}

func (m *MockStore) ListRange(ctx context.Context, startDate, endDate string, limit int) ([]expense.Record, error) {
	if m.ListRangeFunc != nil {
		return m.ListRangeFunc(ctx, startDate, endDate, limit)
	}
	return []expense.Record{}, nil
}

func (m *MockStore) Summarize(ctx context.Context, startDate, endDate, category string) ([]expense.CategorySummary, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, startDate, endDate, category)
	}
	return []expense.CategorySummary{}, nil
}

func (m *MockStore) RemoveBy(ctx context.Context, field, value string) (int64, error) {
	if m.RemoveByFunc != nil {
		return m.RemoveByFunc(ctx, field, value)
	}
	return 0, nil
}

func (m *MockStore) UpdateField(ctx context.Context, id int64, field, newValue string) (int64, error) {
	if m.UpdateFieldFunc != nil {
		return m.UpdateFieldFunc(ctx, id, field, newValue)
	}
	return 0, nil
}
