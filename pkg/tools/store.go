// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/kraklabs/expensed/pkg/expense"
)

// Store is the storage surface the tool handlers need. *expense.Client
// implements it; tests substitute a mock.
type Store interface {
	Add(ctx context.Context, date string, amount float64, category, subcategory, note string) (int64, error)
	ListRange(ctx context.Context, startDate, endDate string, limit int) ([]expense.Record, error)
	Summarize(ctx context.Context, startDate, endDate, category string) ([]expense.CategorySummary, error)
	RemoveBy(ctx context.Context, field, value string) (int64, error)
	UpdateField(ctx context.Context, id int64, field, newValue string) (int64, error)
}

var _ Store = (*expense.Client)(nil)
