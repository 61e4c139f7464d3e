// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/kraklabs/expensed/pkg/expense"
)

// MaxListLimit bounds the limit argument of list_expenses.
const MaxListLimit = 1000

// List returns expense records in the inclusive date range
// [start_date, end_date], newest first, capped at limit rows. The
// payload is a bare JSON array of record objects.
func List(ctx context.Context, store Store, args map[string]any) (*ToolResult, error) {
	startDate := GetStringArg(args, "start_date", "")
	if startDate == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: start_date"), nil
	}
	endDate := GetStringArg(args, "end_date", "")
	if endDate == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: end_date"), nil
	}

	limit := GetIntArg(args, "limit", expense.DefaultListLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	records, err := store.ListRange(ctx, startDate, endDate, limit)
	if err != nil {
		return storeErrorResult(err), nil
	}

	return NewJSONResult(records)
}
