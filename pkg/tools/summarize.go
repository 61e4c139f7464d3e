// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/kraklabs/expensed/pkg/expense"
)

// Summarize groups expenses in the inclusive date range by category,
// returning total amount and row count per category ordered by total
// descending. An optional category argument restricts the result to a
// single group.
func Summarize(ctx context.Context, store Store, args map[string]any) (*ToolResult, error) {
	startDate := GetStringArg(args, "start_date", "")
	if startDate == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: start_date"), nil
	}
	endDate := GetStringArg(args, "end_date", "")
	if endDate == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: end_date"), nil
	}

	category := GetStringArg(args, "category", "")

	summaries, err := store.Summarize(ctx, startDate, endDate, category)
	if err != nil {
		return storeErrorResult(err), nil
	}

	return NewJSONResult(summaries)
}
