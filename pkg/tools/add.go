// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/kraklabs/expensed/pkg/expense"
)

// addEnvelope is the add_expense success payload.
type addEnvelope struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// Add inserts a new expense record. date, amount and category are
// required; subcategory and note default to empty. The values themselves
// are not validated: any date string, amount sign, or category is
// accepted, and the category need not appear in the categories resource.
func Add(ctx context.Context, store Store, args map[string]any) (*ToolResult, error) {
	date := GetStringArg(args, "date", "")
	if date == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: date"), nil
	}

	amount, ok := GetFloat64Arg(args, "amount")
	if !ok {
		return NewErrorResult(expense.KindValidation, "Missing or non-numeric required parameter: amount"), nil
	}

	category := GetStringArg(args, "category", "")
	if category == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: category"), nil
	}

	subcategory := GetStringArg(args, "subcategory", "")
	note := GetStringArg(args, "note", "")

	id, err := store.Add(ctx, date, amount, category, subcategory, note)
	if err != nil {
		return storeErrorResult(err), nil
	}

	return NewJSONResult(addEnvelope{Status: "success", ID: id})
}
