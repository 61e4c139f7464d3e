// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/kraklabs/expensed/pkg/expense"
)

// updateEnvelope is the update_expense success payload. Updated is 0 or
// 1 since id is unique; 0 means no record had that id.
type updateEnvelope struct {
	Status  string `json:"status"`
	Updated int64  `json:"updated"`
}

// Update sets one field of the record matching id. The field allow-list
// (date, category, amount, subcategory, note) excludes id itself, so the
// primary key can never be rewritten.
func Update(ctx context.Context, store Store, args map[string]any) (*ToolResult, error) {
	id, ok := GetInt64Arg(args, "id")
	if !ok {
		return NewErrorResult(expense.KindValidation, "Missing or non-integer required parameter: id"), nil
	}

	field := GetStringArg(args, "field", "")
	if field == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: field"), nil
	}

	raw, present := args["new_value"]
	if !present || raw == nil {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: new_value"), nil
	}
	newValue := AnyToString(raw)

	updated, err := store.UpdateField(ctx, id, field, newValue)
	if err != nil {
		return storeErrorResult(err), nil
	}

	return NewJSONResult(updateEnvelope{Status: "success", Updated: updated})
}
