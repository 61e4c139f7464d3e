// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/kraklabs/expensed/pkg/expense"
)

// removeEnvelope is the remove_expense success payload. Deleted may be
// zero: removing by a non-matching value is a no-op, not an error.
type removeEnvelope struct {
	Status  string `json:"status"`
	Deleted int64  `json:"deleted"`
}

// Remove deletes every record whose field equals value. The field
// allow-list (id, category, date, amount) is enforced by the store
// before any statement executes; violations come back as inline
// validation errors.
func Remove(ctx context.Context, store Store, args map[string]any) (*ToolResult, error) {
	field := GetStringArg(args, "field", "")
	if field == "" {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: field"), nil
	}

	raw, present := args["value"]
	if !present || raw == nil {
		return NewErrorResult(expense.KindValidation, "Missing required parameter: value"), nil
	}
	value := AnyToString(raw)

	deleted, err := store.RemoveBy(ctx, field, value)
	if err != nil {
		return storeErrorResult(err), nil
	}

	return NewJSONResult(removeEnvelope{Status: "success", Deleted: deleted})
}
