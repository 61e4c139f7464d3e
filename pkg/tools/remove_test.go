// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kraklabs/expensed/pkg/expense"
)

func TestRemove_Success(t *testing.T) {
	mock := &MockStore{
		RemoveByFunc: func(ctx context.Context, field, value string) (int64, error) {
			if field != "category" || value != "Entertainment" {
				t.Errorf("Unexpected call: field=%q value=%q", field, value)
			}
			return 3, nil
		},
	}

	result, err := Remove(context.Background(), mock, map[string]any{
		"field": "category",
		"value": "Entertainment",
	})
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("Remove() returned error: %s", result.Text)
	}

	var envelope struct {
		Status  string `json:"status"`
		Deleted int64  `json:"deleted"`
	}
	if err := json.Unmarshal([]byte(result.Text), &envelope); err != nil {
		t.Fatalf("Remove() payload is not JSON: %v", err)
	}
	if envelope.Status != "success" || envelope.Deleted != 3 {
		t.Errorf("Remove() envelope = %+v", envelope)
	}
}

func TestRemove_NumericValueCoerced(t *testing.T) {
	var gotValue string
	mock := &MockStore{
		RemoveByFunc: func(ctx context.Context, field, value string) (int64, error) {
			gotValue = value
			return 1, nil
		},
	}

	// An id sent as a JSON number must bind as "42", not "42.000000".
	result, _ := Remove(context.Background(), mock, map[string]any{
		"field": "id",
		"value": float64(42),
	})
	if result.IsError {
		t.Fatalf("Remove() returned error: %s", result.Text)
	}
	if gotValue != "42" {
		t.Errorf("Expected value bound as \"42\", got %q", gotValue)
	}
}

func TestRemove_InvalidFieldSurfacedInline(t *testing.T) {
	mock := &MockStore{
		RemoveByFunc: func(ctx context.Context, field, value string) (int64, error) {
			return 0, &expense.Error{Kind: expense.KindValidation, Msg: `invalid field "note" for remove; must be one of: amount, category, date, id`}
		},
	}

	result, err := Remove(context.Background(), mock, map[string]any{
		"field": "note",
		"value": "x",
	})
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if !result.IsError {
		t.Fatal("Remove() should reject invalid fields")
	}
	if !strings.Contains(result.Text, "validation") || !strings.Contains(result.Text, "invalid field") {
		t.Errorf("Remove() validation envelope = %s", result.Text)
	}
}

func TestRemove_ZeroDeletedIsSuccess(t *testing.T) {
	result, err := Remove(context.Background(), &MockStore{}, map[string]any{
		"field": "category",
		"value": "NoSuchCategory",
	})
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("Remove() zero matches must be success: %s", result.Text)
	}
	if !strings.Contains(result.Text, `"deleted":0`) {
		t.Errorf("Remove() should report deleted=0: %s", result.Text)
	}
}

func TestRemove_MissingParams(t *testing.T) {
	result, _ := Remove(context.Background(), &MockStore{}, map[string]any{"value": "x"})
	if !result.IsError {
		t.Error("Remove() should require field")
	}

	result, _ = Remove(context.Background(), &MockStore{}, map[string]any{"field": "id"})
	if !result.IsError {
		t.Error("Remove() should require value")
	}
}
