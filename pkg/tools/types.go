// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"encoding/json"
	"fmt"

	"github.com/kraklabs/expensed/pkg/expense"
)

// ToolResult represents the result of a tool execution. Text carries the
// JSON payload returned to the MCP client.
type ToolResult struct {
	Text    string
	IsError bool
}

// NewResult creates a successful tool result.
func NewResult(text string) *ToolResult {
	return &ToolResult{Text: text}
}

// NewJSONResult marshals v into a successful tool result.
func NewJSONResult(v any) (*ToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &ToolResult{Text: string(b)}, nil
}

// errorEnvelope is the uniform error payload.
type errorEnvelope struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
	Error  string `json:"error"`
}

// NewErrorResult creates an error tool result with a structured envelope.
func NewErrorResult(kind expense.Kind, msg string) *ToolResult {
	b, err := json.Marshal(errorEnvelope{Status: "error", Kind: kind.String(), Error: msg})
	if err != nil {
		return &ToolResult{Text: msg, IsError: true}
	}
	return &ToolResult{Text: string(b), IsError: true}
}

// storeErrorResult classifies err via its expense error kind.
func storeErrorResult(err error) *ToolResult {
	return NewErrorResult(expense.KindOf(err), err.Error())
}
