// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kraklabs/expensed/pkg/expense"
	"github.com/kraklabs/expensed/pkg/tools"
)

const (
	mcpVersion     = version
	mcpServerName  = "expensed"
	mcpProtocolRev = "2024-11-05"
)

// JSON-RPC 2.0 types for the MCP protocol.

type jsonRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id,omitempty"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type mcpServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type mcpCapabilities struct {
	Tools     map[string]any `json:"tools,omitempty"`
	Resources map[string]any `json:"resources,omitempty"`
}

type mcpInitializeResult struct {
	ProtocolVersion string          `json:"protocolVersion"`
	Capabilities    mcpCapabilities `json:"capabilities"`
	ServerInfo      mcpServerInfo   `json:"serverInfo"`
}

type mcpTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type mcpToolsListResult struct {
	Tools []mcpTool `json:"tools"`
}

type mcpToolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type mcpToolResult struct {
	Content []mcpContent `json:"content"`
	IsError bool         `json:"isError,omitempty"`
}

type mcpContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type mcpResource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
}

type mcpResourcesListResult struct {
	Resources []mcpResource `json:"resources"`
}

type mcpResourceReadParams struct {
	URI string `json:"uri"`
}

type mcpResourceContents struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType"`
	Text     string `json:"text"`
}

type mcpResourceReadResult struct {
	Contents []mcpResourceContents `json:"contents"`
}

// mcpServer maintains state for the running MCP server instance. The
// storage handle is acquired lazily, so the database opens on the first
// tool call rather than at connect time.
type mcpServer struct {
	handle *expense.Handle
	config *Config
}

// toolHandler is the signature for MCP tool handlers.
type toolHandler func(ctx context.Context, store tools.Store, args map[string]any) (*tools.ToolResult, error)

// toolHandlers maps tool names to their handler functions.
var toolHandlers = map[string]toolHandler{
	"add_expense":    tools.Add,
	"list_expenses":  tools.List,
	"summarize":      tools.Summarize,
	"remove_expense": tools.Remove,
	"update_expense": tools.Update,
}

func newMCPServer(cfg *Config) *mcpServer {
	return &mcpServer{
		handle: expense.NewHandle(cfg.clientConfig()),
		config: cfg,
	}
}

// runMCPServer starts the expensed MCP server on stdin/stdout.
func runMCPServer(configPath string) {
	cfg := loadConfigOrDefault(configPath, false)
	server := newMCPServer(cfg)
	defer func() { _ = server.handle.Close() }()

	fmt.Fprintf(os.Stderr, "expensed MCP server v%s starting...\n", mcpVersion)
	if CloudDeployment() {
		fmt.Fprintf(os.Stderr, "  Storage: in-memory (cloud deployment, non-durable)\n")
	} else {
		fmt.Fprintf(os.Stderr, "  Storage: %s\n", cfg.Storage.Path)
	}

	if err := server.serve(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: stdin read error: %v\n", err)
		os.Exit(ExitGeneral)
	}
}

// serve runs the JSON-RPC read loop, reading requests from r and writing
// responses to w.
func (s *mcpServer) serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req jsonRPCRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid JSON-RPC request: %v\n", err)
			continue
		}

		ctx := context.Background()
		resp := s.handleRequest(ctx, req)

		// Notifications produce no response.
		if resp.ID == nil && resp.Result == nil && resp.Error == nil {
			continue
		}

		respBytes, err := json.Marshal(resp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot encode response: %v\n", err)
			continue
		}

		_, _ = fmt.Fprintf(w, "%s\n", respBytes)
	}

	return scanner.Err()
}

// handleRequest dispatches a JSON-RPC request to the appropriate handler.
func (s *mcpServer) handleRequest(ctx context.Context, req jsonRPCRequest) jsonRPCResponse {
	switch req.Method {
	case "initialize":
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: mcpInitializeResult{
				ProtocolVersion: mcpProtocolRev,
				Capabilities: mcpCapabilities{
					Tools:     map[string]any{"listChanged": false},
					Resources: map[string]any{"listChanged": false},
				},
				ServerInfo: mcpServerInfo{
					Name:    mcpServerName,
					Version: mcpVersion,
				},
			},
		}

	case "notifications/initialized":
		return jsonRPCResponse{}

	case "ping":
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]any{},
		}

	case "tools/list":
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: mcpToolsListResult{
				Tools: s.getTools(),
			},
		}

	case "tools/call":
		var params mcpToolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return jsonRPCResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error: &rpcError{
					Code:    -32602,
					Message: "Invalid params",
					Data:    err.Error(),
				},
			}
		}

		result, err := s.handleToolCall(ctx, params)
		if err != nil {
			return jsonRPCResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error: &rpcError{
					Code:    -32603,
					Message: "Internal error",
					Data:    err.Error(),
				},
			}
		}

		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  result,
		}

	case "resources/list":
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: mcpResourcesListResult{
				Resources: []mcpResource{
					{
						URI:         tools.CategoriesURI,
						Name:        "categories",
						Description: "Expense category labels. Advisory only: records may use any category string.",
						MIMEType:    tools.CategoriesMIMEType,
					},
				},
			},
		}

	case "resources/read":
		var params mcpResourceReadParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return jsonRPCResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error: &rpcError{
					Code:    -32602,
					Message: "Invalid params",
					Data:    err.Error(),
				},
			}
		}

		if params.URI != tools.CategoriesURI {
			return jsonRPCResponse{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error: &rpcError{
					Code:    -32602,
					Message: "Unknown resource",
					Data:    params.URI,
				},
			}
		}

		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: mcpResourceReadResult{
				Contents: []mcpResourceContents{
					{
						URI:      tools.CategoriesURI,
						MIMEType: tools.CategoriesMIMEType,
						Text:     tools.Categories(s.config.Storage.CategoriesPath),
					},
				},
			},
		}

	default:
		return jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &rpcError{
				Code:    -32601,
				Message: "Method not found",
				Data:    req.Method,
			},
		}
	}
}

// handleToolCall dispatches a tool call to the registered handler. Tool
// failures, including storage errors, come back inside the result; only
// an unusable storage handle is reported as a transport-level error.
func (s *mcpServer) handleToolCall(ctx context.Context, params mcpToolCallParams) (*mcpToolResult, error) {
	handler, ok := toolHandlers[params.Name]
	if !ok {
		return &mcpToolResult{
			Content: []mcpContent{{Type: "text", Text: fmt.Sprintf("Unknown tool: %s", params.Name)}},
			IsError: true,
		}, nil
	}

	client, err := s.handle.Acquire()
	if err != nil {
		return &mcpToolResult{
			Content: []mcpContent{{Type: "text", Text: fmt.Sprintf("Cannot open expense database: %v", err)}},
			IsError: true,
		}, nil
	}

	result, err := handler(ctx, client, params.Arguments)
	if err != nil {
		return &mcpToolResult{
			Content: []mcpContent{{Type: "text", Text: fmt.Sprintf("Error in %s: %v", params.Name, err)}},
			IsError: true,
		}, nil
	}

	return &mcpToolResult{
		Content: []mcpContent{{Type: "text", Text: result.Text}},
		IsError: result.IsError,
	}, nil
}

// getTools returns the list of all expensed MCP tool definitions.
func (s *mcpServer) getTools() []mcpTool {
	return []mcpTool{
		{
			Name:        "add_expense",
			Description: "Add a new expense entry to the database.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date": map[string]any{
						"type":        "string",
						"description": "Expense date in ISO format (e.g., 2026-01-15)",
					},
					"amount": map[string]any{
						"type":        "number",
						"description": "Amount spent",
					},
					"category": map[string]any{
						"type":        "string",
						"description": "Expense category. See the expense://categories resource for suggestions; any string is accepted.",
					},
					"subcategory": map[string]any{
						"type":        "string",
						"description": "Optional subcategory",
						"default":     "",
					},
					"note": map[string]any{
						"type":        "string",
						"description": "Optional free-text note",
						"default":     "",
					},
				},
				"required": []string{"date", "amount", "category"},
			},
		},
		{
			Name:        "list_expenses",
			Description: "List expenses in an inclusive date range, newest first.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"start_date": map[string]any{
						"type":        "string",
						"description": "Range start in ISO format, inclusive",
					},
					"end_date": map[string]any{
						"type":        "string",
						"description": "Range end in ISO format, inclusive",
					},
					"limit": map[string]any{
						"type":    "number",
						"minimum": 1,
						"maximum": tools.MaxListLimit,
						"default": expense.DefaultListLimit,
					},
				},
				"required": []string{"start_date", "end_date"},
			},
		},
		{
			Name:        "summarize",
			Description: "Summarize expenses by category over an inclusive date range, largest total first.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"start_date": map[string]any{
						"type":        "string",
						"description": "Range start in ISO format, inclusive",
					},
					"end_date": map[string]any{
						"type":        "string",
						"description": "Range end in ISO format, inclusive",
					},
					"category": map[string]any{
						"type":        "string",
						"description": "Restrict the summary to a single category",
					},
				},
				"required": []string{"start_date", "end_date"},
			},
		},
		{
			Name:        "remove_expense",
			Description: "Remove every expense whose field equals value. Matching zero records is a success with deleted=0.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"field": map[string]any{
						"type":        "string",
						"enum":        expense.RemoveFields(),
						"description": "Field to match on",
					},
					"value": map[string]any{
						"description": "Value to match (string or number)",
					},
				},
				"required": []string{"field", "value"},
			},
		},
		{
			Name:        "update_expense",
			Description: "Update one field of the expense with the given id. The id itself cannot be changed.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "integer",
						"description": "Expense id as returned by add_expense",
					},
					"field": map[string]any{
						"type":        "string",
						"enum":        expense.UpdateFields(),
						"description": "Field to set",
					},
					"new_value": map[string]any{
						"description": "New value (string or number)",
					},
				},
				"required": []string{"id", "field", "new_value"},
			},
		},
	}
}
