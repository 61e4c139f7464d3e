// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/expensed/pkg/expense"
	"github.com/kraklabs/expensed/pkg/tools"
)

// The add and list commands drive the same tool handlers the MCP
// transports use, so CLI and protocol behavior cannot drift apart.

func openClient(configPath string, quiet bool) *expense.Client {
	cfg := loadConfigOrDefault(configPath, quiet)
	client, err := expense.Open(cfg.clientConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open database: %v\n", err)
		os.Exit(ExitDatabase)
	}
	return client
}

// printToolResult renders a tool result on stdout, indenting JSON for
// humans. Error results go to stderr with a non-zero exit.
func printToolResult(result *tools.ToolResult) {
	var out bytes.Buffer
	text := result.Text
	if err := json.Indent(&out, []byte(text), "", "  "); err == nil {
		text = out.String()
	}

	if result.IsError {
		fmt.Fprintln(os.Stderr, text)
		os.Exit(ExitGeneral)
	}
	fmt.Println(text)
}

// runAdd adds one expense record from the command line.
func runAdd(args []string, configPath string, globals GlobalFlags) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	date := fs.String("date", "", "Expense date in ISO format (required)")
	amount := fs.Float64("amount", 0, "Amount spent (required)")
	category := fs.String("category", "", "Expense category (required)")
	subcategory := fs.String("subcategory", "", "Optional subcategory")
	note := fs.String("note", "", "Optional note")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: expensed add --date <date> --amount <amount> --category <category> [options]

Description:
  Add a single expense record to the database.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  expensed add --date 2026-01-15 --amount 12.50 --category "Food & Dining"
  expensed add --date 2026-01-15 --amount 240.10 --category Travel --subcategory flights --note "berlin trip"

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(ExitUsage)
	}

	client := openClient(configPath, globals.Quiet)
	defer func() { _ = client.Close() }()

	toolArgs := map[string]any{
		"date":        *date,
		"amount":      *amount,
		"category":    *category,
		"subcategory": *subcategory,
		"note":        *note,
	}
	if !fs.Changed("amount") {
		delete(toolArgs, "amount")
	}

	result, err := tools.Add(context.Background(), client, toolArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneral)
	}
	printToolResult(result)
}

// runList lists expense records from the command line.
func runList(args []string, configPath string, globals GlobalFlags) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	from := fs.String("from", "0000-01-01", "Range start in ISO format, inclusive")
	to := fs.String("to", "9999-12-31", "Range end in ISO format, inclusive")
	limit := fs.Int("limit", expense.DefaultListLimit, "Maximum rows returned")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: expensed list [options]

Description:
  List expense records, newest first. Without a range the whole ledger
  is listed (up to --limit rows).

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  expensed list
  expensed list --from 2026-01-01 --to 2026-01-31
  expensed list --limit 10

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(ExitUsage)
	}

	client := openClient(configPath, globals.Quiet)
	defer func() { _ = client.Close() }()

	result, err := tools.List(context.Background(), client, map[string]any{
		"start_date": *from,
		"end_date":   *to,
		"limit":      *limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneral)
	}
	printToolResult(result)
}
