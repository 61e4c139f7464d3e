// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/expensed/pkg/expense"
)

// runStatus prints ledger statistics and storage configuration.
func runStatus(args []string, configPath string, globals GlobalFlags) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: expensed status

Description:
  Show record counts, totals and storage configuration for the expense
  database.

Options (inherited):
  --json    Output as JSON

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(ExitUsage)
	}

	cfg := loadConfigOrDefault(configPath, globals.Quiet)

	client, err := expense.Open(cfg.clientConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open database: %v\n", err)
		os.Exit(ExitDatabase)
	}
	defer func() { _ = client.Close() }()

	stats, err := client.GetStats(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitDatabase)
	}

	if globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]any{
			"records":      stats.Records,
			"categories":   stats.Categories,
			"total_amount": stats.TotalAmount,
			"first_date":   stats.FirstDate,
			"last_date":    stats.LastDate,
			"storage":      client.Path(),
			"in_memory":    client.InMemory(),
		})
		return
	}

	fmt.Println("Expense Ledger Status")
	fmt.Println()
	fmt.Printf("  Records:      %d\n", stats.Records)
	fmt.Printf("  Categories:   %d\n", stats.Categories)
	fmt.Printf("  Total amount: %.2f\n", stats.TotalAmount)
	if stats.Records > 0 {
		fmt.Printf("  Date range:   %s .. %s\n", stats.FirstDate, stats.LastDate)
	}
	fmt.Println()
	if client.InMemory() {
		fmt.Println("  Storage: in-memory (cloud deployment, non-durable)")
	} else {
		fmt.Printf("  Storage: %s\n", client.Path())
	}
}
