// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// runInit creates a new expensed.yaml configuration file.
func runInit(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite existing configuration")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: expensed init [options]

Description:
  Create a new expensed.yaml configuration file in the current directory
  with sensible defaults.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  expensed init             Create configuration with defaults
  expensed init --force     Overwrite existing configuration

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(ExitUsage)
	}

	if _, err := os.Stat(defaultConfigName); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", defaultConfigName)
		fmt.Fprintf(os.Stderr, "Use --force to overwrite\n")
		os.Exit(ExitConfig)
	}

	cfg := DefaultConfig()
	if err := SaveConfig(cfg, defaultConfigName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitConfig)
	}

	if !globals.Quiet {
		fmt.Printf("Created %s\n", defaultConfigName)
		fmt.Println("Run 'expensed --mcp' to start the server.")
	}
}
