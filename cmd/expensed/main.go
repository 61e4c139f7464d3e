// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitGeneral  = 1
	ExitConfig   = 2
	ExitDatabase = 3
	ExitUsage    = 4
)

// GlobalFlags are flags shared by every subcommand.
type GlobalFlags struct {
	JSON  bool
	Quiet bool
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: expensed [options] <command> [command options]

Personal expense tracker exposed as an MCP server.

Commands:
  mcp       Run the MCP server on stdin/stdout (default)
  serve     Run the MCP server over HTTP
  init      Create a starter expensed.yaml configuration file
  status    Show ledger statistics and storage configuration
  add       Add an expense record from the command line
  list      List expense records from the command line

Options:
  --config <path>   Configuration file (default: ./expensed.yaml)
  --json            Machine-readable output where supported
  --quiet           Suppress informational output
  --version         Print version and exit
  --mcp             Alias for the mcp command

Run 'expensed <command> --help' for command details.
`)
}

// splitArgs separates the leading global flags from the subcommand and
// its arguments. Only --config takes a value among the globals, so the
// first non-flag token after it is the command; everything following
// belongs to the command's own FlagSet.
func splitArgs(args []string) (globalArgs []string, command string, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--config" || a == "-config" {
			i++ // flag value
			continue
		}
		if len(a) > 0 && a[0] == '-' {
			continue
		}
		return args[:i], a, args[i+1:]
	}
	return args, "", nil
}

func main() {
	fs := flag.NewFlagSet("expensed", flag.ExitOnError)

	configPath := fs.String("config", "", "Configuration file path")
	jsonOut := fs.Bool("json", false, "Machine-readable output")
	quiet := fs.Bool("quiet", false, "Suppress informational output")
	showVersion := fs.Bool("version", false, "Print version and exit")
	mcpMode := fs.Bool("mcp", false, "Run the MCP server on stdin/stdout")

	fs.Usage = usage

	globalArgs, command, rest := splitArgs(os.Args[1:])
	if err := fs.Parse(globalArgs); err != nil {
		os.Exit(ExitUsage)
	}

	if *showVersion {
		fmt.Printf("expensed %s\n", version)
		return
	}

	globals := GlobalFlags{JSON: *jsonOut, Quiet: *quiet}

	if *mcpMode || command == "" {
		// No subcommand: stdio MCP server, so an MCP client can launch
		// the bare binary.
		runMCPServer(*configPath)
		return
	}

	switch command {
	case "mcp":
		runMCPServer(*configPath)
	case "serve":
		runServe(rest, *configPath, globals)
	case "init":
		runInit(rest, globals)
	case "status":
		runStatus(rest, *configPath, globals)
	case "add":
		runAdd(rest, *configPath, globals)
	case "list":
		runList(rest, *configPath, globals)
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		usage()
		os.Exit(ExitUsage)
	}
}
