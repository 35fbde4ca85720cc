// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command razortags extracts Razor tag helper descriptors from C# sources
// and symbol manifests.
//
// Usage:
//
//	razortags scan [flags] [paths...]
//	razortags producers
//	razortags selector <text>
//	razortags typename generic <type> --bind T=Type
//	razortags typename qualify <type> --param T
//	razortags version
//
// Scan flags:
//
//	-o, --output          Output file (default: stdout)
//	-c, --config          Path to razortags.yaml (default: ./razortags.yaml if present)
//	--docs                Copy documentation onto descriptors
//	--exclude-hidden      Skip types and properties hidden from editors
//	-t, --types           Comma-separated type full names to scan
//	-p, --producers       Comma-separated producers to run
//	--summary             Print descriptor counts instead of JSON
//	--strict              Exit with status 2 when any error diagnostic is reported
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitDiagnostics = 2
)

// exitCodeError carries a process exit status through cobra.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitError
}
