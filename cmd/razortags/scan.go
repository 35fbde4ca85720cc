// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/razortags/internal/config"
	"github.com/albertocavalcante/razortags/internal/logging"
	"github.com/albertocavalcante/razortags/internal/report"
	"github.com/albertocavalcante/razortags/internal/source"
	"github.com/albertocavalcante/razortags/producer"
)

type scanFlags struct {
	output        string
	configPath    string
	docs          bool
	excludeHidden bool
	types         string
	producers     string
	summary       bool
	strict        bool
}

func newScanCmd() *cobra.Command {
	var f scanFlags
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Build descriptors from C# sources and manifests",
		Example: `  # Scan a project directory
  razortags scan ./src

  # Tag helpers only, without documentation
  razortags scan -p taghelpers --docs=false ./src

  # Components from a manifest, counts only
  razortags scan -p components --summary symbols.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "Output file (default: stdout)")
	flags.StringVarP(&f.configPath, "config", "c", "", "Path to "+config.FileName+" (default: ./"+config.FileName+" if present)")
	flags.BoolVar(&f.docs, "docs", true, "Copy documentation onto descriptors")
	flags.BoolVar(&f.excludeHidden, "exclude-hidden", false, "Skip types and properties hidden from editors")
	flags.StringVarP(&f.types, "types", "t", "", "Comma-separated type full names to scan (default: all)")
	flags.StringVarP(&f.producers, "producers", "p", "", "Comma-separated producers to run (default: all)")
	flags.BoolVar(&f.summary, "summary", false, "Print descriptor counts instead of JSON")
	flags.BoolVar(&f.strict, "strict", false, "Exit with status 2 when any error diagnostic is reported")
	return cmd
}

func loadConfig(cmd *cobra.Command, f scanFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.LoadOptional(config.FileName)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Flags override the file only when given.
	flags := cmd.Flags()
	if flags.Changed("docs") {
		cfg.IncludeDocumentation = f.docs
	}
	if flags.Changed("exclude-hidden") {
		cfg.ExcludeHidden = f.excludeHidden
	}
	if flags.Changed("types") {
		cfg.Types = splitList(f.types)
	}
	if flags.Changed("producers") {
		cfg.Producers = splitList(f.producers)
	}
	return cfg, nil
}

func runScan(cmd *cobra.Command, paths []string, f scanFlags) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, JSON: cfg.Log.JSON, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	start := time.Now()
	loaded, err := source.Load(ctx, source.Options{
		Paths:    paths,
		Assembly: cfg.Assembly,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}
	logger.Debug("sources loaded",
		"files", len(loaded.Files),
		"types", len(loaded.Compilation.Types()),
		"elapsed", time.Since(start))

	names := cfg.Producers
	if len(names) == 0 {
		names = defaultProducers
	}
	out, err := producer.RunAll(ctx, loaded.Compilation, producer.Config{
		IncludeDocumentation: cfg.IncludeDocumentation,
		ExcludeHidden:        cfg.ExcludeHidden,
		Types:                cfg.Types,
		MarkerInterface:      cfg.MarkerInterface,
		Logger:               logger,
	}, names...)
	if err != nil {
		return err
	}

	summary := report.Summarize(out.Descriptors)
	logger.Info("scan complete",
		"descriptors", summary.Total,
		"errors", summary.Errors,
		"warnings", summary.Warnings)

	if err := writeOutput(cmd.OutOrStdout(), f.output, func(w io.Writer) error {
		if f.summary {
			return summary.WriteText(w)
		}
		return report.Write(w, report.New(loaded.Compilation.Assembly, loaded.Revision, out.Descriptors))
	}); err != nil {
		return err
	}

	if f.strict && summary.Errors > 0 {
		return &exitCodeError{code: exitDiagnostics, err: fmt.Errorf("%d error diagnostics reported", summary.Errors)}
	}
	return nil
}

// writeOutput writes to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
