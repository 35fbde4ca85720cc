// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/razortags/producer"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "razortags",
		Short:         "Razor tag helper descriptor extractor",
		Long:          "razortags builds Razor tag helper and component descriptors from C# sources and YAML symbol manifests.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newScanCmd(),
		newProducersCmd(),
		newSelectorCmd(),
		newTypeNameCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "razortags %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func newProducersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "producers",
		Short: "List the registered descriptor producers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range defaultProducers {
				p, ok := producer.Get(name)
				if !ok {
					continue
				}
				meta := p.Metadata()
				fmt.Fprintf(w, "%s\t%s\n", meta.Name, meta.Description)
			}
			return w.Flush()
		},
	}
}
