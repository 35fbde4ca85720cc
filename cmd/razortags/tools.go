// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/razortags/internal/report"
	"github.com/albertocavalcante/razortags/requiredattr"
	"github.com/albertocavalcante/razortags/typename"
)

func newSelectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "selector <text>",
		Short:   "Parse a required-attribute selector list",
		Example: `  razortags selector "asp-for, [type^='check']"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs := report.RequiredAttributes(requiredattr.ParseAll(args[0]))
			if attrs == nil {
				attrs = []report.RequiredAttribute{}
			}
			return report.Write(cmd.OutOrStdout(), attrs)
		},
	}
}

func newTypeNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typename",
		Short: "Rewrite C# type names",
	}

	var bindings []string
	generic := &cobra.Command{
		Use:   "generic <type>",
		Short: "Substitute type parameters with bound arguments",
		Long: `Substitute type parameters with bound arguments.

Each --bind is NAME=TYPE, or NAME alone for an unspecified argument,
which is rewritten to System.Object.`,
		Example: `  razortags typename generic "List<TItem>" --bind TItem=int`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := parseBindings(bindings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), typename.NewGenericRewriter(bound).Rewrite(args[0]))
			return nil
		},
	}
	generic.Flags().StringArrayVar(&bindings, "bind", nil, "Type parameter binding NAME=TYPE (repeatable)")

	var params []string
	qualify := &cobra.Command{
		Use:     "qualify <type>",
		Short:   "Prefix type references with global::",
		Example: `  razortags typename qualify "Dictionary<string, TValue>" --param TValue`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), typename.NewGlobalQualifiedRewriter(params).Rewrite(args[0]))
			return nil
		},
	}
	qualify.Flags().StringSliceVar(&params, "param", nil, "Type parameter names left unqualified")

	cmd.AddCommand(generic, qualify)
	return cmd
}

func parseBindings(specs []string) (map[string]typename.Binding, error) {
	out := make(map[string]typename.Binding, len(specs))
	for _, spec := range specs {
		name, typ, found := strings.Cut(spec, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid binding %q: missing type parameter name", spec)
		}
		if !found {
			out[name] = typename.Unspecified
			continue
		}
		out[name] = typename.Bind(strings.TrimSpace(typ))
	}
	return out, nil
}
