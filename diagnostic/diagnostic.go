// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package diagnostic defines the structured diagnostics attached to tag helper
// descriptors.
//
// A Diagnostic carries an identifier and its format arguments only. Rendering
// through String is a convenience for tooling; consumers that localize messages
// should key off ID and Args.
package diagnostic

import (
	"fmt"
	"slices"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Category classifies diagnostics for filtering.
type Category string

const (
	CategoryMalformedName  Category = "malformed-name"
	CategoryReservedPrefix Category = "reserved-prefix"
	CategorySelectorSyntax Category = "selector-syntax"
	CategoryBindingShape   Category = "binding-shape"
)

// Diagnostic is a single structured diagnostic.
type Diagnostic struct {
	ID       string
	Severity Severity
	Category Category
	Args     []string
}

// Equal reports whether d and other are structurally identical.
func (d Diagnostic) Equal(other Diagnostic) bool {
	return d.ID == other.ID &&
		d.Severity == other.Severity &&
		d.Category == other.Category &&
		slices.Equal(d.Args, other.Args)
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// Name returns the symbolic name registered for the diagnostic ID, or the ID
// itself when it is unknown.
func (d Diagnostic) Name() string {
	if desc, ok := descriptors[d.ID]; ok {
		return desc.name
	}
	return d.ID
}

// Message formats the diagnostic using its default English template.
func (d Diagnostic) Message() string {
	desc, ok := descriptors[d.ID]
	if !ok {
		return strings.Join(d.Args, " ")
	}
	args := make([]any, len(d.Args))
	for i, a := range d.Args {
		args[i] = a
	}
	return fmt.Sprintf(desc.format, args...)
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Severity.String())
	sb.WriteString(" ")
	sb.WriteString(d.ID)
	if d.Category != "" {
		sb.WriteString(" [")
		sb.WriteString(string(d.Category))
		sb.WriteString("]")
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message())
	return sb.String()
}

// Key returns a string that is equal for structurally equal diagnostics.
func (d Diagnostic) Key() string {
	return d.ID + "\x00" + strings.Join(d.Args, "\x00")
}

// HasErrors reports whether any diagnostic in diags is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsError() {
			return true
		}
	}
	return false
}

// Collector collects diagnostics while a construct is being scanned or built.
// A nil Collector silently discards everything.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records d.
func (c *Collector) Add(d Diagnostic) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, d)
}

// AddAll records every diagnostic in diags, preserving order.
func (c *Collector) AddAll(diags []Diagnostic) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, diags...)
}

// Diagnostics returns all collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.diagnostics)
}

// HasErrors returns true if any error-level diagnostics exist.
func (c *Collector) HasErrors() bool {
	if c == nil {
		return false
	}
	return HasErrors(c.diagnostics)
}

// Summary returns a summary line like "2 error(s), 1 warning(s)".
func Summary(diags []Diagnostic) string {
	errors, warnings := 0, 0
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	parts := []string{}
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", errors))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", warnings))
	}
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}
