// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package producer

import "log/slog"

// Config contains producer configuration.
type Config struct {
	// IncludeDocumentation copies doc comments onto descriptors.
	IncludeDocumentation bool

	// ExcludeHidden omits types and properties that are never shown to
	// editors.
	ExcludeHidden bool

	// Types filters to specific type full names (empty = all).
	Types []string

	// MarkerInterface overrides the tag helper marker interface.
	MarkerInterface string

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger

	// Options contains producer-specific options.
	Options map[string]string
}

// Option returns a producer-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
