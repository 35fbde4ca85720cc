// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package producer defines the interface for descriptor producers and the
// registry the CLI selects them from.
package producer

import (
	"context"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/symbols"
)

// Producer is the interface that all descriptor producers must implement.
type Producer interface {
	// Metadata returns information about this producer.
	Metadata() Metadata

	// Produce builds descriptors for the types of a compilation.
	Produce(ctx context.Context, c *symbols.Compilation, cfg Config) (*Output, error)
}

// Metadata describes a producer.
type Metadata struct {
	// Name is the short identifier (e.g., "taghelpers", "bind").
	Name string

	// Description is a human-readable description.
	Description string

	// Kinds lists the descriptor kinds the producer emits.
	Kinds []descriptor.Kind
}
