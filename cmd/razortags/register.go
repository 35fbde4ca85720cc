// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build !razortags_minimal

package main

import (
	"github.com/albertocavalcante/razortags/producer"
	"github.com/albertocavalcante/razortags/producers"
)

// defaultProducers are the producers a scan runs when none are requested,
// in output order.
var defaultProducers []string

func init() {
	// Default build: every descriptor family
	for _, p := range producers.Default() {
		producer.Register(p)
		defaultProducers = append(defaultProducers, p.Metadata().Name)
	}
}
