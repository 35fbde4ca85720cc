// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package producer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/razortags/symbols"
)

// RunAll runs the named producers concurrently over c and concatenates their
// output in the order the names were given. With no names every registered
// producer runs, in name order.
func RunAll(ctx context.Context, c *symbols.Compilation, cfg Config, names ...string) (*Output, error) {
	producers := All()
	if len(names) > 0 {
		var err error
		if producers, err = Lookup(names...); err != nil {
			return nil, err
		}
	}

	log := cfg.logger()
	results := make([]*Output, len(producers))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range producers {
		g.Go(func() error {
			name := p.Metadata().Name
			start := time.Now()
			out, err := p.Produce(ctx, c, cfg)
			if err != nil {
				return fmt.Errorf("producer %s: %w", name, err)
			}
			log.Debug("producer finished", "producer", name, "descriptors", out.Len(), "elapsed", time.Since(start))
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewOutput()
	for _, out := range results {
		if out != nil {
			merged.Add(out.Descriptors...)
		}
	}
	return merged, nil
}
