// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package producer

import "github.com/albertocavalcante/razortags/descriptor"

// Output contains produced descriptors in production order.
type Output struct {
	Descriptors []*descriptor.TagHelperDescriptor
}

// NewOutput creates an empty Output.
func NewOutput() *Output {
	return &Output{}
}

// Add appends descriptors to the output. Nil descriptors are skipped.
func (o *Output) Add(ds ...*descriptor.TagHelperDescriptor) {
	for _, d := range ds {
		if d != nil {
			o.Descriptors = append(o.Descriptors, d)
		}
	}
}

// Of returns an Output holding ds.
func Of(ds ...*descriptor.TagHelperDescriptor) *Output {
	o := NewOutput()
	o.Add(ds...)
	return o
}

// Len returns the number of descriptors.
func (o *Output) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Descriptors)
}
