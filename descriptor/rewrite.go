// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package descriptor

import (
	"strings"

	"github.com/albertocavalcante/razortags/internal/names"
)

// WithTypeNames returns a copy of d in which the descriptor type name and the
// type names of every bound attribute, indexer and parameter are passed
// through rewrite. The MetaTypeName metadata follows the rewritten type name.
// When qualify is non-nil, MetaGlobalTypeName metadata present on the
// descriptor or an attribute is recomputed as qualify of the rewritten type
// name. Rules and diagnostics are shared with d.
func (d *TagHelperDescriptor) WithTypeNames(rewrite, qualify func(string) string) *TagHelperDescriptor {
	out := *d
	out.typeName = rewrite(d.typeName)
	if d.displayName == d.typeName {
		out.displayName = out.typeName
	}
	out.metadata = retypeMetadata(d.metadata, out.typeName, qualify)
	if _, ok := d.metadata[MetaTypeName]; ok {
		out.metadata[MetaTypeName] = rewrite(d.metadata[MetaTypeName])
	}
	out.boundAttributes = make([]*BoundAttributeDescriptor, 0, len(d.boundAttributes))
	for _, a := range d.boundAttributes {
		c := *a
		c.typeName = rewrite(a.typeName)
		c.displayName = retype(a.displayName, a.typeName, c.typeName)
		c.isString = c.typeName == names.TypeString
		c.isBoolean = c.typeName == names.TypeBoolean
		c.metadata = retypeMetadata(a.metadata, c.typeName, qualify)
		if a.hasIndexer {
			c.indexerTypeName = rewrite(a.indexerTypeName)
		}
		c.parameters = make([]*BoundAttributeParameterDescriptor, 0, len(a.parameters))
		for _, p := range a.parameters {
			pc := *p
			pc.typeName = rewrite(p.typeName)
			pc.owner = &c
			c.parameters = append(c.parameters, &pc)
		}
		c.owner = &out
		out.boundAttributes = append(out.boundAttributes, &c)
	}
	return &out
}

// retypeMetadata copies m, recomputing MetaGlobalTypeName for typeName.
func retypeMetadata(m map[string]string, typeName string, qualify func(string) string) map[string]string {
	out := cloneMetadata(m)
	if _, ok := m[MetaGlobalTypeName]; ok && qualify != nil {
		out[MetaGlobalTypeName] = qualify(typeName)
	}
	return out
}

// retype replaces the leading type name of a default display name.
func retype(display, from, to string) string {
	if from == to {
		return display
	}
	if rest, ok := strings.CutPrefix(display, from+" "); ok {
		return to + " " + rest
	}
	return display
}
