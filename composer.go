// Copyright (C) 2022  Shanhu Tech Inc.
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License
// for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ccproto

import (
	"shanhu.io/misc/errcode"
)

// Composer builds a configured target that passes through selected
// providers of its single dependency.
type Composer struct {
	// Attr is the attribute that holds the dependency.
	Attr string

	// Forward lists the kinds to forward from the dependency, in order.
	// Kinds the dependency does not have are skipped, and so are kinds the
	// composer attaches itself (runfiles, and the API surface when API is
	// set) and kinds listed more than once.
	Forward []Kind

	// API is attached to every composed target.
	API *APISurface
}

// CcProtoLibrary composes cc_proto_library targets.
var CcProtoLibrary = &Composer{
	Attr: "deps",
	Forward: []Kind{
		KindLinkParams,
		KindNativeLibraries,
		KindExecutionDynamicLibraries,
		KindSpecificLinkParams,
		KindProtoHeaders,
	},
	API: &APISurface{Name: "cc"},
}

// Compose analyzes the target of ctx. It returns a *RuleError of kind
// ErrWrongDependencyCount when the dependency attribute does not hold
// exactly one target, and of kind ErrPreconditionViolation when the
// dependency has no FilesToBuild provider. On error, nothing is built.
func (c *Composer) Compose(ctx RuleContext) (*ConfiguredTarget, error) {
	label := ctx.Label()
	deps := ctx.Prerequisites(c.Attr)
	if len(deps) != 1 {
		return nil, attrError(label, c.Attr, errcode.InvalidArgf(
			"%q attribute must contain exactly one label, got %d; "+
				"multiple deps make dependency bloat more likely "+
				"and make unused deps harder to remove",
			c.Attr, len(deps),
		))
	}
	dep := deps[0]

	files, ok := Lookup[*FilesToBuild](dep, KindFilesToBuild)
	if !ok {
		return nil, preconditionf(
			label, "dependency in %q has no files to build", c.Attr,
		)
	}

	b := newTargetBuilder(label).
		withFiles(files.Files).
		withProvider(EmptyRunfiles)

	own := map[Kind]bool{KindRunfiles: true}
	if c.API != nil {
		own[KindAPISurface] = true
	}
	for _, k := range c.Forward {
		if own[k] {
			continue
		}
		own[k] = true
		if p, ok := Get(dep, k); ok {
			b = b.withProvider(p)
		}
	}
	if c.API != nil {
		b = b.withProvider(c.API)
	}
	if groups, ok := Lookup[*OutputGroups](dep, KindOutputGroups); ok {
		b = b.withOutputGroups(groups.Groups)
	}

	return b.build()
}
