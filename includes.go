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
	"strings"
	"unicode"
)

// Names of the grepped includes output. Consumers cache by these paths, so
// changing them breaks every existing cache.
const (
	IncludesSuffix     = ".includes"
	GreppedIncludesDir = "_grepped_includes"
)

func checkProductName(product string) error {
	if product == "" {
		return preconditionf("", "empty product name")
	}
	if product == "." || product == ".." || strings.HasPrefix(product, "-") {
		return preconditionf("", "invalid product name %q", product)
	}
	for _, r := range product {
		if r == '/' || r == '\\' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return preconditionf("", "invalid product name %q", product)
		}
	}
	return nil
}

// GreppedIncludes returns the exec-root relative directory that holds the
// grepped includes of a product, "<product>-out/_grepped_includes".
func GreppedIncludes(product string) (PathFragment, error) {
	if err := checkProductName(product); err != nil {
		return PathFragment{}, err
	}
	return PathFragment{
		segs: []string{product + "-out", GreppedIncludesDir},
	}, nil
}

// RootRelativeOutputPath returns the root relative path of the grepped
// includes of source file src: src with IncludesSuffix appended to its base
// name.
func RootRelativeOutputPath(src PathFragment) PathFragment {
	return src.ReplaceName(src.BaseName() + IncludesSuffix)
}

// ExecRootRelativeOutputPath returns the exec-root relative path of the
// grepped includes of source file src for the given product.
func ExecRootRelativeOutputPath(
	src PathFragment, product string,
) (PathFragment, error) {
	dir, err := GreppedIncludes(product)
	if err != nil {
		return PathFragment{}, err
	}
	return dir.Relative(RootRelativeOutputPath(src)), nil
}
