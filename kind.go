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

//go:generate stringer -type=Kind -output=kind_string.go

// Kind identifies a capability a configured target may expose. The set of
// kinds is closed; to add one, append a constant before kindEnd, give it a
// Provider type in provider.go and regenerate kind_string.go.
type Kind int

const (
	_ Kind = iota // zero value is an invalid kind

	KindFilesToBuild
	KindLinkParams
	KindNativeLibraries
	KindExecutionDynamicLibraries
	KindSpecificLinkParams
	KindProtoHeaders
	KindOutputGroups
	KindRunfiles
	KindAPISurface

	kindEnd
)

// Valid tells if k is one of the known capability kinds.
func (k Kind) Valid() bool { return k > 0 && k < kindEnd }

// AllKinds returns all known kinds, in declaration order.
func AllKinds() []Kind {
	var ks []Kind
	for k := Kind(1); k < kindEnd; k++ {
		ks = append(ks, k)
	}
	return ks
}

// MarshalText encodes the kind with its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
