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
	"encoding/json"
)

// Providers is an immutable collection of providers, holding at most one
// provider of each kind.
type Providers struct {
	byKind [kindEnd]Provider
	n      int
}

// NoProviders is the empty provider collection.
var NoProviders = new(Providers)

// NewProviders creates a provider collection. Nil providers, unknown kinds
// and duplicated kinds are precondition violations.
func NewProviders(ps ...Provider) (*Providers, error) {
	ret := new(Providers)
	for _, p := range ps {
		if p == nil {
			return nil, preconditionf("", "nil provider")
		}
		k := p.Kind()
		if !k.Valid() {
			return nil, preconditionf("", "unknown provider kind %s", k)
		}
		if ret.byKind[k] != nil {
			return nil, preconditionf("", "duplicate provider %s", k)
		}
		ret.byKind[k] = p
		ret.n++
	}
	return ret, nil
}

// MustNewProviders is like NewProviders but panics on error.
func MustNewProviders(ps ...Provider) *Providers {
	ret, err := NewProviders(ps...)
	if err != nil {
		panic(err)
	}
	return ret
}

// Get returns the provider of kind k. It never fails; a missing provider is
// reported by the returned bool.
func (ps *Providers) Get(k Kind) (Provider, bool) {
	if ps == nil || !k.Valid() {
		return nil, false
	}
	p := ps.byKind[k]
	return p, p != nil
}

// Has tells if the collection has a provider of kind k.
func (ps *Providers) Has(k Kind) bool {
	_, ok := ps.Get(k)
	return ok
}

// Len returns the number of providers.
func (ps *Providers) Len() int {
	if ps == nil {
		return 0
	}
	return ps.n
}

// Kinds returns the kinds present, in kind order.
func (ps *Providers) Kinds() []Kind {
	if ps == nil {
		return nil
	}
	var ks []Kind
	for k, p := range ps.byKind {
		if p != nil {
			ks = append(ks, Kind(k))
		}
	}
	return ks
}

// MarshalJSON encodes the providers as an object keyed by kind name.
func (ps *Providers) MarshalJSON() ([]byte, error) {
	m := make(map[string]Provider)
	for _, k := range ps.Kinds() {
		m[k.String()] = ps.byKind[k]
	}
	return json.Marshal(m)
}

// Target is anything that exposes providers, typically a configured target
// that is a dependency of the target under analysis.
type Target interface {
	Providers() *Providers
}

// Get returns the provider of kind k on target t.
func Get(t Target, k Kind) (Provider, bool) {
	if t == nil {
		return nil, false
	}
	return t.Providers().Get(k)
}

// Lookup returns the provider of kind k on target t as its concrete type.
// A provider of an unexpected type is reported as missing.
func Lookup[P Provider](t Target, k Kind) (P, bool) {
	var zero P
	p, ok := Get(t, k)
	if !ok {
		return zero, false
	}
	ret, ok := p.(P)
	if !ok {
		return zero, false
	}
	return ret, true
}
