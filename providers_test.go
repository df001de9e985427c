package ccproto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviders(t *testing.T) {
	t.Parallel()

	link := &LinkParams{StaticLibraries: []string{"liba.a"}}
	headers := &ProtoHeaders{Headers: []string{"a.pb.h"}}
	ps, err := NewProviders(headers, link)
	require.NoError(t, err)

	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, []Kind{KindLinkParams, KindProtoHeaders}, ps.Kinds())

	got, ok := ps.Get(KindLinkParams)
	require.True(t, ok)
	assert.Same(t, link, got)

	_, ok = ps.Get(KindNativeLibraries)
	assert.False(t, ok)
	assert.False(t, ps.Has(Kind(0)))
}

type rawProvider struct{ kind Kind }

func (p *rawProvider) Kind() Kind { return p.kind }

func TestNewProvidersRejects(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name string
		ps   []Provider
	}{
		{"duplicate", []Provider{&LinkParams{}, &LinkParams{}}},
		{"nil", []Provider{nil}},
		{"zero kind", []Provider{&rawProvider{kind: Kind(0)}}},
		{"kind end", []Provider{&LinkParams{}, &rawProvider{kind: kindEnd}}},
		{"negative kind", []Provider{&rawProvider{kind: Kind(-1)}}},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewProviders(test.ps...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPreconditionViolation))
		})
	}
}

type fakeTarget struct{ ps *Providers }

func (t *fakeTarget) Providers() *Providers { return t.ps }

func TestGetAndLookup(t *testing.T) {
	t.Parallel()

	native := &NativeLibraries{Libraries: []string{"libx.so"}}
	target := &fakeTarget{ps: MustNewProviders(native)}

	p, ok := Get(target, KindNativeLibraries)
	require.True(t, ok)
	assert.Same(t, native, p)

	got, ok := Lookup[*NativeLibraries](target, KindNativeLibraries)
	require.True(t, ok)
	assert.Same(t, native, got)

	_, ok = Lookup[*LinkParams](target, KindNativeLibraries)
	assert.False(t, ok, "wrong concrete type is reported as missing")

	_, ok = Get(nil, KindNativeLibraries)
	assert.False(t, ok)
	_, ok = Get(&fakeTarget{}, KindNativeLibraries)
	assert.False(t, ok)
}
