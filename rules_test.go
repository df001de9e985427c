package ccproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryTargetSharesFiles(t *testing.T) {
	t.Parallel()

	lib, err := newLibraryTarget(&LibraryRule{
		Name:  "lib",
		Files: []string{"a.o", "a.h"},
	})
	require.NoError(t, err)

	files, ok := Lookup[*FilesToBuild](lib, KindFilesToBuild)
	require.True(t, ok)
	assert.Same(t, lib.FilesToBuild(), files.Files)

	got, err := CcProtoLibrary.Compose(NewRuleContext(
		"lib_cc_proto", map[string][]Target{"deps": {lib}},
	))
	require.NoError(t, err)
	assert.Same(t, lib.FilesToBuild(), got.FilesToBuild())
}

func TestLibraryTargetNoFiles(t *testing.T) {
	t.Parallel()

	lib, err := newLibraryTarget(&LibraryRule{Name: "lib"})
	require.NoError(t, err)
	assert.False(t, lib.Providers().Has(KindFilesToBuild))
	assert.Equal(t, 0, lib.FilesToBuild().Len())
}
