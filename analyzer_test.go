package ccproto

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBuildFile = `
cc_library {
    "Name": "addressbook",
    "Files": ["addressbook.pb.o", "addressbook.pb.h"],
    "LinkParams": {"StaticLibraries": ["libaddressbook.a"]},
    "ProtoHeaders": {"Headers": ["addressbook.pb.h"]},
    "OutputGroups": {"default": ["a.so"]},
}

cc_library {
    "Name": "nofiles",
    "NativeLibraries": ["libnative.so"],
}

cc_proto_library {
    "Name": "addressbook_cc_proto",
    "Deps": ["addressbook"],
    "Srcs": ["proto/addressbook.pb.cc"],
}

cc_proto_library {
    "Name": "two_deps",
    "Deps": ["addressbook", "nofiles"],
}

cc_proto_library {
    "Name": "missing_files",
    "Deps": ["nofiles"],
}
`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	f := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(f, []byte(content), 0600))
	return f
}

func loadTestGraph(t *testing.T) *Graph {
	t.Helper()

	g, errs := LoadGraph(writeTestFile(t, BuildFileName, testBuildFile))
	require.Nil(t, errs)
	return g
}

func TestLoadGraph(t *testing.T) {
	t.Parallel()

	g := loadTestGraph(t)
	assert.Equal(
		t,
		[]string{"addressbook_cc_proto", "two_deps", "missing_files"},
		g.ProtoLibraries(),
	)

	lib, ok := g.Library("addressbook")
	require.True(t, ok)
	assert.Equal(
		t, []string{"addressbook.pb.o", "addressbook.pb.h"},
		lib.FilesToBuild().List(),
	)
	assert.True(t, lib.Providers().Has(KindFilesToBuild))
	assert.True(t, lib.Providers().Has(KindOutputGroups))

	lib, ok = g.Library("nofiles")
	require.True(t, ok)
	assert.False(t, lib.Providers().Has(KindFilesToBuild))
}

func TestLoadGraphErrors(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name, content string
	}{
		{"unresolved", `cc_proto_library { "Name": "p", "Deps": ["x"] }`},
		{"redeclared", `
cc_library { "Name": "a", "Files": [] }
cc_library { "Name": "a", "Files": [] }
`},
		{"no name", `cc_library { "Files": [] }`},
		{"unknown type", `java_library { "Name": "j" }`},
		{"proto dep", `
cc_library { "Name": "a", "Files": [] }
cc_proto_library { "Name": "p", "Deps": ["a"] }
cc_proto_library { "Name": "q", "Deps": ["p"] }
`},
		{"bad src", `
cc_library { "Name": "a", "Files": [] }
cc_proto_library { "Name": "p", "Deps": ["a"], "Srcs": ["/abs.cc"] }
`},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			f := writeTestFile(t, BuildFileName, test.content)
			g, errs := LoadGraph(f)
			assert.Nil(t, g)
			assert.NotEmpty(t, errs)
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	g := loadTestGraph(t)
	a := NewAnalyzer("myproduct", 2)
	res, err := a.Analyze(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, res.Targets, 3)
	assert.Equal(t, "myproduct", res.Product)

	ok := res.Targets[0]
	assert.Equal(t, "addressbook_cc_proto", ok.Label)
	assert.Equal(t, StatusComposed, ok.Status)
	require.NotNil(t, ok.Target)
	assert.NotEmpty(t, ok.Digest)
	assert.Nil(t, ok.Err)

	lib, _ := g.Library("addressbook")
	assert.Same(t, lib.FilesToBuild(), ok.Target.FilesToBuild())
	link, _ := Get(lib, KindLinkParams)
	got, _ := Get(ok.Target, KindLinkParams)
	assert.Same(t, link, got)
	def, found := ok.Target.OutputGroups().Group("default")
	require.True(t, found)
	assert.Equal(t, []string{"a.so"}, def.List())

	require.Len(t, ok.Includes, 1)
	inc := ok.Includes[0]
	assert.Equal(t, "proto/addressbook.pb.cc", inc.Src.String())
	assert.Equal(
		t, "proto/addressbook.pb.cc.includes", inc.RootRelative.String(),
	)
	assert.Equal(
		t,
		"myproduct-out/_grepped_includes/proto/addressbook.pb.cc.includes",
		inc.ExecRootRelative.String(),
	)

	two := res.Targets[1]
	assert.Equal(t, StatusRejected, two.Status)
	assert.Nil(t, two.Target)
	assert.True(t, errors.Is(two.Err, ErrWrongDependencyCount))

	missing := res.Targets[2]
	assert.Equal(t, StatusRejected, missing.Status)
	assert.True(t, errors.Is(missing.Err, ErrPreconditionViolation))

	rejected := res.Rejected()
	require.Len(t, rejected, 2)
	assert.Equal(t, "two_deps", rejected[0].Label)
}

func TestAnalyzeBadProduct(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer("", 1)
	_, err := a.Analyze(context.Background(), loadTestGraph(t))
	assert.True(t, errors.Is(err, ErrPreconditionViolation))
}

func TestAnalyzeCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnalyzer("p", 1)
	res, err := a.Analyze(ctx, loadTestGraph(t))
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, context.Canceled))
}
