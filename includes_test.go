package ccproto

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRelativeOutputPath(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		src, want string
	}{
		{"foo/bar.cc", "foo/bar.cc.includes"},
		{"bar.h", "bar.h.includes"},
		{"a/b/c/d.pb.cc", "a/b/c/d.pb.cc.includes"},
	} {
		got := RootRelativeOutputPath(MustParsePath(test.src))
		assert.Equal(t, test.want, got.String(), test.src)
	}
}

func TestExecRootRelativeOutputPath(t *testing.T) {
	t.Parallel()

	got, err := ExecRootRelativeOutputPath(
		MustParsePath("foo/bar.cc"), "myproduct",
	)
	require.NoError(t, err)
	assert.Equal(
		t, "myproduct-out/_grepped_includes/foo/bar.cc.includes",
		got.String(),
	)

	dir, err := GreppedIncludes("bazel")
	require.NoError(t, err)
	assert.Equal(t, "bazel-out/_grepped_includes", dir.String())
}

func TestExecRootRelativeOutputPathBadProduct(t *testing.T) {
	t.Parallel()

	src := MustParsePath("foo/bar.cc")
	for _, product := range []string{"", "a/b", "..", ".", "-x", "my product", "a\tb"} {
		_, err := ExecRootRelativeOutputPath(src, product)
		require.Error(t, err, product)
		assert.True(t, errors.Is(err, ErrPreconditionViolation), product)
	}
}

func TestOutputPathDeterministic(t *testing.T) {
	t.Parallel()

	src := MustParsePath("x/y/z.cc")
	want, err := ExecRootRelativeOutputPath(src, "p")
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]PathFragment, 16)
	errs := make([]error, len(got))
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = ExecRootRelativeOutputPath(src, "p")
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "goroutine %d", i)
	}
	for _, p := range got {
		assert.True(t, want.Equal(p), p.String())
	}

	// Different basenames never collide.
	a := RootRelativeOutputPath(MustParsePath("x/a.cc"))
	b := RootRelativeOutputPath(MustParsePath("x/a.c"))
	assert.False(t, a.Equal(b))
}
