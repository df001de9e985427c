package ccproto

import (
	"path"
	"strings"

	"shanhu.io/misc/errcode"
)

// PathFragment is an immutable relative path. It is a symbolic value and
// never refers to an entry on a filesystem.
type PathFragment struct {
	segs []string
}

// ParsePath parses a slash separated relative path. The path is cleaned;
// absolute paths, empty paths and paths that escape their root are
// rejected.
func ParsePath(s string) (PathFragment, error) {
	if s == "" {
		return PathFragment{}, errcode.InvalidArgf("empty path")
	}
	if path.IsAbs(s) {
		return PathFragment{}, errcode.InvalidArgf("%q is absolute", s)
	}
	p := path.Clean(s)
	if p == "." {
		return PathFragment{}, errcode.InvalidArgf("%q is empty", s)
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return PathFragment{}, errcode.InvalidArgf("%q escapes its root", s)
	}
	return PathFragment{segs: strings.Split(p, "/")}, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(s string) PathFragment {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the slash separated form of the path.
func (p PathFragment) String() string { return strings.Join(p.segs, "/") }

// IsEmpty tells if the path has no segments. Only the zero value is empty.
func (p PathFragment) IsEmpty() bool { return len(p.segs) == 0 }

// Segments returns a copy of the path segments.
func (p PathFragment) Segments() []string {
	return append([]string(nil), p.segs...)
}

// BaseName returns the last segment.
func (p PathFragment) BaseName() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[len(p.segs)-1]
}

// Dir returns the path without its last segment.
func (p PathFragment) Dir() PathFragment {
	if len(p.segs) <= 1 {
		return PathFragment{}
	}
	return PathFragment{segs: p.segs[:len(p.segs)-1]}
}

// ReplaceName returns the path with its last segment replaced by name.
func (p PathFragment) ReplaceName(name string) PathFragment {
	segs := make([]string, 0, len(p.segs)+1)
	if len(p.segs) > 0 {
		segs = append(segs, p.segs[:len(p.segs)-1]...)
	}
	segs = append(segs, name)
	return PathFragment{segs: segs}
}

// Relative returns other joined under p.
func (p PathFragment) Relative(other PathFragment) PathFragment {
	segs := make([]string, 0, len(p.segs)+len(other.segs))
	segs = append(segs, p.segs...)
	segs = append(segs, other.segs...)
	return PathFragment{segs: segs}
}

// Equal tells if two paths have the same segments.
func (p PathFragment) Equal(other PathFragment) bool {
	if len(p.segs) != len(other.segs) {
		return false
	}
	for i, s := range p.segs {
		if other.segs[i] != s {
			return false
		}
	}
	return true
}

// MarshalText encodes the path in its slash separated form.
func (p PathFragment) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a slash separated path.
func (p *PathFragment) UnmarshalText(bs []byte) error {
	parsed, err := ParsePath(string(bs))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
