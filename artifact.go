package ccproto

import (
	"encoding/json"
)

// ArtifactSet is an immutable ordered set of artifact names. Duplicates are
// dropped and the first-seen order is kept, so build logs stay reproducible.
type ArtifactSet struct {
	list []string
	m    map[string]bool
}

// EmptyArtifacts is the shared empty artifact set.
var EmptyArtifacts = NewArtifactSet()

// NewArtifactSet creates an artifact set from names, in first-seen order.
func NewArtifactSet(names ...string) *ArtifactSet {
	s := &ArtifactSet{m: make(map[string]bool)}
	s.addAll(names)
	return s
}

func (s *ArtifactSet) addAll(names []string) {
	for _, name := range names {
		if s.m[name] {
			continue
		}
		s.m[name] = true
		s.list = append(s.list, name)
	}
}

// Len returns the number of artifacts in the set.
func (s *ArtifactSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

// Contains tells if name is in the set.
func (s *ArtifactSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	return s.m[name]
}

// List returns a copy of the artifacts in order.
func (s *ArtifactSet) List() []string {
	if s.Len() == 0 {
		return nil
	}
	return append([]string(nil), s.list...)
}

// Union returns a set with the artifacts of s followed by the artifacts of
// other that s does not have. When other adds nothing, s itself is
// returned.
func (s *ArtifactSet) Union(other *ArtifactSet) *ArtifactSet {
	if other.Len() == 0 {
		if s == nil {
			return EmptyArtifacts
		}
		return s
	}
	if s.Len() == 0 {
		return other
	}

	added := false
	for _, name := range other.list {
		if !s.m[name] {
			added = true
			break
		}
	}
	if !added {
		return s
	}

	ret := NewArtifactSet(s.list...)
	ret.addAll(other.list)
	return ret
}

// MarshalJSON encodes the set as an ordered JSON array.
func (s *ArtifactSet) MarshalJSON() ([]byte, error) {
	list := s.List()
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}
