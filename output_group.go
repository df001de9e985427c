package ccproto

import (
	"encoding/json"
)

// Well-known output group names.
const (
	OutputGroupDefault = "default"
	OutputGroupHidden  = "_hidden_top_level_INTERNAL_"
)

// OutputGroupSet maps output group names to artifact sets. Group names keep
// the order in which they were first seen. An OutputGroupSet is never
// modified after it is created.
type OutputGroupSet struct {
	names  []string
	groups map[string]*ArtifactSet
}

// EmptyOutputGroups is the shared empty output group set.
var EmptyOutputGroups = &OutputGroupSet{
	groups: make(map[string]*ArtifactSet),
}

// OutputGroup is a single named output group, used to build output group
// sets and to encode them.
type OutputGroup struct {
	Name  string
	Files *ArtifactSet
}

// NewOutputGroupSet creates an output group set. Groups that share a name
// are merged.
func NewOutputGroupSet(groups ...*OutputGroup) *OutputGroupSet {
	s := &OutputGroupSet{groups: make(map[string]*ArtifactSet)}
	for _, g := range groups {
		s.add(g.Name, g.Files)
	}
	return s
}

// OutputGroupsOf is a shorthand that creates an output group set from a map
// of group names to artifact lists. Group names are taken in sorted order.
func OutputGroupsOf(m map[string][]string) *OutputGroupSet {
	var groups []*OutputGroup
	for _, name := range sortedKeys(m) {
		groups = append(groups, &OutputGroup{
			Name:  name,
			Files: NewArtifactSet(m[name]...),
		})
	}
	return NewOutputGroupSet(groups...)
}

func (s *OutputGroupSet) add(name string, files *ArtifactSet) {
	cur, ok := s.groups[name]
	if !ok {
		s.names = append(s.names, name)
		if files == nil {
			files = EmptyArtifacts
		}
		s.groups[name] = files
		return
	}
	s.groups[name] = cur.Union(files)
}

// Len returns the number of groups.
func (s *OutputGroupSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the group names in first-seen order.
func (s *OutputGroupSet) Names() []string {
	if s.Len() == 0 {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Group returns the artifacts of the named group.
func (s *OutputGroupSet) Group(name string) (*ArtifactSet, bool) {
	if s == nil {
		return nil, false
	}
	g, ok := s.groups[name]
	return g, ok
}

// Merge returns a set that has the groups of both s and other. Artifacts of
// groups with the same name are unioned. Merging is idempotent: merging the
// same set twice yields the same groups as merging it once.
func (s *OutputGroupSet) Merge(other *OutputGroupSet) *OutputGroupSet {
	if other.Len() == 0 {
		if s == nil {
			return EmptyOutputGroups
		}
		return s
	}

	ret := &OutputGroupSet{groups: make(map[string]*ArtifactSet)}
	if s != nil {
		for _, name := range s.names {
			ret.add(name, s.groups[name])
		}
	}
	for _, name := range other.names {
		ret.add(name, other.groups[name])
	}
	return ret
}

// MarshalJSON encodes the set as an ordered list of groups.
func (s *OutputGroupSet) MarshalJSON() ([]byte, error) {
	list := []*OutputGroup{}
	if s != nil {
		for _, name := range s.names {
			list = append(list, &OutputGroup{
				Name:  name,
				Files: s.groups[name],
			})
		}
	}
	return json.Marshal(list)
}
