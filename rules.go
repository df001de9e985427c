package ccproto

// Rule types in a BUILD.ccproto file.
const (
	ruleLibrary      = "cc_library"
	ruleProtoLibrary = "cc_proto_library"
)

// LibraryRule declares a native library target together with the providers
// it exposes. It stands in for a target that some other rule has already
// analyzed.
type LibraryRule struct {
	Name string

	// Files to build. When nil, the target has no FilesToBuild provider.
	Files []string `json:",omitempty"`

	LinkParams                *LinkParams         `json:",omitempty"`
	NativeLibraries           []string            `json:",omitempty"`
	ExecutionDynamicLibraries []string            `json:",omitempty"`
	SpecificLinkParams        *SpecificLinkParams `json:",omitempty"`
	ProtoHeaders              *ProtoHeaders       `json:",omitempty"`

	// Output groups, keyed by group name.
	OutputGroups map[string][]string `json:",omitempty"`

	Runfiles []string `json:",omitempty"`
}

// ProtoLibraryRule declares a cc_proto_library target.
type ProtoLibraryRule struct {
	Name string

	// Deps must hold exactly one library.
	Deps []string `json:",omitempty"`

	// Source files to report grepped include paths for.
	Srcs []string `json:",omitempty"`
}

// providers returns the providers of the library. files is the library's
// files to build; the FilesToBuild provider shares it.
func (r *LibraryRule) providers(files *ArtifactSet) []Provider {
	var ps []Provider
	if files != nil {
		ps = append(ps, &FilesToBuild{Files: files})
	}
	if r.LinkParams != nil {
		ps = append(ps, r.LinkParams)
	}
	if r.NativeLibraries != nil {
		ps = append(ps, &NativeLibraries{Libraries: r.NativeLibraries})
	}
	if r.ExecutionDynamicLibraries != nil {
		ps = append(ps, &ExecutionDynamicLibraries{
			Libraries: r.ExecutionDynamicLibraries,
		})
	}
	if r.SpecificLinkParams != nil {
		ps = append(ps, r.SpecificLinkParams)
	}
	if r.ProtoHeaders != nil {
		ps = append(ps, r.ProtoHeaders)
	}
	if r.OutputGroups != nil {
		ps = append(ps, &OutputGroups{Groups: OutputGroupsOf(r.OutputGroups)})
	}
	if r.Runfiles != nil {
		ps = append(ps, &Runfiles{
			Default: NewArtifactSet(r.Runfiles...),
			Data:    EmptyArtifacts,
		})
	}
	return ps
}

func newLibraryTarget(r *LibraryRule) (*ConfiguredTarget, error) {
	b := newTargetBuilder(r.Name)
	var files *ArtifactSet
	if r.Files != nil {
		files = NewArtifactSet(r.Files...)
		b = b.withFiles(files)
	}
	for _, p := range r.providers(files) {
		b = b.withProvider(p)
	}
	if r.OutputGroups != nil {
		b = b.withOutputGroups(OutputGroupsOf(r.OutputGroups))
	}
	return b.build()
}
