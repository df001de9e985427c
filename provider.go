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

// Provider is an immutable piece of information that a configured target
// exposes to the targets that depend on it. Providers are shared by
// reference between targets and must never be modified after they are
// created.
type Provider interface {
	Kind() Kind
}

// FilesToBuild carries the artifacts that a target builds. It is the
// mandatory provider of a proto library's dependency.
type FilesToBuild struct {
	Files *ArtifactSet
}

// Kind returns KindFilesToBuild.
func (*FilesToBuild) Kind() Kind { return KindFilesToBuild }

// LinkParams are the parameters for linking a native library into a binary.
type LinkParams struct {
	StaticLibraries  []string `json:",omitempty"`
	DynamicLibraries []string `json:",omitempty"`
	LinkOpts         []string `json:",omitempty"`
	LinkStamps       []string `json:",omitempty"`
}

// Kind returns KindLinkParams.
func (*LinkParams) Kind() Kind { return KindLinkParams }

// NativeLibraries is the transitive set of native libraries.
type NativeLibraries struct {
	Libraries []string `json:",omitempty"`
}

// Kind returns KindNativeLibraries.
func (*NativeLibraries) Kind() Kind { return KindNativeLibraries }

// ExecutionDynamicLibraries are the dynamic libraries a target needs at
// execution time.
type ExecutionDynamicLibraries struct {
	Libraries []string `json:",omitempty"`
}

// Kind returns KindExecutionDynamicLibraries.
func (*ExecutionDynamicLibraries) Kind() Kind {
	return KindExecutionDynamicLibraries
}

// SpecificLinkParams are link parameters that only apply when linking with
// a specific toolchain mode.
type SpecificLinkParams struct {
	Mode   string   `json:",omitempty"`
	Params []string `json:",omitempty"`
}

// Kind returns KindSpecificLinkParams.
func (*SpecificLinkParams) Kind() Kind { return KindSpecificLinkParams }

// ProtoHeaders are the headers generated from proto sources.
type ProtoHeaders struct {
	Headers           []string `json:",omitempty"`
	TransitiveHeaders []string `json:",omitempty"`
}

// Kind returns KindProtoHeaders.
func (*ProtoHeaders) Kind() Kind { return KindProtoHeaders }

// OutputGroups carries the named output groups of a target.
type OutputGroups struct {
	Groups *OutputGroupSet
}

// Kind returns KindOutputGroups.
func (*OutputGroups) Kind() Kind { return KindOutputGroups }

// Runfiles are the files a target's runnable output needs at execution
// time. Default are the target's own runfiles and Data are the data
// runfiles collected from its dependencies.
type Runfiles struct {
	Default *ArtifactSet
	Data    *ArtifactSet
}

// Kind returns KindRunfiles.
func (*Runfiles) Kind() Kind { return KindRunfiles }

// EmptyRunfiles has no runfiles at all.
var EmptyRunfiles = &Runfiles{
	Default: EmptyArtifacts,
	Data:    EmptyArtifacts,
}

// APISurface marks a target as exposing a named API for introspection
// tooling.
type APISurface struct {
	Name string
}

// Kind returns KindAPISurface.
func (*APISurface) Kind() Kind { return KindAPISurface }
