package ccproto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"shanhu.io/misc/errcode"
)

// ConfiguredTarget is a target analyzed under a build configuration. It is
// created once by a rule and never modified afterwards, so it can be read by
// many goroutines without locking.
type ConfiguredTarget struct {
	label        string
	filesToBuild *ArtifactSet
	providers    *Providers
	outputGroups *OutputGroupSet
}

// Label returns the label of the target.
func (t *ConfiguredTarget) Label() string { return t.label }

// FilesToBuild returns the artifacts the target builds.
func (t *ConfiguredTarget) FilesToBuild() *ArtifactSet { return t.filesToBuild }

// Providers returns the providers of the target.
func (t *ConfiguredTarget) Providers() *Providers { return t.providers }

// OutputGroups returns the output groups of the target.
func (t *ConfiguredTarget) OutputGroups() *OutputGroupSet {
	return t.outputGroups
}

type targetJSON struct {
	Label        string
	FilesToBuild *ArtifactSet
	Providers    *Providers
	OutputGroups *OutputGroupSet
}

// MarshalJSON encodes the target. The encoding is deterministic.
func (t *ConfiguredTarget) MarshalJSON() ([]byte, error) {
	return json.Marshal(&targetJSON{
		Label:        t.label,
		FilesToBuild: t.filesToBuild,
		Providers:    t.providers,
		OutputGroups: t.outputGroups,
	})
}

// Digest returns a digest of the target's content, in the form of
// "sha256:<hex>". Targets with the same content have the same digest.
func (t *ConfiguredTarget) Digest() (string, error) {
	buf := new(bytes.Buffer)
	fmt.Fprintln(buf, t.label)
	bs, err := json.Marshal(t)
	if err != nil {
		return "", errcode.Annotate(err, "json marshal")
	}
	buf.Write(bs)
	sum := sha256.Sum256(buf.Bytes())
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}
