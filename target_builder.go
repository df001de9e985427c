package ccproto

// targetBuilder accumulates the parts of a configured target. Every method
// returns a new builder and leaves the receiver untouched, so a builder that
// is dropped halfway never affects anything that is shared.
type targetBuilder struct {
	label        string
	filesToBuild *ArtifactSet
	providers    []Provider
	outputGroups *OutputGroupSet
}

func newTargetBuilder(label string) targetBuilder {
	return targetBuilder{
		label:        label,
		filesToBuild: EmptyArtifacts,
		outputGroups: EmptyOutputGroups,
	}
}

func (b targetBuilder) withFiles(files *ArtifactSet) targetBuilder {
	b.filesToBuild = files
	return b
}

func (b targetBuilder) withProvider(p Provider) targetBuilder {
	ps := make([]Provider, len(b.providers), len(b.providers)+1)
	copy(ps, b.providers)
	b.providers = append(ps, p)
	return b
}

func (b targetBuilder) withOutputGroups(groups *OutputGroupSet) targetBuilder {
	b.outputGroups = b.outputGroups.Merge(groups)
	return b
}

func (b targetBuilder) build() (*ConfiguredTarget, error) {
	ps, err := NewProviders(b.providers...)
	if err != nil {
		if re, ok := err.(*RuleError); ok {
			re.Label = b.label
		}
		return nil, err
	}
	return &ConfiguredTarget{
		label:        b.label,
		filesToBuild: b.filesToBuild,
		providers:    ps,
		outputGroups: b.outputGroups,
	}, nil
}
