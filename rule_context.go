package ccproto

// RuleContext is what the graph engine hands to a rule while analyzing a
// target: the target's label and its already analyzed prerequisites.
type RuleContext interface {
	Label() string

	// Prerequisites returns the targets referenced by the attribute.
	Prerequisites(attr string) []Target
}

type ruleContext struct {
	label string
	attrs map[string][]Target
}

// NewRuleContext creates a rule context with the given prerequisites keyed
// by attribute name.
func NewRuleContext(label string, attrs map[string][]Target) RuleContext {
	return &ruleContext{label: label, attrs: attrs}
}

func (c *ruleContext) Label() string { return c.label }

func (c *ruleContext) Prerequisites(attr string) []Target {
	return c.attrs[attr]
}
