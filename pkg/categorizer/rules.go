package categorizer

import (
	"tasktagger/internal/models"
)

// Rule assigns Tag when any of its keywords occurs in the lowercased text.
type Rule struct {
	Tag      models.Tag
	Keywords []string
}

// RuleSet is an immutable keyword table. Accessors return copies so callers
// cannot mutate the table shared by every request.
type RuleSet struct {
	rules           []Rule
	urgentTriggers  []string
	fallback        models.Tag
	defaultPriority models.Priority
	urgentPriority  models.Priority
}

var defaultRuleSet = newRuleSet(
	[]Rule{
		{Tag: models.TagFinance, Keywords: []string{"pay", "invoice", "rent"}},
		{Tag: models.TagUni, Keywords: []string{"study", "exam", "course", "uni"}},
		{Tag: models.TagErrand, Keywords: []string{"buy", "grocer", "shop"}},
	},
	[]string{"urgent", "asap"},
)

// DefaultRuleSet returns the built-in rule table.
func DefaultRuleSet() *RuleSet {
	return defaultRuleSet
}

func newRuleSet(rules []Rule, urgent []string) *RuleSet {
	return &RuleSet{
		rules:           cloneRules(rules),
		urgentTriggers:  append([]string(nil), urgent...),
		fallback:        models.TagMisc,
		defaultPriority: models.PriorityMedium,
		urgentPriority:  models.PriorityUrgent,
	}
}

// Rules returns the tag rules in evaluation order.
func (rs *RuleSet) Rules() []Rule {
	return cloneRules(rs.rules)
}

// UrgentTriggers returns the keywords that raise the priority to URGENT.
func (rs *RuleSet) UrgentTriggers() []string {
	return append([]string(nil), rs.urgentTriggers...)
}

// Fallback is the tag used when no rule matches.
func (rs *RuleSet) Fallback() models.Tag {
	return rs.fallback
}

// DefaultPriority is the priority assigned when no trigger matches.
func (rs *RuleSet) DefaultPriority() models.Priority {
	return rs.defaultPriority
}

func cloneRules(in []Rule) []Rule {
	out := make([]Rule, len(in))
	for i, r := range in {
		out[i] = Rule{Tag: r.Tag, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}
