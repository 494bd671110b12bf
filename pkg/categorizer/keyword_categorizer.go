package categorizer

import (
	"context"
	"strings"

	"tasktagger/internal/models"
)

// KeywordCategorizer implements ContentCategorizer
// using plain substring checks over the lowercased text.
// Matching has no word boundaries: "uni" matches inside "unicorn".
type KeywordCategorizer struct {
	rules *RuleSet
}

// NewKeywordCategorizer creates a categorizer over rs, or the default rule set if rs is nil.
func NewKeywordCategorizer(rs *RuleSet) *KeywordCategorizer {
	if rs == nil {
		rs = DefaultRuleSet()
	}
	return &KeywordCategorizer{rules: rs}
}

// Categorize never fails; every input, including "", yields a result.
func (c *KeywordCategorizer) Categorize(_ context.Context, req CategorizationRequest) (CategorizationResult, error) {
	return c.classify(req.Text), nil
}

func (c *KeywordCategorizer) classify(text string) CategorizationResult {
	txt := lower(text)

	var tags []models.Tag
	for _, r := range c.rules.rules {
		if containsAny(txt, r.Keywords) {
			tags = append(tags, r.Tag)
		}
	}
	if len(tags) == 0 {
		tags = []models.Tag{c.rules.fallback}
	}

	priority := c.rules.defaultPriority
	if containsAny(txt, c.rules.urgentTriggers) {
		priority = c.rules.urgentPriority
	}

	return CategorizationResult{Tags: tags, Priority: priority}
}

// Categorize classifies text with the default rule set.
func Categorize(text string) ([]models.Tag, models.Priority) {
	res := NewKeywordCategorizer(nil).classify(text)
	return res.Tags, res.Priority
}

// dottedCapitalI lowers to "i" plus U+0307 under full Unicode case mapping,
// not to a bare "i" as unicode.ToLower gives; "İNVOICE" must not match "invoice".
var dottedCapitalI = strings.NewReplacer("\u0130", "i\u0307")

func lower(s string) string {
	return strings.ToLower(dottedCapitalI.Replace(s))
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
