package categorizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktagger/internal/models"
)

func TestKeywordCategorizer_Categorize(t *testing.T) {
	testCases := []struct {
		name             string
		text             string
		expectedTags     []models.Tag
		expectedPriority models.Priority
	}{
		{"Empty", "", []models.Tag{models.TagMisc}, models.PriorityMedium},
		{"No Keywords", "walk the dog", []models.Tag{models.TagMisc}, models.PriorityMedium},
		{"Finance", "I need to pay my rent", []models.Tag{models.TagFinance}, models.PriorityMedium},
		{"Uni Urgent", "exam urgent", []models.Tag{models.TagUni}, models.PriorityUrgent},
		{"Errand Asap", "buy groceries asap", []models.Tag{models.TagErrand}, models.PriorityUrgent},
		{"All Rules In Order", "shop for the course, then pay invoice", []models.Tag{models.TagFinance, models.TagUni, models.TagErrand}, models.PriorityMedium},
		{"Substring Inside Word", "draw a unicorn", []models.Tag{models.TagUni}, models.PriorityMedium},
		{"Urgent Substring", "ASAPly done", []models.Tag{models.TagMisc}, models.PriorityUrgent},
		{"Upper Case", "PAY INVOICE", []models.Tag{models.TagFinance}, models.PriorityMedium},
		{"Dotted Capital I", "\u0130NVOICE", []models.Tag{models.TagMisc}, models.PriorityMedium},
		{"Dotted Capital I Elsewhere", "PAY \u0130T", []models.Tag{models.TagFinance}, models.PriorityMedium},
		{"Grocer Prefix", "Grocery run", []models.Tag{models.TagErrand}, models.PriorityMedium},
	}

	c := NewKeywordCategorizer(nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := c.Categorize(context.Background(), CategorizationRequest{Text: tc.text})
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTags, res.Tags)
			assert.Equal(t, tc.expectedPriority, res.Priority)
		})
	}
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	upperTags, upperPriority := Categorize("PAY INVOICE")
	lowerTags, lowerPriority := Categorize("pay invoice")

	assert.Equal(t, lowerTags, upperTags)
	assert.Equal(t, lowerPriority, upperPriority)
}

func TestCategorize_NeverProducesLowOrHigh(t *testing.T) {
	inputs := []string{"", "low priority", "high stakes exam", "urgent", "whatever"}
	for _, in := range inputs {
		_, p := Categorize(in)
		assert.NotEqual(t, models.PriorityLow, p, "input %q", in)
		assert.NotEqual(t, models.PriorityHigh, p, "input %q", in)
	}
}

func TestCategorize_NoKeywordsFallsBackToMisc(t *testing.T) {
	// None of these contain a rule keyword or urgent trigger.
	inputs := []string{"hello", "walk the dog", "12345", "ünïcode text", "call mom"}
	for _, in := range inputs {
		tags, p := Categorize(in)
		assert.Equal(t, []models.Tag{models.TagMisc}, tags, "input %q", in)
		assert.Equal(t, models.PriorityMedium, p, "input %q", in)
	}
}

func TestDefaultRuleSet_IsImmutable(t *testing.T) {
	rs := DefaultRuleSet()

	rules := rs.Rules()
	require.Len(t, rules, 3)
	rules[0].Keywords[0] = "mutated"
	rules[0].Tag = models.TagMisc

	triggers := rs.UrgentTriggers()
	triggers[0] = "mutated"

	fresh := DefaultRuleSet().Rules()
	assert.Equal(t, models.TagFinance, fresh[0].Tag)
	assert.Equal(t, []string{"pay", "invoice", "rent"}, fresh[0].Keywords)
	assert.Equal(t, []string{"urgent", "asap"}, DefaultRuleSet().UrgentTriggers())
	assert.Equal(t, models.TagMisc, rs.Fallback())
	assert.Equal(t, models.PriorityMedium, rs.DefaultPriority())

	tags, _ := Categorize("mutated")
	assert.Equal(t, []models.Tag{models.TagMisc}, tags)
}
