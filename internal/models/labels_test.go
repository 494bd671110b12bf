package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority(t *testing.T) {
	ordered := []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	labels := []string{"Low", "Medium", "High", "Urgent"}

	for i, p := range ordered {
		assert.True(t, p.Valid(), "%s should be valid", p)
		assert.Equal(t, i, p.Rank())
		assert.Equal(t, labels[i], p.Label())
	}

	unknown := Priority("CRITICAL")
	assert.False(t, unknown.Valid())
	assert.Equal(t, -1, unknown.Rank())
	assert.Equal(t, "CRITICAL", unknown.Label())
}

func TestTag_Valid(t *testing.T) {
	for _, tag := range AllTags() {
		assert.True(t, tag.Valid(), "%s should be valid", tag)
	}
	assert.False(t, Tag("work").Valid())
	assert.Equal(t, TagMisc, AllTags()[len(AllTags())-1])
}

func TestCategorizeRequest_EmptyVersusMissing(t *testing.T) {
	var withEmpty CategorizeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"text":""}`), &withEmpty))
	require.NotNil(t, withEmpty.Text)
	assert.Equal(t, "", *withEmpty.Text)

	var missing CategorizeRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Nil(t, missing.Text)
}
