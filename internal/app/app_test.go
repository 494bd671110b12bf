package app

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktagger/internal/config"
	"tasktagger/internal/models"
)

func TestAppInitialization(t *testing.T) {
	cfg, err := config.LoadConfigFrom(viper.New(), t.TempDir())
	require.NoError(t, err)

	a, err := NewApp(cfg, nil)
	require.NoError(t, err)

	assert.NotNil(t, a.InputProcessor)
	assert.NotNil(t, a.Rules)
	assert.NotNil(t, a.Categorizer)
	require.NotNil(t, a.CategorizationService)
	require.NotNil(t, a.TaggingService)

	resp, err := a.CategorizationService.Categorize(context.Background(), "exam urgent")
	require.NoError(t, err)
	assert.Equal(t, []models.Tag{models.TagUni}, resp.Tags)
	assert.Equal(t, models.PriorityUrgent, resp.Priority)
}

func TestNewApp_NilConfig(t *testing.T) {
	_, err := NewApp(nil, nil)
	assert.Error(t, err)
}
