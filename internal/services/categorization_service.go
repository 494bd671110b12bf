package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"tasktagger/internal/models"
	categorizer "tasktagger/pkg/categorizer"
)

// CategorizationService turns categorizer results into API responses.
// It holds no mutable state and is safe for concurrent use.
type CategorizationService struct {
	Categorizer categorizer.ContentCategorizer
}

func NewCategorizationService(cat categorizer.ContentCategorizer) *CategorizationService {
	if cat == nil {
		cat = categorizer.NewKeywordCategorizer(nil)
	}
	return &CategorizationService{Categorizer: cat}
}

func (s *CategorizationService) Categorize(ctx context.Context, text string) (*models.CategorizeResponse, error) {
	res, err := s.Categorizer.Categorize(ctx, categorizer.CategorizationRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("categorize: %w", err)
	}

	log.WithFields(log.Fields{
		"text_len": len(text),
		"tags":     res.Tags,
		"priority": res.Priority,
	}).Debug("Categorized text")

	return &models.CategorizeResponse{
		Tags:     res.Tags,
		Priority: res.Priority,
	}, nil
}

// Health reports the constant service status.
func (s *CategorizationService) Health() models.HealthResponse {
	return models.HealthResponse{Status: models.StatusOK}
}
