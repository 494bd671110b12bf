package categorizer

import (
	"context"

	"tasktagger/internal/models"
)

// CategorizationRequest holds the text to classify
type CategorizationRequest struct {
	Text string
}

// CategorizationResult holds the assigned tags and priority
type CategorizationResult struct {
	Tags     []models.Tag
	Priority models.Priority
}

// ContentCategorizer categorizes content
type ContentCategorizer interface {
	Categorize(ctx context.Context, req CategorizationRequest) (CategorizationResult, error)
}
