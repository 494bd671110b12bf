package services

import (
	"context"
)

// TaggingService suggests tags for content.
type TaggingService interface {
	SuggestTags(ctx context.Context, text string) ([]string, error)
}

// NewTaggingService exposes the categorization service as a TaggingService.
func NewTaggingService(cs *CategorizationService) TaggingService {
	return &categorizerTaggingService{cs: cs}
}

type categorizerTaggingService struct {
	cs *CategorizationService
}

func (t *categorizerTaggingService) SuggestTags(ctx context.Context, text string) ([]string, error) {
	resp, err := t.cs.Categorize(ctx, text)
	if err != nil {
		return nil, err
	}
	tags := make([]string, len(resp.Tags))
	for i, tag := range resp.Tags {
		tags[i] = string(tag)
	}
	return tags, nil
}
