package guide

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"

	"sanctyr/clients"
	"sanctyr/models"
)

// maxQueryLength bounds what gets forwarded to the model.
const maxQueryLength = 2000

// GuideService answers site visitors through the hosted model. The model
// returns markdown; nothing it produces is ever handed to a browser as
// trusted HTML. The answer is rendered server-side and run through a UGC
// sanitization policy first.
type GuideService struct {
	guideClient clients.GuideClient
	sanitizer   *bluemonday.Policy
}

func NewGuideService(guideClient clients.GuideClient) *GuideService {
	return &GuideService{
		guideClient: guideClient,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

func (s *GuideService) Ask(ctx context.Context, query string) (*models.GuideAnswer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if len(query) > maxQueryLength {
		return nil, fmt.Errorf("query too long (max %d characters)", maxQueryLength)
	}

	log.Printf("📋 Forwarding guide query (%d chars)", len(query))

	answer, err := s.guideClient.Ask(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get guide answer: %w", err)
	}

	return &models.GuideAnswer{
		Response: answer,
		HTML:     s.renderSanitizedHTML(answer),
	}, nil
}

func (s *GuideService) renderSanitizedHTML(md string) string {
	mdParser := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML([]byte(md), mdParser, renderer)
	return string(s.sanitizer.SanitizeBytes(rendered))
}
