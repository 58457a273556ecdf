package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"studio/internal/domain"
	"studio/internal/prompt"
)

// GenerateStructured issues a single text-mode request constrained by a
// response schema and decodes the JSON reply into out. A reply that cannot
// be decoded maps to domain.ErrSchemaParse.
func (g *Gateway) GenerateStructured(ctx context.Context, desc prompt.Descriptor, schema *genai.Schema, out any) error {
	contents, err := buildContents(desc)
	if err != nil {
		return err
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	resp, err := g.client.GenerateContent(ctx, g.cfg.TextModel, contents, config)
	if err != nil {
		return err
	}
	raw := stripFences(responseText(resp))
	if raw == "" {
		return domain.ErrSchemaParse
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSchemaParse, err)
	}
	return nil
}

// GenerateCarouselPlan runs the carousel planning request and validates the
// decoded plan has at least one slide.
func (g *Gateway) GenerateCarouselPlan(ctx context.Context, desc prompt.Descriptor, slideCount int) (*domain.CarouselPlan, error) {
	var plan domain.CarouselPlan
	if err := g.GenerateStructured(ctx, desc, carouselPlanSchema(slideCount), &plan); err != nil {
		return nil, err
	}
	if len(plan.Slides) == 0 {
		return nil, domain.ErrSchemaParse
	}
	// Slides are numbered from 1; the index surfaces in filenames and labels.
	for i := range plan.Slides {
		plan.Slides[i].Index = i + 1
	}
	return &plan, nil
}

// GenerateAdCopySuggestions runs the ad copy request and decodes the three
// suggestion lists.
func (g *Gateway) GenerateAdCopySuggestions(ctx context.Context, desc prompt.Descriptor) (*domain.AdCopySuggestions, error) {
	var out domain.AdCopySuggestions
	if err := g.GenerateStructured(ctx, desc, adCopySchema(), &out); err != nil {
		return nil, err
	}
	if len(out.Headlines) == 0 && len(out.Descriptions) == 0 && len(out.CTAs) == 0 {
		return nil, domain.ErrSchemaParse
	}
	return &out, nil
}

// stripFences removes a wrapping markdown code fence when the model adds
// one despite the JSON response mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
