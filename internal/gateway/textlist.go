package gateway

import (
	"context"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"studio/internal/domain"
	"studio/internal/prompt"
)

// GenerateText issues a single text-mode request and returns the trimmed
// reply.
func (g *Gateway) GenerateText(ctx context.Context, desc prompt.Descriptor) (string, error) {
	contents, err := buildContents(desc)
	if err != nil {
		return "", err
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}
	config := &genai.GenerateContentConfig{ResponseModalities: desc.Modalities}
	resp, err := g.client.GenerateContent(ctx, g.cfg.TextModel, contents, config)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

// Leading list markers the model sometimes adds despite being told not to.
var listMarker = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s*`)

// GenerateTextList issues a single text-mode request and splits the reply
// into one entry per non-blank line, with leading numbering or bullet
// markers stripped. An entirely blank reply maps to domain.ErrEmptyList.
func (g *Gateway) GenerateTextList(ctx context.Context, desc prompt.Descriptor) ([]string, error) {
	text, err := g.GenerateText(ctx, desc)
	if err != nil {
		return nil, err
	}
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line != "" {
			items = append(items, line)
		}
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyList
	}
	return items, nil
}
