package gateway

import (
	"encoding/base64"
	"strings"

	"google.golang.org/genai"

	"studio/internal/domain"
)

// collectResult flattens the variant responses into a single result. Image
// parts become data URLs in variant order; the text is the first non-empty
// text part across all variants, also in variant order.
func collectResult(responses []*genai.GenerateContentResponse) *domain.GenerationResult {
	result := &domain.GenerationResult{}
	for _, resp := range responses {
		if resp == nil {
			continue
		}
		urls, text := extractParts(resp)
		result.ImageURLs = append(result.ImageURLs, urls...)
		if result.Text == "" {
			result.Text = text
		}
	}
	return result
}

// extractParts walks the first candidate's parts and returns the inline
// images as data URLs plus any accumulated text.
func extractParts(resp *genai.GenerateContentResponse) ([]string, string) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ""
	}
	var urls []string
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch {
		case part.InlineData != nil && len(part.InlineData.Data) > 0:
			urls = append(urls, blobDataURL(part.InlineData))
		case part.Text != "":
			text.WriteString(part.Text)
		}
	}
	return urls, strings.TrimSpace(text.String())
}

func blobDataURL(blob *genai.Blob) string {
	mime := blob.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(blob.Data)
}

// responseText concatenates every text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	_, text := extractParts(resp)
	return text
}
