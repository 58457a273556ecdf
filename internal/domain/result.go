package domain

// GenerationResult is the normalized output of an image operation: every
// discovered image as a data-URL, in request-issue order, plus the first
// text found across variants (empty when none).
type GenerationResult struct {
	ImageURLs []string `json:"image_urls"`
	Text      string   `json:"text,omitempty"`
}

// CarouselSlide is one slide of a generated carousel plan. The text fields
// are produced by a single structured call; GeneratedImageURL is filled in
// (and later replaced on regeneration) independently per slide.
type CarouselSlide struct {
	Index                 int    `json:"index"`
	VisualConcept         string `json:"visual_concept"`
	HeadlineInImage       string `json:"headline_in_image"`
	SupportingTextInImage string `json:"supporting_text_in_image"`
	ImagePrompt           string `json:"image_prompt"`
	GeneratedImageURL     string `json:"generated_image_url,omitempty"`
}

// CarouselPlan is the full structured output of a carousel generation.
type CarouselPlan struct {
	Slides          []CarouselSlide `json:"slides"`
	CarouselCaption string          `json:"carousel_caption"`
}

// AdCopySuggestions holds generated ad copy alternatives, three per field.
type AdCopySuggestions struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	CTAs         []string `json:"ctas"`
}
