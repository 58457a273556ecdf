package gateway

import "google.golang.org/genai"

// carouselPlanSchema constrains the carousel planning response: an ordered
// slide array plus the post caption. slideCount bounds the array so the
// model cannot pad or truncate the plan.
func carouselPlanSchema(slideCount int) *genai.Schema {
	n := int64(slideCount)
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"slides": {
				Type:     genai.TypeArray,
				MinItems: &n,
				MaxItems: &n,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"index":                    {Type: genai.TypeInteger},
						"visual_concept":           {Type: genai.TypeString},
						"headline_in_image":        {Type: genai.TypeString},
						"supporting_text_in_image": {Type: genai.TypeString},
						"image_prompt":             {Type: genai.TypeString},
					},
					Required: []string{"visual_concept", "headline_in_image", "image_prompt"},
				},
			},
			"carousel_caption": {Type: genai.TypeString},
		},
		Required: []string{"slides", "carousel_caption"},
	}
}

// adCopySchema constrains the ad copy response to the three suggestion
// lists.
func adCopySchema() *genai.Schema {
	stringList := func() *genai.Schema {
		return &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headlines":    stringList(),
			"descriptions": stringList(),
			"ctas":         stringList(),
		},
		Required: []string{"headlines", "descriptions", "ctas"},
	}
}
