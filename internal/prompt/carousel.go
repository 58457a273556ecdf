package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// CarouselPlan builds the structured request that produces the slide plan
// and caption for a carousel post. All generated text must be written in
// the user-selected language; the product images ground the visuals.
func CarouselPlan(products []domain.ImageData, opts domain.CarouselOptions, slideCount int) (Descriptor, error) {
	if len(products) == 0 {
		return Descriptor{}, domain.NewPrecondition("product_images", "at least one product image is required")
	}
	if slideCount < 1 {
		return Descriptor{}, domain.NewPrecondition("slide_count", "slide count must be at least 1")
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, `You are a senior social media strategist. Based on the following product information and provided product images, create a compelling social media carousel post.

**Product Information:**
- Product Name: %s
- Key Benefits/Features: %s
- Target Audience: %s
- Platform: %s
- Language: %s
- Number of Slides: %d

**Your Task:**
1.  **Develop a content strategy** for a %d-slide carousel. Each slide should have a clear purpose (e.g., hook, feature highlight, benefit, social proof, call to action).
2.  **For each slide, provide:**
    - `+"`visual_concept`"+`: A brief description of the visual idea for the slide.
    - `+"`headline_in_image`"+`: The main text to be displayed prominently on the slide's image. Keep it short and impactful.
    - `+"`supporting_text_in_image`"+`: Optional smaller text for more detail.
    - `+"`image_prompt`"+`: A detailed, descriptive prompt for an AI image generator to create the visual. This prompt should incorporate the product from the user's images into the described scene.
3.  **Write a `+"`carousel_caption`"+`:** This is the main text that goes with the social media post. It should be engaging, use emojis, include relevant hashtags, and have a clear call to action.

**Important:** Generate all text content in **%s**. The output MUST be a valid JSON object matching the provided schema.
`, opts.ProductName, opts.Benefits, opts.Audience, opts.Platform, opts.Language, slideCount, slideCount, opts.Language)

	return Descriptor{
		Instruction:  sb.String(),
		Images:       products,
		Modalities:   []string{ModalityText},
		VariantCount: 1,
	}, nil
}

// CarouselSlideImage builds the per-slide image request. It is the single
// instruction path for both the initial batch generation and a later
// per-slide regeneration, so the two can never drift apart. The slide's
// headline and supporting text are embedded verbatim with strict rendering
// rules; a logo, when requested, is attached as the final image.
func CarouselSlideImage(products []domain.ImageData, opts domain.CarouselOptions, slide domain.CarouselSlide, logo *domain.ImageData) (Descriptor, error) {
	if len(products) == 0 {
		return Descriptor{}, domain.NewPrecondition("product_images", "at least one product image is required")
	}

	hasLogo := opts.AddLogo && logo != nil && !logo.IsZero()
	logoClause := "No logo was provided."
	if hasLogo {
		logoClause = "A logo is provided as the final image input. You MUST place this logo tastefully on the generated image, typically in a corner (e.g., top-right or bottom-right). Ensure it is legible, not too large, and does not obstruct key elements."
	}

	instruction := fmt.Sprintf(`
You are a professional social media graphic designer AI. Your task is to create a visually stunning and cohesive image for a product carousel slide.

**-- PRIMARY INSTRUCTION --**
Your goal is to visually represent the following concept, featuring the user's product(s).

**-- VISUAL CONCEPT --**
%s

**-- TEXT TO RENDER ON THE IMAGE --**
- Headline: "%s"
- Supporting Text: "%s"

**-- CRUCIAL RULES FOR TEXT RENDERING --**
1.  **ABSOLUTE ACCURACY:** You MUST render the text EXACTLY as provided above. DO NOT misspell, rephrase, add, or omit any words. The text must be rendered in the specified language (%s). This is the most important rule.
2.  **TEXT HIERARCHY:** The "Headline" must be visually more prominent than the "Supporting Text".
3.  **LEGIBILITY IS KEY:** The text must be easily readable. Choose a clear font and ensure high contrast between the text and the background. Do not place text over busy or distracting parts of the image.
4.  **AESTHETIC INTEGRATION:** The text should feel like a natural part of the design, not an afterthought. The placement, font, and style should match the overall visual concept.
5.  **COMPLETENESS:** Both the Headline and Supporting Text MUST appear on the final image, unless a field is an empty string (""). If a field is empty, do not render any text for it.

**-- LOGO INSTRUCTIONS --**
%s

Follow these instructions meticulously to create a perfect, professional-grade carousel slide.
`, slide.ImagePrompt, slide.HeadlineInImage, slide.SupportingTextInImage, opts.Language, logoClause)

	images := append([]domain.ImageData{}, products...)
	if hasLogo {
		images = append(images, *logo)
	}
	return imageDescriptor(instruction, 1, images...), nil
}
