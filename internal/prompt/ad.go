package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// AdImage builds the ad poster request: headline/description/CTA are
// embedded verbatim, with strict rendering rules, so the model reproduces
// them exactly. A style reference image, when supplied, follows the product
// image.
func AdImage(product domain.ImageData, adCopy domain.AdCopy, reference *domain.ImageData) (Descriptor, error) {
	if strings.TrimSpace(adCopy.Headline) == "" {
		return Descriptor{}, domain.NewPrecondition("headline", "a headline is required")
	}

	sb := &strings.Builder{}
	sb.WriteString(`You are a professional advertising graphic designer AI. Your task is to create a visually stunning ad poster by integrating text onto a product image.

**-- PRIMARY INSTRUCTION --**
Your goal is to creatively and legibly place the provided ad copy onto the user's product image.

**-- TEXT TO RENDER ON THE IMAGE --**
`)
	fmt.Fprintf(sb, "- Headline: \"%s\"\n", adCopy.Headline)
	if adCopy.Description != "" {
		fmt.Fprintf(sb, "- Description: \"%s\"\n", adCopy.Description)
	}
	if adCopy.CTA != "" {
		fmt.Fprintf(sb, "- Call to Action: \"%s\"\n", adCopy.CTA)
	}
	sb.WriteString(`
**-- CRUCIAL RULES FOR TEXT RENDERING --**
1.  **ABSOLUTE ACCURACY:** You MUST render the text EXACTLY as provided above. DO NOT misspell, rephrase, add, or omit any words. This is the most important rule.
2.  **TEXT HIERARCHY:** The "Headline" must be the most prominent text. The "Description" should be less prominent, and the "Call to Action" should be clear and distinct.
3.  **LEGIBILITY IS KEY:** The text must be easily readable. Choose a clear font and ensure high contrast between the text and the background. Do not place text over busy or distracting parts of the image.
4.  **AESTHETIC INTEGRATION:** The text should feel like a natural part of the design, not an afterthought. The placement, font, and style should match the overall visual concept of the product and any style reference provided.
5.  **COMPLETENESS:** All provided text fields (Headline, Description, CTA) MUST appear on the final image, unless the field is an empty string.
`)

	images := []domain.ImageData{product}
	if reference != nil && !reference.IsZero() {
		sb.WriteString("\n**-- STYLE REFERENCE --**\nA style reference image is provided. Analyze its typography, color palette, and overall mood. Apply a similar design aesthetic to the ad you are creating. Do not copy the content, only the style.")
		images = append(images, *reference)
	}
	if extra := strings.TrimSpace(adCopy.Instructions); extra != "" {
		fmt.Fprintf(sb, "\n**-- ADDITIONAL INSTRUCTIONS --**\nFollow these specific creative instructions carefully: %s", extra)
	}

	return imageDescriptor(sb.String(), DefaultVariantCount, images...), nil
}

// AdCopySuggestions builds the structured text request proposing three
// headlines, descriptions and calls to action for the product. Output
// language follows the user-selected locale.
func AdCopySuggestions(productName, keywords, language string) Descriptor {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, `You are an expert marketing copywriter. Generate ad copy suggestions for a product.
Product Name: %s
Keywords: %s

Generate 3 suggestions for each of the following fields:
- headlines: Short, catchy, and attention-grabbing.
- descriptions: Slightly longer, highlighting a key benefit.
- ctas (Calls to Action): Clear and direct, encouraging a specific action.

`, productName, keywords)
	if language != "" {
		fmt.Fprintf(sb, "Write all suggestions in %s.\n", language)
	}
	sb.WriteString("The output must be a valid JSON object matching the provided schema. Do not include any other text or formatting.\n")
	return Descriptor{
		Instruction:  sb.String(),
		Modalities:   []string{ModalityText},
		VariantCount: 1,
	}
}
