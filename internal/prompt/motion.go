package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// MotionPrompts builds the text request proposing four animation prompts
// for the image, one per line without numbering, so the caller can split
// them mechanically.
func MotionPrompts(image domain.ImageData, keywords string) Descriptor {
	sb := &strings.Builder{}
	sb.WriteString(`You are a creative director specializing in AI video generation. Analyze the provided image and generate 4 distinct, creative motion prompts. These prompts will be used to animate the static image into a short video clip. Each prompt should be descriptive, focusing on camera movement, subject animation, and mood.
`)
	if kw := strings.TrimSpace(keywords); kw != "" {
		fmt.Fprintf(sb, "\nIncorporate these keywords into your suggestions: %s.\n", kw)
	}
	sb.WriteString(`
**Output format:**
-   Return ONLY the prompts.
-   Each prompt must be on a new line.
-   Do not use any numbering, bullet points, or other formatting.`)

	return Descriptor{
		Instruction:  sb.String(),
		Images:       []domain.ImageData{image},
		Modalities:   []string{ModalityText},
		VariantCount: 1,
	}
}

// MotionSuggestion builds the text request for a single ready-to-use video
// prompt describing a short cinematic animation of the image.
func MotionSuggestion(image domain.ImageData) Descriptor {
	const instruction = "You are a creative director. Analyze the provided image and suggest one compelling, detailed motion prompt for an AI video generator like Veo. The prompt should describe a short, 4-second animation starting from this static image. Focus on subtle, cinematic movements. For example: 'slow zoom into the product, with cherry blossom petals gently falling in the background, warm and dreamy lighting.' Your output should be ONLY the prompt text, without any preamble or quotes."
	return Descriptor{
		Instruction:  instruction,
		Images:       []domain.ImageData{image},
		Modalities:   []string{ModalityText},
		VariantCount: 1,
	}
}
