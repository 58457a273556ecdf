package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

const digitalImagingBasePrompt = `You are a high-end advertising creative director and CGI artist AI. Your task is to create a visually stunning, hyper-realistic, surreal advertising image for the provided product. The final image should be clever and conceptually grounded, suitable for a high-end ad campaign.

**Crucial Rule: The product itself (its shape, label, form) MUST remain realistic and unchanged.** The surrealism comes from creatively manipulating the product's scale and its interaction with the environment.`

// DigitalImaging builds the surreal advertising request around a named or
// custom artistic concept.
func DigitalImaging(product domain.ImageData, opts domain.Customization) Descriptor {
	sb := &strings.Builder{}
	sb.WriteString(digitalImagingBasePrompt)
	fmt.Fprintf(sb, "\n\nThe artistic concept is %q.", resolveTheme(digitalImagingThemeNames, opts.Theme))
	if props := strings.TrimSpace(opts.Props); props != "" {
		fmt.Fprintf(sb, "\nIntegrate the following elements or ideas into the artwork: %s.", props)
	}
	if extra := strings.TrimSpace(opts.Instructions); extra != "" {
		fmt.Fprintf(sb, "\nFollow these specific creative instructions carefully: %s.", extra)
	}
	sb.WriteString("\n\nCreate a masterpiece that is both imaginative and commercially powerful. The lighting, shadows, and textures should be world-class.")
	return imageDescriptor(sb.String(), DefaultVariantCount, product)
}

// DigitalImagingFromConcept builds the request that executes one of the
// previously generated concept sentences.
func DigitalImagingFromConcept(product domain.ImageData, concept string) (Descriptor, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return Descriptor{}, domain.NewPrecondition("concept", "a concept is required")
	}
	instruction := fmt.Sprintf(`You are a high-end advertising creative director and CGI artist AI. Your task is to create a visually stunning, hyper-realistic, surreal advertising image for the provided product based on a specific concept.

**Crucial Rule: The product itself (its shape, label, form) MUST remain realistic and unchanged.** The surrealism comes from its interaction with the environment.

**The Concept to Execute:**
%q

**Instructions:**
- Bring this concept to life with photorealistic detail.
- The lighting, shadows, and textures must be world-class and consistent.
- The final image should be imaginative, commercially powerful, and suitable for a high-end ad campaign.`, concept)
	return imageDescriptor(instruction, DefaultVariantCount, product), nil
}

// DigitalImagingConcepts builds the text request that proposes six surreal
// ad concepts for the product, one per line.
func DigitalImagingConcepts(product domain.ImageData) Descriptor {
	const instruction = `You are a high-end advertising creative director AI, specializing in generating clever CGI concepts for product ads. Analyze the provided product image and generate 6 distinct, imaginative, yet commercially viable concepts for a surreal advertising visual.

**Core Principles for Concepts:**
1.  **Product Integrity:** The product's own form must remain realistic and unchanged.
2.  **Surreal Interaction:** The surrealism should come from the product's interaction with a manipulated environment, scale, or concept.
3.  **Ad-Worthiness:** The concepts must be visually striking and suitable for a magazine or digital ad campaign.
4.  **Clarity:** Each concept should be described in a single, concise sentence.

**Example Concepts for a Perfume Bottle:**
- "A miniature boat sailing on a sea of liquid perfume inside the bottle."
- "The perfume bottle stands tall like a skyscraper in a city of flowers."
- "The product is perfectly balanced on a floating water droplet."

**Your Task:**
Based on the provided product image, generate 6 creative concepts.
`
	return Descriptor{
		Instruction:  instruction,
		Images:       []domain.ImageData{product},
		Modalities:   []string{ModalityText},
		VariantCount: 1,
	}
}
