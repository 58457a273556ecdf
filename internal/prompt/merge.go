package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// MergeProducts builds the merge-product request: N product images combined
// into one cohesive scene. In Reference mode the reference image precedes
// the product images, mirroring the order the instruction describes.
func MergeProducts(products []domain.ImageData, method domain.Method, opts domain.Customization, reference *domain.ImageData) (Descriptor, error) {
	if len(products) == 0 {
		return Descriptor{}, domain.NewPrecondition("product_images", "at least one product image is required")
	}

	base := fmt.Sprintf("You are a world-class product photographer AI. Your primary task is to take %d separate, user-submitted product images and masterfully combine them into a single, cohesive, and professional studio photograph. The final image must look like all products were photographed together in the same scene with consistent lighting, shadows, and perspective. Arrange the products in a visually appealing and natural composition.", len(products))

	var instruction string
	var images []domain.ImageData

	switch method {
	case domain.MethodSmart:
		instruction = base + " Analyze the products and create the most compelling and commercially appealing scene for them as a group. Consider ideal lighting, background, and subtle props that enhance their collective value. Generate a creative and beautiful concept automatically."
	case domain.MethodCustomize:
		sb := &strings.Builder{}
		sb.WriteString(base)
		fmt.Fprintf(sb, " Create the scene with a %q theme.", resolveTheme(themeNames, opts.Theme))
		if props := strings.TrimSpace(opts.Props); props != "" {
			fmt.Fprintf(sb, " Incorporate the following props or elements naturally into the scene: %s.", props)
		}
		if extra := strings.TrimSpace(opts.Instructions); extra != "" {
			fmt.Fprintf(sb, " Follow these additional instructions for composition and arrangement carefully: %s.", extra)
		}
		sb.WriteString(" The lighting, composition, and background must all align with the specified theme.")
		instruction = sb.String()
	case domain.MethodReference:
		if reference == nil || reference.IsZero() {
			return Descriptor{}, domain.NewPrecondition("reference_image", "a reference image is required for the reference method")
		}
		sb := &strings.Builder{}
		sb.WriteString(base)
		sb.WriteString(" A reference image is provided. Analyze its style, mood, lighting, composition, and background. Apply a similar high-end, professional aesthetic to the combined product scene. DO NOT include the products from the reference image. The goal is to match the style, not replicate the content.")
		if extra := strings.TrimSpace(opts.Instructions); extra != "" {
			fmt.Fprintf(sb, " Also, follow these additional instructions for composition and arrangement carefully: %s.", extra)
		}
		instruction = sb.String()
		images = append(images, *reference)
	default:
		return Descriptor{}, domain.NewPrecondition("method", fmt.Sprintf("unknown enhancement method %q", string(method)))
	}

	images = append(images, products...)
	return imageDescriptor(instruction, DefaultVariantCount, images...), nil
}

// VirtualTryOn builds the try-on request. When a model image is supplied it
// is placed first so the instruction's "the first image" reads correctly;
// otherwise the instruction describes the model to synthesize and only the
// product images are attached.
func VirtualTryOn(products []domain.ImageData, model *domain.ImageData, spec *domain.ModelSpec) (Descriptor, error) {
	if len(products) == 0 {
		return Descriptor{}, domain.NewPrecondition("product_images", "at least one product image is required")
	}

	const base = "You are a world-class fashion AI assistant. "

	switch {
	case model != nil && !model.IsZero():
		instruction := base + "Take the product(s) from the subsequent images and realistically place them on the model in the first image. Maintain the model's pose and the background. Ensure the fit, lighting, and shadows are natural and photorealistic."
		images := append([]domain.ImageData{*model}, products...)
		return imageDescriptor(instruction, DefaultVariantCount, images...), nil
	case spec != nil:
		instruction := base + fmt.Sprintf("First, generate a photorealistic, full-body image of a model with these characteristics: Gender: %s, Ethnicity: %s, Details: %s. Then, dress the generated model in the product(s) from the subsequent images. The final image should be a high-quality, professional fashion photo.",
			spec.Gender, spec.ResolvedEthnicity(), spec.Details)
		return imageDescriptor(instruction, DefaultVariantCount, products...), nil
	default:
		return Descriptor{}, domain.NewPrecondition("model", "either a model image or generation parameters must be provided")
	}
}

// LifestylePhotoshoot builds the lifestyle request: the product image comes
// first, the model image (when supplied) second, and the interaction prompt
// describes how they share the scene.
func LifestylePhotoshoot(product domain.ImageData, model *domain.ImageData, spec *domain.ModelSpec, interaction string) (Descriptor, error) {
	const base = "You are a world-class lifestyle photographer AI. "

	switch {
	case model != nil && !model.IsZero():
		instruction := base + fmt.Sprintf("Combine the provided product image and model image into a single cohesive scene based on the following description: %q. Place the product naturally with the model. Ensure lighting, shadows, and perspective are realistic and consistent. The final output should only be the generated image.", interaction)
		return imageDescriptor(instruction, DefaultVariantCount, product, *model), nil
	case spec != nil:
		instruction := base + fmt.Sprintf("First, generate a photorealistic model with these characteristics: Gender: %s, Ethnicity: %s, Details: %s. Then, place this model and the product from the provided image into a scene based on the following description: %q. Ensure the final image is a high-quality, professional lifestyle photograph. The final output should only be the generated image.",
			spec.Gender, spec.ResolvedEthnicity(), spec.Details, interaction)
		return imageDescriptor(instruction, DefaultVariantCount, product), nil
	default:
		return Descriptor{}, domain.NewPrecondition("model", "either a model image or generation parameters must be provided")
	}
}
