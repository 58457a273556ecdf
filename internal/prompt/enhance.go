package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

const productBasePrompt = "You are a world-class product photographer AI. Your task is to take a user-submitted product image and transform it into a professional, studio-quality photograph. The final image should be hyper-realistic and visually stunning."

// Enhance builds the product studio request: one product image, optionally a
// style reference when the Reference method is active. The product image is
// always the first attachment.
func Enhance(product domain.ImageData, method domain.Method, opts domain.Customization, reference *domain.ImageData) (Descriptor, error) {
	instruction, err := enhanceInstruction(productBasePrompt, method, opts)
	if err != nil {
		return Descriptor{}, err
	}

	images := []domain.ImageData{product}
	if method == domain.MethodReference {
		if reference == nil || reference.IsZero() {
			return Descriptor{}, domain.NewPrecondition("reference_image", "a reference image is required for the reference method")
		}
		images = append(images, *reference)
	}
	return imageDescriptor(instruction, DefaultVariantCount, images...), nil
}

func enhanceInstruction(base string, method domain.Method, opts domain.Customization) (string, error) {
	switch method {
	case domain.MethodSmart:
		return base + " Analyze the product and create the most compelling and commercially appealing scene for it. Consider ideal lighting, background, and subtle props that enhance the product's value. Generate a creative and beautiful concept automatically.", nil
	case domain.MethodCustomize:
		sb := &strings.Builder{}
		sb.WriteString(base)
		fmt.Fprintf(sb, " Re-create the scene with a %q theme.", resolveTheme(themeNames, opts.Theme))
		if props := strings.TrimSpace(opts.Props); props != "" {
			fmt.Fprintf(sb, " Incorporate the following props or elements naturally into the scene: %s.", props)
		}
		if extra := strings.TrimSpace(opts.Instructions); extra != "" {
			fmt.Fprintf(sb, " Follow these additional instructions carefully: %s.", extra)
		}
		sb.WriteString(" The lighting, composition, and background must all align with the specified theme.")
		return sb.String(), nil
	case domain.MethodReference:
		sb := &strings.Builder{}
		sb.WriteString(base)
		sb.WriteString(" A reference image is provided. Analyze its style, mood, lighting, composition, and background. Apply a similar high-end, professional aesthetic to the main product image. DO NOT include the product from the reference image. The goal is to match the style, not replicate the content.")
		if extra := strings.TrimSpace(opts.Instructions); extra != "" {
			fmt.Fprintf(sb, " Also, follow these additional instructions carefully: %s.", extra)
		}
		return sb.String(), nil
	default:
		return "", domain.NewPrecondition("method", fmt.Sprintf("unknown enhancement method %q", string(method)))
	}
}
