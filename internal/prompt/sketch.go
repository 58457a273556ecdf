package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

var sketchCategoryNames = map[domain.SketchCategory]string{
	domain.SketchFashion:      "Fashion Design",
	domain.SketchLogo:         "Logo & Branding",
	domain.SketchFurniture:    "Furniture Design",
	domain.SketchInterior:     "Interior Design",
	domain.SketchArchitecture: "Architecture",
	domain.SketchArt:          "Digital Art",
}

var sketchCategoryGoals = map[domain.SketchCategory]string{
	domain.SketchFashion:      "a high-fashion garment or outfit design, showing fabric textures, draping, and details.",
	domain.SketchLogo:         "a professional, vector-style logo or branding mark. Clean lines, scalable aesthetic.",
	domain.SketchFurniture:    "a high-end furniture piece, showing materials like wood, metal, or fabric with realistic lighting.",
	domain.SketchInterior:     "a photorealistic interior design render. Show lighting, shadows, textures, and spatial depth.",
	domain.SketchArchitecture: "a realistic architectural visualization of a building or structure.",
	domain.SketchArt:          "a polished piece of digital art or illustration.",
}

var fashionPlacementNames = map[string]string{
	domain.PlacementAll:         "Full Outfit / All",
	domain.PlacementTop:         "Top / Shirt / Jacket",
	domain.PlacementBottom:      "Bottom / Skirt / Pants",
	domain.PlacementDress:       "Main Dress Body",
	domain.PlacementAccessories: "Accessories (Bag/Shoes/Hat)",
}

// SketchDesign builds the request turning a rough sketch into a rendered
// design for the chosen category. Reference mode requires a style reference
// image; it is appended after the sketch.
func SketchDesign(sketch domain.ImageData, opts domain.SketchOptions, reference *domain.ImageData) (Descriptor, error) {
	if opts.Mode == domain.MethodReference && (reference == nil || reference.IsZero()) {
		return Descriptor{}, domain.NewPrecondition("reference_image", "reference mode requires a style reference image")
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, `You are an expert industrial and creative designer AI. Your task is to transform a rough hand-drawn sketch into a professional, high-quality visual design.

**Input:** A user-provided sketch.
**Category:** %s
**Output Goal:** Create %s

**Specific Instructions:**
-   Strictly follow the composition and structure of the provided sketch.
-   Render it with high-quality textures, lighting, and realistic details appropriate for the category.`,
		sketchCategoryNames[opts.Category], sketchCategoryGoals[opts.Category])

	pattern := strings.TrimSpace(opts.FashionPattern)
	placement := opts.FashionPlacement
	if opts.Mode == domain.MethodSmart {
		// Fabric choices only apply when the user is steering the design.
		pattern, placement = "", ""
	}
	if opts.Category == domain.SketchFashion && (pattern != "" || placement != "") {
		sb.WriteString("\n**Fashion Details:**")
		if pattern != "" {
			fmt.Fprintf(sb, "\n-   **Fabric Pattern/Material:** Apply the following pattern or texture: %q.", pattern)
		}
		if placement != "" && placement != domain.PlacementAll {
			fmt.Fprintf(sb, "\n-   **Placement:** Apply this pattern/material ONLY to the **%s**. The rest of the outfit should complement this design.", fashionPlacementNames[placement])
		} else if placement == domain.PlacementAll {
			sb.WriteString("\n-   **Placement:** Apply this pattern/material to the entire outfit.")
		}
	}

	switch {
	case opts.Mode == domain.MethodReference:
		sb.WriteString("\n-   **Style Reference:** A reference image is provided. Analyze its colors, materials, textures, and overall style. Apply these aesthetic elements to the sketch design while maintaining the sketch's original shape.")
	case opts.Mode == domain.MethodCustomize && strings.TrimSpace(opts.Prompt) != "":
		fmt.Fprintf(sb, "\n-   **User Prompt:** %s", strings.TrimSpace(opts.Prompt))
	default:
		sb.WriteString("\n-   **Auto-Enhance:** Use your creative judgment to select the best materials, colors, and style that fit modern design trends for this category. Make it look premium and professional.")
	}
	sb.WriteString("\n-   Bring the user's vision to life while respecting the original lines of the sketch.")

	images := []domain.ImageData{sketch}
	if opts.Mode == domain.MethodReference {
		images = append(images, *reference)
	}
	return Descriptor{
		Instruction:  sb.String(),
		Images:       images,
		Modalities:   []string{ModalityImage},
		VariantCount: DefaultVariantCount,
	}, nil
}
