package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

const poseBasePrompt = `You are an expert AI fashion photographer. Your task is to take a single image of a model and generate a new image of the exact same model, wearing the exact same clothes, holding the exact same product, but in a different pose.

**Crucial Rules:**
-   **Consistency is KEY:** The model's face, body, hair, clothes, and any products they are holding MUST remain identical to the original image. Do not change anything about them.
-   **Background:** The background should be replaced based on the theme.
-   **New Pose:** The model's pose must be visibly different from the original.

`

// StudioPoses builds the pose studio request from a single model photo.
// Pose studio only knows Smart and Customize; Reference is not offered.
func StudioPoses(model domain.ImageData, method domain.Method, opts domain.PoseOptions) (Descriptor, error) {
	if model.IsZero() {
		return Descriptor{}, domain.NewPrecondition("model_image", "a model image is required")
	}

	sb := &strings.Builder{}
	sb.WriteString(poseBasePrompt)

	switch method {
	case domain.MethodSmart:
		sb.WriteString("**Instruction:** Generate a new, dynamic, and commercially appealing pose for the model. The background should be a clean, neutral studio setting.")
	case domain.MethodCustomize:
		fmt.Fprintf(sb, "**Instruction:** Re-create the scene with the following specifications:\n")
		fmt.Fprintf(sb, "-   **Pose:** The pose should fit a %q framing from a %q angle.\n",
			lookupName(poseFramingNames, opts.Framing), lookupName(poseAngleNames, opts.Angle))
		fmt.Fprintf(sb, "-   **Background Theme:** The background must be a %q theme.\n", resolveTheme(themeNames, opts.Theme))
		fmt.Fprintf(sb, "-   **Depth of Field:** The image should have a %q.\n", lookupName(poseDepthNames, opts.DepthOfField))
		fmt.Fprintf(sb, "-   **Lighting Style:** Use a %q lighting style.\n", lookupName(poseLightingNames, opts.Lighting))
		if extra := strings.TrimSpace(opts.Instructions); extra != "" {
			fmt.Fprintf(sb, "-   **Additional Instructions:** %s\n", extra)
		}
	default:
		return Descriptor{}, domain.NewPrecondition("method", fmt.Sprintf("unknown pose mode %q", string(method)))
	}

	return imageDescriptor(sb.String(), DefaultVariantCount, model), nil
}
