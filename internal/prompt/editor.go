package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// Inpaint builds the magic-brush request. The image must already carry the
// semi-transparent red mask baked into its pixels; mask presence is the
// masking UI's responsibility and is not verified here. The instruction is
// required.
func Inpaint(masked domain.ImageData, instruction string) (Descriptor, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return Descriptor{}, domain.NewPrecondition("instruction", "an edit instruction is required for the magic brush")
	}
	text := fmt.Sprintf(`You are an AI image editor. The user has provided an image with a semi-transparent red mask indicating an area to be edited. Your task is to perform an inpainting operation based on the user's text prompt.
-   Analyze the unmasked parts of the image to understand the context, style, lighting, and texture.
-   Modify ONLY the masked area according to the following instruction: %q.
-   The changes must blend seamlessly with the rest of the image.
-   Return only the final, edited image with the mask removed.`, instruction)
	return imageDescriptor(text, DefaultVariantCount, masked), nil
}

// Outpaint builds the canvas-expansion request. The caller has already
// centered the original on a larger blank canvas (see
// domain.OutpaintCanvasSize); the instruction carries no free parameters.
func Outpaint(image domain.ImageData) Descriptor {
	const instruction = `You are an AI image editor. The user has provided an image on a larger canvas. Your task is to intelligently expand the original image to fill the entire canvas. This is an outpainting task.
-   Analyze the content and style of the original image.
-   Generate new content for the empty areas that seamlessly blends with the original image in terms of style, lighting, texture, and content.
-   The final image should look natural and unedited.
-   Return only the final, filled image.`
	return imageDescriptor(instruction, 1, image)
}
