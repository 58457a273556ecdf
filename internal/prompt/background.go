package prompt

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// RemoveBackground builds the background removal request. The operation is
// deterministic in intent, so only a single variant is requested.
func RemoveBackground(image domain.ImageData) Descriptor {
	const instruction = `You are a precision image editor. Your only task is to remove the background from the provided image.
- Identify the main subject.
- Make the entire background transparent.
- The output MUST be a PNG image with a transparent background.
- Do not add any new elements, shadows, or reflections. Preserve only the original subject.`
	return imageDescriptor(instruction, 1, image)
}

// ReplaceBackground builds the background replacement request from a
// free-text scene description.
func ReplaceBackground(image domain.ImageData, scene string) (Descriptor, error) {
	scene = strings.TrimSpace(scene)
	if scene == "" {
		return Descriptor{}, domain.NewPrecondition("background_prompt", "a background description is required")
	}
	instruction := fmt.Sprintf(`You are an expert virtual photographer. Your task is to seamlessly place a product into a new background.
1.  First, perfectly isolate the main subject from the provided user image, preserving all its details and shadows.
2.  Then, generate a new, photorealistic background scene based on this description: %q.
3.  Finally, place the isolated subject into the new scene. You MUST ensure the lighting, shadows, perspective, and reflections on the subject perfectly match the new background, making it look like it was photographed there originally.`, scene)
	return imageDescriptor(instruction, DefaultVariantCount, image), nil
}

// FaceSwap builds the face swap request: target image first, face image
// second, exactly as the instruction describes them.
func FaceSwap(target, face domain.ImageData) (Descriptor, error) {
	if target.IsZero() {
		return Descriptor{}, domain.NewPrecondition("target_image", "a target image is required")
	}
	if face.IsZero() {
		return Descriptor{}, domain.NewPrecondition("face_image", "a face image is required")
	}
	const instruction = "You are an expert AI image editor specializing in photorealistic face swapping. Your task is to take a target image (the first image provided after this prompt) and a face image (the second image). Seamlessly swap the face from the face image onto a person in the target image. It is crucial that the skin tone, lighting, shadows, and angle of the new face perfectly match the target image's environment to create a completely natural and undetectable result. The final output should only be the edited target image."
	return imageDescriptor(instruction, DefaultVariantCount, target, face), nil
}
