// Package prompt builds the instruction text and ordered image attachments
// for every studio feature. Builders are pure: identical inputs always yield
// byte-identical instructions and the same image ordering, and no network
// or clock state leaks in.
package prompt

import "studio/internal/domain"

// Response modalities requested from the model.
const (
	ModalityImage = "IMAGE"
	ModalityText  = "TEXT"
)

// DefaultVariantCount is how many independently sampled outputs are
// requested per user action, so the user gets a choice.
const DefaultVariantCount = 3

// Descriptor is the fully assembled request for the generation gateway.
// Image order is significant: several instructions reference attachments
// positionally ("the first image").
type Descriptor struct {
	Instruction  string
	Images       []domain.ImageData
	Modalities   []string
	VariantCount int
}

func imageDescriptor(instruction string, variants int, images ...domain.ImageData) Descriptor {
	return Descriptor{
		Instruction:  instruction,
		Images:       images,
		Modalities:   []string{ModalityImage},
		VariantCount: variants,
	}
}
