package prompt

import (
	"errors"
	"strings"
	"testing"

	"studio/internal/domain"
)

func testImage(tag string) domain.ImageData {
	return domain.ImageData{
		DataURL:  "data:image/png;base64," + tag,
		MimeType: "image/png",
	}
}

func TestEnhanceDeterministic(t *testing.T) {
	product := testImage("product")
	opts := domain.Customization{
		Theme: domain.Choice{Named: "cleanStudio"},
		Props: "fresh flowers",
	}
	first, err := Enhance(product, domain.MethodCustomize, opts, nil)
	if err != nil {
		t.Fatalf("Enhance returned error: %v", err)
	}
	second, err := Enhance(product, domain.MethodCustomize, opts, nil)
	if err != nil {
		t.Fatalf("Enhance returned error: %v", err)
	}
	if first.Instruction != second.Instruction {
		t.Fatalf("instruction differs between identical calls:\n%q\n%q", first.Instruction, second.Instruction)
	}
	if len(first.Images) != 1 || first.Images[0] != product {
		t.Fatalf("Images = %v, want the product image only", first.Images)
	}
}

func TestEnhanceInstructionClauses(t *testing.T) {
	cases := []struct {
		name    string
		method  domain.Method
		opts    domain.Customization
		want    []string
		wantNot []string
	}{
		{
			name:   "smart",
			method: domain.MethodSmart,
			want:   []string{"Generate a creative and beautiful concept automatically."},
		},
		{
			name:   "customize named theme",
			method: domain.MethodCustomize,
			opts:   domain.Customization{Theme: domain.Choice{Named: "dramaticMoody"}},
			want:   []string{`"Dramatic & Moody (Dark Background)"`, "must all align with the specified theme"},
		},
		{
			name:   "customize custom theme wins",
			method: domain.MethodCustomize,
			opts:   domain.Customization{Theme: domain.Choice{Named: "cleanStudio", Custom: "Cyberpunk alley"}},
			want:   []string{`"Cyberpunk alley"`},
			wantNot: []string{
				"Clean Studio",
			},
		},
		{
			name:   "customize props and instructions",
			method: domain.MethodCustomize,
			opts: domain.Customization{
				Theme:        domain.Choice{Named: "cozyRustic"},
				Props:        "a wooden tray",
				Instructions: "keep the label visible",
			},
			want: []string{
				"Incorporate the following props or elements naturally into the scene: a wooden tray.",
				"Follow these additional instructions carefully: keep the label visible.",
			},
		},
		{
			name:   "reference",
			method: domain.MethodReference,
			want:   []string{"DO NOT include the product from the reference image."},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			instruction, err := enhanceInstruction(productBasePrompt, tc.method, tc.opts)
			if err != nil {
				t.Fatalf("enhanceInstruction returned error: %v", err)
			}
			for _, want := range tc.want {
				if !strings.Contains(instruction, want) {
					t.Errorf("instruction missing %q:\n%s", want, instruction)
				}
			}
			for _, not := range tc.wantNot {
				if strings.Contains(instruction, not) {
					t.Errorf("instruction unexpectedly contains %q:\n%s", not, instruction)
				}
			}
		})
	}
}

func TestEnhanceReferenceRequiresImage(t *testing.T) {
	_, err := Enhance(testImage("product"), domain.MethodReference, domain.Customization{}, nil)
	var pe *domain.PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want precondition error", err)
	}
	if pe.Field != "reference_image" {
		t.Fatalf("Field = %q, want reference_image", pe.Field)
	}
}

func TestEnhanceReferenceImageOrder(t *testing.T) {
	product := testImage("product")
	ref := testImage("reference")
	desc, err := Enhance(product, domain.MethodReference, domain.Customization{}, &ref)
	if err != nil {
		t.Fatalf("Enhance returned error: %v", err)
	}
	if len(desc.Images) != 2 || desc.Images[0] != product || desc.Images[1] != ref {
		t.Fatalf("Images = %v, want [product reference]", desc.Images)
	}
	if desc.VariantCount != DefaultVariantCount {
		t.Fatalf("VariantCount = %d, want %d", desc.VariantCount, DefaultVariantCount)
	}
}

func TestEnhanceUnknownMethod(t *testing.T) {
	_, err := Enhance(testImage("product"), domain.Method("mystery"), domain.Customization{}, nil)
	if !domain.IsPrecondition(err) {
		t.Fatalf("err = %v, want precondition error", err)
	}
}
