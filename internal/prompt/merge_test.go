package prompt

import (
	"strings"
	"testing"

	"studio/internal/domain"
)

func TestMergeProductsCountInInstruction(t *testing.T) {
	products := []domain.ImageData{testImage("a"), testImage("b"), testImage("c")}
	desc, err := MergeProducts(products, domain.MethodSmart, domain.Customization{}, nil)
	if err != nil {
		t.Fatalf("MergeProducts returned error: %v", err)
	}
	if !strings.Contains(desc.Instruction, "take 3 separate, user-submitted product images") {
		t.Fatalf("instruction missing product count:\n%s", desc.Instruction)
	}
	if len(desc.Images) != 3 {
		t.Fatalf("len(Images) = %d, want 3", len(desc.Images))
	}
}

func TestMergeProductsReferenceComesFirst(t *testing.T) {
	products := []domain.ImageData{testImage("a"), testImage("b")}
	ref := testImage("reference")
	desc, err := MergeProducts(products, domain.MethodReference, domain.Customization{}, &ref)
	if err != nil {
		t.Fatalf("MergeProducts returned error: %v", err)
	}
	if len(desc.Images) != 3 || desc.Images[0] != ref {
		t.Fatalf("Images = %v, want reference first", desc.Images)
	}
}

func TestMergeProductsRequiresProducts(t *testing.T) {
	if _, err := MergeProducts(nil, domain.MethodSmart, domain.Customization{}, nil); !domain.IsPrecondition(err) {
		t.Fatalf("err = %v, want precondition error", err)
	}
}

func TestVirtualTryOnModelImageFirst(t *testing.T) {
	products := []domain.ImageData{testImage("shirt"), testImage("hat")}
	model := testImage("model")
	desc, err := VirtualTryOn(products, &model, nil)
	if err != nil {
		t.Fatalf("VirtualTryOn returned error: %v", err)
	}
	if len(desc.Images) != 3 || desc.Images[0] != model {
		t.Fatalf("Images = %v, want model first", desc.Images)
	}
	if !strings.Contains(desc.Instruction, "the model in the first image") {
		t.Fatalf("instruction does not reference the first image:\n%s", desc.Instruction)
	}
}

func TestVirtualTryOnSynthesizedModel(t *testing.T) {
	products := []domain.ImageData{testImage("shirt")}
	spec := &domain.ModelSpec{
		Gender:    "female",
		Ethnicity: domain.Choice{Named: "Southeast Asian"},
		Details:   "short hair",
	}
	desc, err := VirtualTryOn(products, nil, spec)
	if err != nil {
		t.Fatalf("VirtualTryOn returned error: %v", err)
	}
	for _, want := range []string{"Gender: female", "Ethnicity: Southeast Asian", "Details: short hair"} {
		if !strings.Contains(desc.Instruction, want) {
			t.Errorf("instruction missing %q:\n%s", want, desc.Instruction)
		}
	}
	if len(desc.Images) != 1 {
		t.Fatalf("len(Images) = %d, want products only", len(desc.Images))
	}
}

func TestVirtualTryOnRequiresModelOrSpec(t *testing.T) {
	if _, err := VirtualTryOn([]domain.ImageData{testImage("shirt")}, nil, nil); !domain.IsPrecondition(err) {
		t.Fatalf("err = %v, want precondition error", err)
	}
}

func TestLifestylePhotoshootOrdering(t *testing.T) {
	product := testImage("product")
	model := testImage("model")
	desc, err := LifestylePhotoshoot(product, &model, nil, "model holding the bottle at a beach cafe")
	if err != nil {
		t.Fatalf("LifestylePhotoshoot returned error: %v", err)
	}
	if len(desc.Images) != 2 || desc.Images[0] != product || desc.Images[1] != model {
		t.Fatalf("Images = %v, want [product model]", desc.Images)
	}
	if !strings.Contains(desc.Instruction, `"model holding the bottle at a beach cafe"`) {
		t.Fatalf("instruction missing interaction description:\n%s", desc.Instruction)
	}
}
