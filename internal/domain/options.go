package domain

import "strings"

// Method selects how an enhancement scene is directed.
type Method string

const (
	MethodSmart     Method = "smart"
	MethodCustomize Method = "customize"
	MethodReference Method = "reference"
)

// Valid reports whether the method is one of the known values.
func (m Method) Valid() bool {
	switch m {
	case MethodSmart, MethodCustomize, MethodReference:
		return true
	}
	return false
}

// Choice is a value picked from an enumerated list, with a free-text escape
// hatch. When Custom is non-empty it wins over Named; this replaces the
// "Other" sentinel comparison the UI works with.
type Choice struct {
	Named  string `json:"named"`
	Custom string `json:"custom"`
}

// IsCustom reports whether the free-text value is in effect.
func (c Choice) IsCustom() bool {
	return strings.TrimSpace(c.Custom) != ""
}

// IsZero reports whether neither variant carries a value.
func (c Choice) IsZero() bool {
	return strings.TrimSpace(c.Named) == "" && strings.TrimSpace(c.Custom) == ""
}

// Customization parameterizes a Customize-mode enhancement.
type Customization struct {
	Theme        Choice `json:"theme"`
	Props        string `json:"props"`
	Instructions string `json:"instructions"`
}

// ModelSpec describes a model to synthesize when the user did not upload one.
type ModelSpec struct {
	Gender    string `json:"gender"`
	Ethnicity Choice `json:"ethnicity"`
	Details   string `json:"details"`
}

// ResolvedEthnicity returns the free-text ethnicity when set, otherwise the
// enumerated value.
func (m ModelSpec) ResolvedEthnicity() string {
	if m.Ethnicity.IsCustom() {
		return strings.TrimSpace(m.Ethnicity.Custom)
	}
	return strings.TrimSpace(m.Ethnicity.Named)
}

// PoseOptions directs a Customize-mode pose generation.
type PoseOptions struct {
	Theme        Choice `json:"theme"`
	Angle        string `json:"angle"`
	Framing      string `json:"framing"`
	DepthOfField string `json:"depth_of_field"`
	Lighting     string `json:"lighting"`
	Instructions string `json:"instructions"`
}

// AdCopy is the text to render verbatim on an ad poster.
type AdCopy struct {
	Headline     string `json:"headline"`
	Description  string `json:"description"`
	CTA          string `json:"cta"`
	Instructions string `json:"instructions"`
}

// CarouselOptions configures a social media carousel generation.
type CarouselOptions struct {
	ProductName string `json:"product_name"`
	Benefits    string `json:"benefits"`
	Audience    string `json:"audience"`
	Platform    string `json:"platform"`
	Language    string `json:"language"`
	AspectRatio string `json:"aspect_ratio"`
	AddLogo     bool   `json:"add_logo"`
}

// SketchCategory names the rendering intent for a sketch-to-design request.
type SketchCategory string

const (
	SketchFashion      SketchCategory = "fashion"
	SketchLogo         SketchCategory = "logo"
	SketchFurniture    SketchCategory = "furniture"
	SketchInterior     SketchCategory = "interior"
	SketchArchitecture SketchCategory = "architecture"
	SketchArt          SketchCategory = "art"
)

// Valid reports whether the category is one of the six known values.
func (c SketchCategory) Valid() bool {
	switch c {
	case SketchFashion, SketchLogo, SketchFurniture, SketchInterior, SketchArchitecture, SketchArt:
		return true
	}
	return false
}

// Garment regions a fabric pattern may be restricted to.
const (
	PlacementAll         = "ALL"
	PlacementTop         = "TOP"
	PlacementBottom      = "BOTTOM"
	PlacementDress       = "DRESS"
	PlacementAccessories = "ACCESSORIES"
)

// SketchOptions directs a sketch-to-design rendering.
type SketchOptions struct {
	Category         SketchCategory `json:"category"`
	Mode             Method         `json:"mode"`
	Prompt           string         `json:"prompt"`
	FashionPattern   string         `json:"fashion_pattern"`
	FashionPlacement string         `json:"fashion_placement"`
}
