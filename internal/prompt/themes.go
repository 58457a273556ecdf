package prompt

import (
	"strings"

	"studio/internal/domain"
)

// Display names for the enhancement theme keys offered by the UI. The
// instruction is always composed in English regardless of the UI language,
// so only the English names live here.
var themeNames = map[string]string{
	"cleanStudio":      "Clean Studio (White Background)",
	"dramaticMoody":    "Dramatic & Moody (Dark Background)",
	"naturalOrganic":   "Natural & Organic",
	"vibrantPlayful":   "Vibrant & Playful",
	"modernSleek":      "Modern & Sleek",
	"softDreamy":       "Soft & Dreamy",
	"industrialRugged": "Industrial & Rugged",
	"vintageNostalgic": "Vintage & Nostalgic",
	"luxeElegant":      "Luxe & Elegant",
	"minimalistZen":    "Minimalist Zen",
	"cosmicFuturistic": "Cosmic & Futuristic",
	"cozyRustic":       "Cozy & Rustic",
	"tropicalParadise": "Tropical Paradise",
	"aquaticFreshness": "Aquatic Freshness",
	"urbanStreet":      "Urban Street Style",
	"holidayCheer":     "Holiday Cheer",
}

// Concept names for the digital imaging feature.
var digitalImagingThemeNames = map[string]string{
	"miniatureWorld":        "Miniature World",
	"natureFusion":          "Nature Fusion",
	"surrealFloating":       "Surreal Floating Objects",
	"cyberneticGlow":        "Cybernetic Glow",
	"watercolorSplash":      "Watercolor Splash",
	"papercraftArt":         "Papercraft Artistry",
	"galaxyInfused":         "Galaxy Infused",
	"architecturalIllusion": "Architectural Illusion",
}

// Pose studio option tables.
var (
	poseAngleNames = map[string]string{
		"eyeLevel":     "Eye Level",
		"highAngle":    "High Angle",
		"lowAngle":     "Low Angle",
		"dutchAngle":   "Dutch Angle",
		"wormsEyeView": "Worm's Eye View",
	}
	poseFramingNames = map[string]string{
		"fullBody":   "Full Body",
		"mediumShot": "Medium Shot",
		"cowboyShot": "Cowboy Shot",
		"closeup":    "Close-up",
	}
	poseDepthNames = map[string]string{
		"shallow": "Shallow (blurry background)",
		"medium":  "Medium",
		"deep":    "Deep (sharp background)",
	}
	poseLightingNames = map[string]string{
		"softbox":    "Studio Softbox",
		"rim":        "Dramatic Rim Lighting",
		"goldenHour": "Golden Hour Sunlight",
		"neon":       "Neon Noir",
	}
)

// resolveTheme maps a theme choice to the display name used in instruction
// text: the free-text value when the user typed their own, otherwise the
// table entry for the key, otherwise the raw key itself.
func resolveTheme(table map[string]string, c domain.Choice) string {
	if c.IsCustom() {
		return strings.TrimSpace(c.Custom)
	}
	key := strings.TrimSpace(c.Named)
	if name, ok := table[key]; ok {
		return name
	}
	return key
}

func lookupName(table map[string]string, key string) string {
	key = strings.TrimSpace(key)
	if name, ok := table[key]; ok {
		return name
	}
	return key
}
