package elements

// Enumerated property values. Parsing matches them case-insensitively and
// keeps the spelling listed here; anything else falls back to the default
// with a warning.
var (
	textSizes     = []string{"Default", "Small", "Medium", "Large", "ExtraLarge"}
	textWeights   = []string{"Default", "Lighter", "Bolder"}
	textColors    = []string{"Default", "Dark", "Light", "Accent", "Good", "Warning", "Attention"}
	fontTypes     = []string{"Default", "Monospace"}
	alignments    = []string{"Left", "Center", "Right"}
	imageSizes    = []string{"Auto", "Stretch", "Small", "Medium", "Large"}
	imageStyles   = []string{"Default", "Person"}
	containerKind = []string{"Default", "Emphasis", "Good", "Attention", "Warning", "Accent"}
)

const (
	defaultEnum      = "Default"
	defaultAlignment = "Left"
	defaultImageSize = "Auto"
)

// setIf stores v under key unless it equals the default.
func setIf[T comparable](out map[string]any, key string, v, def T) {
	if v != def {
		out[key] = v
	}
}
