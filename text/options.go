package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	name string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithName overrides the name read from the font's name table.
// Diagnostics print this name.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	offset      float64
	hinting     Hinting
	language    string
	ownedSource bool
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting:  HintingFull,
		language: "en",
	}
}

// WithOffset moves the face's baseline down by offset pixels.
// Negative values move it up. Icon fonts usually need a few pixels to sit
// level with the surrounding text.
func WithOffset(offset float64) FaceOption {
	return func(c *faceConfig) {
		c.offset = offset
	}
}

// WithHinting sets the hinting mode used for metrics.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithLanguage sets the language tag passed to the shaper (e.g., "en", "ja").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithOwnedSource makes the face close its FontSource when the face is
// closed. Use it when nothing else holds the source.
func WithOwnedSource() FaceOption {
	return func(c *faceConfig) {
		c.ownedSource = true
	}
}
