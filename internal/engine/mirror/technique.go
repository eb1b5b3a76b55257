// Package mirror renders a planar mirror into the scene.
//
// Two techniques are supported. StencilMasked draws the reflected scene
// through a stencil mask shaped like the mirror and blends a tinted glass
// quad on top. TextureComposited renders the reflected scene into an
// offscreen target first and samples it while drawing the mirror.
package mirror

import (
	"fmt"
	"strings"
)

// Technique selects how the mirror image is produced.
type Technique int

const (
	// StencilMasked is the default technique.
	StencilMasked Technique = iota
	// TextureComposited renders the reflection offscreen.
	TextureComposited
)

// ParseTechnique accepts "stencil" or "texture" (case-insensitive).
func ParseTechnique(s string) (Technique, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stencil":
		return StencilMasked, nil
	case "texture":
		return TextureComposited, nil
	}
	return StencilMasked, fmt.Errorf("unknown mirror technique %q", s)
}

func (t Technique) String() string {
	switch t {
	case StencilMasked:
		return "stencil"
	case TextureComposited:
		return "texture"
	default:
		return fmt.Sprintf("Technique(%d)", int(t))
	}
}

// Next returns the other technique. Used by the runtime toggle.
func (t Technique) Next() Technique {
	if t == StencilMasked {
		return TextureComposited
	}
	return StencilMasked
}
