// Package shaders provides the embedded GLSL sources.
package shaders

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// LitVertexShader transforms lit geometry into camera space.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader shades planets, sun and ship with point lights,
// spotlights and fog.
//
//go:embed lit.frag
var LitFragmentShader string

// MirrorVertexShader is the vertex shader for the mirror quad.
//
//go:embed mirror.vert
var MirrorVertexShader string

// MirrorFragmentShader draws the mirror glass, or composites a reflection texture.
//
//go:embed mirror.frag
var MirrorFragmentShader string

// Pair is a vertex and fragment source.
type Pair struct {
	Vertex   string
	Fragment string
}

var embedded = map[string]Pair{
	"lit":    {LitVertexShader, LitFragmentShader},
	"mirror": {MirrorVertexShader, MirrorFragmentShader},
}

// Names lists the available programs.
func Names() []string {
	return []string{"lit", "mirror"}
}

// Sources returns the sources of a program. When dir is empty the embedded
// copy is returned; otherwise <dir>/<name>.vert and <dir>/<name>.frag are read.
func Sources(dir, name string) (Pair, error) {
	if dir == "" {
		p, ok := embedded[name]
		if !ok {
			return Pair{}, fmt.Errorf("unknown shader program %q", name)
		}
		return p, nil
	}

	vert, err := os.ReadFile(filepath.Join(dir, name+".vert"))
	if err != nil {
		return Pair{}, fmt.Errorf("reading vertex shader: %w", err)
	}
	frag, err := os.ReadFile(filepath.Join(dir, name+".frag"))
	if err != nil {
		return Pair{}, fmt.Errorf("reading fragment shader: %w", err)
	}
	return Pair{Vertex: string(vert), Fragment: string(frag)}, nil
}
