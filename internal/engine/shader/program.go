package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/engine/shader/shaders"
	"github.com/Faultbox/helios/internal/logger"
	"github.com/Faultbox/helios/pkg/math"
)

// ErrMissingUniform is returned by Validate when a required uniform is not
// active in the linked program.
var ErrMissingUniform = errors.New("missing uniform")

// Program is a linked shader program with cached uniform locations.
//
// Programs are shared by many scene objects and must outlive them.
type Program struct {
	name string
	id   uint32

	locations map[string]int32
	warned    map[string]bool
	checks    bool

	locate func(program uint32, name string) int32
	log    *zap.Logger
}

// FromSource compiles and links a program from GLSL sources.
func FromSource(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		logger.Error("shader program failed", zap.String("program", name), zap.Error(err))
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	p := newProgram(name, id, GetUniform)
	p.log.Debug("shader program linked", zap.Uint32("id", id))
	return p, nil
}

// Load compiles the named program from dir, or from the embedded sources when
// dir is empty.
func Load(dir, name string) (*Program, error) {
	src, err := shaders.Sources(dir, name)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	return FromSource(name, src.Vertex, src.Fragment)
}

func newProgram(name string, id uint32, locate func(uint32, string) int32) *Program {
	return &Program{
		name:      name,
		id:        id,
		locations: make(map[string]int32),
		warned:    make(map[string]bool),
		locate:    locate,
		log:       logger.Named("shader").With(zap.String("program", name)),
	}
}

// Name returns the program name.
func (p *Program) Name() string {
	return p.name
}

// ID returns the GL program handle. Zero means the program is unusable.
func (p *Program) ID() uint32 {
	return p.id
}

// SetUniformChecks enables a warning the first time an inactive uniform is set.
func (p *Program) SetUniformChecks(on bool) {
	p.checks = on
}

// Validate checks that every required uniform is active.
func (p *Program) Validate(required ...string) error {
	var missing []string
	for _, name := range required {
		if p.location(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("program %s: %w: %s", p.name, ErrMissingUniform, strings.Join(missing, ", "))
	}
	return nil
}

// location returns the cached location of name, resolving it on first use.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.locate(p.id, name)
	p.locations[name] = loc
	return loc
}

// uniform resolves name for a set call, reporting inactive uniforms once.
func (p *Program) uniform(name string) (int32, bool) {
	loc := p.location(name)
	if loc < 0 {
		if p.checks && !p.warned[name] {
			p.warned[name] = true
			p.log.Warn("uniform not active", zap.String("uniform", name))
		}
		return loc, false
	}
	return loc, true
}

// Use makes the program current.
func (p *Program) Use() {
	if p.id == 0 {
		p.log.Error("use of unlinked program")
		return
	}
	gl.UseProgram(p.id)
}

// SetFloat sets a float uniform on the current program.
func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.uniform(name); ok {
		gl.Uniform1f(loc, v)
	}
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc, ok := p.uniform(name); ok {
		gl.Uniform1i(loc, v)
	}
}

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, x, y float32) {
	if loc, ok := p.uniform(name); ok {
		gl.Uniform2f(loc, x, y)
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	if loc, ok := p.uniform(name); ok {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v math.Vec4) {
	if loc, ok := p.uniform(name); ok {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc, ok := p.uniform(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// Destroy deletes the GL program.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
