// Package reflection mirrors cameras and points across an arbitrary plane.
//
// It holds no GL state: the reflected view it produces is consumed by the
// mirror renderer when drawing the scene a second time.
package reflection

import "github.com/Faultbox/helios/pkg/math"

// Camera reflects a viewer across the plane through Point with unit Normal.
type Camera struct {
	point  math.Vec3
	normal math.Vec3
}

// New returns a reflection camera for the given plane. The normal is normalized.
func New(point, normal math.Vec3) *Camera {
	c := &Camera{}
	c.SetPlane(point, normal)
	return c
}

// SetPlane moves the mirror plane, e.g. when the mirror object moves.
func (c *Camera) SetPlane(point, normal math.Vec3) {
	c.point = point
	c.normal = normal.Normalize()
}

// Point returns a point on the plane.
func (c *Camera) Point() math.Vec3 {
	return c.point
}

// Normal returns the unit plane normal.
func (c *Camera) Normal() math.Vec3 {
	return c.normal
}

// ReflectVector reflects a free vector (a direction, e.g. up) across the
// plane's orientation. Translation does not apply.
func (c *Camera) ReflectVector(v math.Vec3) math.Vec3 {
	return v.Reflect(c.normal)
}

// ReflectPoint reflects a world-space point across the plane.
func (c *Camera) ReflectPoint(p math.Vec3) math.Vec3 {
	return c.ReflectVector(p.Sub(c.point)).Add(c.point)
}

// SignedDistance returns the distance of p from the plane, positive on the
// side the normal points to.
func (c *Camera) SignedDistance(p math.Vec3) float32 {
	return p.Sub(c.point).Dot(c.normal)
}

// InFront reports whether p lies strictly on the normal side of the plane.
func (c *Camera) InFront(p math.Vec3) bool {
	return c.SignedDistance(p) > 0
}

// Matrix returns the affine reflection across the plane.
func (c *Camera) Matrix() math.Mat4 {
	return math.Reflection(c.point, c.normal)
}

// ClipPlane returns the plane as (n, -n·p), oriented so that the viewer's
// half-space is kept. Geometry behind the mirror would otherwise be drawn
// between the mirror and the reflected camera.
func (c *Camera) ClipPlane(eye math.Vec3) math.Vec4 {
	n := c.normal
	if !c.InFront(eye) {
		n = n.Negate()
	}
	return math.Vec4{n.X, n.Y, n.Z, -n.Dot(c.point)}
}

// ReflectedEye returns the position of the mirror-image camera.
func (c *Camera) ReflectedEye(eye math.Vec3) math.Vec3 {
	return c.ReflectPoint(eye)
}

// ReflectedView builds the view of the mirror image of a camera looking from
// eye at target. Eye and target are reflected as points; up is reflected as a
// free vector, otherwise the reflected scene is vertically wrong.
func (c *Camera) ReflectedView(eye, target, up math.Vec3) math.Mat4 {
	return math.LookAt(
		c.ReflectedEye(eye),
		c.ReflectPoint(target),
		c.ReflectVector(up),
	)
}

// ReflectedViewFixedUp is the simplified variant: it reflects the eye and the
// view direction but keeps world +Y as up. This is only correct when the
// mirror normal has no component along world up (a vertical mirror).
func (c *Camera) ReflectedViewFixedUp(eye, target math.Vec3) math.Mat4 {
	reflectedEye := c.ReflectedEye(eye)
	dir := c.ReflectVector(target.Sub(eye))
	return math.LookAt(reflectedEye, reflectedEye.Add(dir), math.Up)
}
