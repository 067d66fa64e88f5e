package components

import (
	"github.com/spaghettifunk/ace/engine/math"
)

// pitchLimit is 89 degrees in radians.
const pitchLimit float32 = 1.55334306

/**
 * @brief A free-flying perspective camera. The view matrix is rebuilt lazily
 * after the position or rotation changes.
 */
type Camera struct {
	position math.Vec3
	/** @brief Euler angles in radians: pitch (X), yaw (Y), roll (Z). */
	rotation math.Vec3
	dirty    bool
	view     math.Mat4

	fov    float32
	aspect float32
	near   float32
	far    float32
}

// NewCamera returns a camera at the origin looking down -Z with a 45 degree
// field of view.
func NewCamera(aspect float32) *Camera {
	c := &Camera{
		fov:    math.DegToRad(45),
		aspect: aspect,
		near:   0.1,
		far:    1000,
	}
	c.Reset()
	return c
}

func (c *Camera) Reset() {
	c.rotation = math.NewVec3Zero()
	c.position = math.NewVec3Zero()
	c.dirty = false
	c.view = math.NewMat4Identity()
}

func (c *Camera) Position() math.Vec3 { return c.position }

func (c *Camera) SetPosition(position math.Vec3) {
	c.position = position
	c.dirty = true
}

func (c *Camera) EulerRotation() math.Vec3 { return c.rotation }

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.rotation = rotation
	c.dirty = true
}

// SetAspect updates the projection after a resize.
func (c *Camera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

func (c *Camera) View() math.Mat4 {
	if c.dirty {
		rotation := math.NewMat4EulerXYZ(c.rotation.X, c.rotation.Y, c.rotation.Z)
		translation := math.NewMat4Translation(c.position)
		c.view = rotation.Mul(translation).Inverse()
		c.dirty = false
	}
	return c.view
}

// SkyboxView is the view matrix with translation removed, so a skybox stays
// centred on the eye.
func (c *Camera) SkyboxView() math.Mat4 {
	return c.View().WithoutTranslation()
}

func (c *Camera) Projection() math.Mat4 {
	return math.NewMat4Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *Camera) Forward() math.Vec3  { return c.View().Forward() }
func (c *Camera) Backward() math.Vec3 { return c.View().Backward() }
func (c *Camera) Left() math.Vec3     { return c.View().Left() }
func (c *Camera) Right() math.Vec3    { return c.View().Right() }

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.position = c.position.Add(direction.MulScalar(amount))
	c.dirty = true
}

func (c *Camera) MoveForward(amount float32)  { c.move(c.Forward(), amount) }
func (c *Camera) MoveBackward(amount float32) { c.move(c.Backward(), amount) }
func (c *Camera) MoveLeft(amount float32)     { c.move(c.Left(), amount) }
func (c *Camera) MoveRight(amount float32)    { c.move(c.Right(), amount) }
func (c *Camera) MoveUp(amount float32)       { c.move(math.NewVec3Up(), amount) }
func (c *Camera) MoveDown(amount float32)     { c.move(math.NewVec3Down(), amount) }

func (c *Camera) Yaw(amount float32) {
	c.rotation.Y += amount
	c.dirty = true
}

// Pitch is clamped short of straight up or down to avoid gimbal lock.
func (c *Camera) Pitch(amount float32) {
	c.rotation.X = math.Clamp(c.rotation.X+amount, -pitchLimit, pitchLimit)
	c.dirty = true
}
