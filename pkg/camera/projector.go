// Package camera transforms world-space points into camera space and
// projects camera-space points onto the viewport.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/railway3d/pkg/math"
)

// Perspective projection planes. The near plane sits at z'=0 after
// projection; geometry crossing it is clipped before the divide.
const (
	near float32 = 1
	far  float32 = 2000
)

// Pose is the camera position and orientation, owned by the host
// application and read once per frame. Yaw and pitch are in degrees;
// yaw 0 looks north (+Y), pitch 0 is level.
type Pose struct {
	Position   math.Vec3
	Yaw, Pitch float32
}

// Projector projects camera-space points onto a pixel viewport with a
// single perspective model.
type Projector struct {
	FOV    float32 // horizontal field of view, degrees
	Width  float32 // viewport width, pixels
	Height float32 // viewport height, pixels
}

// WorldToCamera transforms a world-space point (x east, y north, z up)
// into camera space, where x goes right, y up and z is the depth in front
// of the camera. The x axis is negated to flip chirality for screen space,
// then the camera's yaw (about the vertical axis) and pitch (about the
// lateral axis) are undone.
func WorldToCamera(p math.Vec3, pose Pose) math.Vec3 {
	yaw := -radians(pose.Yaw + 180)
	pitch := -radians(pose.Pitch + 90)

	x := p.X - pose.Position.X
	y := p.Y - pose.Position.Y
	z := p.Z - pose.Position.Z
	x = -x

	sy, cy := math32.Sincos(yaw)
	xa := cy*x - sy*y
	ya := sy*x + cy*y

	sp, cp := math32.Sincos(pitch)
	return math.Vec3{
		X: xa,
		Y: cp*ya - sp*z,
		Z: sp*ya + cp*z,
	}
}

// CameraToScreen projects a camera-space point to pixel coordinates.
// The returned sign is copysign(1, w) and is kept with the screen point
// for behind-camera detection downstream; points at z >= 0 always project
// with a positive sign.
func (pr Projector) CameraToScreen(p math.Vec3) (math.Vec2, float32) {
	s := 1 / math32.Tan(radians(pr.FOV/2))

	x := s * p.X
	y := s * p.Y
	z := -far/(far-near)*p.Z - far*near/(far-near)
	w := -z

	x /= w
	y /= w
	wsign := math32.Copysign(1, w)

	y /= pr.Height / pr.Width
	return math.Vec2{
		X: (x + 1) * pr.Width / 2,
		Y: (1 - (y+1)/2) * pr.Height,
	}, wsign
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
