package types

import "github.com/go-gl/mathgl/mgl64"

// Pose is a rigid transform: a rotation followed by a translation.
type Pose struct {
	Position mgl64.Vec3 `yaml:"position" json:"position" msgpack:"position"`
	Rotation mgl64.Quat `yaml:"rotation" json:"rotation" msgpack:"rotation"`
}

func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent()}
}

// PoseFromRPY builds a pose from a URDF origin. The rotation is fixed-axis
// roll, pitch, yaw: R = Rz(yaw) * Ry(pitch) * Rx(roll).
func PoseFromRPY(xyz mgl64.Vec3, rpy mgl64.Vec3) Pose {
	roll := mgl64.QuatRotate(rpy.X(), mgl64.Vec3{1, 0, 0})
	pitch := mgl64.QuatRotate(rpy.Y(), mgl64.Vec3{0, 1, 0})
	yaw := mgl64.QuatRotate(rpy.Z(), mgl64.Vec3{0, 0, 1})
	return Pose{
		Position: xyz,
		Rotation: yaw.Mul(pitch).Mul(roll).Normalize(),
	}
}

// Rotate expresses v in the parent frame of the pose, ignoring translation.
func (p Pose) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation.Rotate(v)
}

func (p Pose) ApproxEqual(other Pose) bool {
	return p.Position.ApproxEqual(other.Position) && p.Rotation.ApproxEqualThreshold(other.Rotation, 1e-9)
}
