package types

import "github.com/go-gl/mathgl/mgl64"

// Robot is the tree-structured source model read from a URDF document.
// Links and Joints keep document order.
type Robot struct {
	Name   string
	Links  []Link
	Joints []Joint
}

// Joint returns the joint with the given name.
func (r Robot) Joint(name string) (Joint, bool) {
	for _, joint := range r.Joints {
		if joint.Name == name {
			return joint, true
		}
	}
	return Joint{}, false
}

// Link returns the link with the given name.
func (r Robot) Link(name string) (Link, bool) {
	for _, link := range r.Links {
		if link.Name == name {
			return link, true
		}
	}
	return Link{}, false
}

type Link struct {
	Name string
	// ParentJoint names the joint whose child is this link. Empty for the root.
	ParentJoint string
	Inertial    *Inertial
	Collision   *Collision
	Visual      *Visual
}

// Inertial carries the full URDF inertia tensor. Only the diagonal is
// used by the converter.
type Inertial struct {
	Mass   float64
	Origin Pose
	Ixx    float64
	Ixy    float64
	Ixz    float64
	Iyy    float64
	Iyz    float64
	Izz    float64
}

type Collision struct {
	Name     string
	Origin   Pose
	Geometry Geometry
}

type Visual struct {
	Name     string
	Origin   Pose
	Geometry Geometry
	Material *Material
}

// Geometry is a closed variant over the URDF shapes. Kind selects which
// payload fields are meaningful:
//
//	sphere:   Radius
//	box:      Size (full extents)
//	cylinder: Radius, Length
//	mesh:     Filename (URI), Scale
type Geometry struct {
	Kind     GeometryKind
	Radius   float64
	Length   float64
	Size     mgl64.Vec3
	Filename string
	Scale    mgl64.Vec3
}

// Color is an RGBA color with components in [0,1].
type Color struct {
	R float64 `yaml:"r" json:"r" msgpack:"r"`
	G float64 `yaml:"g" json:"g" msgpack:"g"`
	B float64 `yaml:"b" json:"b" msgpack:"b"`
	A float64 `yaml:"a" json:"a" msgpack:"a"`
}

type Material struct {
	Name    string
	Color   Color
	Texture string
}

type Joint struct {
	Name   string
	Type   JointType
	Parent string
	Child  string
	// Origin is the parent-link-to-joint transform.
	Origin   Pose
	Axis     mgl64.Vec3
	Limits   *JointLimits
	Dynamics *JointDynamics
	Mimic    *JointMimic
}

type JointLimits struct {
	Lower    float64
	Upper    float64
	Velocity float64
	Effort   float64
}

type JointDynamics struct {
	Damping  float64
	Friction float64
}

type JointMimic struct {
	Joint      string
	Multiplier float64
	Offset     float64
}
