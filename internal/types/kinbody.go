package types

import "github.com/go-gl/mathgl/mgl64"

// KinBody is the flattened model consumed by the kinematics engine: link
// records and joint records that reference links by name.
type KinBody struct {
	ID       string      `yaml:"id" json:"id" msgpack:"id"`
	Name     string      `yaml:"name" json:"name" msgpack:"name"`
	Links    []LinkInfo  `yaml:"links" json:"links" msgpack:"links"`
	Joints   []JointInfo `yaml:"joints" json:"joints" msgpack:"joints"`
	Adjacent [][2]string `yaml:"adjacent,omitempty" json:"adjacent,omitempty" msgpack:"adjacent,omitempty"`
}

func (b KinBody) Link(name string) (LinkInfo, bool) {
	for _, link := range b.Links {
		if link.Name == name {
			return link, true
		}
	}
	return LinkInfo{}, false
}

func (b KinBody) Joint(name string) (JointInfo, bool) {
	for _, joint := range b.Joints {
		if joint.Name == name {
			return joint, true
		}
	}
	return JointInfo{}, false
}

// ActiveJoints returns the joints that contribute degrees of freedom, in
// body order.
func (b KinBody) ActiveJoints() []JointInfo {
	var active []JointInfo
	for _, joint := range b.Joints {
		if joint.Active {
			active = append(active, joint)
		}
	}
	return active
}

type LinkInfo struct {
	Name           string         `yaml:"name" json:"name" msgpack:"name"`
	Transform      Pose           `yaml:"transform" json:"transform" msgpack:"transform"`
	Mass           float64        `yaml:"mass" json:"mass" msgpack:"mass"`
	MassFrame      Pose           `yaml:"mass_frame" json:"mass_frame" msgpack:"mass_frame"`
	InertiaMoments mgl64.Vec3     `yaml:"inertia_moments" json:"inertia_moments" msgpack:"inertia_moments"`
	Geometries     []GeometryInfo `yaml:"geometries,omitempty" json:"geometries,omitempty" msgpack:"geometries,omitempty"`
}

type GeometryInfo struct {
	Role      GeometryRole `yaml:"role" json:"role" msgpack:"role"`
	Type      GeometryType `yaml:"type" json:"type" msgpack:"type"`
	Transform Pose         `yaml:"transform" json:"transform" msgpack:"transform"`
	// GeomData holds the primitive parameters: sphere (r,r,r), box half
	// extents, cylinder (radius, height, 0).
	GeomData          mgl64.Vec3 `yaml:"geom_data" json:"geom_data" msgpack:"geom_data"`
	Visible           bool       `yaml:"visible" json:"visible" msgpack:"visible"`
	Modifiable        bool       `yaml:"modifiable" json:"modifiable" msgpack:"modifiable"`
	CollisionFilename string     `yaml:"collision_filename,omitempty" json:"collision_filename,omitempty" msgpack:"collision_filename,omitempty"`
	CollisionMesh     *TriMesh   `yaml:"collision_mesh,omitempty" json:"collision_mesh,omitempty" msgpack:"collision_mesh,omitempty"`
	RenderFilename    string     `yaml:"render_filename,omitempty" json:"render_filename,omitempty" msgpack:"render_filename,omitempty"`
	RenderScale       mgl64.Vec3 `yaml:"render_scale" json:"render_scale" msgpack:"render_scale"`
	DiffuseColor      Color      `yaml:"diffuse_color" json:"diffuse_color" msgpack:"diffuse_color"`
	AmbientColor      Color      `yaml:"ambient_color" json:"ambient_color" msgpack:"ambient_color"`
}

// TriMesh is an indexed triangle mesh. Indices holds three entries per triangle.
type TriMesh struct {
	Vertices []mgl64.Vec3 `yaml:"vertices" json:"vertices" msgpack:"vertices"`
	Indices  []int        `yaml:"indices" json:"indices" msgpack:"indices"`
}

func (m *TriMesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

type JointInfo struct {
	Name   string          `yaml:"name" json:"name" msgpack:"name"`
	Link0  string          `yaml:"link0" json:"link0" msgpack:"link0"`
	Link1  string          `yaml:"link1" json:"link1" msgpack:"link1"`
	Type   TargetJointType `yaml:"type" json:"type" msgpack:"type"`
	Active bool            `yaml:"active" json:"active" msgpack:"active"`
	Anchor mgl64.Vec3      `yaml:"anchor" json:"anchor" msgpack:"anchor"`
	Axis   mgl64.Vec3      `yaml:"axis" json:"axis" msgpack:"axis"`
	// Limits is nil for an unconstrained joint.
	Limits *JointLimitInfo `yaml:"limits,omitempty" json:"limits,omitempty" msgpack:"limits,omitempty"`
}

type JointLimitInfo struct {
	Lower    float64 `yaml:"lower" json:"lower" msgpack:"lower"`
	Upper    float64 `yaml:"upper" json:"upper" msgpack:"upper"`
	Velocity float64 `yaml:"velocity" json:"velocity" msgpack:"velocity"`
	Effort   float64 `yaml:"effort" json:"effort" msgpack:"effort"`
}
