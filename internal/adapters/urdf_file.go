package adapters

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-gl/mathgl/mgl64"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/types"
)

// URDFFileAdapter reads URDF documents from disk.
type URDFFileAdapter struct{}

func NewURDFFileAdapter() URDFFileAdapter {
	return URDFFileAdapter{}
}

type urdfRobot struct {
	Name      string         `xml:"name,attr"`
	Links     []urdfLink     `xml:"link"`
	Joints    []urdfJoint    `xml:"joint"`
	Materials []urdfMaterial `xml:"material"`
}

type urdfOrigin struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

type urdfLink struct {
	Name      string          `xml:"name,attr"`
	Inertial  *urdfInertial   `xml:"inertial"`
	Collision []urdfCollision `xml:"collision"`
	Visual    []urdfVisual    `xml:"visual"`
}

type urdfInertial struct {
	Origin  *urdfOrigin `xml:"origin"`
	Mass    urdfValue   `xml:"mass"`
	Inertia urdfInertia `xml:"inertia"`
}

type urdfValue struct {
	Value string `xml:"value,attr"`
}

type urdfInertia struct {
	Ixx string `xml:"ixx,attr"`
	Ixy string `xml:"ixy,attr"`
	Ixz string `xml:"ixz,attr"`
	Iyy string `xml:"iyy,attr"`
	Iyz string `xml:"iyz,attr"`
	Izz string `xml:"izz,attr"`
}

type urdfCollision struct {
	Name     string       `xml:"name,attr"`
	Origin   *urdfOrigin  `xml:"origin"`
	Geometry urdfGeometry `xml:"geometry"`
}

type urdfVisual struct {
	Name     string        `xml:"name,attr"`
	Origin   *urdfOrigin   `xml:"origin"`
	Geometry urdfGeometry  `xml:"geometry"`
	Material *urdfMaterial `xml:"material"`
}

type urdfGeometry struct {
	Sphere *struct {
		Radius string `xml:"radius,attr"`
	} `xml:"sphere"`
	Box *struct {
		Size string `xml:"size,attr"`
	} `xml:"box"`
	Cylinder *struct {
		Radius string `xml:"radius,attr"`
		Length string `xml:"length,attr"`
	} `xml:"cylinder"`
	Mesh *struct {
		Filename string `xml:"filename,attr"`
		Scale    string `xml:"scale,attr"`
	} `xml:"mesh"`
}

type urdfMaterial struct {
	Name  string `xml:"name,attr"`
	Color *struct {
		RGBA string `xml:"rgba,attr"`
	} `xml:"color"`
	Texture *struct {
		Filename string `xml:"filename,attr"`
	} `xml:"texture"`
}

type urdfJoint struct {
	Name     string      `xml:"name,attr"`
	Type     string      `xml:"type,attr"`
	Origin   *urdfOrigin `xml:"origin"`
	Parent   urdfLinkRef `xml:"parent"`
	Child    urdfLinkRef `xml:"child"`
	Axis     *struct {
		XYZ string `xml:"xyz,attr"`
	} `xml:"axis"`
	Limit *struct {
		Lower    string `xml:"lower,attr"`
		Upper    string `xml:"upper,attr"`
		Velocity string `xml:"velocity,attr"`
		Effort   string `xml:"effort,attr"`
	} `xml:"limit"`
	Dynamics *struct {
		Damping  string `xml:"damping,attr"`
		Friction string `xml:"friction,attr"`
	} `xml:"dynamics"`
	Mimic *struct {
		Joint      string `xml:"joint,attr"`
		Multiplier string `xml:"multiplier,attr"`
		Offset     string `xml:"offset,attr"`
	} `xml:"mimic"`
}

type urdfLinkRef struct {
	Link string `xml:"link,attr"`
}

func (a URDFFileAdapter) LoadRobot(path string) (types.Robot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Robot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read urdf file").
			WithCause(err)
	}
	return ParseURDF(content)
}

// ParseURDF decodes a URDF document and checks that every joint connects
// two known links and every link has at most one parent joint.
func ParseURDF(content []byte) (types.Robot, error) {
	var doc urdfRobot
	if err := xml.Unmarshal(content, &doc); err != nil {
		return types.Robot{}, invalidURDF("failed to parse urdf xml", err)
	}
	materials := map[string]urdfMaterial{}
	for _, material := range doc.Materials {
		materials[material.Name] = material
	}

	robot := types.Robot{Name: strings.TrimSpace(doc.Name)}
	linkIndex := map[string]int{}
	for _, raw := range doc.Links {
		link, err := convertURDFLink(raw, materials)
		if err != nil {
			return types.Robot{}, err
		}
		if _, exists := linkIndex[link.Name]; exists {
			return types.Robot{}, invalidURDF("duplicate link "+link.Name, nil)
		}
		linkIndex[link.Name] = len(robot.Links)
		robot.Links = append(robot.Links, link)
	}
	if len(robot.Links) == 0 {
		return types.Robot{}, invalidURDF("urdf has no links", nil)
	}

	jointNames := map[string]struct{}{}
	for _, raw := range doc.Joints {
		joint, err := convertURDFJoint(raw)
		if err != nil {
			return types.Robot{}, err
		}
		if _, exists := jointNames[joint.Name]; exists {
			return types.Robot{}, invalidURDF("duplicate joint "+joint.Name, nil)
		}
		jointNames[joint.Name] = struct{}{}
		if _, ok := linkIndex[joint.Parent]; !ok {
			return types.Robot{}, invalidURDF(fmt.Sprintf("joint %s has unknown parent link %s", joint.Name, joint.Parent), nil)
		}
		childIdx, ok := linkIndex[joint.Child]
		if !ok {
			return types.Robot{}, invalidURDF(fmt.Sprintf("joint %s has unknown child link %s", joint.Name, joint.Child), nil)
		}
		if existing := robot.Links[childIdx].ParentJoint; existing != "" {
			return types.Robot{}, invalidURDF(fmt.Sprintf("link %s has two parent joints: %s and %s", joint.Child, existing, joint.Name), nil)
		}
		robot.Links[childIdx].ParentJoint = joint.Name
		robot.Joints = append(robot.Joints, joint)
	}
	return robot, nil
}

func convertURDFLink(raw urdfLink, materials map[string]urdfMaterial) (types.Link, error) {
	link := types.Link{Name: strings.TrimSpace(raw.Name)}
	if link.Name == "" {
		return types.Link{}, invalidURDF("link is missing a name", nil)
	}
	if raw.Inertial != nil {
		inertial, err := convertURDFInertial(*raw.Inertial)
		if err != nil {
			return types.Link{}, wrapURDF("link "+link.Name, err)
		}
		link.Inertial = &inertial
	}
	if len(raw.Collision) > 0 {
		first := raw.Collision[0]
		origin, err := parseOrigin(first.Origin)
		if err != nil {
			return types.Link{}, wrapURDF("link "+link.Name+" collision", err)
		}
		geometry, err := convertURDFGeometry(first.Geometry)
		if err != nil {
			return types.Link{}, wrapURDF("link "+link.Name+" collision", err)
		}
		link.Collision = &types.Collision{Name: first.Name, Origin: origin, Geometry: geometry}
	}
	if len(raw.Visual) > 0 {
		first := raw.Visual[0]
		origin, err := parseOrigin(first.Origin)
		if err != nil {
			return types.Link{}, wrapURDF("link "+link.Name+" visual", err)
		}
		geometry, err := convertURDFGeometry(first.Geometry)
		if err != nil {
			return types.Link{}, wrapURDF("link "+link.Name+" visual", err)
		}
		material, err := convertURDFMaterial(first.Material, materials)
		if err != nil {
			return types.Link{}, wrapURDF("link "+link.Name+" visual", err)
		}
		link.Visual = &types.Visual{Name: first.Name, Origin: origin, Geometry: geometry, Material: material}
	}
	return link, nil
}

func convertURDFInertial(raw urdfInertial) (types.Inertial, error) {
	origin, err := parseOrigin(raw.Origin)
	if err != nil {
		return types.Inertial{}, err
	}
	values, err := parseFloats(raw.Mass.Value, raw.Inertia.Ixx, raw.Inertia.Ixy, raw.Inertia.Ixz,
		raw.Inertia.Iyy, raw.Inertia.Iyz, raw.Inertia.Izz)
	if err != nil {
		return types.Inertial{}, err
	}
	if values[0] < 0 {
		return types.Inertial{}, fmt.Errorf("mass %g is negative", values[0])
	}
	return types.Inertial{
		Mass:   values[0],
		Origin: origin,
		Ixx:    values[1],
		Ixy:    values[2],
		Ixz:    values[3],
		Iyy:    values[4],
		Iyz:    values[5],
		Izz:    values[6],
	}, nil
}

func convertURDFGeometry(raw urdfGeometry) (types.Geometry, error) {
	switch {
	case raw.Sphere != nil:
		radius, err := parseFloat(raw.Sphere.Radius)
		if err != nil {
			return types.Geometry{}, err
		}
		return types.Geometry{Kind: types.GeometryKindSphere, Radius: radius}, nil
	case raw.Box != nil:
		size, err := parseVec3(raw.Box.Size, mgl64.Vec3{})
		if err != nil {
			return types.Geometry{}, err
		}
		return types.Geometry{Kind: types.GeometryKindBox, Size: size}, nil
	case raw.Cylinder != nil:
		values, err := parseFloats(raw.Cylinder.Radius, raw.Cylinder.Length)
		if err != nil {
			return types.Geometry{}, err
		}
		return types.Geometry{Kind: types.GeometryKindCylinder, Radius: values[0], Length: values[1]}, nil
	case raw.Mesh != nil:
		if strings.TrimSpace(raw.Mesh.Filename) == "" {
			return types.Geometry{}, fmt.Errorf("mesh is missing a filename")
		}
		scale, err := parseVec3(raw.Mesh.Scale, mgl64.Vec3{1, 1, 1})
		if err != nil {
			return types.Geometry{}, err
		}
		return types.Geometry{Kind: types.GeometryKindMesh, Filename: strings.TrimSpace(raw.Mesh.Filename), Scale: scale}, nil
	default:
		// Left to the converter, which rejects unknown kinds.
		return types.Geometry{Kind: types.GeometryKindUnknown}, nil
	}
}

// convertURDFMaterial resolves a visual's material, falling back to the
// robot-level definition when the visual only names it.
func convertURDFMaterial(raw *urdfMaterial, materials map[string]urdfMaterial) (*types.Material, error) {
	if raw == nil {
		return nil, nil
	}
	resolved := *raw
	if resolved.Color == nil && resolved.Texture == nil {
		if global, ok := materials[raw.Name]; ok {
			resolved = global
		}
	}
	material := &types.Material{Name: resolved.Name}
	if resolved.Texture != nil {
		material.Texture = resolved.Texture.Filename
	}
	if resolved.Color != nil {
		values := strings.Fields(resolved.Color.RGBA)
		if len(values) != 4 {
			return nil, fmt.Errorf("material %s: rgba needs four values", resolved.Name)
		}
		rgba, err := parseFloats(values...)
		if err != nil {
			return nil, err
		}
		material.Color = types.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	}
	return material, nil
}

func convertURDFJoint(raw urdfJoint) (types.Joint, error) {
	joint := types.Joint{
		Name:   strings.TrimSpace(raw.Name),
		Type:   types.ParseJointType(strings.TrimSpace(raw.Type)),
		Parent: strings.TrimSpace(raw.Parent.Link),
		Child:  strings.TrimSpace(raw.Child.Link),
		Axis:   mgl64.Vec3{1, 0, 0},
	}
	if joint.Name == "" {
		return types.Joint{}, invalidURDF("joint is missing a name", nil)
	}
	origin, err := parseOrigin(raw.Origin)
	if err != nil {
		return types.Joint{}, wrapURDF("joint "+joint.Name, err)
	}
	joint.Origin = origin
	if raw.Axis != nil {
		axis, err := parseVec3(raw.Axis.XYZ, mgl64.Vec3{1, 0, 0})
		if err != nil {
			return types.Joint{}, wrapURDF("joint "+joint.Name+" axis", err)
		}
		if axis.Len() == 0 {
			return types.Joint{}, invalidURDF("joint "+joint.Name+" has a zero axis", nil)
		}
		joint.Axis = axis.Normalize()
	}
	if raw.Limit != nil {
		values, err := parseFloats(raw.Limit.Lower, raw.Limit.Upper, raw.Limit.Velocity, raw.Limit.Effort)
		if err != nil {
			return types.Joint{}, wrapURDF("joint "+joint.Name+" limit", err)
		}
		joint.Limits = &types.JointLimits{Lower: values[0], Upper: values[1], Velocity: values[2], Effort: values[3]}
	}
	if raw.Dynamics != nil {
		values, err := parseFloats(raw.Dynamics.Damping, raw.Dynamics.Friction)
		if err != nil {
			return types.Joint{}, wrapURDF("joint "+joint.Name+" dynamics", err)
		}
		joint.Dynamics = &types.JointDynamics{Damping: values[0], Friction: values[1]}
	}
	if raw.Mimic != nil {
		multiplier := 1.0
		if strings.TrimSpace(raw.Mimic.Multiplier) != "" {
			if multiplier, err = parseFloat(raw.Mimic.Multiplier); err != nil {
				return types.Joint{}, wrapURDF("joint "+joint.Name+" mimic", err)
			}
		}
		offset, err := parseFloat(raw.Mimic.Offset)
		if err != nil {
			return types.Joint{}, wrapURDF("joint "+joint.Name+" mimic", err)
		}
		joint.Mimic = &types.JointMimic{Joint: strings.TrimSpace(raw.Mimic.Joint), Multiplier: multiplier, Offset: offset}
	}
	return joint, nil
}

func parseOrigin(raw *urdfOrigin) (types.Pose, error) {
	if raw == nil {
		return types.IdentityPose(), nil
	}
	xyz, err := parseVec3(raw.XYZ, mgl64.Vec3{})
	if err != nil {
		return types.Pose{}, err
	}
	rpy, err := parseVec3(raw.RPY, mgl64.Vec3{})
	if err != nil {
		return types.Pose{}, err
	}
	return types.PoseFromRPY(xyz, rpy), nil
}

// parseVec3 reads "x y z"; an empty attribute yields fallback.
func parseVec3(value string, fallback mgl64.Vec3) (mgl64.Vec3, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return fallback, nil
	}
	if len(fields) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected three values, got %q", value)
	}
	values, err := parseFloats(fields...)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{values[0], values[1], values[2]}, nil
}

// parseFloat reads a number; an empty attribute is zero.
func parseFloat(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return parsed, nil
}

func parseFloats(values ...string) ([]float64, error) {
	parsed := make([]float64, len(values))
	for i, value := range values {
		v, err := parseFloat(value)
		if err != nil {
			return nil, err
		}
		parsed[i] = v
	}
	return parsed, nil
}

func invalidURDF(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

func wrapURDF(scope string, err error) error {
	return invalidURDF(scope+": "+err.Error(), err)
}

var _ ports.RobotModelPort = URDFFileAdapter{}
