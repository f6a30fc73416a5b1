package types

// JointType is the joint kind declared in a URDF document.
type JointType string

const (
	JointTypeUnknown    JointType = "unknown"
	JointTypeRevolute   JointType = "revolute"
	JointTypePrismatic  JointType = "prismatic"
	JointTypeFixed      JointType = "fixed"
	JointTypeContinuous JointType = "continuous"
	JointTypePlanar     JointType = "planar"
	JointTypeFloating   JointType = "floating"
)

// ParseJointType maps the URDF type attribute to a JointType. Unrecognised
// values map to JointTypeUnknown so the joint pipeline can reject them.
func ParseJointType(value string) JointType {
	switch JointType(value) {
	case JointTypeRevolute, JointTypePrismatic, JointTypeFixed,
		JointTypeContinuous, JointTypePlanar, JointTypeFloating:
		return JointType(value)
	default:
		return JointTypeUnknown
	}
}

// GeometryKind tags the shape carried by a source Geometry.
type GeometryKind string

const (
	GeometryKindUnknown  GeometryKind = ""
	GeometryKindSphere   GeometryKind = "sphere"
	GeometryKindBox      GeometryKind = "box"
	GeometryKindCylinder GeometryKind = "cylinder"
	GeometryKindMesh     GeometryKind = "mesh"
)

// GeometryRole selects how a geometry is encoded on the target link.
type GeometryRole string

const (
	GeometryRoleCollision GeometryRole = "collision"
	GeometryRoleVisual    GeometryRole = "visual"
)

// GeometryType is the primitive type of a target geometry record.
type GeometryType string

const (
	GeometryTypeSphere   GeometryType = "sphere"
	GeometryTypeBox      GeometryType = "box"
	GeometryTypeCylinder GeometryType = "cylinder"
	GeometryTypeTriMesh  GeometryType = "trimesh"
)

// TargetJointType is the joint type understood by the kinematic body.
// Revolute covers both hinge-style URDF joints and disabled fixed joints.
type TargetJointType string

const (
	TargetJointRevolute TargetJointType = "revolute"
	TargetJointSlider   TargetJointType = "slider"
)

// ModelFormat is the on-disk encoding of an exported KinBody.
type ModelFormat string

const (
	ModelFormatYAML    ModelFormat = "yaml"
	ModelFormatJSON    ModelFormat = "json"
	ModelFormatMsgpack ModelFormat = "msgpack"
)
