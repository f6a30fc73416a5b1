package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"

	"urdf2kin/internal/types"
)

type jointMapping struct {
	Type   types.TargetJointType
	Active bool
}

// Fixed joints become disabled hinges so the body still has a joint
// record connecting the two links.
var jointMappings = map[types.JointType]jointMapping{
	types.JointTypeRevolute:   {Type: types.TargetJointRevolute, Active: true},
	types.JointTypePrismatic:  {Type: types.TargetJointSlider, Active: true},
	types.JointTypeFixed:      {Type: types.TargetJointRevolute, Active: false},
	types.JointTypeContinuous: {Type: types.TargetJointRevolute, Active: true},
}

var inactiveAxis = mgl64.Vec3{1, 0, 0}

// MapJointType returns the target joint type and active flag for a URDF
// joint type. Planar, floating and unknown joints are rejected.
func MapJointType(jointType types.JointType) (types.TargetJointType, bool, error) {
	mapping, ok := jointMappings[jointType]
	if !ok {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported joint type %s", jointType))
	}
	return mapping.Type, mapping.Active, nil
}

type JointConverter struct{}

func NewJointConverter() JointConverter {
	return JointConverter{}
}

func (c JointConverter) Convert(ctx context.Context, joint types.Joint) (types.JointInfo, error) {
	assert.NotEmpty(ctx, joint.Name, "joint name must be set")
	jointType, active, err := MapJointType(joint.Type)
	if err != nil {
		return types.JointInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported joint type %s on joint %s", joint.Type, joint.Name)).
			WithCause(err)
	}

	info := types.JointInfo{
		Name:   joint.Name,
		Link0:  joint.Parent,
		Link1:  joint.Child,
		Type:   jointType,
		Active: active,
		Anchor: joint.Origin.Position,
		Axis:   inactiveAxis,
	}
	if active {
		info.Axis = joint.Origin.Rotate(joint.Axis)
	}

	switch {
	case joint.Limits != nil:
		info.Limits = &types.JointLimitInfo{
			Lower:    joint.Limits.Lower,
			Upper:    joint.Limits.Upper,
			Velocity: joint.Limits.Velocity,
			Effort:   joint.Limits.Effort,
		}
	case !active:
		info.Limits = &types.JointLimitInfo{}
	}

	if joint.Mimic != nil {
		log.Ctx(ctx).Debug().
			Str("joint", joint.Name).
			Str("mimic", joint.Mimic.Joint).
			Msg("mimic joints are not converted")
	}
	return info, nil
}

// ConvertAll orders the joints and converts each one. Any unsupported
// joint aborts the whole pass.
func (c JointConverter) ConvertAll(ctx context.Context, joints []types.Joint, order types.JointOrder) ([]types.JointInfo, error) {
	ordered, err := OrderJoints(ctx, joints, order)
	if err != nil {
		return nil, err
	}
	infos := make([]types.JointInfo, 0, len(ordered))
	for _, joint := range ordered {
		info, err := c.Convert(ctx, joint)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
