package core

import (
	"math"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urdf2kin/internal/types"
)

func TestMapJointTypeTable(t *testing.T) {
	tests := []struct {
		in         types.JointType
		wantType   types.TargetJointType
		wantActive bool
	}{
		{types.JointTypeRevolute, types.TargetJointRevolute, true},
		{types.JointTypePrismatic, types.TargetJointSlider, true},
		{types.JointTypeFixed, types.TargetJointRevolute, false},
		{types.JointTypeContinuous, types.TargetJointRevolute, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			jointType, active, err := MapJointType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, jointType)
			assert.Equal(t, tt.wantActive, active)
		})
	}
}

func TestUnsupportedJointTypesAreFatal(t *testing.T) {
	converter := NewJointConverter()
	for _, jointType := range []types.JointType{types.JointTypePlanar, types.JointTypeFloating, types.JointTypeUnknown} {
		t.Run(string(jointType), func(t *testing.T) {
			_, err := converter.Convert(t.Context(), types.Joint{Name: "j", Type: jointType})
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), "unsupported joint type")
		})
	}
}

func TestJointAnchorAndRotatedAxis(t *testing.T) {
	joint := types.Joint{
		Name:   "elbow",
		Type:   types.JointTypeRevolute,
		Parent: "upper",
		Child:  "lower",
		Origin: types.PoseFromRPY(mgl64.Vec3{0.3, 0, 0.1}, mgl64.Vec3{0, 0, math.Pi / 2}),
		Axis:   mgl64.Vec3{1, 0, 0},
	}
	info, err := NewJointConverter().Convert(t.Context(), joint)
	require.NoError(t, err)
	assert.Equal(t, "upper", info.Link0)
	assert.Equal(t, "lower", info.Link1)
	assert.Equal(t, mgl64.Vec3{0.3, 0, 0.1}, info.Anchor)
	assert.True(t, info.Axis.ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-9), "axis %v", info.Axis)
}

func TestFixedJointUsesPlaceholderAxisAndZeroLimits(t *testing.T) {
	joint := types.Joint{
		Name:   "mount",
		Type:   types.JointTypeFixed,
		Parent: "base",
		Child:  "camera",
		Origin: types.PoseFromRPY(mgl64.Vec3{}, mgl64.Vec3{0, 0, math.Pi / 2}),
		Axis:   mgl64.Vec3{0, 0, 1},
	}
	info, err := NewJointConverter().Convert(t.Context(), joint)
	require.NoError(t, err)
	assert.False(t, info.Active)
	assert.Equal(t, types.TargetJointRevolute, info.Type)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, info.Axis)
	require.NotNil(t, info.Limits)
	assert.Equal(t, types.JointLimitInfo{}, *info.Limits)
}

func TestJointLimits(t *testing.T) {
	limits := &types.JointLimits{Lower: -1, Upper: 2, Velocity: 3, Effort: 4}
	tests := []struct {
		name  string
		joint types.Joint
		want  *types.JointLimitInfo
	}{
		{
			name:  "active with limits copies them",
			joint: types.Joint{Name: "a", Type: types.JointTypeRevolute, Limits: limits},
			want:  &types.JointLimitInfo{Lower: -1, Upper: 2, Velocity: 3, Effort: 4},
		},
		{
			name:  "inactive with limits copies them",
			joint: types.Joint{Name: "b", Type: types.JointTypeFixed, Limits: limits},
			want:  &types.JointLimitInfo{Lower: -1, Upper: 2, Velocity: 3, Effort: 4},
		},
		{
			name:  "inactive without limits cannot move",
			joint: types.Joint{Name: "c", Type: types.JointTypeFixed},
			want:  &types.JointLimitInfo{},
		},
		{
			name:  "active without limits is unconstrained",
			joint: types.Joint{Name: "d", Type: types.JointTypeContinuous},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.joint.Origin = types.IdentityPose()
			info, err := NewJointConverter().Convert(t.Context(), tt.joint)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, info.Limits); diff != "" {
				t.Fatalf("unexpected limits (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMimicIsIgnored(t *testing.T) {
	joint := types.Joint{
		Name:   "finger",
		Type:   types.JointTypePrismatic,
		Origin: types.IdentityPose(),
		Axis:   mgl64.Vec3{0, 1, 0},
		Mimic:  &types.JointMimic{Joint: "gripper", Multiplier: -1},
	}
	info, err := NewJointConverter().Convert(t.Context(), joint)
	require.NoError(t, err)
	assert.Equal(t, types.TargetJointSlider, info.Type)
	assert.True(t, info.Axis.ApproxEqual(mgl64.Vec3{0, 1, 0}))
}

func TestConvertAllStopsOnUnsupportedJoint(t *testing.T) {
	joints := []types.Joint{
		{Name: "a", Type: types.JointTypeRevolute, Origin: types.IdentityPose()},
		{Name: "b", Type: types.JointTypeFloating, Origin: types.IdentityPose()},
	}
	infos, err := NewJointConverter().ConvertAll(t.Context(), joints, nil)
	require.Error(t, err)
	assert.Nil(t, infos)
}
