package types

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPoseFromRPY(t *testing.T) {
	tests := []struct {
		name  string
		rpy   mgl64.Vec3
		in    mgl64.Vec3
		wantV mgl64.Vec3
	}{
		{name: "identity", rpy: mgl64.Vec3{}, in: mgl64.Vec3{1, 2, 3}, wantV: mgl64.Vec3{1, 2, 3}},
		{name: "yaw quarter turn", rpy: mgl64.Vec3{0, 0, math.Pi / 2}, in: mgl64.Vec3{1, 0, 0}, wantV: mgl64.Vec3{0, 1, 0}},
		{name: "roll quarter turn", rpy: mgl64.Vec3{math.Pi / 2, 0, 0}, in: mgl64.Vec3{0, 1, 0}, wantV: mgl64.Vec3{0, 0, 1}},
		// roll is applied first: z -> -y under roll, then yaw carries -y to +x.
		{name: "roll then yaw", rpy: mgl64.Vec3{math.Pi / 2, 0, math.Pi / 2}, in: mgl64.Vec3{0, 0, 1}, wantV: mgl64.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose := PoseFromRPY(mgl64.Vec3{0.1, 0.2, 0.3}, tt.rpy)
			assert.Equal(t, mgl64.Vec3{0.1, 0.2, 0.3}, pose.Position)
			got := pose.Rotate(tt.in)
			assert.True(t, got.ApproxEqualThreshold(tt.wantV, 1e-9), "got %v want %v", got, tt.wantV)
		})
	}
}

func TestPoseApproxEqual(t *testing.T) {
	assert.True(t, IdentityPose().ApproxEqual(PoseFromRPY(mgl64.Vec3{}, mgl64.Vec3{})))
	assert.False(t, IdentityPose().ApproxEqual(PoseFromRPY(mgl64.Vec3{}, mgl64.Vec3{0, 0, 0.5})))
}
