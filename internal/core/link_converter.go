package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"

	"urdf2kin/internal/types"
)

// LinkConverter builds one target link record from one URDF link.
type LinkConverter struct {
	Geometry GeometryConverter
}

func NewLinkConverter(geometry GeometryConverter) LinkConverter {
	return LinkConverter{Geometry: geometry}
}

func (c LinkConverter) Convert(ctx context.Context, robot types.Robot, link types.Link) (types.LinkInfo, error) {
	assert.NotEmpty(ctx, link.Name, "link name must be set")
	info := types.LinkInfo{
		Name:      link.Name,
		Transform: types.IdentityPose(),
		MassFrame: types.IdentityPose(),
	}

	// The link frame is taken to be its parent joint's attachment transform.
	if link.ParentJoint != "" {
		if joint, ok := robot.Joint(link.ParentJoint); ok {
			info.Transform = joint.Origin
		}
	}

	if inertial := link.Inertial; inertial != nil {
		info.Mass = inertial.Mass
		info.MassFrame = inertial.Origin
		info.InertiaMoments = mgl64.Vec3{inertial.Ixx, inertial.Iyy, inertial.Izz}
	}

	if collision := link.Collision; collision != nil {
		geom, err := c.Geometry.Convert(ctx, link.Name, collision.Geometry, types.GeometryRoleCollision)
		if err != nil {
			return types.LinkInfo{}, err
		}
		geom.Transform = collision.Origin
		geom.Visible = false
		geom.Modifiable = false
		info.Geometries = append(info.Geometries, geom)
	}

	if visual := link.Visual; visual != nil {
		geom, err := c.Geometry.Convert(ctx, link.Name, visual.Geometry, types.GeometryRoleVisual)
		if err != nil {
			return types.LinkInfo{}, err
		}
		// Visual placement follows the collision origin when one exists.
		geom.Transform = visual.Origin
		if link.Collision != nil {
			geom.Transform = link.Collision.Origin
		}
		geom.Visible = true
		geom.Modifiable = false
		info.Geometries = append(info.Geometries, ApplyMaterial(geom, visual.Material))
	}

	log.Ctx(ctx).Debug().
		Str("link", link.Name).
		Int("geometries", len(info.Geometries)).
		Msg("link converted")
	return info, nil
}

// ConvertAll converts every link in document order in a single pass.
func (c LinkConverter) ConvertAll(ctx context.Context, robot types.Robot) ([]types.LinkInfo, error) {
	links := make([]types.LinkInfo, 0, len(robot.Links))
	for _, link := range robot.Links {
		info, err := c.Convert(ctx, robot, link)
		if err != nil {
			return nil, err
		}
		links = append(links, info)
	}
	return links, nil
}
