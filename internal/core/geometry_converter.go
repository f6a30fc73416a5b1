package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/types"
)

// GeometryConverter encodes one URDF geometry as a target geometry record.
// Collision meshes are loaded eagerly; visual geometry is always a
// zero-radius sphere that carries the render mesh path.
type GeometryConverter struct {
	URIs   *URIResolver
	Meshes ports.MeshLoaderPort
}

func NewGeometryConverter(uris *URIResolver, meshes ports.MeshLoaderPort) GeometryConverter {
	return GeometryConverter{URIs: uris, Meshes: meshes}
}

func (c GeometryConverter) Convert(ctx context.Context, link string, geom types.Geometry, role types.GeometryRole) (types.GeometryInfo, error) {
	switch geom.Kind {
	case types.GeometryKindSphere, types.GeometryKindBox, types.GeometryKindCylinder, types.GeometryKindMesh:
	default:
		return types.GeometryInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported geometry kind %q on link %s", geom.Kind, link))
	}
	switch role {
	case types.GeometryRoleCollision:
		return c.collision(ctx, link, geom), nil
	case types.GeometryRoleVisual:
		return c.visual(ctx, link, geom), nil
	default:
		return types.GeometryInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported geometry role %q on link %s", role, link))
	}
}

func (c GeometryConverter) collision(ctx context.Context, link string, geom types.Geometry) types.GeometryInfo {
	info := types.GeometryInfo{Role: types.GeometryRoleCollision, Transform: types.IdentityPose()}
	switch geom.Kind {
	case types.GeometryKindSphere:
		info.Type = types.GeometryTypeSphere
		info.GeomData = mgl64.Vec3{geom.Radius, geom.Radius, geom.Radius}
	case types.GeometryKindBox:
		info.Type = types.GeometryTypeBox
		info.GeomData = geom.Size.Mul(0.5)
	case types.GeometryKindCylinder:
		info.Type = types.GeometryTypeCylinder
		info.GeomData = mgl64.Vec3{geom.Radius, geom.Length, 0}
	case types.GeometryKindMesh:
		info.Type = types.GeometryTypeTriMesh
		info.CollisionFilename = c.resolve(ctx, geom.Filename)
		info.CollisionMesh = c.loadMesh(ctx, link, info.CollisionFilename)
	}
	return info
}

func (c GeometryConverter) visual(ctx context.Context, link string, geom types.Geometry) types.GeometryInfo {
	info := types.GeometryInfo{
		Role:      types.GeometryRoleVisual,
		Type:      types.GeometryTypeSphere,
		Transform: types.IdentityPose(),
		Visible:   true,
	}
	if geom.Kind != types.GeometryKindMesh {
		log.Ctx(ctx).Warn().
			Str("link", link).
			Str("kind", string(geom.Kind)).
			Msg("only trimeshes are supported for visual geometry")
		return info
	}
	info.RenderFilename = c.resolve(ctx, geom.Filename)
	info.RenderScale = mgl64.Vec3{1, 1, 1}
	return info
}

func (c GeometryConverter) resolve(ctx context.Context, uri string) string {
	if c.URIs == nil {
		return ""
	}
	return c.URIs.Resolve(ctx, uri)
}

func (c GeometryConverter) loadMesh(ctx context.Context, link string, path string) *types.TriMesh {
	if c.Meshes == nil || path == "" {
		log.Ctx(ctx).Warn().Str("link", link).Str("path", path).Msg("failed loading collision mesh")
		return nil
	}
	mesh, err := c.Meshes.LoadTriMesh(path)
	if err != nil || mesh == nil {
		log.Ctx(ctx).Warn().Err(err).Str("link", link).Str("path", path).Msg("failed loading collision mesh")
		return nil
	}
	return mesh
}

// ApplyMaterial copies the material color into both color slots of a
// visual record. A nil material leaves the record untouched.
func ApplyMaterial(info types.GeometryInfo, material *types.Material) types.GeometryInfo {
	if material == nil {
		return info
	}
	info.DiffuseColor = material.Color
	info.AmbientColor = material.Color
	return info
}
