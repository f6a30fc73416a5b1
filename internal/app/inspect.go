package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urdf2kin/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("model path is required")
	}
	format, err := modelFormat(req.Format, path)
	if err != nil {
		return InspectResult{}, err
	}
	body, err := s.ModelReader.ReadKinBody(path, format)
	if err != nil {
		return InspectResult{}, err
	}
	return summarizeBody(body), nil
}

func summarizeBody(body types.KinBody) InspectResult {
	result := InspectResult{
		Name:         body.Name,
		ID:           body.ID,
		ActiveJoints: len(body.ActiveJoints()),
		Adjacent:     body.Adjacent,
	}
	for _, link := range body.Links {
		summary := InspectLinkSummary{Name: link.Name, Mass: link.Mass}
		for _, geom := range link.Geometries {
			switch geom.Role {
			case types.GeometryRoleCollision:
				summary.Collision++
				summary.Triangles += geom.CollisionMesh.TriangleCount()
			case types.GeometryRoleVisual:
				summary.Visual++
				if geom.RenderFilename != "" {
					summary.RenderMesh = geom.RenderFilename
				}
			}
		}
		result.Links = append(result.Links, summary)
	}
	for _, joint := range body.Joints {
		result.Joints = append(result.Joints, InspectJointSummary{
			Name:   joint.Name,
			Link0:  joint.Link0,
			Link1:  joint.Link1,
			Type:   joint.Type,
			Active: joint.Active,
			Limits: joint.Limits,
		})
	}
	return result
}
