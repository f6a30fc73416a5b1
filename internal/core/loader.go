package core

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/types"
)

// DefaultBodyName is used when a load request does not name the body.
const DefaultBodyName = "urdf"

type LoadRequest struct {
	URDFPath       string
	JointOrderPath string
	Name           string
}

// Loader drives a full conversion: parse, convert links, order and
// convert joints, then hand both collections to the body builder.
// Nothing reaches the builder unless every link and joint converted.
type Loader struct {
	Robots     ports.RobotModelPort
	JointOrder ports.JointOrderPort
	Builder    ports.KinBodyBuilderPort
	Links      LinkConverter
	Joints     JointConverter
}

func NewLoader(robots ports.RobotModelPort, order ports.JointOrderPort, builder ports.KinBodyBuilderPort, geometry GeometryConverter) Loader {
	return Loader{
		Robots:     robots,
		JointOrder: order,
		Builder:    builder,
		Links:      NewLinkConverter(geometry),
		Joints:     NewJointConverter(),
	}
}

func (l Loader) Load(ctx context.Context, req LoadRequest) (types.KinBody, error) {
	urdfPath := strings.TrimSpace(req.URDFPath)
	if urdfPath == "" {
		return types.KinBody{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("urdf path is required")
	}
	robot, err := l.Robots.LoadRobot(urdfPath)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("path", urdfPath).Msg("unable to open URDF file")
		return types.KinBody{}, err
	}

	doc := l.loadJointOrder(ctx, req.JointOrderPath)

	links, err := l.Links.ConvertAll(ctx, robot)
	if err != nil {
		return types.KinBody{}, err
	}
	var order types.JointOrder
	if doc != nil {
		order = doc.Joints
	}
	joints, err := l.Joints.ConvertAll(ctx, robot.Joints, order)
	if err != nil {
		return types.KinBody{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultBodyName
	}
	body, err := l.Builder.Build(name, links, joints)
	if err != nil {
		return types.KinBody{}, err
	}
	if doc != nil {
		body.Adjacent = adjacentPairs(ctx, body, doc.Adjacent)
	}
	log.Ctx(ctx).Debug().
		Str("body", body.Name).
		Int("links", len(body.Links)).
		Int("joints", len(body.Joints)).
		Msg("urdf converted")
	return body, nil
}

// loadJointOrder treats a missing, empty or unreadable document as absent.
func (l Loader) loadJointOrder(ctx context.Context, path string) *types.JointOrderDocument {
	path = strings.TrimSpace(path)
	if path == "" || l.JointOrder == nil {
		return nil
	}
	doc, err := l.JointOrder.LoadJointOrder(path)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("ignoring joint order document")
		return nil
	}
	return doc
}

func adjacentPairs(ctx context.Context, body types.KinBody, entries [][]string) [][2]string {
	var pairs [][2]string
	for _, entry := range entries {
		if len(entry) != 2 {
			log.Ctx(ctx).Warn().Strs("entry", entry).Msg("adjacent entry must name two links")
			continue
		}
		_, ok0 := body.Link(entry[0])
		_, ok1 := body.Link(entry[1])
		if !ok0 || !ok1 {
			log.Ctx(ctx).Warn().Strs("entry", entry).Msg("adjacent entry names an unknown link")
			continue
		}
		pairs = append(pairs, [2]string{entry[0], entry[1]})
	}
	return pairs
}
