package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/types"
)

// KinBodyBuilderAdapter assembles a body from converted records. It checks
// link-name uniqueness and that every joint connects two known links, then
// registers the body under a fresh ID.
type KinBodyBuilderAdapter struct {
	NewID func() string
}

func NewKinBodyBuilderAdapter() KinBodyBuilderAdapter {
	return KinBodyBuilderAdapter{NewID: func() string { return uuid.New().String() }}
}

func (a KinBodyBuilderAdapter) Build(name string, links []types.LinkInfo, joints []types.JointInfo) (types.KinBody, error) {
	if len(links) == 0 {
		return types.KinBody{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("body requires at least one link")
	}
	known := make(map[string]struct{}, len(links))
	for _, link := range links {
		if _, dup := known[link.Name]; dup {
			return types.KinBody{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate link %s", link.Name))
		}
		known[link.Name] = struct{}{}
	}
	for _, joint := range joints {
		for _, linkName := range []string{joint.Link0, joint.Link1} {
			if _, ok := known[linkName]; !ok {
				return types.KinBody{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("joint %s references unknown link %s", joint.Name, linkName))
			}
		}
	}
	id := ""
	if a.NewID != nil {
		id = a.NewID()
	}
	return types.KinBody{
		ID:     id,
		Name:   name,
		Links:  append([]types.LinkInfo(nil), links...),
		Joints: append([]types.JointInfo(nil), joints...),
	}, nil
}

var _ ports.KinBodyBuilderPort = KinBodyBuilderAdapter{}
