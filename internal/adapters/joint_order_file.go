package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/types"
)

// JointOrderFileAdapter reads the joint-order YAML document:
//
//	joints:
//	  shoulder: 0
//	  elbow: 1
//	adjacent:
//	  - [base, arm]
type JointOrderFileAdapter struct{}

func NewJointOrderFileAdapter() JointOrderFileAdapter {
	return JointOrderFileAdapter{}
}

func (a JointOrderFileAdapter) LoadJointOrder(path string) (*types.JointOrderDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("joint order file not found").
			WithCause(err)
	}
	var doc types.JointOrderDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse joint order yaml").
			WithCause(err)
	}
	return &doc, nil
}

var _ ports.JointOrderPort = JointOrderFileAdapter{}
