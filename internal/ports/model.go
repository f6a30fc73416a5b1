package ports

import "urdf2kin/internal/types"

// RobotModelPort parses a URDF document into the source model.
type RobotModelPort interface {
	LoadRobot(path string) (types.Robot, error)
}

// JointOrderPort reads the optional joint-order side-channel document.
// A nil document with a nil error means there is nothing to apply.
type JointOrderPort interface {
	LoadJointOrder(path string) (*types.JointOrderDocument, error)
}

// MeshLoaderPort reads a triangle mesh from disk. A nil mesh means the
// file could not be loaded.
type MeshLoaderPort interface {
	LoadTriMesh(path string) (*types.TriMesh, error)
}

// KinBodyBuilderPort assembles the flat link and joint collections into a
// live body.
type KinBodyBuilderPort interface {
	Build(name string, links []types.LinkInfo, joints []types.JointInfo) (types.KinBody, error)
}

// ModelWriterPort persists a converted body.
type ModelWriterPort interface {
	WriteKinBody(path string, format types.ModelFormat, body types.KinBody) error
}

// ModelReaderPort loads a previously exported body.
type ModelReaderPort interface {
	ReadKinBody(path string, format types.ModelFormat) (types.KinBody, error)
}
