package app

import (
	"urdf2kin/internal/adapters"
	"urdf2kin/internal/core"
	"urdf2kin/internal/ports"
)

type Service struct {
	Robots      ports.RobotModelPort
	JointOrder  ports.JointOrderPort
	Meshes      ports.MeshLoaderPort
	Builder     ports.KinBodyBuilderPort
	ModelWriter ports.ModelWriterPort
	ModelReader ports.ModelReaderPort
	NewPackages func(roots []string) PackageSource
}

// PackageSource resolves package:// URIs and can list what it sees.
type PackageSource interface {
	ports.PackageResolverPort
	ports.PackageIndexPort
}

func NewService() Service {
	model := adapters.NewModelFileAdapter()
	return Service{
		Robots:      adapters.NewURDFFileAdapter(),
		JointOrder:  adapters.NewJointOrderFileAdapter(),
		Meshes:      adapters.NewMeshLoaderAdapter(),
		Builder:     adapters.NewKinBodyBuilderAdapter(),
		ModelWriter: model,
		ModelReader: model,
		NewPackages: func(roots []string) PackageSource {
			return adapters.NewPackageLocatorAdapter(roots)
		},
	}
}

func (s Service) loader(packagePaths []string) (core.Loader, *core.URIResolver) {
	uris := core.NewURIResolver(s.NewPackages(packagePaths))
	geometry := core.NewGeometryConverter(uris, s.Meshes)
	return core.NewLoader(s.Robots, s.JointOrder, s.Builder, geometry), uris
}
