package ports

import "urdf2kin/internal/types"

// PackageXMLPort reads package.xml manifests.
type PackageXMLPort interface {
	// ParsePackageName returns the <name> element of a package.xml file.
	ParsePackageName(path string) (string, error)
}

// WorkspacePort discovers package.xml files within workspace roots.
type WorkspacePort interface {
	FindPackageXML(root string) ([]string, error)
}

// PackageResolverPort maps a ROS package name to its directory. An empty
// string means the package could not be found.
type PackageResolverPort interface {
	PackagePath(name string) string
}

// PackageIndexPort lists every package a resolver can see.
type PackageIndexPort interface {
	Packages() ([]types.PackageLocation, error)
}
