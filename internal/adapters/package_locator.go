package adapters

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/shared"
	"urdf2kin/internal/types"
)

// PackageLocatorAdapter resolves ROS package names to directories by
// scanning workspace roots, ROS_PACKAGE_PATH and the share directory of
// every AMENT_PREFIX_PATH entry. The first root that provides a package
// wins. Roots are scanned once, on first use.
type PackageLocatorAdapter struct {
	Roots      []string
	Workspace  ports.WorkspacePort
	PackageXML ports.PackageXMLPort

	once  sync.Once
	index map[string]string
	order []types.PackageLocation
	err   error
}

func NewPackageLocatorAdapter(roots []string) *PackageLocatorAdapter {
	return &PackageLocatorAdapter{
		Roots:      roots,
		Workspace:  NewWorkspaceAdapter(),
		PackageXML: NewPackageXMLAdapter(),
	}
}

// SearchRoots returns the explicit roots followed by the ones named in the
// ROS environment.
func (a *PackageLocatorAdapter) SearchRoots() []string {
	roots := append([]string(nil), a.Roots...)
	roots = append(roots, shared.SplitPathList(os.Getenv("ROS_PACKAGE_PATH"))...)
	for _, prefix := range shared.SplitPathList(os.Getenv("AMENT_PREFIX_PATH")) {
		roots = append(roots, filepath.Join(prefix, "share"))
	}
	return shared.UniqueStrings(roots)
}

func (a *PackageLocatorAdapter) PackagePath(name string) string {
	a.once.Do(a.scan)
	return a.index[name]
}

func (a *PackageLocatorAdapter) Packages() ([]types.PackageLocation, error) {
	a.once.Do(a.scan)
	if a.err != nil {
		return nil, a.err
	}
	packages := append([]types.PackageLocation(nil), a.order...)
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Name < packages[j].Name
	})
	return packages, nil
}

func (a *PackageLocatorAdapter) scan() {
	a.index = map[string]string{}
	var scanErr error
	scanned := 0
	for _, root := range a.SearchRoots() {
		if _, err := os.Stat(root); err != nil {
			log.Debug().Str("root", root).Msg("package root does not exist")
			continue
		}
		manifests, err := a.Workspace.FindPackageXML(root)
		if err != nil {
			log.Warn().Err(err).Str("root", root).Msg("failed to scan package root")
			scanErr = err
			continue
		}
		scanned++
		for _, manifest := range manifests {
			name, err := a.PackageXML.ParsePackageName(manifest)
			if err != nil || name == "" {
				log.Warn().Err(err).Str("path", manifest).Msg("skipping unreadable package.xml")
				continue
			}
			if existing, ok := a.index[name]; ok {
				log.Debug().
					Str("package", name).
					Str("kept", existing).
					Str("ignored", filepath.Dir(manifest)).
					Msg("package shadowed by earlier root")
				continue
			}
			dir := filepath.Dir(manifest)
			a.index[name] = dir
			a.order = append(a.order, types.PackageLocation{Name: name, Dir: dir})
		}
	}
	// A root that fails to scan only matters when nothing else could be read.
	if scanned == 0 {
		a.err = scanErr
	}
	log.Debug().Int("packages", len(a.index)).Msg("package roots scanned")
}

var (
	_ ports.PackageResolverPort = (*PackageLocatorAdapter)(nil)
	_ ports.PackageIndexPort    = (*PackageLocatorAdapter)(nil)
)
