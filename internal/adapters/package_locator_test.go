package adapters

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urdf2kin/internal/types"
)

func TestPackageLocatorResolvesWorkspacePackages(t *testing.T) {
	t.Setenv("ROS_PACKAGE_PATH", "")
	t.Setenv("AMENT_PREFIX_PATH", "")
	root := t.TempDir()
	writePackage(t, filepath.Join(root, "src", "arm_description"), "arm_description")
	writePackage(t, filepath.Join(root, "src", "gripper"), "gripper")

	locator := NewPackageLocatorAdapter([]string{root})
	assert.Equal(t, filepath.Join(root, "src", "arm_description"), locator.PackagePath("arm_description"))
	assert.Equal(t, filepath.Join(root, "src", "gripper"), locator.PackagePath("gripper"))
	assert.Empty(t, locator.PackagePath("missing"))
}

func TestPackageLocatorSearchesROSEnvironment(t *testing.T) {
	rosRoot := t.TempDir()
	prefix := t.TempDir()
	writePackage(t, filepath.Join(rosRoot, "legacy_pkg"), "legacy_pkg")
	writePackage(t, filepath.Join(prefix, "share", "installed_pkg"), "installed_pkg")
	t.Setenv("ROS_PACKAGE_PATH", rosRoot)
	t.Setenv("AMENT_PREFIX_PATH", prefix)

	locator := NewPackageLocatorAdapter(nil)
	assert.Equal(t, filepath.Join(rosRoot, "legacy_pkg"), locator.PackagePath("legacy_pkg"))
	assert.Equal(t, filepath.Join(prefix, "share", "installed_pkg"), locator.PackagePath("installed_pkg"))
}

func TestPackageLocatorFirstRootWins(t *testing.T) {
	t.Setenv("ROS_PACKAGE_PATH", "")
	t.Setenv("AMENT_PREFIX_PATH", "")
	overlay := t.TempDir()
	underlay := t.TempDir()
	writePackage(t, filepath.Join(overlay, "robot"), "robot")
	writePackage(t, filepath.Join(underlay, "robot"), "robot")
	writePackage(t, filepath.Join(underlay, "extra"), "extra")

	locator := NewPackageLocatorAdapter([]string{overlay, underlay, filepath.Join(overlay, "missing")})
	packages, err := locator.Packages()
	require.NoError(t, err)
	want := []types.PackageLocation{
		{Name: "extra", Dir: filepath.Join(underlay, "extra")},
		{Name: "robot", Dir: filepath.Join(overlay, "robot")},
	}
	if diff := cmp.Diff(want, packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
}

type failingWorkspace struct {
	WorkspaceAdapter
	failRoot string
}

func (w failingWorkspace) FindPackageXML(root string) ([]string, error) {
	if root == w.failRoot {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("walk failed")
	}
	return w.WorkspaceAdapter.FindPackageXML(root)
}

func TestPackageLocatorToleratesOneFailingRoot(t *testing.T) {
	t.Setenv("ROS_PACKAGE_PATH", "")
	t.Setenv("AMENT_PREFIX_PATH", "")
	good := t.TempDir()
	bad := t.TempDir()
	writePackage(t, filepath.Join(good, "arm_description"), "arm_description")

	locator := NewPackageLocatorAdapter([]string{bad, good})
	locator.Workspace = failingWorkspace{WorkspaceAdapter: NewWorkspaceAdapter(), failRoot: bad}

	packages, err := locator.Packages()
	require.NoError(t, err)
	want := []types.PackageLocation{{Name: "arm_description", Dir: filepath.Join(good, "arm_description")}}
	if diff := cmp.Diff(want, packages); diff != "" {
		t.Fatalf("packages mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageLocatorFailsWhenNoRootScans(t *testing.T) {
	t.Setenv("ROS_PACKAGE_PATH", "")
	t.Setenv("AMENT_PREFIX_PATH", "")
	bad := t.TempDir()

	locator := NewPackageLocatorAdapter([]string{bad})
	locator.Workspace = failingWorkspace{WorkspaceAdapter: NewWorkspaceAdapter(), failRoot: bad}

	_, err := locator.Packages()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Empty(t, locator.PackagePath("arm_description"))
}
