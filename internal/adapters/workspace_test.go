package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceAdapter_FindPackageXML(t *testing.T) {
	root := t.TempDir()
	writePackage(t, filepath.Join(root, "src", "pkg_a"), "pkg_a")
	writePackage(t, filepath.Join(root, "src", "group", "pkg_b"), "pkg_b")
	// Random other file should be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "pkg_a", "CMakeLists.txt"), []byte("cmake"), 0644))

	paths, err := NewWorkspaceAdapter().FindPackageXML(root)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestWorkspaceAdapter_DoesNotDescendIntoPackages(t *testing.T) {
	root := t.TempDir()
	writePackage(t, filepath.Join(root, "outer"), "outer")
	writePackage(t, filepath.Join(root, "outer", "test", "fixture_pkg"), "fixture_pkg")

	paths, err := NewWorkspaceAdapter().FindPackageXML(root)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(root, "outer", "package.xml"), paths[0])
}

func TestWorkspaceAdapter_SkipsBuildDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"build", "log", ".git", "devel"} {
		writePackage(t, filepath.Join(root, dir, "pkg"), "pkg")
	}
	writePackage(t, filepath.Join(root, "src", "real_pkg"), "real_pkg")

	paths, err := NewWorkspaceAdapter().FindPackageXML(root)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.Contains(t, paths[0], "real_pkg")
}

func TestWorkspaceAdapter_HonoursIgnoreMarkers(t *testing.T) {
	root := t.TempDir()
	for _, marker := range ignoreMarkers {
		dir := filepath.Join(root, "ignored_"+marker)
		writePackage(t, filepath.Join(dir, "pkg"), "pkg")
		require.NoError(t, os.WriteFile(filepath.Join(dir, marker), nil, 0644))
	}
	writePackage(t, filepath.Join(root, "kept"), "kept")

	paths, err := NewWorkspaceAdapter().FindPackageXML(root)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Contains(t, paths[0], "kept")
}

func TestWorkspaceAdapter_ScansRootNamedLikeArtefactDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "build")
	writePackage(t, filepath.Join(root, "pkg"), "pkg")

	paths, err := NewWorkspaceAdapter().FindPackageXML(root)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestWorkspaceAdapter_EmptyRootErrors(t *testing.T) {
	_, err := NewWorkspaceAdapter().FindPackageXML("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace root is empty")
}

func TestWorkspaceAdapter_NonExistentRootErrors(t *testing.T) {
	_, err := NewWorkspaceAdapter().FindPackageXML("/nonexistent/path/that/does/not/exist")
	require.Error(t, err)
}

func TestWorkspaceAdapter_EmptyWorkspaceReturnsNil(t *testing.T) {
	paths, err := NewWorkspaceAdapter().FindPackageXML(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, paths)
}
