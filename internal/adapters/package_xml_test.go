package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackageXML = `<?xml version="1.0"?>
<package format="3">
  <name> test_arm_description </name>
  <version>1.0.0</version>
  <description>Test robot description</description>
  <depend>urdf</depend>
</package>
`

func writePackage(t *testing.T, dir string, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "package.xml")
	content := `<?xml version="1.0"?><package format="3"><name>` + name + `</name></package>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParsePackageName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.xml")
	require.NoError(t, os.WriteFile(path, []byte(testPackageXML), 0644))

	name, err := NewPackageXMLAdapter().ParsePackageName(path)
	require.NoError(t, err)
	assert.Equal(t, "test_arm_description", name)
}

func TestParsePackageNameRefreshesOnModification(t *testing.T) {
	dir := t.TempDir()
	path := writePackage(t, dir, "first")
	adapter := NewPackageXMLAdapter()

	name, err := adapter.ParsePackageName(path)
	require.NoError(t, err)
	assert.Equal(t, "first", name)

	writePackage(t, dir, "second")
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	name, err = adapter.ParsePackageName(path)
	require.NoError(t, err)
	assert.Equal(t, "second", name)
}

func TestParsePackageNameErrors(t *testing.T) {
	adapter := NewPackageXMLAdapter()

	_, err := adapter.ParsePackageName(filepath.Join(t.TempDir(), "package.xml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	path := filepath.Join(t.TempDir(), "package.xml")
	require.NoError(t, os.WriteFile(path, []byte("<package><name>"), 0644))
	_, err = adapter.ParsePackageName(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
