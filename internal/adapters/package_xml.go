package adapters

import (
	"encoding/xml"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urdf2kin/internal/ports"
)

type PackageXMLAdapter struct {
	mu    sync.Mutex
	cache map[string]packageXMLCacheEntry
}

func NewPackageXMLAdapter() *PackageXMLAdapter {
	return &PackageXMLAdapter{cache: map[string]packageXMLCacheEntry{}}
}

type packageXML struct {
	Name string `xml:"name"`
}

type packageXMLCacheEntry struct {
	modTime time.Time
	name    string
}

func (a *PackageXMLAdapter) ParsePackageName(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.name, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	var pkg packageXML
	if err := xml.Unmarshal(content, &pkg); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml").
			WithCause(err)
	}
	entry := packageXMLCacheEntry{
		modTime: info.ModTime(),
		name:    strings.TrimSpace(pkg.Name),
	}
	a.mu.Lock()
	a.cache[path] = entry
	a.mu.Unlock()
	return entry.name, nil
}

var _ ports.PackageXMLPort = (*PackageXMLAdapter)(nil)
