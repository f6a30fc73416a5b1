package core

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"urdf2kin/internal/ports"
)

const (
	fileScheme    = "file://"
	packageScheme = "package://"
)

// URIResolver turns file:// and package:// URIs into filesystem paths.
// Package directories are memoized per resolver, including failed lookups,
// so a package is asked of the underlying resolver at most once.
type URIResolver struct {
	packages ports.PackageResolverPort

	mu      sync.Mutex
	cache   map[string]string
	lookups int
}

func NewURIResolver(packages ports.PackageResolverPort) *URIResolver {
	return &URIResolver{
		packages: packages,
		cache:    map[string]string{},
	}
}

// Resolve returns the filesystem path for uri, or "" when it cannot be
// resolved. It never fails the conversion.
func (r *URIResolver) Resolve(ctx context.Context, uri string) string {
	switch {
	case strings.HasPrefix(uri, fileScheme):
		return filepath.FromSlash(strings.TrimPrefix(uri, fileScheme))
	case strings.HasPrefix(uri, packageScheme):
		return r.resolvePackage(ctx, strings.TrimPrefix(uri, packageScheme))
	default:
		log.Ctx(ctx).Warn().Str("uri", uri).Msg("cannot handle mesh URI type")
		return ""
	}
}

func (r *URIResolver) resolvePackage(ctx context.Context, rest string) string {
	name, relative := rest, ""
	if idx := strings.Index(rest, "/"); idx >= 0 {
		name, relative = rest[:idx], rest[idx:]
	}
	dir := r.packageDir(name)
	if dir == "" {
		log.Ctx(ctx).Warn().Str("package", name).Msg("unable to find package")
		return ""
	}
	return filepath.Join(dir, filepath.FromSlash(relative))
}

func (r *URIResolver) packageDir(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dir, ok := r.cache[name]; ok {
		return dir
	}
	dir := ""
	if r.packages != nil {
		dir = r.packages.PackagePath(name)
	}
	r.lookups++
	r.cache[name] = dir
	return dir
}

// Lookups reports how many times the package resolver has been consulted.
func (r *URIResolver) Lookups() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups
}
