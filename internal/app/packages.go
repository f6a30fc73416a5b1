package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Packages lists the ROS packages visible to package:// resolution.
func (s Service) Packages(ctx context.Context, req PackagesRequest) (PackagesResult, error) {
	source := s.NewPackages(req.PackagePaths)
	packages, err := source.Packages()
	if err != nil {
		return PackagesResult{}, err
	}
	log.Ctx(ctx).Debug().Int("packages", len(packages)).Msg("packages listed")
	return PackagesResult{Packages: packages}, nil
}
