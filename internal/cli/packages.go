package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urdf2kin/internal/app"
)

func newPackagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List ROS packages visible to package:// resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackages(cmd.Context())
		},
	}
}

func runPackages(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	service := newAppService()
	result, err := service.Packages(ctx, app.PackagesRequest{
		PackagePaths: viper.GetStringSlice("package_path"),
	})
	if err != nil {
		return err
	}
	for _, pkg := range result.Packages {
		fmt.Printf("%s\t%s\n", pkg.Name, pkg.Dir)
	}
	return nil
}
