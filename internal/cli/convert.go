package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urdf2kin/internal/app"
)

type convertOptions struct {
	URDF       string
	JointOrder string
	Name       string
	Output     string
	Format     string
}

func newConvertCommand() *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert [urdf] [joint-order]",
		Short: "Convert a URDF document into a kinematic body",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConvertArgs(cmd, args); err != nil {
				return err
			}
			return runConvert(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.URDF, "urdf", "", "URDF document path")
	cmd.Flags().StringVar(&opts.JointOrder, "joint-order", "", "Joint order YAML path (optional)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Body name (default \"urdf\")")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the converted body to this path")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format: yaml, json or msgpack (default from extension)")

	_ = viper.BindPFlag("urdf", cmd.Flags().Lookup("urdf"))
	_ = viper.BindPFlag("joint_order", cmd.Flags().Lookup("joint-order"))
	_ = viper.BindPFlag("name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

// applyConvertArgs maps the positional arguments onto their flags so they
// take precedence over config the same way explicit flags do.
func applyConvertArgs(cmd *cobra.Command, args []string) error {
	for i, name := range []string{"urdf", "joint-order"} {
		if i >= len(args) {
			break
		}
		if err := cmd.Flags().Set(name, args[i]); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid " + name + " argument").
				WithCause(err)
		}
	}
	return nil
}

func runConvert(ctx context.Context, cmd *cobra.Command, opts convertOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	service := newAppService()
	result, err := service.Convert(ctx, app.ConvertRequest{
		URDFPath:       resolveString(cmd, opts.URDF, "urdf", "urdf"),
		JointOrderPath: resolveString(cmd, opts.JointOrder, "joint_order", "joint-order"),
		Name:           resolveString(cmd, opts.Name, "name", "name"),
		OutputPath:     resolveString(cmd, opts.Output, "output", "output"),
		Format:         resolveString(cmd, opts.Format, "format", "format"),
		PackagePaths:   viper.GetStringSlice("package_path"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("converted: %s (%d links, %d joints)\n", result.Name, result.Links, result.Joints)
	if result.OutputPath != "" {
		fmt.Printf("written: %s\n", result.OutputPath)
	}
	return nil
}
