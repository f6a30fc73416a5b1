package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"urdf2kin/internal/app"
)

type inspectOptions struct {
	Format string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <model>",
		Short: "Summarise an exported kinematic body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "", "Model format: yaml, json or msgpack (default from extension)")
	return cmd
}

func runInspect(path string, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{Path: path, Format: opts.Format})
	if err != nil {
		return err
	}

	fmt.Printf("body: %s (%s)\n", result.Name, result.ID)
	fmt.Printf("links: %d\n", len(result.Links))
	for _, link := range result.Links {
		fmt.Printf("- %s mass=%g collision=%d visual=%d triangles=%d\n",
			link.Name, link.Mass, link.Collision, link.Visual, link.Triangles)
		if link.RenderMesh != "" {
			fmt.Printf("  render: %s\n", link.RenderMesh)
		}
	}
	fmt.Printf("joints: %d (%d active)\n", len(result.Joints), result.ActiveJoints)
	for _, joint := range result.Joints {
		limits := "unlimited"
		if joint.Limits != nil {
			limits = fmt.Sprintf("[%g, %g]", joint.Limits.Lower, joint.Limits.Upper)
		}
		fmt.Printf("- %s %s -> %s %s active=%t %s\n",
			joint.Name, joint.Link0, joint.Link1, joint.Type, joint.Active, limits)
	}
	for _, pair := range result.Adjacent {
		fmt.Printf("adjacent: %s %s\n", pair[0], pair[1])
	}
	return nil
}
