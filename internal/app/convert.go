package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urdf2kin/internal/core"
	"urdf2kin/internal/shared"
	"urdf2kin/internal/types"
)

func (s Service) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	urdfPath := strings.TrimSpace(req.URDFPath)
	if urdfPath == "" {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("urdf path is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	format, err := modelFormat(req.Format, outputPath)
	if err != nil {
		return ConvertResult{}, err
	}

	loader, uris := s.loader(req.PackagePaths)
	body, err := loader.Load(ctx, core.LoadRequest{
		URDFPath:       urdfPath,
		JointOrderPath: req.JointOrderPath,
		Name:           req.Name,
	})
	if err != nil {
		return ConvertResult{}, err
	}
	log.Ctx(ctx).Debug().Int("package_lookups", uris.Lookups()).Msg("package uris resolved")

	if outputPath != "" {
		if err := s.ModelWriter.WriteKinBody(outputPath, format, body); err != nil {
			return ConvertResult{}, err
		}
	}
	return ConvertResult{
		Name:       body.Name,
		ID:         body.ID,
		Links:      len(body.Links),
		Joints:     len(body.Joints),
		OutputPath: outputPath,
		Body:       body,
	}, nil
}

// modelFormat picks the explicit format, or infers it from the file
// extension when none is given.
func modelFormat(explicit string, path string) (types.ModelFormat, error) {
	value := strings.ToLower(strings.TrimSpace(explicit))
	if value == "" {
		value = shared.FormatFromPath(path)
	}
	switch format := types.ModelFormat(value); format {
	case types.ModelFormatYAML, types.ModelFormatJSON, types.ModelFormatMsgpack:
		return format, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format " + explicit)
	}
}
