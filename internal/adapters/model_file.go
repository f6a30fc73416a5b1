package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"urdf2kin/internal/ports"
	"urdf2kin/internal/types"
)

// ModelFileAdapter writes and reads exported bodies in YAML, JSON or
// msgpack.
type ModelFileAdapter struct{}

func NewModelFileAdapter() ModelFileAdapter {
	return ModelFileAdapter{}
}

func (a ModelFileAdapter) WriteKinBody(path string, format types.ModelFormat, body types.KinBody) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is empty")
	}
	data, err := encodeKinBody(format, body)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write model file").
			WithCause(err)
	}
	return nil
}

func (a ModelFileAdapter) ReadKinBody(path string, format types.ModelFormat) (types.KinBody, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.KinBody{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("model file not found").
			WithCause(err)
	}
	var body types.KinBody
	switch format {
	case types.ModelFormatYAML:
		err = yaml.Unmarshal(data, &body)
	case types.ModelFormatJSON:
		err = json.Unmarshal(data, &body)
	case types.ModelFormatMsgpack:
		err = msgpack.Unmarshal(data, &body)
	default:
		return types.KinBody{}, unsupportedFormat(format)
	}
	if err != nil {
		return types.KinBody{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to decode %s model", format)).
			WithCause(err)
	}
	return body, nil
}

func encodeKinBody(format types.ModelFormat, body types.KinBody) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.ModelFormatYAML:
		data, err = yaml.Marshal(body)
	case types.ModelFormatJSON:
		data, err = json.MarshalIndent(body, "", "  ")
	case types.ModelFormatMsgpack:
		data, err = msgpack.Marshal(body)
	default:
		return nil, unsupportedFormat(format)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to encode %s model", format)).
			WithCause(err)
	}
	return data, nil
}

func unsupportedFormat(format types.ModelFormat) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unsupported model format %q", format))
}

var (
	_ ports.ModelWriterPort = ModelFileAdapter{}
	_ ports.ModelReaderPort = ModelFileAdapter{}
)
