package data

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/codec"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// Encode/decode operations.
const (
	OpBase64Encode = "base64_encode"
	OpBase64Decode = "base64_decode"
	OpURLEncode    = "url_encode"
	OpURLDecode    = "url_decode"
)

var codecOperations = []string{OpBase64Encode, OpBase64Decode, OpURLEncode, OpURLDecode}

// CodecOps handles hashing and text encodings
type CodecOps struct {
	*DataOps
}

// GetTools returns hashing and encoding tool definitions
func (c *CodecOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "data.hash_data",
			Name:        "Hash Data",
			Description: "Generate hash values for data",
			Parameters: []types.Parameter{
				{Name: "data", Type: "string", Description: "Text to hash", Required: true},
				{Name: "algorithm", Type: "string", Description: "Hash algorithm (default: sha256)", Required: false, Default: string(codec.SHA256), Enum: codec.Algorithms()},
			},
			Returns: "string",
		},
		{
			ID:          "data.encode_decode",
			Name:        "Encode/Decode",
			Description: "Encode or decode data using Base64 or URL encoding",
			Parameters: []types.Parameter{
				{Name: "data", Type: "string", Description: "Text to transform", Required: true},
				{Name: "operation", Type: "string", Description: "Transform to apply", Required: true, Enum: codecOperations},
			},
			Returns: "string",
		},
	}
}

// HashData reports the hex digest of data
func (c *CodecOps) HashData(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "generating hash"

	input, err := params.String(p, "data")
	if err != nil {
		return Failure(action, err)
	}
	algorithm := params.StringOr(p, "algorithm", string(codec.SHA256))

	hasher, err := codec.NewHasher(algorithm)
	if err != nil {
		return Failure(action, err)
	}
	digest := hasher.HashString(input)

	rep := report.New("Hash Generation - Algorithm: "+strings.ToUpper(string(hasher.Algorithm()))).
		Linef("Input data length: %d characters", utf8.RuneCountInString(input)).
		Linef("Hash value: %s", digest)

	return Success(rep.String(), map[string]interface{}{
		"algorithm": string(hasher.Algorithm()),
		"hash":      digest,
	})
}

// EncodeDecode applies one base64 or URL transform
func (c *CodecOps) EncodeDecode(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "in encode/decode operation"

	input, err := params.String(p, "data")
	if err != nil {
		return Failure(action, err)
	}
	operation, err := params.NonEmptyString(p, "operation")
	if err != nil {
		return Failure(action, err)
	}

	var inputLabel, outputLabel, output string
	switch operation {
	case OpBase64Encode:
		inputLabel, outputLabel = "Original", "Base64 encoded"
		output = codec.Base64Encode(input)
	case OpBase64Decode:
		inputLabel, outputLabel = "Base64 input", "Decoded"
		output, err = codec.Base64Decode(input)
	case OpURLEncode:
		inputLabel, outputLabel = "Original", "URL encoded"
		output = codec.URLEncode(input)
	case OpURLDecode:
		inputLabel, outputLabel = "URL encoded input", "Decoded"
		output, err = codec.URLDecode(input)
	default:
		err = toolerr.Unknown("operation", operation, codecOperations...)
	}
	if err != nil {
		return Failure(action, err)
	}

	rep := report.New("Encode/Decode - Operation: "+operation).
		Linef("%s: %s", inputLabel, input).
		Linef("%s: %s", outputLabel, output)

	return Success(rep.String(), map[string]interface{}{
		"operation": operation,
		"output":    output,
	})
}
