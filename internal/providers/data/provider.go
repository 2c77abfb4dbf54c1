package data

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// Provider implements data transformation and analysis operations
type Provider struct {
	// Module instances
	json  *JSONOps
	text  *TextOps
	codec *CodecOps
}

// NewProvider creates a modular data provider
func NewProvider() *Provider {
	ops := &DataOps{}

	return &Provider{
		json:  &JSONOps{DataOps: ops},
		text:  &TextOps{DataOps: ops},
		codec: &CodecOps{DataOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (d *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, d.json.GetTools()...)
	tools = append(tools, d.text.GetTools()...)
	tools = append(tools, d.codec.GetTools()...)

	return types.Service{
		ID:          "data",
		Name:        "Data Processing Service",
		Description: "JSON and CSV processing, text analysis, hashing and encodings",
		Category:    types.CategoryData,
		Capabilities: []string{
			"json",
			"csv",
			"conversion",
			"text_analysis",
			"sentiment",
			"hashing",
			"base64",
			"url_encoding",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (d *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// JSON operations
	case "data.process_json":
		return d.json.ProcessJSON(ctx, params, appCtx)
	case "data.convert_data":
		return d.json.ConvertData(ctx, params, appCtx)

	// Text operations
	case "data.analyze_text":
		return d.text.AnalyzeText(ctx, params, appCtx)

	// Codec operations
	case "data.hash_data":
		return d.codec.HashData(ctx, params, appCtx)
	case "data.encode_decode":
		return d.codec.EncodeDecode(ctx, params, appCtx)

	default:
		return UnknownToolFailure(toolID)
	}
}
