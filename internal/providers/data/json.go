package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/dataset"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"

	// maxListedKeys caps the keys printed when validating an object.
	maxListedKeys = 10
)

// JSONOps handles JSON processing and format conversion
type JSONOps struct {
	*DataOps
}

// GetTools returns JSON and conversion tool definitions
func (j *JSONOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "data.process_json",
			Name:        "Process JSON",
			Description: "Format and validate JSON data",
			Parameters: []types.Parameter{
				{Name: "json_data", Type: "string", Description: "JSON document", Required: true},
				{Name: "operation", Type: "string", Description: "format or validate (default: format)", Required: false, Default: "format", Enum: []string{"format", "validate"}},
			},
			Returns: "string",
		},
		{
			ID:          "data.convert_data",
			Name:        "Convert Data",
			Description: "Convert data between JSON and CSV formats",
			Parameters: []types.Parameter{
				{Name: "data", Type: "string", Description: "Source document", Required: true},
				{Name: "source_format", Type: "string", Description: "Format of data", Required: true, Enum: []string{FormatJSON, FormatCSV}},
				{Name: "target_format", Type: "string", Description: "Format to produce", Required: true, Enum: []string{FormatJSON, FormatCSV}},
			},
			Returns: "string",
		},
	}
}

// ProcessJSON formats or validates a JSON document
func (j *JSONOps) ProcessJSON(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "processing JSON"

	raw, err := params.String(p, "json_data")
	if err != nil {
		return Failure(action, err)
	}
	operation := params.StringOr(p, "operation", "format")

	value, err := dataset.ParseJSON(raw)
	if err != nil {
		return Failure(action, err)
	}

	rep := report.New("JSON Processing - Operation: " + operation)
	switch operation {
	case "format":
		formatted := dataset.RenderJSON(value)
		rep.Add("Formatted JSON:", formatted)
		return Success(rep.String(), map[string]interface{}{"formatted": formatted})

	case "validate":
		rep.Add("✅ JSON is valid").Linef("Type: %s", value.Kind())
		switch value.Kind() {
		case dataset.Object:
			keys := value.Keys()
			listed := keys
			more := ""
			if len(keys) > maxListedKeys {
				listed = keys[:maxListedKeys]
				more = "..."
			}
			rep.Linef("Keys: %d (%s%s)", len(keys), strings.Join(listed, ", "), more)
		case dataset.Array:
			rep.Linef("Items: %d", value.Len())
		}
		return Success(rep.String(), map[string]interface{}{
			"valid": true,
			"type":  value.Kind().String(),
		})

	default:
		return Failure(action, toolerr.Unknown("operation", operation, "format", "validate"))
	}
}

// ConvertData converts a document between JSON and CSV
func (j *JSONOps) ConvertData(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "converting data"

	raw, err := params.String(p, "data")
	if err != nil {
		return Failure(action, err)
	}
	source, err := params.NonEmptyString(p, "source_format")
	if err != nil {
		return Failure(action, err)
	}
	target, err := params.NonEmptyString(p, "target_format")
	if err != nil {
		return Failure(action, err)
	}

	value, err := parseAs(source, raw)
	if err != nil {
		return Failure(action, err)
	}
	output, err := renderAs(target, value)
	if err != nil {
		return Failure(action, err)
	}

	rep := report.New(fmt.Sprintf("Data Conversion: %s → %s", source, target)).Add(output)
	return Success(rep.String(), map[string]interface{}{
		"source_format": source,
		"target_format": target,
		"output":        output,
	})
}

func parseAs(format, raw string) (dataset.Value, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return dataset.ParseJSON(raw)
	case FormatCSV:
		return dataset.ParseCSV(raw)
	default:
		return dataset.Value{}, toolerr.Unsupported("source format", format, FormatJSON, FormatCSV)
	}
}

func renderAs(format string, v dataset.Value) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return dataset.RenderJSON(v), nil
	case FormatCSV:
		return dataset.RenderCSV(v)
	default:
		return "", toolerr.Unsupported("target format", format, FormatJSON, FormatCSV)
	}
}
