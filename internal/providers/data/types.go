package data

import (
	"fmt"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// DataOps is the shared base for data modules. It holds no state; every
// operation is a pure function of its parameters.
type DataOps struct{}

// Success creates successful result
func Success(text string, data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Text: text, Data: data}, nil
}

// Failure creates a failed result carrying the error report
func Failure(action string, err error) (*types.Result, error) {
	msg := report.Failure(action, err)
	return &types.Result{Success: false, Text: msg, Error: &msg, ErrorKind: report.ErrorKind(err)}, nil
}

// UnknownToolFailure returns failure for unknown tool
func UnknownToolFailure(toolID string) (*types.Result, error) {
	msg := fmt.Sprintf("unknown tool: %s", toolID)
	return &types.Result{Success: false, Text: "Error: " + msg, Error: &msg, ErrorKind: "unknown_tool"}, nil
}
