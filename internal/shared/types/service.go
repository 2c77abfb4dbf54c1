package types

// Category represents service categories
type Category string

const (
	CategoryScraper Category = "scraper"
	CategoryData    Category = "data"
	CategoryAPI     Category = "api"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Operation returns the bare operation name of a tool ("scraper.extract_text" -> "extract_text").
func (t Tool) Operation() string {
	for i := len(t.ID) - 1; i >= 0; i-- {
		if t.ID[i] == '.' {
			return t.ID[i+1:]
		}
	}
	return t.ID
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Context provides execution context for services
type Context struct {
	CallID string `json:"call_id,omitempty"`
	Source string `json:"source,omitempty"` // http, mcp, cli
}

// Result represents a service execution result.
// Text always carries the human-readable report, including failure reports.
type Result struct {
	Success bool           `json:"success"`
	Text    string         `json:"text"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *string        `json:"error,omitempty"`

	// ErrorKind classifies failures (fetch, parse, decode, ...).
	ErrorKind string `json:"error_kind,omitempty"`
}
