package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// ErrUnknownTool is returned when a tool name resolves to nothing.
var ErrUnknownTool = errors.New("unknown tool")

// DefaultDiscoverLimit bounds Discover when no limit is given.
const DefaultDiscoverLimit = 5

// Registry manages service discovery and execution
type Registry struct {
	mu       sync.Mutex // serializes Register and Unregister
	services sync.Map
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger logs every tool call
func WithLogger(logger *logging.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records tool call counters and latencies
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(r *Registry) {
		r.metrics = metrics
	}
}

// NewRegistry creates a new service registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tool := range def.Tools {
		if existing, ok := r.Resolve(tool.Operation()); ok && existing.ID != tool.ID {
			return fmt.Errorf("tool name %q already registered as %s", tool.Operation(), existing.ID)
		}
	}

	if _, loaded := r.services.LoadOrStore(def.ID, provider); loaded {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Tools returns every registered tool ordered by ID
func (r *Registry) Tools() []types.Tool {
	var tools []types.Tool
	for _, svc := range r.List(nil) {
		tools = append(tools, svc.Tools...)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].ID < tools[j].ID
	})
	return tools
}

// Resolve finds a tool by full ID ("data.hash_data") or by bare
// operation name ("hash_data").
func (r *Registry) Resolve(name string) (types.Tool, bool) {
	name = strings.TrimSpace(name)
	var (
		found types.Tool
		ok    bool
	)
	r.services.Range(func(_, value interface{}) bool {
		for _, tool := range value.(Provider).Definition().Tools {
			if tool.ID == name || tool.Operation() == name {
				found, ok = tool, true
				return false
			}
		}
		return true
	})
	return found, ok
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	if limit <= 0 {
		limit = DefaultDiscoverLimit
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	for _, def := range r.List(nil) {
		score := r.calculateRelevance(intentLower, def)
		if score > 0 {
			results = append(results, scoredService{
				service: def,
				score:   score,
			})
		}
	}

	// Sort by score descending; List order breaks ties
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	// Return top N
	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}

	return output
}

// Execute runs a service tool.
//
// Operation failures come back as a Result with Success false and a nil
// error. A non-nil error means the tool could not be dispatched at all.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	tool, ok := r.Resolve(toolID)
	if !ok {
		msg := fmt.Sprintf("%s: %s", ErrUnknownTool, toolID)
		return &types.Result{
			Success:   false,
			Text:      "Error: " + msg,
			Error:     &msg,
			ErrorKind: "unknown_tool",
		}, fmt.Errorf("%w: %s", ErrUnknownTool, toolID)
	}

	serviceID, _, _ := strings.Cut(tool.ID, ".")
	provider, ok := r.Get(serviceID)
	if !ok {
		return nil, fmt.Errorf("service not found: %s", serviceID)
	}

	if appCtx == nil {
		appCtx = &types.Context{}
	}
	if appCtx.CallID == "" {
		appCtx.CallID = uuid.NewString()
	}
	if params == nil {
		params = map[string]interface{}{}
	}

	log := r.logger.WithCall(appCtx.CallID, tool.ID, appCtx.Source)
	log.Debug("Tool call started")
	timer := monitoring.NewTimer(r.metrics, serviceID, tool.Operation())

	result, err := provider.Execute(ctx, tool.ID, params, appCtx)
	if err != nil {
		msg := err.Error()
		result = &types.Result{
			Success:   false,
			Text:      "Error: " + msg,
			Error:     &msg,
			ErrorKind: "internal",
		}
	}

	status := monitoring.StatusSuccess
	if !result.Success {
		status = monitoring.StatusFailure
		if r.metrics != nil {
			r.metrics.RecordToolError(serviceID, tool.Operation(), result.ErrorKind)
		}
	}
	log.ToolFinished(result.Success, timer.Stop(status), result.ErrorKind)

	return result, nil
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	for _, def := range r.List(nil) {
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
	}

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) calculateRelevance(intent string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check description words
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		if len(word) > 3 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	// Check tool names
	for _, tool := range service.Tools {
		if strings.Contains(intent, strings.ReplaceAll(tool.Operation(), "_", " ")) {
			score += 4.0
		}
	}

	// Check category
	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}
