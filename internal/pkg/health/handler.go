package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	// DefaultCheckTimeout bounds every dependency check of a readiness request
	DefaultCheckTimeout = 3 * time.Second
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	Revision   string    `json:"revision"`
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	ServerTime time.Time `json:"server_time"`
}

// HealthChecker reports whether one dependency is usable
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a plain function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f(ctx)
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// HealthResponse is the body of the readiness endpoint
type HealthResponse struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo is the outcome of a single checker
type DependencyInfo struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthService runs the registered dependency checks of a service
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	timeout  time.Duration
}

// NewHealthService creates a health service with DefaultCheckTimeout
func NewHealthService() *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
}

// AddChecker registers (or replaces) the checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Names returns the registered dependency names in sorted order
func (h *HealthService) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckAllHealth runs every checker concurrently. One failing dependency
// makes the whole service unhealthy.
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	h.mu.RLock()
	checkers := make(map[string]HealthChecker, len(h.checkers))
	for name, checker := range h.checkers {
		checkers[name] = checker
	}
	timeout := h.timeout
	h.mu.RUnlock()

	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(checkers)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()
			info := runCheck(ctx, timeout, checker)

			mu.Lock()
			defer mu.Unlock()
			response.Dependencies[name] = info
			if info.Status == StatusUnhealthy {
				response.Status = StatusUnhealthy
				logger.Error("Health check failed",
					logger.String("dependency", name),
					logger.Int("latency_ms", int(info.LatencyMS)),
					logger.String("error", info.Error))
			}
		}(name, checker)
	}
	wg.Wait()

	return response
}

func runCheck(ctx context.Context, timeout time.Duration, checker HealthChecker) DependencyInfo {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := checker.CheckHealth(ctx)
	info := DependencyInfo{Status: StatusHealthy, LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		info.Status = StatusUnhealthy
		info.Error = err.Error()
	}
	return info
}

// ReadBuildInfo describes the current binary. VERSION and GIT_COMMIT override
// what the Go toolchain embedded.
func ReadBuildInfo(serviceName string) BuildInfo {
	info := BuildInfo{
		Service:   serviceName,
		Version:   "development",
		Revision:  "unknown",
		GoVersion: runtime.Version(),
		Hostname:  "unknown",
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" {
				info.Revision = setting.Value
			}
		}
	}
	if version := os.Getenv("VERSION"); version != "" {
		info.Version = version
	}
	if commit := os.Getenv("GIT_COMMIT"); commit != "" {
		info.Revision = commit
	}
	return info
}

// NewPingHandler answers with the build info of the service
func NewPingHandler(serviceName string) echo.HandlerFunc {
	buildInfo := ReadBuildInfo(serviceName)
	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints mounts /ping, the liveness endpoints /health and
// /healthz, and the readiness endpoint /ready.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, healthService *HealthService) {
	e.GET("/ping", NewPingHandler(serviceName))

	live := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	}
	e.GET("/health", live)
	e.GET("/healthz", live)

	e.GET("/ready", func(c echo.Context) error {
		response := healthService.CheckAllHealth(c.Request().Context())
		response.Service = serviceName

		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	})
}
