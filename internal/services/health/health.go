package health

import (
	"runtime"
	"sync"
	"time"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/internal/services/sandbox"
	"github.com/benedict-erwin/agency-console/pkg/utils"
)

var (
	startTime = time.Now()

	readinessCache      *ReadinessStatus
	readinessCacheTime  time.Time
	readinessCacheMutex sync.RWMutex

	cacheValidDuration = 10 * time.Second
)

type DatasetHealth struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

type AppMemoryStats struct {
	Alloc      uint64 `json:"alloc_bytes"`
	Sys        uint64 `json:"sys_bytes"`
	NumGC      uint32 `json:"num_gc"`
	Goroutines int    `json:"goroutines"`
}

type ReadinessStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	App       string                   `json:"app"`
	Uptime    string                   `json:"uptime"`
	Datasets  map[string]DatasetHealth `json:"datasets"`
	Memory    AppMemoryStats           `json:"memory"`
}

// CheckReadiness reports whether every dataset is loaded, cached for 10s
func CheckReadiness() *ReadinessStatus {
	readinessCacheMutex.RLock()
	if readinessCache != nil && time.Since(readinessCacheTime) < cacheValidDuration {
		cached := *readinessCache
		readinessCacheMutex.RUnlock()
		return &cached
	}
	readinessCacheMutex.RUnlock()

	status := &ReadinessStatus{
		Status:    "ready",
		Timestamp: utils.Now(),
		App:       config.Get().App.Name,
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Datasets:  make(map[string]DatasetHealth),
		Memory:    appMemoryStats(),
	}

	sizes, err := sandbox.Sizes()
	for _, route := range sandbox.Routes() {
		n, ok := sizes[route.Name]
		switch {
		case err != nil || !ok:
			status.Datasets[route.Name] = DatasetHealth{Status: "missing"}
			status.Status = "not_ready"
		case n == 0:
			status.Datasets[route.Name] = DatasetHealth{Status: "empty"}
		default:
			status.Datasets[route.Name] = DatasetHealth{Status: "loaded", Records: n}
		}
	}

	// Only cache a ready answer so startup is picked up immediately
	if status.Status == "ready" {
		readinessCacheMutex.Lock()
		readinessCache = status
		readinessCacheTime = time.Now()
		readinessCacheMutex.Unlock()
	}

	return status
}

// ClearReadinessCache clears readiness check cache
func ClearReadinessCache() {
	readinessCacheMutex.Lock()
	readinessCache = nil
	readinessCacheTime = time.Time{}
	readinessCacheMutex.Unlock()
}

func appMemoryStats() AppMemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return AppMemoryStats{
		Alloc:      m.Alloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}
