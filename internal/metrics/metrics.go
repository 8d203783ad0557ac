package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type publishStats struct {
	attempts int
	errors   int
}

type runStats struct {
	cycles       int
	errors       int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about fetch, publish, and
// run cycles. OpenTelemetry export rides behind it when configured.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	publishes map[string]*publishStats
	runs      runStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		publishes: make(map[string]*publishStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a fetch and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordPublish increments counters for a delivery attempt to the notification topic.
func (r *Recorder) RecordPublish(topic string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.publishes[topic]
	if stats == nil {
		stats = &publishStats{}
		r.publishes[topic] = stats
	}
	stats.attempts++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPublish(topic, duration, err)
	}
}

// RecordRunCycle tracks one end-to-end invocation of the update pipeline.
// Any non-2xx result counts as a failed cycle.
func (r *Recorder) RecordRunCycle(duration time.Duration, statusCode int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.cycles++
	r.runs.lastDuration = duration
	if statusCode < 200 || statusCode > 299 {
		r.runs.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRunCycle(duration, statusCode)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics for the trigger surface.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total fetch attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).calls
}

// ProviderErrors returns the total failed fetches recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).errors
}

// LastCallLatency returns the last recorded latency for a provider fetch.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).lastCallLatency
}

// PublishAttempts returns the total deliveries attempted for a topic.
func (r *Recorder) PublishAttempts(topic string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats := r.publishes[topic]; stats != nil {
		return stats.attempts
	}
	return 0
}

// PublishErrors returns the total failed deliveries for a topic.
func (r *Recorder) PublishErrors(topic string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats := r.publishes[topic]; stats != nil {
		return stats.errors
	}
	return 0
}

// RunCycles returns the total invocations recorded.
func (r *Recorder) RunCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs.cycles
}

// RunErrors returns the total failed invocations recorded.
func (r *Recorder) RunErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs.errors
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats := r.providers[provider]
	if stats == nil {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}
