package idle

import (
	"fmt"
	"sync"
)

// Context names the page a monitor belongs to. Each device gets its own
// monitor per context.
type Context string

const (
	ContextLogin     Context = "login"
	ContextDashboard Context = "dashboard"
)

func ParseContext(s string) (Context, error) {
	switch Context(s) {
	case ContextLogin, ContextDashboard:
		return Context(s), nil
	case "":
		return ContextDashboard, nil
	}
	return "", fmt.Errorf("unknown idle context %q", s)
}

type monitorKey struct {
	device  string
	context Context
}

type Registry struct {
	cfg          Config
	sched        Scheduler
	onExpire     func(deviceID string, c Context)
	onTransition func(State)

	mu       sync.Mutex
	monitors map[monitorKey]*Monitor
}

func NewRegistry(cfg Config, sched Scheduler, onExpire func(deviceID string, c Context), onTransition func(State)) *Registry {
	return &Registry{
		cfg:          cfg,
		sched:        sched,
		onExpire:     onExpire,
		onTransition: onTransition,
		monitors:     make(map[monitorKey]*Monitor),
	}
}

// Start creates a fresh monitor, stopping any previous one for the same device and context.
func (r *Registry) Start(deviceID string, c Context) *Monitor {
	key := monitorKey{device: deviceID, context: c}
	m := NewMonitor(r.cfg, r.sched, func() {
		if r.onExpire != nil {
			r.onExpire(deviceID, c)
		}
	}, r.onTransition)

	r.mu.Lock()
	old := r.monitors[key]
	r.monitors[key] = m
	r.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	return m
}

func (r *Registry) Get(deviceID string, c Context) (*Monitor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.monitors[monitorKey{device: deviceID, context: c}]
	return m, ok
}

// Ensure returns the existing monitor or starts one. A monitor whose
// expiry redirect has already happened is replaced, as the entry page
// starts over with a fresh session.
func (r *Registry) Ensure(deviceID string, c Context) *Monitor {
	if m, ok := r.Get(deviceID, c); ok && !m.Redirected() {
		return m
	}
	return r.Start(deviceID, c)
}

// Stop stops and forgets the monitor of one context. Leaving a page ends its monitor.
func (r *Registry) Stop(deviceID string, c Context) {
	key := monitorKey{device: deviceID, context: c}
	r.mu.Lock()
	m, ok := r.monitors[key]
	delete(r.monitors, key)
	r.mu.Unlock()

	if ok {
		m.Stop()
	}
}

// StopDevice stops and forgets every monitor of the device.
func (r *Registry) StopDevice(deviceID string) {
	r.mu.Lock()
	var stopped []*Monitor
	for key, m := range r.monitors {
		if key.device == deviceID {
			stopped = append(stopped, m)
			delete(r.monitors, key)
		}
	}
	r.mu.Unlock()

	for _, m := range stopped {
		m.Stop()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.monitors)
}

// Close stops every monitor.
func (r *Registry) Close() {
	r.mu.Lock()
	monitors := r.monitors
	r.monitors = make(map[monitorKey]*Monitor)
	r.mu.Unlock()

	for _, m := range monitors {
		m.Stop()
	}
}
