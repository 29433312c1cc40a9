package idle

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

type State string

const (
	Active  State = "active"
	Warning State = "warning"
	Expired State = "expired"
)

const EntryPage = "/"

// Events that count as user activity.
var qualifyingEvents = map[string]struct{}{
	"mousedown":  {},
	"mousemove":  {},
	"keypress":   {},
	"scroll":     {},
	"touchstart": {},
	"click":      {},
}

func Qualifying(event string) bool {
	_, ok := qualifyingEvents[event]
	return ok
}

type Config struct {
	WarnAfter     time.Duration
	Countdown     time.Duration
	RedirectDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		WarnAfter:     9 * time.Minute,
		Countdown:     60 * time.Second,
		RedirectDelay: 2 * time.Second,
	}
}

type Snapshot struct {
	State            State  `json:"state"`
	SecondsRemaining int    `json:"seconds_remaining,omitempty"`
	RedirectTo       string `json:"redirect_to,omitempty"`
	RedirectAfterMs  int64  `json:"redirect_after_ms,omitempty"`
}

// Monitor is the Active -> Warning -> Expired machine of one session.
// Activity only counts while Active; a Warning has to be extended or left to run out.
type Monitor struct {
	cfg          Config
	sched        Scheduler
	onExpire     func()
	onTransition func(State)

	mu        sync.Mutex
	state     State
	timer     Timer
	gen       uint64 // bumped by every arm; a callback from an older generation is ignored
	deadline  time.Time
	expiredAt time.Time
	stopped   bool
}

// NewMonitor starts a monitor in Active. onExpire runs once, when Expired is entered.
func NewMonitor(cfg Config, sched Scheduler, onExpire func(), onTransition func(State)) *Monitor {
	m := &Monitor{
		cfg:          cfg,
		sched:        sched,
		onExpire:     onExpire,
		onTransition: onTransition,
		state:        Active,
	}
	m.mu.Lock()
	m.arm(cfg.WarnAfter, m.warn)
	m.mu.Unlock()
	return m
}

// arm replaces the pending timer. Callers hold m.mu.
// Stop cannot recall a callback that already fired and waits on m.mu,
// so each callback carries the generation it was armed with.
func (m *Monitor) arm(d time.Duration, f func(gen uint64)) {
	m.disarm()
	gen := m.gen
	m.timer = m.sched.AfterFunc(d, func() { f(gen) })
}

// disarm cancels the pending timer and invalidates any callback already in flight.
func (m *Monitor) disarm() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.gen++
}

func (m *Monitor) notify(state State) {
	if m.onTransition != nil {
		m.onTransition(state)
	}
}

// Activity records a user input event.
func (m *Monitor) Activity(event string) error {
	if !Qualifying(event) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownActivity, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped || m.state != Active {
		return nil
	}
	m.arm(m.cfg.WarnAfter, m.warn)
	return nil
}

func (m *Monitor) warn(gen uint64) {
	m.mu.Lock()
	if m.stopped || m.state != Active || gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.state = Warning
	m.deadline = m.sched.Now().Add(m.cfg.Countdown)
	m.arm(m.cfg.Countdown, m.countdownElapsed)
	m.mu.Unlock()

	m.notify(Warning)
}

// countdownElapsed expires the monitor unless the countdown was extended meanwhile.
func (m *Monitor) countdownElapsed(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.expireLocked()
}

func (m *Monitor) expire() {
	m.mu.Lock()
	m.expireLocked()
}

// expireLocked is entered with m.mu held and releases it.
func (m *Monitor) expireLocked() {
	if m.stopped || m.state == Expired {
		m.mu.Unlock()
		return
	}
	m.state = Expired
	m.expiredAt = m.sched.Now()
	m.disarm()
	m.mu.Unlock()

	m.notify(Expired)
	if m.onExpire != nil {
		m.onExpire()
	}
}

// Extend dismisses a warning and restarts the inactivity window.
func (m *Monitor) Extend() error {
	m.mu.Lock()
	if m.stopped || m.state == Expired {
		m.mu.Unlock()
		return domain.ErrSessionExpired
	}
	wasWarning := m.state == Warning
	m.state = Active
	m.deadline = time.Time{}
	m.arm(m.cfg.WarnAfter, m.warn)
	m.mu.Unlock()

	if wasWarning {
		m.notify(Active)
	}
	return nil
}

// LogoutNow expires the session immediately.
func (m *Monitor) LogoutNow() {
	m.expire()
}

func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{State: m.state}
	switch m.state {
	case Warning:
		remaining := m.deadline.Sub(m.sched.Now())
		snap.SecondsRemaining = max(0, int(math.Ceil(remaining.Seconds())))
	case Expired:
		snap.RedirectTo = EntryPage
		snap.RedirectAfterMs = m.cfg.RedirectDelay.Milliseconds()
	}
	return snap
}

// Stop cancels pending timers. It is safe to call more than once.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	m.disarm()
}

// Redirected reports whether the monitor expired at least RedirectDelay ago.
// By then the client has been sent back to the entry page.
func (m *Monitor) Redirected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Expired {
		return false
	}
	return !m.sched.Now().Before(m.expiredAt.Add(m.cfg.RedirectDelay))
}
