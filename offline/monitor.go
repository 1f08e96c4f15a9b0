package offline

import (
	"context"
	"sync"
	"time"

	"github.com/aduverger/carnet"
	"github.com/google/uuid"
)

// DefaultProbeInterval is how often the polling loop re-probes
// connectivity.
const DefaultProbeInterval = 30 * time.Second

// subscriptionBuffer bounds a subscriber's pending status updates. A slow
// subscriber drops intermediate transitions rather than blocking the
// monitor.
const subscriptionBuffer = 16

// Monitor tracks connectivity to the document source and fans status
// transitions out to subscribers.
type Monitor struct {
	prober   carnet.Prober
	interval time.Duration

	mu     sync.Mutex
	online bool
	subs   map[uuid.UUID]chan bool
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithProbeInterval sets the polling period for Run.
func WithProbeInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		m.interval = d
	}
}

// NewMonitor creates a Monitor. The prober is consulted once up front so
// subscribers attaching before the first Refresh see a real observation,
// not a guess.
func NewMonitor(prober carnet.Prober, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		prober:   prober,
		interval: DefaultProbeInterval,
		subs:     make(map[uuid.UUID]chan bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.online = prober.Probe(context.Background())
	return m
}

// Online returns the last observed connectivity status.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Refresh probes immediately and returns the observed status.
func (m *Monitor) Refresh(ctx context.Context) bool {
	online := m.prober.Probe(ctx)
	m.SetOnline(online)
	return online
}

// SetOnline records a status observation, notifying subscribers on
// transition.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.online == online {
		return
	}
	m.online = online
	for _, ch := range m.subs {
		select {
		case ch <- online:
		default:
		}
	}
}

// Run polls the prober until the context is canceled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Refresh(ctx)
		}
	}
}

// Subscription is one listener on the connectivity stream. C carries the
// current status immediately, then every transition, until Close.
type Subscription struct {
	C <-chan bool

	id      uuid.UUID
	monitor *Monitor
	once    sync.Once
}

// Subscribe registers a listener. The current status is delivered before
// Subscribe returns.
func (m *Monitor) Subscribe() *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan bool, subscriptionBuffer)
	ch <- m.online

	id := uuid.New()
	m.subs[id] = ch
	return &Subscription{C: ch, id: id, monitor: m}
}

// Close detaches the subscription and releases its listener. The channel
// is closed; no further statuses are emitted. Safe to call twice.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.monitor.mu.Lock()
		ch := s.monitor.subs[s.id]
		delete(s.monitor.subs, s.id)
		s.monitor.mu.Unlock()
		if ch != nil {
			close(ch)
		}
	})
}
