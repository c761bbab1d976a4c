package autopilot

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/magic428/px4-offboard-interface/pkg/run"
	"github.com/magic428/px4-offboard-interface/pkg/transport"
)

// Defaults. The stream period must stay well below the autopilot's
// 500 ms offboard failsafe deadline; 200 ms gives 2.5x margin.
const (
	DefaultStreamPeriod     = 200 * time.Millisecond
	DefaultOffboardRetries  = 50
	DefaultOffboardInterval = 400 * time.Millisecond
	DefaultArmRetries       = 50
	DefaultArmInterval      = 200 * time.Millisecond
	DefaultLocalComponentID = 191 // onboard computer

	handshakePoll = 500 * time.Millisecond
	readRetryWait = 10 * time.Millisecond
	writeYield    = 100 * time.Microsecond
)

// Config configures an Interface. The zero value of every field other
// than Transport gets a sensible default.
type Config struct {
	Transport transport.Transport

	// SystemID and AutopilotID pin the remote identifiers manually.
	// When zero they are learned from the first received message.
	SystemID    uint8
	AutopilotID uint8
	// LocalComponentID identifies this companion process on the link.
	LocalComponentID uint8

	StreamPeriod     time.Duration
	OffboardRetries  int
	OffboardInterval time.Duration
	ArmRetries       int
	ArmInterval      time.Duration

	Clock Clock
}

func (c *Config) applyDefaults() {
	if c.LocalComponentID == 0 {
		c.LocalComponentID = DefaultLocalComponentID
	}
	if c.StreamPeriod == 0 {
		c.StreamPeriod = DefaultStreamPeriod
	}
	if c.OffboardRetries == 0 {
		c.OffboardRetries = DefaultOffboardRetries
	}
	if c.OffboardInterval == 0 {
		c.OffboardInterval = DefaultOffboardInterval
	}
	if c.ArmRetries == 0 {
		c.ArmRetries = DefaultArmRetries
	}
	if c.ArmInterval == 0 {
		c.ArmInterval = DefaultArmInterval
	}
	if c.Clock == nil {
		c.Clock = SystemClock
	}
}

// LoopState is the lifecycle state of one execution loop.
type LoopState int32

// Loop lifecycle states. A loop is handshaking from spawn until the
// startup handshake completes, and stopping from the shutdown request
// until it has exited.
const (
	LoopNotStarted LoopState = iota
	LoopHandshaking
	LoopRunning
	LoopStopping
	LoopStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopHandshaking:
		return "handshaking"
	case LoopRunning:
		return "running"
	case LoopStopping:
		return "stopping"
	case LoopStopped:
		return "stopped"
	}
	return "not-started"
}

// Pose is the vehicle pose snapshot taken at the end of the startup
// handshake.
type Pose struct {
	X, Y, Z    float32
	Vx, Vy, Vz float32
	Yaw        float32
	YawRate    float32
}

// Interface bridges a control application to the autopilot. Create one
// with New, call Start to run the ingest and streaming loops, and Stop
// to shut both down.
type Interface struct {
	cfg   Config
	tr    transport.Transport
	clock Clock
	cache *Cache
	store setpointStore

	mu          sync.Mutex
	sysID       uint8
	autopilotID uint8
	initialPose Pose
	started     bool

	cancel context.CancelFunc
	runner *run.Runner

	firstMsgOnce  sync.Once
	firstMsg      chan struct{}
	firstSendOnce sync.Once
	firstSend     chan struct{}

	writing     atomic.Bool
	lastSend    atomic.Int64 // unix nanos of last successful setpoint send
	ingestState atomic.Int32
	streamState atomic.Int32
}

// New creates an Interface over the given transport.
func New(cfg Config) *Interface {
	cfg.applyDefaults()
	a := &Interface{
		cfg:         cfg,
		tr:          cfg.Transport,
		clock:       cfg.Clock,
		sysID:       cfg.SystemID,
		autopilotID: cfg.AutopilotID,
		firstMsg:    make(chan struct{}),
		firstSend:   make(chan struct{}),
	}
	a.cache = NewCache(a.clock.Now)
	return a
}

// Cache exposes the telemetry cache for external consumers.
func (a *Interface) Cache() *Cache {
	return a.cache
}

// Start performs the startup handshake and leaves both loops running:
// it verifies the transport is open, starts the ingest loop, waits for
// the first message to learn the endpoint identifiers, waits for
// position and attitude telemetry to snapshot the initial pose, then
// starts the setpoint streaming loop and waits for its first
// transmission. On failure both loops are stopped before returning.
func (a *Interface) Start(ctx context.Context) error {
	if !a.tr.IsOpen() {
		return ErrTransportNotOpen
	}

	loopCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.runner = run.NewRunnerWith(loopCtx)

	a.runner.Go(run.NamedRun("ingest", run.RunnableFunc(a.runIngest)))

	glog.Info("waiting for autopilot messages")
	select {
	case <-a.firstMsg:
	case <-loopCtx.Done():
		return a.abortStart(loopCtx.Err())
	}

	sysID, compID := a.cache.Sender()
	a.mu.Lock()
	if a.sysID == 0 {
		a.sysID = sysID
	}
	if a.autopilotID == 0 {
		a.autopilotID = compID
	}
	a.mu.Unlock()
	glog.Infof("endpoint identifiers: system %d, autopilot component %d", a.sysID, a.autopilotID)

	for {
		_, _, havePos := a.cache.LocalPosition()
		_, _, haveAtt := a.cache.Attitude()
		if havePos && haveAtt {
			break
		}
		if err := a.clock.Sleep(loopCtx, handshakePoll); err != nil {
			return a.abortStart(err)
		}
	}

	pos, _, _ := a.cache.LocalPosition()
	att, _, _ := a.cache.Attitude()
	a.mu.Lock()
	a.initialPose = Pose{
		X: pos.X, Y: pos.Y, Z: pos.Z,
		Vx: pos.Vx, Vy: pos.Vy, Vz: pos.Vz,
		Yaw:     att.Yaw,
		YawRate: att.YawSpeed,
	}
	a.started = true
	a.mu.Unlock()
	glog.Infof("initial pose: xyz [%.4f %.4f %.4f] yaw %.4f",
		pos.X, pos.Y, pos.Z, att.Yaw)

	a.runner.Go(run.NamedRun("stream", run.RunnableFunc(a.runStream)))
	select {
	case <-a.firstSend:
	case <-loopCtx.Done():
		return a.abortStart(loopCtx.Err())
	}

	a.ingestState.Store(int32(LoopRunning))
	a.streamState.Store(int32(LoopRunning))
	glog.Info("autopilot interface started")
	return nil
}

// abortStart tears down whatever already runs and consumes the runner,
// so a later Stop reports ErrNotStarted instead of joining twice.
func (a *Interface) abortStart(err error) error {
	a.cancel()
	a.runner.Wait()
	a.mu.Lock()
	a.cancel = nil
	a.started = false
	a.mu.Unlock()
	return err
}

// Stop requests cooperative shutdown of both loops and blocks until
// they have exited. It joins the loops exactly once; calling it after
// a failed Start or a previous Stop returns ErrNotStarted. The
// transport stays open; closing it is up to its owner.
func (a *Interface) Stop() error {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.started = false
	a.mu.Unlock()
	if cancel == nil {
		return ErrNotStarted
	}
	glog.Info("stopping autopilot interface")
	a.ingestState.Store(int32(LoopStopping))
	a.streamState.Store(int32(LoopStopping))
	cancel()
	return a.runner.Wait()
}

// UpdateSetpoint replaces the pending setpoint wholesale. The streaming
// loop picks it up on its next tick.
func (a *Interface) UpdateSetpoint(sp Setpoint) {
	a.store.put(sp)
}

// Setpoint returns the setpoint currently being streamed.
func (a *Interface) Setpoint() Setpoint {
	return a.store.get()
}

// SetpointSent reports whether the pending setpoint has been
// transmitted at least once since it was last updated.
func (a *Interface) SetpointSent() bool {
	return a.store.wasSent()
}

// InitialPose returns the pose snapshot taken during startup.
func (a *Interface) InitialPose() Pose {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialPose
}

// Identifiers returns the endpoint identifiers in use.
func (a *Interface) Identifiers() (systemID, autopilotID, localComponentID uint8) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sysID, a.autopilotID, a.cfg.LocalComponentID
}

// LastSend returns the time of the last successful setpoint
// transmission. The zero time means none has succeeded yet.
func (a *Interface) LastSend() time.Time {
	ns := a.lastSend.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

// LoopStates reports the lifecycle state of the ingest and streaming
// loops.
func (a *Interface) LoopStates() (ingest, stream LoopState) {
	return LoopState(a.ingestState.Load()), LoopState(a.streamState.Load())
}

func (a *Interface) ids() (sysID, autopilotID, localComp uint8) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sysID, a.autopilotID, a.cfg.LocalComponentID
}

func timeBootMs(t time.Time) uint32 {
	return uint32(t.UnixMilli())
}
