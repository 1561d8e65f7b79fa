// session/context.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stopbars/bars/config"
	"github.com/stopbars/bars/log"
	"github.com/stopbars/bars/scope"
)

// Loader provides aerodrome configurations; *config.Manager is one.
type Loader interface {
	Load(ctx context.Context, icao string) (*config.Aerodrome, error)
}

var _ Loader = (*config.Manager)(nil)

// DefaultLoadTimeout bounds each aerodrome configuration load.
const DefaultLoadTimeout = 30 * time.Second

type loadResult struct {
	icao string
	cfg  *config.Aerodrome
	err  error
}

// Context is the lighting-control session shared by all of the screens
// of one host. Like the screens, it is used from a single goroutine;
// configuration loads run in the background and their results are
// picked up by Tick.
type Context struct {
	loader      Loader
	LoadTimeout time.Duration

	// loadCtx is canceled by Close to abandon outstanding loads.
	loadCtx    context.Context
	cancelLoad context.CancelFunc
	inflight   map[string]bool
	results    chan loadResult

	state      scope.ConnectionState
	callsign   string
	controller bool

	// tracked counts the screens showing each aerodrome.
	tracked    map[string]int
	aerodromes map[string]*Aerodrome
	// failed records aerodromes whose configuration could not be loaded
	// so that Tick doesn't keep retrying them.
	failed map[string]error

	messages []string

	Now func() time.Time
	lg  *log.Logger
}

func NewContext(loader Loader, lg *log.Logger) *Context {
	loadCtx, cancel := context.WithCancel(context.Background())
	c := &Context{
		loader:      loader,
		LoadTimeout: DefaultLoadTimeout,
		loadCtx:     loadCtx,
		cancelLoad:  cancel,
		inflight:    make(map[string]bool),
		results:     make(chan loadResult, 16),
		tracked:     make(map[string]int),
		aerodromes:  make(map[string]*Aerodrome),
		failed:      make(map[string]error),
		Now:         time.Now,
		lg:          lg,
	}
	c.AddMessage("hello!")
	return c
}

///////////////////////////////////////////////////////////////////////////
// Connection

func (c *Context) ConnectionState() scope.ConnectionState {
	return c.state
}

// ConnectDirect connects to the server as the given callsign; controller
// indicates whether the user is logged in as a controller.
func (c *Context) ConnectDirect(callsign string, controller bool) {
	c.callsign, c.controller = callsign, controller
	c.setState(scope.ConnectedDirect)
}

func (c *Context) ConnectProxy() {
	c.setState(scope.ConnectedProxy)
}

func (c *Context) ConnectLocal() {
	c.controller = true
	c.setState(scope.ConnectedLocal)
}

func (c *Context) Disconnect() {
	c.callsign, c.controller = "", false
	c.setState(scope.Disconnected)
}

// Poison marks the connection as refused; it stays that way until the
// next explicit connect.
func (c *Context) Poison(reason string) {
	c.AddMessage("connection refused: " + reason)
	c.setState(scope.Poisoned)
}

func (c *Context) setState(s scope.ConnectionState) {
	if s == c.state {
		return
	}
	c.lg.Info("connection state", "from", c.state.String(), "to", s.String(), "callsign", c.callsign)
	c.state = s

	// Control is relinquished whenever the connection changes.
	for _, a := range c.aerodromes {
		a.SetActivity(scope.Observing)
	}
}

// CanControl reports whether the user may take control of an aerodrome.
func (c *Context) CanControl() bool {
	return c.state.Connected() && c.controller
}

///////////////////////////////////////////////////////////////////////////
// Aerodromes

func (c *Context) TrackAerodrome(icao string) {
	c.tracked[icao]++
	if c.tracked[icao] == 1 {
		delete(c.failed, icao)
		c.lg.Debugf("%s: tracking", icao)
	}
}

func (c *Context) UntrackAerodrome(icao string) {
	if c.tracked[icao] == 0 {
		c.lg.Warnf("%s: untracked more times than tracked", icao)
		return
	}
	c.tracked[icao]--
	if c.tracked[icao] == 0 {
		delete(c.tracked, icao)
		delete(c.aerodromes, icao)
		c.lg.Debugf("%s: no longer tracked", icao)
	}
}

func (c *Context) Tracked(icao string) int {
	return c.tracked[icao]
}

// Aerodrome returns the state of a tracked aerodrome once its
// configuration has been loaded.
func (c *Context) Aerodrome(icao string) (*Aerodrome, bool) {
	a, ok := c.aerodromes[icao]
	return a, ok
}

// Tick is called periodically by the host. It never blocks: it takes
// the results of finished configuration loads, starts loads for newly
// tracked aerodromes, and advances timed node resets.
func (c *Context) Tick() {
	c.drainLoads()

	for icao := range c.tracked {
		if _, ok := c.aerodromes[icao]; ok {
			continue
		}
		if _, ok := c.failed[icao]; ok {
			continue
		}
		if !c.inflight[icao] {
			c.startLoad(icao)
		}
	}

	now := c.Now()
	for _, a := range c.aerodromes {
		a.Tick(now)
	}
}

// WaitLoads blocks until every load started by Tick has finished and its
// result has been taken, or until ctx is done.
func (c *Context) WaitLoads(ctx context.Context) error {
	for len(c.inflight) > 0 {
		select {
		case r := <-c.results:
			c.finishLoad(r)
		case <-c.loadCtx.Done():
			return c.loadCtx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close abandons any outstanding configuration loads.
func (c *Context) Close() {
	c.cancelLoad()
}

func (c *Context) startLoad(icao string) {
	c.inflight[icao] = true
	c.lg.Debugf("%s: loading configuration", icao)

	go func() {
		ctx, cancel := context.WithTimeout(c.loadCtx, c.LoadTimeout)
		defer cancel()

		cfg, err := c.loader.Load(ctx, icao)
		select {
		case c.results <- loadResult{icao: icao, cfg: cfg, err: err}:
		case <-c.loadCtx.Done():
		}
	}()
}

func (c *Context) drainLoads() {
	for {
		select {
		case r := <-c.results:
			c.finishLoad(r)
		default:
			return
		}
	}
}

func (c *Context) finishLoad(r loadResult) {
	delete(c.inflight, r.icao)

	if c.tracked[r.icao] == 0 {
		c.lg.Debugf("%s: discarding configuration loaded after untracking", r.icao)
		return
	}

	if r.err != nil {
		c.failed[r.icao] = r.err
		c.lg.Errorf("%s: %v", r.icao, r.err)
		switch {
		case errors.Is(r.err, config.ErrNoSource), errors.Is(r.err, config.ErrNotInSource):
			c.AddMessage(fmt.Sprintf("%s: no configuration available", r.icao))
		default:
			c.AddMessage(fmt.Sprintf("%s: unable to load configuration", r.icao))
		}
		return
	}

	c.aerodromes[r.icao] = NewAerodrome(r.cfg)
	c.lg.Infof("%s: loaded %d nodes, %d profiles, %d views", r.icao, len(r.cfg.Nodes),
		len(r.cfg.Profiles), len(r.cfg.Views))
}

///////////////////////////////////////////////////////////////////////////
// Messages

func (c *Context) AddMessage(msg string) {
	c.lg.Info("message", "text", msg)
	c.messages = append(c.messages, msg)
}

// NextMessage returns the oldest message for the user that hasn't been
// returned yet.
func (c *Context) NextMessage() (string, bool) {
	if len(c.messages) == 0 {
		return "", false
	}
	msg := c.messages[0]
	c.messages = c.messages[1:]
	return msg, true
}
