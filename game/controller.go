package game

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ludo/model"
)

const (
	DefaultTurnInterval = time.Second
	DefaultStepInterval = 500 * time.Millisecond
)

type Options struct {
	TurnInterval time.Duration
	StepInterval time.Duration
	Clock        clock.Clock
	Roller       Roller
	// OnCommit receives a copy of the state after every mutation.
	OnCommit func(model.Snapshot)
}

// Controller owns the model and advances it one turn at a time.
// All mutation happens on the goroutine started by Start or on the caller
// of StepTurn and Step; readers get copies under the read lock.
type Controller struct {
	mu      sync.RWMutex
	model   *model.Model
	current model.Player
	turn    int
	walk    *walk

	opts Options

	run    sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// walk is an on-path advance in progress.
type walk struct {
	player model.Player
	index  int
	left   int
}

func NewController(m *model.Model, opts Options) *Controller {
	if opts.TurnInterval <= 0 {
		opts.TurnInterval = DefaultTurnInterval
	}
	if opts.StepInterval <= 0 {
		opts.StepInterval = DefaultStepInterval
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Roller == nil {
		opts.Roller = NewRandRoller(time.Now().UnixNano())
	}
	return &Controller{
		model:   m,
		current: model.Yellow,
		opts:    opts,
	}
}

// StepTurn rotates to the next player, rolls the die and applies the
// movement rule. A Walking outcome leaves the token walk to Step.
func (c *Controller) StepTurn() Outcome {
	c.mu.Lock()
	outcome := c.stepTurn()
	snap := c.snapshot()
	c.mu.Unlock()

	c.commit(snap)
	return outcome
}

func (c *Controller) stepTurn() Outcome {
	if c.walk != nil {
		log.Debugf("StepTurn %s still walking", c.walk.player.Name())
		return Skipped
	}
	c.current = c.current.Next()
	c.turn++

	face := model.Face(c.opts.Roller.Roll())
	if !face.Valid() {
		log.Warnf("StepTurn roller returned %d", face)
		return Skipped
	}
	c.model.Face = face

	if face == model.Six && c.enter(c.current) {
		return Entered
	}
	return c.startWalk(c.current, int(face))
}

// enter moves a token of p from its start area onto the first path cell.
func (c *Controller) enter(p model.Player) bool {
	path := c.model.Board.Paths[p]
	if len(path) == 0 {
		log.Debugf("enter %s no path", p.Name())
		return false
	}
	from, found := c.model.StartToken(p)
	if !found {
		return false
	}
	return c.model.MoveToken(p, from, path[0])
}

func (c *Controller) startWalk(p model.Player, roll int) Outcome {
	if len(c.model.Board.Paths[p]) == 0 {
		log.Debugf("walk %s no path", p.Name())
		return Skipped
	}
	index, found := c.model.PathToken(p)
	if !found {
		log.Debugf("walk %s nothing on path", p.Name())
		return Skipped
	}
	c.walk = &walk{player: p, index: index, left: roll}
	return Walking
}

// Step moves the walking token one cell and reports whether steps remain.
func (c *Controller) Step() bool {
	c.mu.Lock()
	if c.walk == nil {
		c.mu.Unlock()
		return false
	}
	more := c.step()
	snap := c.snapshot()
	c.mu.Unlock()

	c.commit(snap)
	return more
}

func (c *Controller) step() bool {
	w := c.walk
	path := c.model.Board.Paths[w.player]
	next := (w.index + 1) % len(path)
	if !c.model.MoveToken(w.player, path[w.index], path[next]) {
		log.Debugf("step %s nothing at %v", w.player.Name(), path[w.index])
	}
	w.index = next
	w.left--
	if w.left <= 0 {
		c.walk = nil
		return false
	}
	return true
}

func (c *Controller) Walking() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.walk != nil
}

// Start begins the turn cadence. It does nothing when already running.
func (c *Controller) Start() {
	c.run.Lock()
	defer c.run.Unlock()
	if c.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	turns := c.opts.Clock.Ticker(c.opts.TurnInterval)
	log.Infof("Controller.Start every %v", c.opts.TurnInterval)
	go c.loop(ctx, turns, c.done)
}

// Stop halts the cadence, an unfinished walk included, and waits for the
// loop to exit. A later Start finishes the walk first.
func (c *Controller) Stop() {
	c.run.Lock()
	defer c.run.Unlock()
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
	log.Info("Controller.Stop")
}

func (c *Controller) Running() bool {
	c.run.Lock()
	defer c.run.Unlock()
	return c.cancel != nil
}

func (c *Controller) loop(ctx context.Context, turns *clock.Ticker, done chan struct{}) {
	defer close(done)
	defer func() { turns.Stop() }()

	if c.Walking() {
		turns.Stop()
		if !c.walkOut(ctx) {
			return
		}
		turns = c.opts.Clock.Ticker(c.opts.TurnInterval)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-turns.C:
			if c.StepTurn() != Walking {
				continue
			}
			turns.Stop()
			if !c.walkOut(ctx) {
				return
			}
			turns = c.opts.Clock.Ticker(c.opts.TurnInterval)
		}
	}
}

// walkOut steps the current walk on the finer cadence until it ends.
func (c *Controller) walkOut(ctx context.Context) bool {
	steps := c.opts.Clock.Ticker(c.opts.StepInterval)
	defer steps.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-steps.C:
			if !c.Step() {
				return true
			}
		}
	}
}

func (c *Controller) commit(snap model.Snapshot) {
	if c.opts.OnCommit != nil {
		c.opts.OnCommit(snap)
	}
}

func (c *Controller) snapshot() model.Snapshot {
	return model.Snapshot{
		Turn:    c.turn,
		Current: c.current,
		Face:    c.model.Face,
		Dice:    c.model.Board.Dice,
		Tokens:  c.model.CopyTokens(),
		Walking: c.walk != nil,
	}
}
