package arena

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

//Options represents the Arena's configurable options
type Options struct {
	Width    float64
	Height   float64
	Interval time.Duration
	MaxSteps int   //0 runs forever
	Seed     int64 //0 seeds from the clock
}

//Status represents the status of the Arena at concrete moment
type Status struct {
	FrameNum    int
	RunningMode RunningState
	Score       Score
	StepTime    time.Duration
}

//Viewer is the interface to any Viewer - the object who can display the game or feed the pointer
type Viewer interface {
	Refresh(s State)
	Register(a Arena)
	Start()
}

//The arena running status at the concrete moment
type RunningState int

//default options
const (
	DefFrameInterval = time.Second / 60
	DefWidth         = 800
	DefHeight        = 600
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultArenaOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefFrameInterval,
}

//BaseArena hosts the simulation loop
//all steps and control commands are executed one by one by the mainLoop goroutine
type BaseArena struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	game struct {
		State
		sync.Mutex
	}
	pointer   atomic.Uint64 //float64 bits of the last pointer y, NaN until the first report
	rnd       *rand.Rand
	stateCh   chan Status
	views     []Viewer
	runner    int //generation of the current runner, owned by the mainLoop
	controlCh chan func()
	closeCh   chan bool
	doneCh    chan struct{}
}

//NewBaseArena creates the BaseArena instance and starts its main loop
//stateCh is optional, when set it receives the Status on every running mode switch
func NewBaseArena(o *Options, stateCh chan Status) (*BaseArena, error) {
	if o == nil {
		o = &DefaultArenaOptions
	}
	f := Field{Width: o.Width, Height: o.Height}
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, "can't create the arena")
	}

	u := BaseArena{
		options:   *o,
		controlCh: make(chan func()),
		closeCh:   make(chan bool, 1),
		doneCh:    make(chan struct{}),
		stateCh:   stateCh,
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	u.rnd = rand.New(rand.NewSource(seed))
	u.pointer.Store(math.Float64bits(math.NaN()))
	u.game.State = NewState(f, u.rnd)

	go u.mainLoop()
	return &u, nil
}

//MovePointer records the pointer position reported by the input source
//can be called from any goroutine, the next step uses the latest value
func (u *BaseArena) MovePointer(y float64) {
	u.pointer.Store(math.Float64bits(y))
}

//RegisterViewer registers the viewer - the arena will call the viewer after every step
func (u *BaseArena) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
	v.Refresh(u.State())
}

//StateCh returns the channel with the arena's status updates
func (u *BaseArena) StateCh() chan Status {
	return u.stateCh
}

//Status returns current arena status represented by Status struct
func (u *BaseArena) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current arena configuration represented by Options struct
func (u *BaseArena) Options() Options {
	return u.options
}

//State returns the snapshot of the game state
func (u *BaseArena) State() State {
	u.game.Lock()
	defer u.game.Unlock()
	return u.game.State
}

//Run starts the simulation with the fixed frame interval, returns immediately
func (u *BaseArena) Run() {
	u.command(u.run)
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseArena) Stop() {
	u.command(u.stop)
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseArena) Step() {
	u.command(u.step)
}

//Tick does one simulation step and returns when the step and its rendering are done
//it's the entry point for hosts which schedule the frames themselves
func (u *BaseArena) Tick() {
	done := make(chan struct{})
	if u.command(func() {
		u.step()
		close(done)
	}) {
		<-done
	}
}

//Close stops the main loop, returns immediately
func (u *BaseArena) Close() {
	select {
	case u.closeCh <- true:
	default:
	}
}

//command passes the function to the main loop, returns false when the loop is already closed
func (u *BaseArena) command(cmd func()) bool {
	select {
	case u.controlCh <- cmd:
		return true
	case <-u.doneCh:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseArena) mainLoop() {
	defer close(u.doneCh)
	for {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case <-u.closeCh:
			return
		}
	}
}

func (u *BaseArena) runningMode() RunningState {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.RunningMode
}

//switchRunningState switch the state of the arena to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseArena) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the fixed interval cycle
//the cycle stops on Stop() calling, on Close() or when MaxSteps is reached
//every start gets a new generation, a runner from an older generation exits on its next tick
func (u *BaseArena) run() {
	if mode := u.runningMode(); mode == RunningStateRun || mode == RunningStateFinished {
		return
	}
	u.runner++
	gen := u.runner
	u.switchRunningState(RunningStateRun)
	go func() {
		done := make(chan bool)
		for {
			if !u.command(func() {
				alive := u.runner == gen && u.runningMode() == RunningStateRun
				if alive {
					u.step()
				}
				done <- alive
			}) {
				return
			}
			if !<-done {
				return
			}
			if u.options.Interval > 0 {
				time.Sleep(u.options.Interval)
			}
		}
	}()
}

//stop stops the arena running cycle
func (u *BaseArena) stop() {
	if u.runningMode() == RunningStateRun {
		u.runner++
		u.switchRunningState(RunningStateManual)
	}
}

//step advances the game by one frame and hands the snapshot to the viewers
func (u *BaseArena) step() {
	rm := u.runningMode()
	if rm == RunningStateFinished {
		return
	}
	u.switchRunningState(RunningStateStep)

	start := time.Now()
	u.game.Lock()
	Step(&u.game.State, math.Float64frombits(u.pointer.Load()), u.rnd)
	snapshot := u.game.State
	u.game.Unlock()

	u.state.Lock()
	u.state.FrameNum++
	u.state.Score = snapshot.Score
	u.state.StepTime = time.Since(start)
	finished := u.options.MaxSteps != 0 && u.state.FrameNum >= u.options.MaxSteps
	u.state.Unlock()

	u.refreshView(snapshot)
	if finished {
		u.switchRunningState(RunningStateFinished)
	} else {
		u.switchRunningState(rm)
	}
}

//refreshView calls Refresh event for all registered views
func (u *BaseArena) refreshView(s State) {
	for _, v := range u.views {
		v.Refresh(s)
	}
}
