package arena

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testViewer struct {
	sync.Mutex
	arena     Arena
	started   bool
	snapshots []State
}

func (v *testViewer) Register(a Arena) {
	v.arena = a
}

func (v *testViewer) Refresh(s State) {
	v.Lock()
	defer v.Unlock()
	v.snapshots = append(v.snapshots, s)
}

func (v *testViewer) Start() {
	v.started = true
}

func (v *testViewer) last() (State, int) {
	v.Lock()
	defer v.Unlock()
	return v.snapshots[len(v.snapshots)-1], len(v.snapshots)
}

func newTestArena(t *testing.T, o Options, stateCh chan Status) *BaseArena {
	t.Helper()
	a, err := NewBaseArena(&o, stateCh)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func testOptions() Options {
	o := DefaultArenaOptions
	o.Interval = 0
	o.Seed = 42
	return o
}

func TestNewBaseArenaInvalidField(t *testing.T) {
	for _, o := range []Options{
		{Width: 0, Height: 600},
		{Width: 800, Height: 0},
		{Width: 800, Height: 10},
	} {
		a, err := NewBaseArena(&o, nil)
		assert.ErrorIs(t, err, ErrInvalidField)
		assert.Nil(t, a)
	}
}

func TestNewBaseArenaDefaults(t *testing.T) {
	a, err := NewBaseArena(nil, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, DefaultArenaOptions, a.Options())
	s := a.State()
	assert.Equal(t, Field{Width: DefWidth, Height: DefHeight}, s.Field)
	assert.Equal(t, Status{}, a.Status())
}

func TestSeedIsDeterministic(t *testing.T) {
	a := newTestArena(t, testOptions(), nil)
	b := newTestArena(t, testOptions(), nil)
	for i := 0; i < 300; i++ {
		a.Tick()
		b.Tick()
	}
	assert.Equal(t, a.State(), b.State())
}

func TestTick(t *testing.T) {
	a := newTestArena(t, testOptions(), nil)
	v := &testViewer{}
	a.RegisterViewer(v)

	assert.Equal(t, a, v.arena)
	_, n := v.last()
	require.Equal(t, 1, n, "registration hands the initial snapshot")

	before := a.State()
	a.Tick()

	s, n := v.last()
	assert.Equal(t, 2, n)
	assert.Equal(t, a.State(), s)
	assert.Equal(t, before.Ball.X+before.Ball.VX, s.Ball.X)
	assert.Equal(t, 1, a.Status().FrameNum)
	assert.Equal(t, RunningStateManual, a.Status().RunningMode)
}

func TestStepReportsStatus(t *testing.T) {
	stateCh := make(chan Status, 10)
	a := newTestArena(t, testOptions(), stateCh)

	a.Step()

	st := <-stateCh
	assert.Equal(t, RunningStateStep, st.RunningMode)
	assert.Equal(t, 0, st.FrameNum)
	st = <-stateCh
	assert.Equal(t, RunningStateManual, st.RunningMode)
	assert.Equal(t, 1, st.FrameNum)
}

func TestRunFinishesOnMaxSteps(t *testing.T) {
	o := testOptions()
	o.MaxSteps = 50
	stateCh := make(chan Status, 10)
	a := newTestArena(t, o, stateCh)
	v := &testViewer{}
	a.RegisterViewer(v)

	a.Run()
	var st Status
	for st = range stateCh {
		if st.RunningMode == RunningStateFinished {
			break
		}
	}
	assert.Equal(t, 50, st.FrameNum)

	_, n := v.last()
	assert.Equal(t, 51, n)

	a.Tick()
	assert.Equal(t, 50, a.Status().FrameNum, "finished arena doesn't step")
}

func TestRunAndStop(t *testing.T) {
	o := testOptions()
	o.Interval = time.Millisecond
	a := newTestArena(t, o, nil)

	a.Run()
	assert.Eventually(t, func() bool {
		return a.Status().FrameNum > 3
	}, time.Second, time.Millisecond)

	a.Stop()
	assert.Eventually(t, func() bool {
		return a.Status().RunningMode == RunningStateManual
	}, time.Second, time.Millisecond)

	frame := a.Status().FrameNum
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frame, a.Status().FrameNum)
}

func TestStopThenRunKeepsOneRunner(t *testing.T) {
	o := testOptions()
	o.Interval = 50 * time.Millisecond
	a := newTestArena(t, o, nil)

	a.Run()
	require.Eventually(t, func() bool {
		return a.Status().FrameNum >= 1
	}, time.Second, time.Millisecond)

	a.Stop()
	a.Run()
	require.Eventually(t, func() bool {
		return a.Status().RunningMode == RunningStateRun
	}, time.Second, time.Millisecond)

	frame := a.Status().FrameNum
	time.Sleep(500 * time.Millisecond)
	steps := a.Status().FrameNum - frame
	assert.Greater(t, steps, 0)
	assert.LessOrEqual(t, steps, 14, "one runner makes about 10 steps in 500ms, two would make 20")
}

func TestMovePointer(t *testing.T) {
	a := newTestArena(t, testOptions(), nil)

	a.Tick()
	assert.Equal(t, 260.0, a.State().Left.Y)

	a.MovePointer(100)
	a.MovePointer(200)
	a.Tick()
	assert.Equal(t, 160.0, a.State().Left.Y, "the last reported position wins")

	a.MovePointer(-1000)
	a.Tick()
	assert.Equal(t, 0.0, a.State().Left.Y)
}

func TestScoreInStatus(t *testing.T) {
	a := newTestArena(t, testOptions(), nil)
	a.MovePointer(0)
	for i := 0; i < 2000 && a.Status().Score == (Score{}); i++ {
		a.Tick()
	}
	assert.NotEqual(t, Score{}, a.Status().Score)
	assert.Equal(t, a.State().Score, a.Status().Score)
}

func TestClose(t *testing.T) {
	a, err := NewBaseArena(nil, nil)
	require.NoError(t, err)

	a.Close()
	<-a.doneCh

	a.Tick()
	a.Step()
	a.Close()
	assert.Equal(t, 0, a.Status().FrameNum)
}
