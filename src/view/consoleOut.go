package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"pong/src/arena"
)

//ProgressFrames is how often the console reports the progress
const ProgressFrames = 1000

//ConsoleOut is the headless view, it reports the configuration, the goals and the summary as text
type ConsoleOut struct {
	a         arena.Arena
	w         io.Writer
	startTime time.Time
	score     arena.Score
	frames    int
}

func NewConsoleOut(w io.Writer) *ConsoleOut {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleOut{w: w}
}

//Refresh reports the goal when the score changes and the progress every ProgressFrames frames
func (c *ConsoleOut) Refresh(s arena.State) {
	if c.a == nil {
		return
	}
	c.frames = c.a.Status().FrameNum
	if s.Score != c.score {
		c.score = s.Score
		fmt.Fprintf(c.w, "  Frame %v: %v : %v\n", c.frames, s.Score.Left, s.Score.Right)
	}
	if c.frames != 0 && c.frames%ProgressFrames == 0 {
		fmt.Fprintf(c.w, "  Frames done: %v\n", c.frames)
	}
}

func (c *ConsoleOut) Register(a arena.Arena) {
	c.a = a
	c.score = a.State().Score
	o := c.a.Options()
	fmt.Fprintln(c.w, "Running configuration:")
	fmt.Fprintf(c.w, "  Field: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.w, "  Interval: %v\n", o.Interval)
	if o.MaxSteps > 0 {
		fmt.Fprintf(c.w, "  Max frames: %v\n", o.MaxSteps)
	} else {
		fmt.Fprintln(c.w, "  Max frames: unlimited")
	}
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

//Summary prints the final result, it's called when the arena reports the finish
func (c *ConsoleOut) Summary(st arena.Status) {
	resultData := map[string]interface{}{
		"Last frame":  st.FrameNum,
		"Total time":  time.Since(c.startTime).Round(time.Millisecond),
		"Left score":  st.Score.Left,
		"Right score": st.Score.Right,
	}
	fmt.Fprintln(c.w, "\nFinished:")
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
