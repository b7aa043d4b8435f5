package arena

import (
	"math/rand"
	"testing"
)

func Benchmark_Step(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	s := NewState(Field{Width: DefWidth, Height: DefHeight}, rnd)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Step(&s, float64(i%DefHeight), rnd)
	}
}

func Benchmark_Tick(b *testing.B) {
	o := DefaultArenaOptions
	o.Interval = 0
	a, err := NewBaseArena(&o, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Tick()
	}
	a.Close()
}

func Benchmark_Run(b *testing.B) {
	o := DefaultArenaOptions
	o.Interval = 0
	o.MaxSteps = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		stateCh := make(chan Status, 10)
		a, err := NewBaseArena(&o, stateCh)
		if err != nil {
			b.Fatal(err)
		}
		a.Run()
		for {
			//wait for finish
			st := <-stateCh
			if st.RunningMode == RunningStateFinished {
				break
			}
		}
		a.Close()
	}
}
