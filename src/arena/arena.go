package arena

type Arena interface {
	Status() Status
	Options() Options
	State() State
	StateCh() chan Status
	MovePointer(y float64)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Tick()
	Close()
}
