package sim

// TimeTeller reports the current simulated time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler accepts events that happen now or later.
type EventScheduler interface {
	TimeTeller

	Schedule(e Event)
}

// A SimulationEndHandler is told the final time once a run is over.
type SimulationEndHandler interface {
	Handle(now VTimeInSec)
}

// An Engine drives a discrete event simulation.
type Engine interface {
	Hookable
	EventScheduler

	// Run handles events in time order until none are left, the engine is
	// stopped or the time limit is passed.
	Run() error

	// Pause blocks Run before its next event until Continue is called. It
	// may be called from any goroutine.
	Pause()
	Continue()

	// Stop makes Run return before the next event is handled. The events left
	// in the queue are dropped.
	Stop()

	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished calls every registered SimulationEndHandler with the current
	// time.
	Finished()
}
