package domain

// EventKind names a discrete engine notification. Consumers map kinds to
// side effects (sound, animation); the engine owns none of that.
type EventKind string

const (
	EventDailyDouble EventKind = "dailyDouble"
	EventMandatory   EventKind = "mandatory"
	EventTick        EventKind = "tick"
	EventCorrect     EventKind = "correct"
	EventWrong       EventKind = "wrong"
	EventSessionOver EventKind = "sessionOver"
)

// Event is a single engine notification. TimeLeft is set for tick events.
type Event struct {
	Kind     EventKind `json:"kind"`
	TimeLeft int       `json:"timeLeft,omitempty"`
}

// Update pairs the events produced by one transition with the snapshot that
// resulted from it.
type Update struct {
	Events  []Event         `json:"events,omitempty"`
	Session SessionSnapshot `json:"session"`
}
