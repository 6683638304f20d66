// Package session implements the typing-session state machine and scoring.
package session

// State is the lifecycle phase of a session.
type State int

const (
	// Idle means no sentences are loaded.
	Idle State = iota
	// AwaitingInput means sentences are loaded but nothing has been typed.
	AwaitingInput
	// Running means the timer is active.
	Running
	// Completed is terminal until reset. Practice mode never reaches it.
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingInput:
		return "awaiting-input"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}
