package session

// timer tracks the one-second tick chain of a session. Every start and stop
// moves to a new generation, so a tick scheduled under an older generation is
// recognised as cancelled when it arrives.
type timer struct {
	gen    uint64
	active bool
}

// start cancels any previous chain and opens a new one.
func (t *timer) start() uint64 {
	t.gen++
	t.active = true
	return t.gen
}

func (t *timer) stop() {
	if !t.active {
		return
	}
	t.gen++
	t.active = false
}

func (t *timer) live(gen uint64) bool {
	return t.active && gen == t.gen
}
