package route

// Router tracks the current location and the back-history.
type Router struct {
	current Entry
	history []Entry
	limit   int
}

// DefaultHistory is how many locations Back can return through.
const DefaultHistory = 64

// NewRouter creates a router positioned at start (resolved).
func NewRouter(start string) *Router {
	return &Router{current: Resolve(start), limit: DefaultHistory}
}

// Current returns the current location.
func (r *Router) Current() Entry {
	return r.current
}

// Navigate moves to p. The previous location is pushed onto the history unless
// p resolves to where the router already is. It reports whether the location
// changed.
func (r *Router) Navigate(p string) (Entry, bool) {
	next := Resolve(p)
	if next.Path == r.current.Path {
		return r.current, false
	}
	r.history = append(r.history, r.current)
	if len(r.history) > r.limit {
		r.history = r.history[len(r.history)-r.limit:]
	}
	r.current = next
	return next, true
}

// Back returns to the previous location. ok is false when the history is empty.
func (r *Router) Back() (Entry, bool) {
	if len(r.history) == 0 {
		return r.current, false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return r.current, true
}

// CanGoBack reports whether Back would move.
func (r *Router) CanGoBack() bool {
	return len(r.history) > 0
}

// Depth returns the number of entries in the history.
func (r *Router) Depth() int {
	return len(r.history)
}
