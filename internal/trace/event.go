package trace

// EventType identifies the kind of trace event
type EventType string

const (
	EventRoute      EventType = "route"          // Router moved to a new page
	EventAdvance    EventType = "deck_advance"   // Navigator moved forward
	EventRetreat    EventType = "deck_retreat"   // Navigator moved back
	EventJump       EventType = "deck_jump"      // Navigator jumped to a queued card
	EventActivate   EventType = "deck_activate"  // Front card opened its route
	EventIntroDone  EventType = "intro_done"     // Charge-up intro finished
	EventReload     EventType = "content_reload" // Content file reloaded
	EventSceneReady EventType = "scene_ready"    // Backdrop finished loading
)

// Event is a single traced occurrence.
type Event struct {
	Type       EventType
	Name       string            // Human-readable name (route path, card title, etc.)
	Attributes map[string]string // Additional metadata
}

// SpanName returns the name the span is exported under.
func (e Event) SpanName() string {
	if e.Name == "" {
		return string(e.Type)
	}
	return string(e.Type) + " " + e.Name
}
