// Package deck implements the card stack navigator used by the beyond overview.
//
// A Navigator owns an ordered, immutable list of cards and tracks which card is in
// front, which cards have been passed and which are still queued behind it. Every
// accepted transition returns a Transition handle; the host schedules one timer per
// handle and reports back through Settle. Until then the navigator rejects further
// transitions. Dispose invalidates whatever is still pending.
//
// Placement is a pure function of navigator state. Decorators (Tilt, Shimmer) and the
// Tweener are presentational and never mutate the navigator.
package deck
