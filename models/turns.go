package models

// PendingTurn is the dual representation of one user turn. For a non-image
// document attachment, Display names the file while API carries the extracted
// text; in every other case the two are the same value. Only API goes
// upstream, only Display is stored and rendered.
type PendingTurn struct {
	Display Message
	API     Message
}

// SameTurn reports whether the display and API messages are one and the same,
// i.e. the turn has no document split.
func (t PendingTurn) SameTurn() bool {
	if t.Display.Role != t.API.Role || len(t.Display.Parts) != len(t.API.Parts) {
		return false
	}
	for i := range t.Display.Parts {
		if t.Display.Parts[i] != t.API.Parts[i] {
			return false
		}
	}
	return true
}
