package engine

// Intent is a discrete player request.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentQuit
)

// String returns the intent's wire name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveLeft:
		return "move-left"
	case IntentMoveRight:
		return "move-right"
	case IntentSoftDrop:
		return "soft-drop"
	case IntentRotate:
		return "rotate"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// candidate returns the piece that results from applying the intent,
// and false for intents that do not move a piece.
func (i Intent) candidate(p Piece) (Piece, bool) {
	switch i {
	case IntentMoveLeft:
		return p.Moved(-1, 0), true
	case IntentMoveRight:
		return p.Moved(1, 0), true
	case IntentSoftDrop:
		return p.Moved(0, 1), true
	case IntentRotate:
		return p.Rotated(), true
	default:
		return p, false
	}
}
