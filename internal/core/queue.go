package core

// DefaultQueueSize is the number of pending actions an InputQueue holds.
const DefaultQueueSize = 32

// InputQueue is a bounded multi-producer, single-consumer queue of actions.
// Producers (key handlers) push whenever input arrives; the game loop
// drains it once per frame, so the game only ever sees whole frames.
type InputQueue struct {
	ch chan Action
}

// NewInputQueue creates a queue holding up to size actions.
// A non-positive size uses DefaultQueueSize.
func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &InputQueue{ch: make(chan Action, size)}
}

// Push enqueues an action without blocking.
// Returns false if the queue is full and the action was dropped.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone {
		return false
	}
	select {
	case q.ch <- a:
		return true
	default:
		return false
	}
}

// Drain removes every pending action and returns them as a frame.
// Only one goroutine may drain.
func (q *InputQueue) Drain() InputFrame {
	frame := NewInputFrame()
	for {
		select {
		case a := <-q.ch:
			frame.Set(a)
		default:
			return frame
		}
	}
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *InputQueue) Cap() int {
	return cap(q.ch)
}
