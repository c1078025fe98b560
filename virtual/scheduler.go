package virtual

// Scheduler defers work to the next frame. Requests made under the same key
// before the frame runs are coalesced: only the latest function runs, once.
type Scheduler interface {
	RequestFrame(key any, fn func())
	Cancel(key any)
}

type frameTask struct {
	key any
	fn  func()
}

// FrameQueue is a Scheduler driven by an explicit Flush call, once per frame.
// The gui package flushes it at the start of every GUI.Begin; the tui host
// flushes it on a tea.Tick.
type FrameQueue struct {
	tasks []frameTask
	index map[any]int
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{index: make(map[any]int)}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(key any, fn func()) {
	if i, ok := q.index[key]; ok {
		q.tasks[i].fn = fn
		return
	}
	q.index[key] = len(q.tasks)
	q.tasks = append(q.tasks, frameTask{key: key, fn: fn})
}

// Cancel implements Scheduler.
func (q *FrameQueue) Cancel(key any) {
	i, ok := q.index[key]
	if !ok {
		return
	}
	q.tasks[i].fn = nil
	delete(q.index, key)
}

// Flush runs every pending task and returns how many ran. Tasks requested
// while flushing run on the next Flush.
func (q *FrameQueue) Flush() int {
	if len(q.tasks) == 0 {
		return 0
	}
	tasks := q.tasks
	q.tasks = nil
	clear(q.index)

	ran := 0
	for _, t := range tasks {
		if t.fn == nil {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of tasks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.index)
}
