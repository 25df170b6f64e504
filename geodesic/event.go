package geodesic

import "container/heap"

// eventKind distinguishes what an event asks the engine to do when
// popped.
type eventKind int

const (
	// leftChildEvent asks the engine to materialize node's left child.
	leftChildEvent eventKind = iota
	// rightChildEvent asks the engine to materialize node's right child.
	rightChildEvent
	// pseudoSourceEvent asks the engine to run expandPseudoSource for
	// node's targetVertex.
	pseudoSourceEvent
)

// event is one entry in the engine's priority queue. Events reference
// their owning node by stable index rather than by pointer so that a
// node's destruction (eviction) need only flip this event's cancelled
// flag, matching a lazy-decrease-key pattern (push duplicates, skip
// stale pops) but applied here to cancellation rather than relaxation.
type event struct {
	node      nodeIndex
	kind      eventKind
	priority  float64 // lower-bound distance estimate driving heap order
	cancelled bool
}

// eventArena owns every event created during one ComputeShortestPaths
// call and is the only place event.cancelled is ever set.
type eventArena struct {
	events []event
}

func (a *eventArena) reset() { a.events = a.events[:0] }

func (a *eventArena) alloc(e event) eventIndex {
	idx := eventIndex(len(a.events))
	a.events = append(a.events, e)
	return idx
}

func (a *eventArena) get(i eventIndex) *event { return &a.events[i] }

// cancel marks event i as cancelled, a no-op for invalidEvent. The
// event's heap slot is left in place and discarded lazily when popped.
func (a *eventArena) cancel(i eventIndex) {
	if i == invalidEvent {
		return
	}
	a.events[i].cancelled = true
}

// eventHeapItem is the container/heap element: an index into the
// eventArena, plus the priority snapshotted at push time (the arena
// entry itself never changes priority once pushed).
type eventHeapItem struct {
	idx      eventIndex
	priority float64
}

// eventHeap is a min-heap of eventHeapItem ordered by priority
// ascending, mirroring a standard container/heap priority-queue shape.
type eventHeap []eventHeapItem

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(eventHeapItem)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// eventQueue wraps eventHeap with the arena lookup needed to skip
// cancelled entries transparently.
type eventQueue struct {
	heap   eventHeap
	arena  *eventArena
}

func newEventQueue(arena *eventArena) *eventQueue {
	q := &eventQueue{arena: arena}
	heap.Init(&q.heap)
	return q
}

func (q *eventQueue) reset() {
	q.heap = q.heap[:0]
}

func (q *eventQueue) push(idx eventIndex, priority float64) {
	heap.Push(&q.heap, eventHeapItem{idx: idx, priority: priority})
}

// pop returns the next non-cancelled event's index, discarding
// cancelled entries as it goes, or invalidEvent if the queue is
// exhausted.
func (q *eventQueue) pop() eventIndex {
	for q.heap.Len() > 0 {
		item := heap.Pop(&q.heap).(eventHeapItem)
		if q.arena.get(item.idx).cancelled {
			continue
		}
		return item.idx
	}
	return invalidEvent
}

func (q *eventQueue) empty() bool {
	for q.heap.Len() > 0 {
		top := q.heap[0]
		if !q.arena.get(top.idx).cancelled {
			return false
		}
		heap.Pop(&q.heap)
	}
	return true
}
