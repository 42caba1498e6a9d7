package event

import "github.com/ushitora-anqou/doomvid/constant"

// Queue is a fixed ring of events. When it is full the oldest pending
// event is overwritten.
type Queue struct {
	events     [constant.MAX_EVENTS]Event
	head, tail int
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Post(ev Event) {
	q.events[q.head] = ev
	q.head = (q.head + 1) % constant.MAX_EVENTS
	if q.head == q.tail {
		q.tail = (q.tail + 1) % constant.MAX_EVENTS
	}
}

func (q *Queue) Len() int {
	return (q.head - q.tail + constant.MAX_EVENTS) % constant.MAX_EVENTS
}

// Drain hands every pending event to fn in posting order.
func (q *Queue) Drain(fn func(Event)) {
	for q.tail != q.head {
		ev := q.events[q.tail]
		q.tail = (q.tail + 1) % constant.MAX_EVENTS
		fn(ev)
	}
}
