// Package events carries parsed input intents from the terminal poll
// goroutine to the simulation loop
package events

import (
	"sync/atomic"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/input"
)

// IntentQueue is a fixed-size ring the poll goroutine pushes into without
// locks while the simulation loop drains it once per frame. Any number of
// goroutines may Push; only one may Consume. A per-slot published flag
// keeps the consumer from observing a half-written intent, and when
// producers outrun the consumer the oldest unread intents are dropped
type IntentQueue struct {
	intents   [constants.IntentQueueSize]input.Intent
	published [constants.IntentQueueSize]atomic.Bool // set once the slot holds a complete intent
	head      atomic.Uint64                          // next slot to read
	tail      atomic.Uint64                          // next slot to claim
}

func NewIntentQueue() *IntentQueue {
	q := &IntentQueue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push claims a slot by CAS on the write index, fills it, then marks it
// published. If the ring has wrapped onto unread slots, the read index is
// dragged forward so the consumer skips what was overwritten
func (q *IntentQueue) Push(intent input.Intent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constants.IntentBufferMask

			q.intents[idx] = intent
			q.published[idx].Store(true) // publish strictly after the slot write

			currentHead := q.head.Load()
			if nextTail-currentHead > constants.IntentQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-constants.IntentQueueSize)
			}
			return
		}
	}
}

// Consume drains every published intent since the last call, in arrival
// order, and advances the read index. Only the simulation loop may call
// it. An unpublished slot ends the batch; that intent and anything behind
// it surface on the next call
func (q *IntentQueue) Consume() []input.Intent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constants.IntentQueueSize {
			maxAvailable = constants.IntentQueueSize
			currentHead = currentTail - constants.IntentQueueSize
		}

		result := make([]input.Intent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constants.IntentBufferMask

			if !q.published[idx].Load() {
				break // a producer claimed this slot but has not finished
			}

			result = append(result, q.intents[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
