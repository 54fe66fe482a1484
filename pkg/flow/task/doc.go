// Package task contains the structured-concurrency plumbing used by the flow
// combinators: a Task handle that can be cancelled and joined, and a
// single-assignment Slot that a task can wait on.
//
// - Start: run a function in its own goroutine and context
// - Cancel/Join/CancelAndJoin: stop a task and wait until it has returned
// - NewSlot/Set/Await: hand one value from one goroutine to another
//
// A Task started by a combinator is always joined before the combinator
// returns, so no goroutine outlives the scope that started it.
package task
