package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run executes f, reporting a panic to Sentry without stopping the worker.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to be run by one of the workers. To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Group runs a batch of functions on the workers and waits for all of them to finish.
type Group struct {
	wg sync.WaitGroup
}

// Go submits f as part of the group.
func (g *Group) Go(f func()) {
	g.wg.Add(1)
	Submit(func() {
		defer g.wg.Done()
		f()
	})
}

// Wait blocks until every function submitted to the group has returned.
func (g *Group) Wait() {
	g.wg.Wait()
}
