// Package scheduler implements a small worker pool whose submissions return futures.
//
// It backs the background import jobs of the API: a job is submitted once, the
// handler returns immediately and the job service watches the future.
//
//	           AddWork(fn) / Submit(s, fn)
//	                      │
//	                      ▼
//	┌──────────────────────────────────────────┐
//	│ run loop                                 │
//	│   work queue (FIFO) ──► dispatch()       │
//	│                          │               │
//	│        ┌─────────────────┼────────────┐  │
//	│        ▼                 ▼            ▼  │
//	│    worker 0          worker 1  ...  N-1  │
//	│        │                 │            │  │
//	│        └──── done ───────┴────────────┘  │
//	└──────────────────────────────────────────┘
//	                      │
//	                      ▼
//	           Future.C() / Future.Await(ctx)
//
// Every work item gets a context derived from the scheduler's own context.
// Future.Stop cancels that single item; Close cancels all of them, answers
// queued items with context.Canceled and waits for running workers to return.
// A panic inside a work item is recovered and reported as the item's error.
//
// # Usage
//
//	s := scheduler.NewScheduler(1)
//	defer s.Close()
//
//	future := scheduler.Submit(s, func(ctx context.Context) (int, error) {
//	    return importer.Import(ctx, persist)
//	})
//
//	result, err := future.Await(ctx)
package scheduler
