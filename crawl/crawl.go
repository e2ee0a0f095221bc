// Package crawl builds and refreshes the per-language name table by
// crawling upstream scripture pages with a bounded worker pool. One failed
// work item never stops a batch; failures are counted and reported through
// progress events.
package crawl

// DefaultConcurrency is the worker-pool size used when none is configured.
const DefaultConcurrency = 12

// Result holds the outcome of a crawl run.
type Result struct {
	// Saved counts work items that produced a usable value.
	Saved int

	// Skipped counts pages that fetched fine but yielded nothing usable
	// (empty titles, sentinel values, unrecoverable labels).
	Skipped int

	// Failed counts work items whose fetch failed after retries.
	Failed int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Key       string
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress. Callbacks run on
// the collector goroutine, never concurrently.
type ProgressFunc func(event ProgressEvent)
