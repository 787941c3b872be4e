package db

import (
	"database/sql"
	"time"

	"github.com/ad/go-user-model/internal/observability/metrics"
)

const (
	queueBuffer = 100
	maxAttempts = 3
)

type dbTask struct {
	run  func(*sql.DB) (any, error)
	resp chan dbResult
}

type dbResult struct {
	data any
	err  error
}

// DBQueue funnels every store operation through a single worker goroutine,
// so concurrent callers never touch the database at the same time. Failed
// tasks are retried a fixed number of times with a growing delay.
type DBQueue struct {
	tasks      chan dbTask
	db         *sql.DB
	retryDelay time.Duration
	linear     bool
}

func NewDBQueue(db *sql.DB) *DBQueue {
	q := &DBQueue{
		tasks:      make(chan dbTask, queueBuffer),
		db:         db,
		retryDelay: 100 * time.Millisecond,
		linear:     true,
	}
	go q.worker()
	return q
}

// NewDBQueueForTest uses a flat minimal delay so retry paths stay fast
// under test.
func NewDBQueueForTest(db *sql.DB) *DBQueue {
	q := &DBQueue{
		tasks:      make(chan dbTask, queueBuffer),
		db:         db,
		retryDelay: time.Millisecond,
		linear:     false,
	}
	go q.worker()
	return q
}

// Execute runs the task on the worker goroutine and blocks until it
// finishes or exhausts its attempts. The last error is returned untouched
// so sentinel matching keeps working above the queue.
func (q *DBQueue) Execute(task func(*sql.DB) (any, error)) (any, error) {
	resp := make(chan dbResult, 1)
	q.tasks <- dbTask{run: task, resp: resp}
	result := <-resp
	return result.data, result.err
}

func (q *DBQueue) worker() {
	for task := range q.tasks {
		task.resp <- q.runWithRetry(task)
	}
}

func (q *DBQueue) runWithRetry(task dbTask) dbResult {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		data, err := task.run(q.db)
		if err == nil {
			return dbResult{data: data}
		}
		lastErr = err
		if attempt < maxAttempts {
			metrics.StoreOpRetries.Inc()
			time.Sleep(q.delayFor(attempt))
		}
	}
	return dbResult{err: lastErr}
}

func (q *DBQueue) delayFor(attempt int) time.Duration {
	if q.linear {
		return time.Duration(attempt) * q.retryDelay
	}
	return q.retryDelay
}

func (q *DBQueue) Close() {
	close(q.tasks)
}
