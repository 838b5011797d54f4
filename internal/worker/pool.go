// Package worker provides a worker pool for playing many games in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/ludo-go/internal/engine"
	"github.com/lgbarn/ludo-go/internal/game"
)

// WorkItem represents a game to be played.
type WorkItem struct {
	Index int   // Position in the batch
	Seed  int64 // Seeds the game's dice and chooser
}

// ProcessResult represents the outcome of one game.
type ProcessResult struct {
	Index  int
	Seed   int64
	Result game.Result
	Board  *engine.Snapshot // Final position (may be nil)
	Error  error
}

// ProcessFunc plays a single work item. It should return promptly once
// ctx is done.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers that play games.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	unwatch     func() bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; other settings
// have sensible defaults: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Workers stop playing new items once
// Stop is called, which happens automatically when ctx is done; queued
// items are drained unplayed.
func (p *Pool) Start(ctx context.Context) {
	if ctx.Err() != nil {
		p.Stop()
	}
	p.unwatch = context.AfterFunc(ctx, p.Stop)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	if p.unwatch != nil {
		p.unwatch()
	}
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunAll plays every item on a new pool and returns the results ordered by
// Index. Items skipped because ctx was cancelled have no result.
func RunAll(ctx context.Context, items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start(ctx)

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
