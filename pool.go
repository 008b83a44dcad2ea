package jumptrack

import (
	"sync"

	"github.com/swdee/go-jumptrack/config"
)

// Pool is a simple pipeline pool for processing multiple video streams in
// parallel.  Each stream must hold a pipeline for its full duration as
// tracks are per stream
type Pool struct {
	// pool of pipelines
	pipelines chan *Pipeline
	// size of pool
	size   int
	mu     sync.Mutex
	closed bool
}

// NewPool creates a new pipeline pool of the given size
func NewPool(size int, cfg config.Config) *Pool {
	p := &Pool{
		pipelines: make(chan *Pipeline, size),
		size:      size,
	}

	for i := 0; i < size; i++ {
		p.Return(NewPipeline(cfg))
	}

	return p
}

// Get a pipeline from the pool, blocks until one is available.  Returns nil
// once the pool is closed
func (p *Pool) Get() *Pipeline {
	return <-p.pipelines
}

// Return a pipeline to the pool.  Its tracks are cleared so the next
// stream starts fresh
func (p *Pool) Return(pipeline *Pipeline) {

	pipeline.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	select {
	case p.pipelines <- pipeline:
	default:
		// pool is full
	}
}

// Size returns the number of pipelines in the pool
func (p *Pool) Size() int {
	return p.size
}

// Close the pool
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.closed = true
	close(p.pipelines)

	// drain
	for range p.pipelines {
	}
}
