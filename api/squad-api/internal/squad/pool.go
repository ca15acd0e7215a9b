// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_squad

import (
	"github.com/rapidaai/speechsquad/pkg/commons"
)

// ContextPool bounds the number of concurrently served streams. Acquire is
// non-blocking; an empty pool is the back-pressure signal for new streams.
type ContextPool struct {
	logger   commons.Logger
	contexts chan *Context
}

// NewContextPool pre-allocates capacity contexts bound to the given factory.
func NewContextPool(logger commons.Logger, factory ClientFactory, capacity int) *ContextPool {
	pool := &ContextPool{
		logger:   logger,
		contexts: make(chan *Context, capacity),
	}
	for i := 0; i < capacity; i++ {
		pool.contexts <- NewContext(logger, factory)
	}
	return pool
}

// Acquire takes an idle context, reporting false when the pool is saturated.
func (p *ContextPool) Acquire() (*Context, bool) {
	select {
	case c := <-p.contexts:
		return c, true
	default:
		return nil, false
	}
}

// Release resets the context and returns it to the pool.
func (p *ContextPool) Release(c *Context) {
	c.Reset()
	p.contexts <- c
}

// Capacity reports the pool's fixed size.
func (p *ContextPool) Capacity() int {
	return cap(p.contexts)
}
