// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(channels int) *ChannelPool {
	pool := &ChannelPool{}
	for i := 0; i < channels; i++ {
		pool.slots = append(pool.slots, &channelSlot{})
	}
	return pool
}

func TestPickSingleChannelReturnsDirectly(t *testing.T) {
	pool := testPool(1)
	for i := 0; i < 10; i++ {
		_, release := pool.Pick()
		defer release()
	}
	assert.Equal(t, int64(10), pool.Inflight(0))
}

func TestPickNeverSelectsTheMostLoaded(t *testing.T) {
	// With two channels, P2C always compares both; the busier channel must
	// not receive new work until it drains to parity.
	pool := testPool(2)
	pool.slots[0].inflight.Store(100)

	for i := 0; i < 50; i++ {
		_, release := pool.Pick()
		defer release()
	}
	assert.Equal(t, int64(100), pool.Inflight(0))
	assert.Equal(t, int64(50), pool.Inflight(1))
}

func TestReleaseDecrementsOnce(t *testing.T) {
	pool := testPool(1)
	_, release := pool.Pick()
	require.Equal(t, int64(1), pool.Inflight(0))

	release()
	release() // second call must be a no-op
	assert.Equal(t, int64(0), pool.Inflight(0))
}

func TestPickSpreadsAcrossIdleChannels(t *testing.T) {
	pool := testPool(8)
	var releases []func()
	for i := 0; i < 64; i++ {
		_, release := pool.Pick()
		releases = append(releases, release)
	}

	var total int64
	for i := 0; i < pool.Len(); i++ {
		count := pool.Inflight(i)
		total += count
		// P2C keeps the spread tight; no channel should hoard the load.
		assert.LessOrEqual(t, count, int64(24), "channel %d over-loaded", i)
	}
	assert.Equal(t, int64(64), total)

	for _, release := range releases {
		release()
	}
	for i := 0; i < pool.Len(); i++ {
		assert.Zero(t, pool.Inflight(i))
	}
}
