// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_resources holds the per-downstream channel pools shared by
// every stream context. Pools are built once at startup and are read-only
// afterwards; only the per-channel in-flight counters mutate.
package internal_resources

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"

	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/pkg/utils"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// readinessTimeout bounds the startup wait per channel.
const readinessTimeout = 10 * time.Second

type channelSlot struct {
	conn     *grpc.ClientConn
	inflight atomic.Int64
}

// ChannelPool keeps a fixed set of persistent channels to one downstream
// service and hands them out with power-of-two-choices balancing: draw two
// distinct random indices and return the channel with fewer in-flight calls.
// A channel with the most in-flight calls in the pool never receives new
// streams; it drains until it is no worse than its peers.
type ChannelPool struct {
	logger commons.Logger
	uri    string
	slots  []*channelSlot
}

// NewChannelPool dials `channels` connections to uri and waits for each to
// become ready. A channel that cannot connect within the readiness timeout is
// a startup failure.
func NewChannelPool(ctx context.Context, logger commons.Logger, uri string, channels int) (*ChannelPool, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("channel pool for %s: channel count must be positive, got %d", uri, channels)
	}

	pool := &ChannelPool{
		logger: logger,
		uri:    uri,
		slots:  make([]*channelSlot, 0, channels),
	}
	for i := 0; i < channels; i++ {
		conn, err := utils.DialInsecure(uri)
		if err != nil {
			pool.Close()
			return nil, err
		}
		readyCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
		err = utils.WaitUntilReady(readyCtx, conn, uri)
		cancel()
		if err != nil {
			conn.Close()
			pool.Close()
			return nil, fmt.Errorf("failed to connect to %s: %w", uri, err)
		}
		pool.slots = append(pool.slots, &channelSlot{conn: conn})
		logger.Debugf("established downstream connection %d of %d to %s", i+1, channels, uri)
	}
	return pool, nil
}

// Pick returns the less-loaded of two random channels together with a release
// function that must be called exactly once when the call built on it tears
// down. With a single channel it is returned directly.
func (p *ChannelPool) Pick() (*grpc.ClientConn, func()) {
	slot := p.slots[0]
	if len(p.slots) > 1 {
		n := len(p.slots)
		r1 := rand.Intn(n)
		r2 := rand.Intn(n - 1)
		if r2 >= r1 {
			r2++
		}
		slot = p.slots[r1]
		if p.slots[r2].inflight.Load() < slot.inflight.Load() {
			slot = p.slots[r2]
		}
	}
	slot.inflight.Add(1)
	var once sync.Once
	release := func() {
		once.Do(func() { slot.inflight.Add(-1) })
	}
	return slot.conn, release
}

// Inflight reports the in-flight count of channel i.
func (p *ChannelPool) Inflight(i int) int64 {
	return p.slots[i].inflight.Load()
}

// Len reports the number of channels in the pool.
func (p *ChannelPool) Len() int {
	return len(p.slots)
}

// Close tears down every channel.
func (p *ChannelPool) Close() {
	for _, slot := range p.slots {
		slot.conn.Close()
	}
}

// Resources bundles the three downstream pools plus the recognition model
// name handed to every ASR configuration.
type Resources struct {
	logger commons.Logger

	asr *ChannelPool
	nlp *ChannelPool
	tts *ChannelPool

	asrModelName string
}

// New connects the pools for all three downstream services. Any connection
// failure is fatal at startup.
func New(ctx context.Context, logger commons.Logger, asrURL, nlpURL, ttsURL string, channels int, asrModelName string) (*Resources, error) {
	asr, err := NewChannelPool(ctx, logger, asrURL, channels)
	if err != nil {
		return nil, err
	}
	nlp, err := NewChannelPool(ctx, logger, nlpURL, channels)
	if err != nil {
		asr.Close()
		return nil, err
	}
	tts, err := NewChannelPool(ctx, logger, ttsURL, channels)
	if err != nil {
		asr.Close()
		nlp.Close()
		return nil, err
	}

	logger.Infof("riva asr connection established to %s", asrURL)
	logger.Infof("riva nlp connection established to %s", nlpURL)
	logger.Infof("riva tts connection established to %s", ttsURL)

	return &Resources{
		logger:       logger,
		asr:          asr,
		nlp:          nlp,
		tts:          tts,
		asrModelName: asrModelName,
	}, nil
}

// ASRStub mints a recognizer stub on the channel chosen by Pick.
func (r *Resources) ASRStub() (riva.RivaSpeechRecognitionClient, func()) {
	conn, release := r.asr.Pick()
	return riva.NewRivaSpeechRecognitionClient(conn), release
}

// NLPStub mints a language-understanding stub on the channel chosen by Pick.
func (r *Resources) NLPStub() (riva.RivaLanguageUnderstandingClient, func()) {
	conn, release := r.nlp.Pick()
	return riva.NewRivaLanguageUnderstandingClient(conn), release
}

// TTSStub mints a synthesis stub on the channel chosen by Pick.
func (r *Resources) TTSStub() (riva.RivaSpeechSynthesisClient, func()) {
	conn, release := r.tts.Pick()
	return riva.NewRivaSpeechSynthesisClient(conn), release
}

// Model returns the recognition model name, empty for the server default.
func (r *Resources) Model() string {
	return r.asrModelName
}

// Close tears down all pools.
func (r *Resources) Close() {
	r.asr.Close()
	r.nlp.Close()
	r.tts.Close()
}
