// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_clients

import (
	"context"

	"github.com/rapidaai/speechsquad/pkg/commons"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// TTSCallbacks are delivered from the adapter's receive goroutine: one
// OnResponse per audio frame, then OnFinish exactly once.
type TTSCallbacks struct {
	OnResponse func(*riva.SynthesizeSpeechResponse)
	OnFinish   func(error, Trailer)
}

// TTSClient owns one server-streaming SynthesizeOnline call. Write issues
// the single request and starts draining the response stream.
type TTSClient struct {
	logger    commons.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	stub      riva.RivaSpeechSynthesisClient
	release   func()
	callbacks TTSCallbacks
}

func NewTTSClient(
	ctx context.Context,
	logger commons.Logger,
	stub riva.RivaSpeechSynthesisClient,
	release func(),
	callbacks TTSCallbacks,
) *TTSClient {
	callCtx, cancel := context.WithCancel(ctx)
	return &TTSClient{
		logger:    logger,
		ctx:       callCtx,
		cancel:    cancel,
		stub:      stub,
		release:   release,
		callbacks: callbacks,
	}
}

// Write starts the synthesis call. It must be called at most once.
func (c *TTSClient) Write(request *riva.SynthesizeSpeechRequest) {
	go func() {
		stream, err := c.stub.SynthesizeOnline(c.ctx, request)
		if err != nil {
			c.release()
			c.callbacks.OnFinish(err, nil)
			return
		}
		for {
			response, err := stream.Recv()
			if err != nil {
				trailer := stream.Trailer()
				c.release()
				c.callbacks.OnFinish(finishErr(err), trailer)
				return
			}
			c.callbacks.OnResponse(response)
		}
	}()
}

// Cancel aborts an in-flight call.
func (c *TTSClient) Cancel() {
	c.cancel()
}
