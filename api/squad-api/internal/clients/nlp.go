// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_clients

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/rapidaai/speechsquad/pkg/commons"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// NLPCallbacks are delivered once each: OnResponse for a successful answer,
// then OnFinish with the terminal error and trailing metadata.
type NLPCallbacks struct {
	OnResponse func(*riva.NaturalQueryResponse)
	OnFinish   func(error, Trailer)
}

// NLPClient owns one unary NaturalQuery call. Write issues the request; the
// response and completion callbacks fire on a dedicated goroutine.
type NLPClient struct {
	logger    commons.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	stub      riva.RivaLanguageUnderstandingClient
	release   func()
	callbacks NLPCallbacks
}

func NewNLPClient(
	ctx context.Context,
	logger commons.Logger,
	stub riva.RivaLanguageUnderstandingClient,
	release func(),
	callbacks NLPCallbacks,
) *NLPClient {
	callCtx, cancel := context.WithCancel(ctx)
	return &NLPClient{
		logger:    logger,
		ctx:       callCtx,
		cancel:    cancel,
		stub:      stub,
		release:   release,
		callbacks: callbacks,
	}
}

// Write fires the unary call asynchronously. It must be called at most once.
func (c *NLPClient) Write(request *riva.NaturalQueryRequest) {
	go func() {
		var trailer metadata.MD
		response, err := c.stub.NaturalQuery(c.ctx, request, grpc.Trailer(&trailer))
		c.release()
		if err != nil {
			c.callbacks.OnFinish(err, trailer)
			return
		}
		c.callbacks.OnResponse(response)
		c.callbacks.OnFinish(nil, trailer)
	}()
}

// Cancel aborts an in-flight call.
func (c *NLPClient) Cancel() {
	c.cancel()
}
