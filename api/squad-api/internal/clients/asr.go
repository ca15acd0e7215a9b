// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_clients

import (
	"context"
	"fmt"

	"github.com/rapidaai/speechsquad/pkg/commons"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// ASRCallbacks are delivered from the adapter's receive goroutine.
// OnFinish fires exactly once, after the last OnResponse.
type ASRCallbacks struct {
	OnResponse func(*riva.StreamingRecognizeResponse)
	OnFinish   func(error, Trailer)
}

// ASRClient owns one bidirectional StreamingRecognize call. The first Write
// must carry the streaming configuration, subsequent Writes carry audio, and
// CloseWrites ends the upload half.
type ASRClient struct {
	logger  commons.Logger
	stream  riva.RivaSpeechRecognition_StreamingRecognizeClient
	cancel  context.CancelFunc
	release func()
}

// NewASRClient starts the call and its receive loop. release is invoked once
// when the call tears down, returning the channel slot to the pool.
func NewASRClient(
	ctx context.Context,
	logger commons.Logger,
	stub riva.RivaSpeechRecognitionClient,
	release func(),
	callbacks ASRCallbacks,
) (*ASRClient, error) {
	callCtx, cancel := context.WithCancel(ctx)
	stream, err := stub.StreamingRecognize(callCtx)
	if err != nil {
		cancel()
		release()
		return nil, fmt.Errorf("asr: opening streaming recognize: %w", err)
	}

	c := &ASRClient{
		logger:  logger,
		stream:  stream,
		cancel:  cancel,
		release: release,
	}
	go c.recvLoop(callbacks)
	return c, nil
}

func (c *ASRClient) recvLoop(callbacks ASRCallbacks) {
	for {
		response, err := c.stream.Recv()
		if err != nil {
			trailer := c.stream.Trailer()
			c.release()
			callbacks.OnFinish(finishErr(err), trailer)
			return
		}
		callbacks.OnResponse(response)
	}
}

// Write sends one request on the upload half.
func (c *ASRClient) Write(request *riva.StreamingRecognizeRequest) error {
	return c.stream.Send(request)
}

// CloseWrites half-closes the upload; the recognizer then flushes its final
// results and completes the call.
func (c *ASRClient) CloseWrites() error {
	return c.stream.CloseSend()
}

// Cancel aborts the call. The receive loop observes the cancellation and
// still delivers OnFinish.
func (c *ASRClient) Cancel() {
	c.cancel()
}
