// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_clients

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rapidaai/speechsquad/pkg/commons"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

func testLogger(t *testing.T) commons.Logger {
	t.Helper()
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)
	return logger
}

// ============================================================================
// ASR adapter
// ============================================================================

// fakeASRStream scripts the bidi call: queued responses are drained by Recv,
// then recvErr terminates the loop.
type fakeASRStream struct {
	ctx context.Context

	mu     sync.Mutex
	sent   []*riva.StreamingRecognizeRequest
	closed bool

	responses chan *riva.StreamingRecognizeResponse
	recvErr   error
	trailer   metadata.MD
}

func (f *fakeASRStream) Send(request *riva.StreamingRecognizeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, request)
	return nil
}

func (f *fakeASRStream) Recv() (*riva.StreamingRecognizeResponse, error) {
	response, ok := <-f.responses
	if !ok {
		return nil, f.recvErr
	}
	return response, nil
}

func (f *fakeASRStream) CloseSend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeASRStream) Header() (metadata.MD, error) { return nil, nil }
func (f *fakeASRStream) Trailer() metadata.MD         { return f.trailer }
func (f *fakeASRStream) Context() context.Context     { return f.ctx }
func (f *fakeASRStream) SendMsg(interface{}) error    { return nil }
func (f *fakeASRStream) RecvMsg(interface{}) error    { return nil }

type fakeASRStub struct {
	stream *fakeASRStream
	err    error
}

func (f *fakeASRStub) StreamingRecognize(ctx context.Context, _ ...grpc.CallOption) (grpc.BidiStreamingClient[riva.StreamingRecognizeRequest, riva.StreamingRecognizeResponse], error) {
	if f.err != nil {
		return nil, f.err
	}
	f.stream.ctx = ctx
	return f.stream, nil
}

func TestASRClientDeliversResponsesThenFinish(t *testing.T) {
	stream := &fakeASRStream{
		responses: make(chan *riva.StreamingRecognizeResponse, 2),
		recvErr:   io.EOF,
		trailer:   metadata.Pairs("tracing.server_latency.streaming_recognition", "3.5"),
	}
	stub := &fakeASRStub{stream: stream}

	var order []string
	released := false
	done := make(chan struct{})

	client, err := NewASRClient(context.Background(), testLogger(t), stub,
		func() { released = true },
		ASRCallbacks{
			OnResponse: func(*riva.StreamingRecognizeResponse) {
				order = append(order, "response")
			},
			OnFinish: func(err error, trailer Trailer) {
				order = append(order, "finish")
				assert.NoError(t, err)
				assert.Equal(t, []string{"3.5"}, trailer.Get("tracing.server_latency.streaming_recognition"))
				close(done)
			},
		})
	require.NoError(t, err)

	require.NoError(t, client.Write(&riva.StreamingRecognizeRequest{}))
	require.NoError(t, client.CloseWrites())

	stream.responses <- &riva.StreamingRecognizeResponse{}
	stream.responses <- &riva.StreamingRecognizeResponse{}
	close(stream.responses)

	<-done
	assert.Equal(t, []string{"response", "response", "finish"}, order)
	assert.True(t, released, "release must run at teardown")
	assert.True(t, stream.closed)
	assert.Len(t, stream.sent, 1)
}

func TestASRClientOpenFailureReleasesSlot(t *testing.T) {
	released := false
	_, err := NewASRClient(context.Background(), testLogger(t),
		&fakeASRStub{err: status.Error(codes.Unavailable, "down")},
		func() { released = true },
		ASRCallbacks{})
	require.Error(t, err)
	assert.True(t, released)
}

func TestASRClientErrorFinish(t *testing.T) {
	stream := &fakeASRStream{
		responses: make(chan *riva.StreamingRecognizeResponse),
		recvErr:   status.Error(codes.Internal, "boom"),
	}
	done := make(chan error, 1)

	_, err := NewASRClient(context.Background(), testLogger(t), &fakeASRStub{stream: stream},
		func() {},
		ASRCallbacks{
			OnFinish: func(err error, _ Trailer) { done <- err },
		})
	require.NoError(t, err)

	close(stream.responses)
	finishErr := <-done
	assert.Equal(t, codes.Internal, status.Code(finishErr))
}

// ============================================================================
// NLP adapter
// ============================================================================

type fakeNLPStub struct {
	response *riva.NaturalQueryResponse
	err      error
	trailer  metadata.MD

	mu      sync.Mutex
	request *riva.NaturalQueryRequest
}

func (f *fakeNLPStub) NaturalQuery(ctx context.Context, in *riva.NaturalQueryRequest, opts ...grpc.CallOption) (*riva.NaturalQueryResponse, error) {
	f.mu.Lock()
	f.request = in
	f.mu.Unlock()
	for _, opt := range opts {
		if trailerOpt, ok := opt.(grpc.TrailerCallOption); ok {
			*trailerOpt.TrailerAddr = f.trailer
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	return f.response, f.err
}

func TestNLPClientResponseThenFinish(t *testing.T) {
	stub := &fakeNLPStub{
		response: &riva.NaturalQueryResponse{
			Results: []*riva.NaturalQueryResult{{Answer: "42", Score: 1}},
		},
		trailer: metadata.Pairs("tracing.server_latency.natural_query", "5.5"),
	}

	var order []string
	released := false
	done := make(chan struct{})

	client := NewNLPClient(context.Background(), testLogger(t), stub,
		func() { released = true },
		NLPCallbacks{
			OnResponse: func(response *riva.NaturalQueryResponse) {
				order = append(order, "response")
				assert.Equal(t, "42", response.GetResults()[0].GetAnswer())
			},
			OnFinish: func(err error, trailer Trailer) {
				order = append(order, "finish")
				assert.NoError(t, err)
				assert.Equal(t, []string{"5.5"}, trailer.Get("tracing.server_latency.natural_query"))
				close(done)
			},
		})
	client.Write(&riva.NaturalQueryRequest{Query: "what?", TopN: 1})

	<-done
	assert.Equal(t, []string{"response", "finish"}, order)
	assert.True(t, released)
	assert.Equal(t, "what?", stub.request.GetQuery())
}

func TestNLPClientErrorSkipsResponse(t *testing.T) {
	stub := &fakeNLPStub{err: status.Error(codes.Internal, "nlp down")}
	done := make(chan error, 1)

	client := NewNLPClient(context.Background(), testLogger(t), stub, func() {},
		NLPCallbacks{
			OnResponse: func(*riva.NaturalQueryResponse) { t.Error("no response expected") },
			OnFinish:   func(err error, _ Trailer) { done <- err },
		})
	client.Write(&riva.NaturalQueryRequest{})

	assert.Equal(t, codes.Internal, status.Code(<-done))
}

// ============================================================================
// TTS adapter
// ============================================================================

type fakeTTSStream struct {
	ctx       context.Context
	responses chan *riva.SynthesizeSpeechResponse
	recvErr   error
	trailer   metadata.MD
}

func (f *fakeTTSStream) Recv() (*riva.SynthesizeSpeechResponse, error) {
	response, ok := <-f.responses
	if !ok {
		return nil, f.recvErr
	}
	return response, nil
}

func (f *fakeTTSStream) Header() (metadata.MD, error) { return nil, nil }
func (f *fakeTTSStream) Trailer() metadata.MD         { return f.trailer }
func (f *fakeTTSStream) CloseSend() error             { return nil }
func (f *fakeTTSStream) Context() context.Context     { return f.ctx }
func (f *fakeTTSStream) SendMsg(interface{}) error    { return nil }
func (f *fakeTTSStream) RecvMsg(interface{}) error    { return nil }

type fakeTTSStub struct {
	stream *fakeTTSStream

	mu      sync.Mutex
	request *riva.SynthesizeSpeechRequest
}

func (f *fakeTTSStub) SynthesizeOnline(ctx context.Context, in *riva.SynthesizeSpeechRequest, _ ...grpc.CallOption) (grpc.ServerStreamingClient[riva.SynthesizeSpeechResponse], error) {
	f.mu.Lock()
	f.request = in
	f.mu.Unlock()
	f.stream.ctx = ctx
	return f.stream, nil
}

func TestTTSClientStreamsFramesThenFinish(t *testing.T) {
	stream := &fakeTTSStream{
		responses: make(chan *riva.SynthesizeSpeechResponse, 3),
		recvErr:   io.EOF,
		trailer:   metadata.Pairs("tracing.server_latency.speech_synthesis", "20"),
	}
	stub := &fakeTTSStub{stream: stream}

	var frames int
	done := make(chan struct{})

	client := NewTTSClient(context.Background(), testLogger(t), stub, func() {},
		TTSCallbacks{
			OnResponse: func(*riva.SynthesizeSpeechResponse) { frames++ },
			OnFinish: func(err error, trailer Trailer) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"20"}, trailer.Get("tracing.server_latency.speech_synthesis"))
				close(done)
			},
		})

	stream.responses <- &riva.SynthesizeSpeechResponse{Audio: []byte{1}}
	stream.responses <- &riva.SynthesizeSpeechResponse{Audio: []byte{2}}
	close(stream.responses)
	client.Write(&riva.SynthesizeSpeechRequest{Text: "No answer"})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("tts finish callback never fired")
	}
	assert.Equal(t, 2, frames)
	assert.Equal(t, "No answer", stub.request.GetText())
}
