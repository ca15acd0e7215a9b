// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_squad

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	internal_clients "github.com/rapidaai/speechsquad/api/squad-api/internal/clients"
	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/protos"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// ============================================================================
// Fakes
// ============================================================================

// fakeStream implements the inbound bidi stream: requests are fed through a
// channel, responses are captured in order.
type fakeStream struct {
	ctx      context.Context
	requests chan *protos.SpeechSquadInferRequest

	mu        sync.Mutex
	responses []*protos.SpeechSquadInferResponse
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		ctx:      context.Background(),
		requests: make(chan *protos.SpeechSquadInferRequest, 16),
	}
}

func (s *fakeStream) Send(response *protos.SpeechSquadInferResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, response)
	return nil
}

func (s *fakeStream) Recv() (*protos.SpeechSquadInferRequest, error) {
	request, ok := <-s.requests
	if !ok {
		return nil, io.EOF
	}
	return request, nil
}

func (s *fakeStream) SetHeader(metadata.MD) error  { return nil }
func (s *fakeStream) SendHeader(metadata.MD) error { return nil }
func (s *fakeStream) SetTrailer(metadata.MD)       {}
func (s *fakeStream) Context() context.Context     { return s.ctx }
func (s *fakeStream) SendMsg(interface{}) error    { return nil }
func (s *fakeStream) RecvMsg(interface{}) error    { return nil }

func (s *fakeStream) sendConfig(encoding protos.AudioEncoding) {
	s.requests <- &protos.SpeechSquadInferRequest{
		Payload: &protos.SpeechSquadInferRequest_SpeechSquadConfig{
			SpeechSquadConfig: &protos.SpeechSquadConfig{
				InputAudioConfig: &protos.AudioConfig{
					Encoding:          encoding,
					SampleRateHertz:   16000,
					LanguageCode:      "en-US",
					AudioChannelCount: 1,
				},
				OutputAudioConfig: &protos.AudioConfig{
					Encoding:          protos.AudioEncoding_LINEAR_PCM,
					SampleRateHertz:   22050,
					LanguageCode:      "en-US",
					AudioChannelCount: 1,
				},
				SquadContext: "The sky is blue because of Rayleigh scattering.",
			},
		},
	}
}

func (s *fakeStream) sendAudio(payload []byte) {
	s.requests <- &protos.SpeechSquadInferRequest{
		Payload: &protos.SpeechSquadInferRequest_AudioContent{AudioContent: payload},
	}
}

func (s *fakeStream) halfClose() {
	close(s.requests)
}

func (s *fakeStream) sentResponses() []*protos.SpeechSquadInferResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*protos.SpeechSquadInferResponse, len(s.responses))
	copy(out, s.responses)
	return out
}

// fakeASR scripts the recognizer: on CloseWrites it emits the configured
// responses and then finishes.
type fakeASR struct {
	callbacks internal_clients.ASRCallbacks

	mu         sync.Mutex
	writes     []*riva.StreamingRecognizeRequest
	cancelled  bool
	finishOnce sync.Once

	finalTranscript string
	finishErr       error
	trailer         metadata.MD
	// emit a final result before finishing
	emitFinal bool
}

func (f *fakeASR) Write(request *riva.StreamingRecognizeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, request)
	return nil
}

func (f *fakeASR) CloseWrites() error {
	if f.emitFinal {
		f.callbacks.OnResponse(&riva.StreamingRecognizeResponse{
			Results: []*riva.StreamingRecognitionResult{{
				Alternatives: []*riva.SpeechRecognitionAlternative{{
					Transcript: f.finalTranscript,
					Confidence: 0.92,
				}},
				IsFinal: true,
			}},
		})
	}
	f.finish(f.finishErr)
	return nil
}

func (f *fakeASR) Cancel() {
	f.mu.Lock()
	f.cancelled = true
	f.mu.Unlock()
	f.finish(status.Error(codes.Canceled, "asr cancelled"))
}

func (f *fakeASR) finish(err error) {
	f.finishOnce.Do(func() {
		f.callbacks.OnFinish(err, f.trailer)
	})
}

func (f *fakeASR) wasCancelled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled
}

type fakeNLP struct {
	callbacks internal_clients.NLPCallbacks

	mu        sync.Mutex
	request   *riva.NaturalQueryRequest
	cancelled bool

	results   []*riva.NaturalQueryResult
	finishErr error
	trailer   metadata.MD
}

func (f *fakeNLP) Write(request *riva.NaturalQueryRequest) {
	f.mu.Lock()
	f.request = request
	f.mu.Unlock()
	if f.finishErr != nil {
		f.callbacks.OnFinish(f.finishErr, f.trailer)
		return
	}
	f.callbacks.OnResponse(&riva.NaturalQueryResponse{Results: f.results})
	f.callbacks.OnFinish(nil, f.trailer)
}

func (f *fakeNLP) Cancel() {
	f.mu.Lock()
	f.cancelled = true
	f.mu.Unlock()
}

type fakeTTS struct {
	callbacks internal_clients.TTSCallbacks

	mu        sync.Mutex
	request   *riva.SynthesizeSpeechRequest
	cancelled bool

	frames    [][]byte
	finishErr error
	trailer   metadata.MD
}

func (f *fakeTTS) Write(request *riva.SynthesizeSpeechRequest) {
	f.mu.Lock()
	f.request = request
	f.mu.Unlock()
	for _, frame := range f.frames {
		f.callbacks.OnResponse(&riva.SynthesizeSpeechResponse{Audio: frame})
	}
	f.callbacks.OnFinish(f.finishErr, f.trailer)
}

func (f *fakeTTS) Cancel() {
	f.mu.Lock()
	f.cancelled = true
	f.mu.Unlock()
}

type fakeFactory struct {
	asr *fakeASR
	nlp *fakeNLP
	tts *fakeTTS

	asrErr error
}

func (f *fakeFactory) NewASR(_ context.Context, callbacks internal_clients.ASRCallbacks) (ASRStream, error) {
	if f.asrErr != nil {
		return nil, f.asrErr
	}
	f.asr.callbacks = callbacks
	return f.asr, nil
}

func (f *fakeFactory) NewNLP(_ context.Context, callbacks internal_clients.NLPCallbacks) NLPStream {
	f.nlp.callbacks = callbacks
	return f.nlp
}

func (f *fakeFactory) NewTTS(_ context.Context, callbacks internal_clients.TTSCallbacks) TTSStream {
	f.tts.callbacks = callbacks
	return f.tts
}

func (f *fakeFactory) Model() string { return "conformer-en-US" }

func serverTrailers() (asr, nlp, tts metadata.MD) {
	asr = metadata.Pairs("tracing.server_latency.streaming_recognition", "12.5")
	nlp = metadata.Pairs("tracing.server_latency.natural_query", "7.25")
	tts = metadata.Pairs("tracing.server_latency.speech_synthesis", "31.0")
	return
}

func happyFactory() *fakeFactory {
	asrTrailer, nlpTrailer, ttsTrailer := serverTrailers()
	return &fakeFactory{
		asr: &fakeASR{
			emitFinal:       true,
			finalTranscript: "why is the sky blue",
			trailer:         asrTrailer,
		},
		nlp: &fakeNLP{
			results: []*riva.NaturalQueryResult{{Answer: "Rayleigh scattering", Score: 0.87}},
			trailer: nlpTrailer,
		},
		tts: &fakeTTS{
			frames:  [][]byte{{0x01, 0x02, 0x03, 0x04}, {0x05, 0x06, 0x07, 0x08}},
			trailer: ttsTrailer,
		},
	}
}

func testLogger(t *testing.T) commons.Logger {
	t.Helper()
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)
	return logger
}

func serve(t *testing.T, factory ClientFactory, drive func(*fakeStream)) (*Context, *fakeStream, error) {
	t.Helper()
	stream := newFakeStream()
	squadContext := NewContext(testLogger(t), factory)

	errCh := make(chan error, 1)
	go func() { errCh <- squadContext.Serve(stream) }()
	drive(stream)
	return squadContext, stream, <-errCh
}

// ============================================================================
// Tests
// ============================================================================

func TestContextHappyPath(t *testing.T) {
	factory := happyFactory()
	_, stream, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendAudio(make([]byte, 3200))
		s.sendAudio(make([]byte, 3200))
		s.halfClose()
	})
	require.NoError(t, err)

	responses := stream.sentResponses()
	require.Len(t, responses, 4)

	// Exactly one leading metadata response with the question and answer.
	meta := responses[0].GetMetadata()
	require.NotNil(t, meta)
	assert.Equal(t, "why is the sky blue?", meta.GetSquadQuestion())
	assert.Equal(t, "Rayleigh scattering", meta.GetSquadAnswer())
	assert.Empty(t, meta.GetComponentTiming())

	// Audio frames forwarded in order.
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, responses[1].GetAudioContent())
	assert.Equal(t, []byte{0x05, 0x06, 0x07, 0x08}, responses[2].GetAudioContent())

	// One trailing metadata response carrying all six labels, each >= 0.
	timing := responses[3].GetMetadata().GetComponentTiming()
	require.NotNil(t, timing)
	expected := []string{
		"tracing.server_latency.natural_query",
		"tracing.server_latency.speech_synthesis",
		"tracing.server_latency.streaming_recognition",
		"tracing.speech_squad.asr_latency",
		"tracing.speech_squad.nlp_latency",
		"tracing.speech_squad.tts_latency",
	}
	for _, label := range expected {
		value, ok := timing[label]
		require.True(t, ok, "missing %s", label)
		assert.GreaterOrEqual(t, value, float32(0))
	}
	assert.Equal(t, float32(12.5), timing["tracing.server_latency.streaming_recognition"])

	// ASR saw the configuration first, then two audio writes.
	require.Len(t, factory.asr.writes, 3)
	streamingConfig := factory.asr.writes[0].GetStreamingConfig()
	require.NotNil(t, streamingConfig)
	assert.False(t, streamingConfig.GetInterimResults())
	assert.Equal(t, int32(16000), streamingConfig.GetConfig().GetSampleRateHertz())
	assert.Equal(t, "conformer-en-US", streamingConfig.GetConfig().GetModel())
	assert.Equal(t, int32(1), streamingConfig.GetConfig().GetMaxAlternatives())

	// NLP received the transcript question against the supplied context.
	assert.Equal(t, "why is the sky blue?", factory.nlp.request.GetQuery())
	assert.Equal(t, "The sky is blue because of Rayleigh scattering.", factory.nlp.request.GetContext())

	// TTS synthesized the answer at the pinned output rate.
	assert.Equal(t, "Rayleigh scattering", factory.tts.request.GetText())
	assert.Equal(t, int32(22050), factory.tts.request.GetSampleRateHz())
}

func TestContextAudioBeforeConfig(t *testing.T) {
	factory := happyFactory()
	_, stream, err := serve(t, factory, func(s *fakeStream) {
		s.sendAudio(make([]byte, 1024))
		s.halfClose()
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, stream.sentResponses())
	assert.True(t, factory.asr.wasCancelled())
}

func TestContextSecondConfig(t *testing.T) {
	factory := happyFactory()
	_, stream, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.halfClose()
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, stream.sentResponses())
}

func TestContextUnsupportedEncoding(t *testing.T) {
	factory := happyFactory()
	_, _, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_MULAW)
		s.halfClose()
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestContextEmptyAnswerSynthesizesNoAnswer(t *testing.T) {
	factory := happyFactory()
	factory.nlp.results = []*riva.NaturalQueryResult{{Answer: "", Score: 0.11}}

	_, stream, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendAudio(make([]byte, 1024))
		s.halfClose()
	})
	require.NoError(t, err)

	responses := stream.sentResponses()
	require.NotEmpty(t, responses)
	meta := responses[0].GetMetadata()
	require.NotNil(t, meta)
	assert.Equal(t, "", meta.GetSquadAnswer())

	assert.Equal(t, "No answer", factory.tts.request.GetText())

	// Final timings still carry every label.
	timing := responses[len(responses)-1].GetMetadata().GetComponentTiming()
	assert.Len(t, timing, 6)
}

func TestContextNLPZeroResults(t *testing.T) {
	factory := happyFactory()
	factory.nlp.results = nil

	_, stream, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendAudio(make([]byte, 1024))
		s.halfClose()
	})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Empty(t, stream.sentResponses())
}

func TestContextASRError(t *testing.T) {
	factory := happyFactory()
	factory.asr.emitFinal = false
	factory.asr.finishErr = status.Error(codes.Unavailable, "recognizer down")

	_, stream, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendAudio(make([]byte, 1024))
		s.halfClose()
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Empty(t, stream.sentResponses())
}

func TestContextASRNoFinalTranscript(t *testing.T) {
	factory := happyFactory()
	factory.asr.emitFinal = false

	_, _, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendAudio(make([]byte, 1024))
		s.halfClose()
	})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestContextEmptyTTSFrameSkipped(t *testing.T) {
	factory := happyFactory()
	factory.tts.frames = [][]byte{{}, {0x01, 0x02}}

	_, stream, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendAudio(make([]byte, 1024))
		s.halfClose()
	})
	require.NoError(t, err)

	responses := stream.sentResponses()
	// metadata + one non-empty frame + trailing timings
	require.Len(t, responses, 3)
	assert.Equal(t, []byte{0x01, 0x02}, responses[1].GetAudioContent())
}

func TestContextResetReturnsToUninitialized(t *testing.T) {
	factory := happyFactory()
	squadContext, _, err := serve(t, factory, func(s *fakeStream) {
		s.sendConfig(protos.AudioEncoding_LINEAR_PCM)
		s.sendAudio(make([]byte, 1024))
		s.halfClose()
	})
	require.NoError(t, err)

	squadContext.Reset()
	assert.Equal(t, StateUninitialized, squadContext.State())
}

func TestContextPoolBackpressure(t *testing.T) {
	pool := NewContextPool(testLogger(t), happyFactory(), 1)

	first, ok := pool.Acquire()
	require.True(t, ok)

	_, ok = pool.Acquire()
	assert.False(t, ok, "saturated pool must reject")

	pool.Release(first)
	second, ok := pool.Acquire()
	assert.True(t, ok)
	assert.Equal(t, StateUninitialized, second.State())
}
