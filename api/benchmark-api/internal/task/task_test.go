// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_task

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	internal_audio "github.com/rapidaai/speechsquad/api/benchmark-api/internal/audio"
	internal_dataset "github.com/rapidaai/speechsquad/api/benchmark-api/internal/dataset"
	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/protos"
)

// ============================================================================
// Fixtures
// ============================================================================

// fakeInferStream captures uploads and replays scripted responses.
type fakeInferStream struct {
	mu     sync.Mutex
	sent   []*protos.SpeechSquadInferRequest
	closed bool

	responses chan *protos.SpeechSquadInferResponse
	recvErr   error
}

func newFakeInferStream() *fakeInferStream {
	return &fakeInferStream{
		responses: make(chan *protos.SpeechSquadInferResponse, 16),
		recvErr:   io.EOF,
	}
}

func (f *fakeInferStream) Send(request *protos.SpeechSquadInferRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, request)
	return nil
}

func (f *fakeInferStream) Recv() (*protos.SpeechSquadInferResponse, error) {
	response, ok := <-f.responses
	if !ok {
		return nil, f.recvErr
	}
	return response, nil
}

func (f *fakeInferStream) CloseSend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeInferStream) Header() (metadata.MD, error) { return nil, nil }
func (f *fakeInferStream) Trailer() metadata.MD         { return nil }
func (f *fakeInferStream) Context() context.Context     { return context.Background() }
func (f *fakeInferStream) SendMsg(interface{}) error    { return nil }
func (f *fakeInferStream) RecvMsg(interface{}) error    { return nil }

func (f *fakeInferStream) sentRequests() []*protos.SpeechSquadInferRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*protos.SpeechSquadInferRequest, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *fakeInferStream) wasClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func testLogger(t *testing.T) commons.Logger {
	t.Helper()
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)
	return logger
}

func testCatalog(t *testing.T) *internal_dataset.QuestionCatalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dev.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "data": [{"paragraphs": [{
    "context": "Grass is green because of chlorophyll.",
    "qas": [{"question": "Why is grass green", "id": "q1"}]
  }]}]
}`), 0o644))
	catalog, err := internal_dataset.LoadCatalog(path)
	require.NoError(t, err)
	return catalog
}

// testClip fabricates a 16 kHz mono clip holding seconds of audio.
func testClip(t *testing.T, seconds float64) *internal_audio.Clip {
	t.Helper()
	payloadBytes := int(seconds * 16000 * 2)
	header := internal_audio.FixedWAVHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     int32(36 + payloadBytes),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    16000,
		ByteRate:      32000,
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: int32(payloadBytes),
	}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &header))
	buf.Write(make([]byte, payloadBytes))

	return &internal_audio.Clip{
		Data:       buf.Bytes(),
		Filename:   "q1.wav",
		SampleRate: 16000,
		Channels:   1,
		Encoding:   protos.AudioEncoding_LINEAR_PCM,
		QuestionID: "q1",
	}
}

func newTestTask(t *testing.T, stream *fakeInferStream, clip *internal_audio.Clip) *Task {
	t.Helper()
	opener := func(context.Context) (protos.SpeechSquadService_SpeechSquadInferClient, func(), error) {
		return stream, func() {}, nil
	}
	task, err := NewTask(
		context.Background(), testLogger(t), clip, 7, opener,
		"en-US", 800, false, testCatalog(t), nil, time.Now(),
	)
	require.NoError(t, err)
	return task
}

// ============================================================================
// Pacing
// ============================================================================

func TestTaskFirstStepSendsConfiguration(t *testing.T) {
	stream := newFakeInferStream()
	task := newTestTask(t, stream, testClip(t, 1.0))

	require.NoError(t, task.Step())
	assert.Equal(t, StateSending, task.State())

	sent := stream.sentRequests()
	require.Len(t, sent, 1)
	config := sent[0].GetSpeechSquadConfig()
	require.NotNil(t, config)
	assert.Equal(t, protos.AudioEncoding_LINEAR_PCM, config.GetInputAudioConfig().GetEncoding())
	assert.Equal(t, int32(16000), config.GetInputAudioConfig().GetSampleRateHertz())
	assert.Equal(t, "en-US", config.GetInputAudioConfig().GetLanguageCode())
	assert.Equal(t, int32(22050), config.GetOutputAudioConfig().GetSampleRateHertz())
	assert.Equal(t, int32(1), config.GetOutputAudioConfig().GetAudioChannelCount())
	assert.Equal(t, "Grass is green because of chlorophyll.", config.GetSquadContext())
}

func TestTaskPacesAudioAtPlaybackRate(t *testing.T) {
	stream := newFakeInferStream()
	clip := testClip(t, 1.0) // 32000 payload bytes + 44 header
	task := newTestTask(t, stream, clip)

	start := task.NextTimePoint()

	// Step 1 sends the configuration and schedules the first audio slice:
	// chunk = 16000 * 800ms / 1000 * 2 = 25600 bytes plus the 44 header
	// bytes. The deadline advances by the 800 ms that slice represents,
	// header excluded.
	require.NoError(t, task.Step())
	assert.Equal(t, 800*time.Millisecond, task.NextTimePoint().Sub(start))

	// Step 2 sends the first slice and schedules the remaining 6400 payload
	// bytes = 200 ms of audio.
	require.NoError(t, task.Step())
	sent := stream.sentRequests()
	require.Len(t, sent, 2)
	assert.Len(t, sent[1].GetAudioContent(), 25600+44)
	assert.Equal(t, 1000*time.Millisecond, task.NextTimePoint().Sub(start))

	// Step 3 sends the tail; nothing is left, so the upload half-closes.
	require.NoError(t, task.Step())
	sent = stream.sentRequests()
	require.Len(t, sent, 3)
	assert.Len(t, sent[2].GetAudioContent(), 6400)
	assert.Equal(t, StateSendingComplete, task.State())
	assert.True(t, stream.wasClosed())
	assert.InDelta(t, 1.0, task.AudioProcessed(), 1e-9)

	require.Error(t, task.Step(), "stepping past SENDING_COMPLETE must fail")
}

// ============================================================================
// Response side
// ============================================================================

func runToSendingComplete(t *testing.T, task *Task) {
	t.Helper()
	for task.State() != StateSendingComplete {
		require.NoError(t, task.Step())
	}
}

func metadataResponse(question, answer string) *protos.SpeechSquadInferResponse {
	return &protos.SpeechSquadInferResponse{
		Payload: &protos.SpeechSquadInferResponse_Metadata{
			Metadata: &protos.SpeechSquadResponseMeta{
				SquadQuestion: question,
				SquadAnswer:   answer,
			},
		},
	}
}

func timingResponse(timing map[string]float32) *protos.SpeechSquadInferResponse {
	return &protos.SpeechSquadInferResponse{
		Payload: &protos.SpeechSquadInferResponse_Metadata{
			Metadata: &protos.SpeechSquadResponseMeta{ComponentTiming: timing},
		},
	}
}

func audioResponse(payload []byte) *protos.SpeechSquadInferResponse {
	return &protos.SpeechSquadInferResponse{
		Payload: &protos.SpeechSquadInferResponse_AudioContent{AudioContent: payload},
	}
}

func fullTiming() map[string]float32 {
	timing := make(map[string]float32)
	for i, component := range ExpectedComponents() {
		timing[component] = float32(i + 1)
	}
	return timing
}

func TestTaskRecordsResponses(t *testing.T) {
	stream := newFakeInferStream()
	task := newTestTask(t, stream, testClip(t, 0.1))
	runToSendingComplete(t, task)

	stream.responses <- metadataResponse("why is grass green?", "chlorophyll")
	stream.responses <- audioResponse(make([]byte, 4096))
	stream.responses <- audioResponse(make([]byte, 4096))
	stream.responses <- timingResponse(fullTiming())
	close(stream.responses)

	require.NoError(t, task.WaitForCompletion())
	assert.Equal(t, StateReceivingComplete, task.State())
	require.NoError(t, task.Err())

	result := task.Result()
	assert.Equal(t, "why is grass green?", result.SquadQuestion)
	assert.Equal(t, "chlorophyll", result.SquadAnswer)
	assert.True(t, result.HasAudioResponse())
	assert.GreaterOrEqual(t, result.ResponseLatency, 0.)
	assert.Len(t, result.ResponseIntervals, 1)
	require.Len(t, result.ComponentTimings, 6)
	assert.Equal(t, 1., result.ComponentTimings["tracing.server_latency.natural_query"])
}

func TestTaskFlagsMissingTimingLabel(t *testing.T) {
	stream := newFakeInferStream()
	task := newTestTask(t, stream, testClip(t, 0.1))
	runToSendingComplete(t, task)

	timing := fullTiming()
	delete(timing, "tracing.speech_squad.tts_latency")
	stream.responses <- metadataResponse("q?", "a")
	stream.responses <- audioResponse(make([]byte, 16))
	stream.responses <- timingResponse(timing)
	close(stream.responses)

	require.NoError(t, task.WaitForCompletion())
	require.Error(t, task.Err())
	assert.ErrorContains(t, task.Err(), "tracing.speech_squad.tts_latency")
}

func TestTaskTerminalErrorSurfaces(t *testing.T) {
	stream := newFakeInferStream()
	stream.recvErr = io.ErrUnexpectedEOF
	task := newTestTask(t, stream, testClip(t, 0.1))
	runToSendingComplete(t, task)
	close(stream.responses)

	assert.Error(t, task.WaitForCompletion())
	assert.Equal(t, StateReceivingComplete, task.State())
}

func TestTaskNoResponsesMeansNoAudio(t *testing.T) {
	stream := newFakeInferStream()
	task := newTestTask(t, stream, testClip(t, 0.1))
	runToSendingComplete(t, task)
	close(stream.responses)

	require.NoError(t, task.WaitForCompletion())
	assert.False(t, task.Result().HasAudioResponse())
}
