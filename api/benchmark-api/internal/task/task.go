// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_task drives one spoken question through the speech squad
// service at the clip's real-time playback rate and records the resulting
// latencies.
package internal_task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	internal_audio "github.com/rapidaai/speechsquad/api/benchmark-api/internal/audio"
	internal_dataset "github.com/rapidaai/speechsquad/api/benchmark-api/internal/dataset"
	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/protos"
)

// State is the sender-side progression of a task.
type State int32

const (
	StateStart State = iota
	StateSending
	StateSendingComplete
	StateReceivingComplete
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StateSending:
		return "SENDING"
	case StateSendingComplete:
		return "SENDING_COMPLETE"
	case StateReceivingComplete:
		return "RECEIVING_COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// ExpectedComponents lists the timing labels every successful stream must
// report.
func ExpectedComponents() []string {
	return []string{
		"tracing.server_latency.natural_query",
		"tracing.server_latency.speech_synthesis",
		"tracing.server_latency.streaming_recognition",
		"tracing.speech_squad.asr_latency",
		"tracing.speech_squad.nlp_latency",
		"tracing.speech_squad.tts_latency",
	}
}

// Results is the per-stream record. The receive goroutine writes it under
// mu until the stream completes; after completion it is read-only and the
// reaper reads it without synchronization concerns.
type Results struct {
	mu sync.Mutex

	SquadQuestion string
	SquadAnswer   string
	AudioContent  []byte

	// Milliseconds from the last upload to the first audio response.
	ResponseLatency float64
	// Milliseconds between successive audio responses.
	ResponseIntervals []float64
	ComponentTimings  map[string]float64

	firstResponse  bool
	lastResponseAt time.Time
}

// HasAudioResponse reports whether any audio frame arrived.
func (r *Results) HasAudioResponse() bool {
	return !r.firstResponse
}

// StreamOpener starts one SpeechSquadInfer call; the benchmark client binds
// it to a balanced channel pick.
type StreamOpener func(ctx context.Context) (protos.SpeechSquadService_SpeechSquadInferClient, func(), error)

// Task uploads one clip as a paced stream and collects its responses.
type Task struct {
	logger commons.Logger

	clip            *internal_audio.Clip
	corrID          uint32
	languageCode    string
	chunkDurationMs int
	printResults    bool
	catalog         *internal_dataset.QuestionCatalog
	output          *OutputFilestreams

	stream  protos.SpeechSquadService_SpeechSquadInferClient
	release func()

	state atomic.Int32

	offset      int
	bytesToSend int
	// Wall-clock deadline for the next Step.
	nextTimePoint time.Time
	// Timestamp of the most recent send; after the upload half-closes this
	// is the final send and serves as the first-response latency baseline.
	sendTime       time.Time
	sendTimeMu     sync.Mutex
	audioProcessed float64

	results *Results

	grpcErr error
	taskErr error
	done    chan struct{}
}

// NewTask opens the stream and starts its receive loop. The first Step fires
// no earlier than scheduledTime.
func NewTask(
	ctx context.Context,
	logger commons.Logger,
	clip *internal_audio.Clip,
	corrID uint32,
	open StreamOpener,
	languageCode string,
	chunkDurationMs int,
	printResults bool,
	catalog *internal_dataset.QuestionCatalog,
	output *OutputFilestreams,
	scheduledTime time.Time,
) (*Task, error) {
	stream, release, err := open(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening speech squad stream: %w", err)
	}

	t := &Task{
		logger:          logger,
		clip:            clip,
		corrID:          corrID,
		languageCode:    languageCode,
		chunkDurationMs: chunkDurationMs,
		printResults:    printResults,
		catalog:         catalog,
		output:          output,
		stream:          stream,
		release:         release,
		nextTimePoint:   scheduledTime,
		results: &Results{
			firstResponse:    true,
			ComponentTimings: make(map[string]float64),
		},
		done: make(chan struct{}),
	}
	go t.receiveLoop()
	return t, nil
}

// NextTimePoint is the wall-clock deadline of the next Step.
func (t *Task) NextTimePoint() time.Time {
	return t.nextTimePoint
}

// State reports the sender-side state.
func (t *Task) State() State {
	return State(t.state.Load())
}

// ID is the task's correlation id.
func (t *Task) ID() uint32 {
	return t.corrID
}

// AudioProcessed reports the seconds of audio this task uploaded.
func (t *Task) AudioProcessed() float64 {
	return t.audioProcessed
}

// Err returns the task-internal error, if any (e.g. a missing timing label).
func (t *Task) Err() error {
	return t.taskErr
}

// Result exposes the per-stream record; only safe to consume after
// WaitForCompletion.
func (t *Task) Result() *Results {
	return t.results
}

// Step performs the next paced send: the configuration message first, then
// one audio slice per call, pinned to the clip's real-time playback rate.
func (t *Task) Step() error {
	state := t.State()
	if state == StateSendingComplete || state == StateReceivingComplete {
		return fmt.Errorf("cannot step further from %s", state)
	}

	now := time.Now()
	t.setSendTime(now)
	t.logger.Debugf("task %d: step in state %s", t.corrID, state)

	if state == StateStart {
		squadContext, err := t.catalog.Context(t.clip.QuestionID)
		if err != nil {
			return err
		}
		request := &protos.SpeechSquadInferRequest{
			Payload: &protos.SpeechSquadInferRequest_SpeechSquadConfig{
				SpeechSquadConfig: &protos.SpeechSquadConfig{
					InputAudioConfig: &protos.AudioConfig{
						Encoding:          t.clip.Encoding,
						SampleRateHertz:   int32(t.clip.SampleRate),
						LanguageCode:      t.languageCode,
						AudioChannelCount: int32(t.clip.Channels),
					},
					OutputAudioConfig: &protos.AudioConfig{
						Encoding:          protos.AudioEncoding_LINEAR_PCM,
						SampleRateHertz:   22050,
						LanguageCode:      "en-US",
						AudioChannelCount: 1,
					},
					SquadContext: squadContext,
				},
			},
		}
		if err := t.stream.Send(request); err != nil {
			t.closeSend()
			return nil
		}
		t.state.Store(int32(StateSending))
	} else {
		request := &protos.SpeechSquadInferRequest{
			Payload: &protos.SpeechSquadInferRequest_AudioContent{
				AudioContent: t.clip.Data[t.offset : t.offset+t.bytesToSend],
			},
		}
		t.offset += t.bytesToSend
		if err := t.stream.Send(request); err != nil {
			// The server ends the call on its own terms; the receive side
			// carries the real status.
			t.logger.Debugf("task %d: write failed, closing upload", t.corrID)
			t.closeSend()
			return nil
		}
	}

	// Size the next slice: one chunk of real audio, plus the WAV header on
	// the first audio-bearing write only.
	chunkSize := t.clip.SampleRate * t.chunkDurationMs / 1000 * 2
	headerSize := 0
	if t.offset == 0 {
		headerSize = internal_audio.FixedWAVHeaderSize
	}
	t.bytesToSend = len(t.clip.Data) - t.offset
	if chunkSize+headerSize < t.bytesToSend {
		t.bytesToSend = chunkSize + headerSize
	}

	if t.bytesToSend == 0 {
		t.logger.Debugf("task %d: sending complete", t.corrID)
		t.closeSend()
		return nil
	}

	// Advance the deadline by the real-time duration this slice represents,
	// pinning the send rate to the clip's playback rate.
	waitMs := 1000 * float64(t.bytesToSend-headerSize) / float64(2*t.clip.SampleRate)
	t.audioProcessed += waitMs / 1000.
	t.nextTimePoint = t.nextTimePoint.Add(time.Duration(waitMs * float64(time.Millisecond)))
	return nil
}

func (t *Task) closeSend() {
	if err := t.stream.CloseSend(); err != nil {
		t.logger.Debugf("task %d: failed to close writes: %v", t.corrID, err)
	}
	t.state.Store(int32(StateSendingComplete))
}

func (t *Task) setSendTime(now time.Time) {
	t.sendTimeMu.Lock()
	t.sendTime = now
	t.sendTimeMu.Unlock()
}

func (t *Task) lastSendTime() time.Time {
	t.sendTimeMu.Lock()
	defer t.sendTimeMu.Unlock()
	return t.sendTime
}

// WaitForCompletion blocks until the stream terminates and returns its
// terminal status.
func (t *Task) WaitForCompletion() error {
	<-t.done
	return t.grpcErr
}

// ============================================================================
// Receive side
// ============================================================================

func (t *Task) receiveLoop() {
	for {
		response, err := t.stream.Recv()
		if err != nil {
			t.finalize(err)
			return
		}
		t.receiveResponse(response)
	}
}

func (t *Task) receiveResponse(response *protos.SpeechSquadInferResponse) {
	now := time.Now()
	t.results.mu.Lock()
	defer t.results.mu.Unlock()

	if metadata := response.GetMetadata(); metadata != nil {
		if len(metadata.GetComponentTiming()) == 0 {
			t.results.SquadQuestion = metadata.GetSquadQuestion()
			t.results.SquadAnswer = metadata.GetSquadAnswer()
			return
		}
		for _, component := range ExpectedComponents() {
			value, ok := metadata.GetComponentTiming()[component]
			if !ok {
				t.taskErr = status.Errorf(codes.Internal, "unable to find %s in the response", component)
				continue
			}
			t.results.ComponentTimings[component] = float64(value)
		}
		return
	}

	if t.printResults {
		t.results.AudioContent = append(t.results.AudioContent, response.GetAudioContent()...)
	}
	if t.results.firstResponse {
		t.results.ResponseLatency = float64(now.Sub(t.lastSendTime()).Microseconds()) / 1000.
		t.results.firstResponse = false
	} else {
		t.results.ResponseIntervals = append(t.results.ResponseIntervals,
			float64(now.Sub(t.results.lastResponseAt).Microseconds())/1000.)
	}
	t.results.lastResponseAt = now
}

func (t *Task) finalize(err error) {
	if t.release != nil {
		t.release()
	}
	if errors.Is(err, io.EOF) {
		t.grpcErr = nil
	} else if s, ok := status.FromError(err); ok && s.Code() == codes.OK {
		t.grpcErr = nil
	} else {
		t.grpcErr = err
	}
	t.state.Store(int32(StateReceivingComplete))

	if t.grpcErr == nil && t.printResults {
		t.writeResults()
	}
	fmt.Print(".")
	close(t.done)
}

func (t *Task) writeResults() {
	if t.results.SquadQuestion == "" {
		if err := t.output.WriteEmptyQuestion(t.clip.Filename); err != nil {
			t.logger.Errorf("task %d: writing question record: %v", t.corrID, err)
		}
		return
	}
	if len(t.results.AudioContent) == 0 {
		t.taskErr = status.Error(codes.Internal, "no audio received in the response")
	}

	wavPath, err := t.output.WriteResult(
		t.clip.Filename, t.clip.QuestionID,
		t.results.SquadQuestion, t.results.SquadAnswer,
		t.results.AudioContent, t.results.ResponseIntervals,
	)
	if err != nil {
		t.logger.Errorf("task %d: writing results: %v", t.corrID, err)
		return
	}

	fmt.Println("-----------------------------------------------------------")
	fmt.Printf("File: %s\n", t.clip.Filename)
	fmt.Printf("SQUAD question: %s\n", t.results.SquadQuestion)
	fmt.Printf("SQUAD answer: %s\n", t.results.SquadAnswer)
	fmt.Printf("Output File: %s\n", wavPath)
}
