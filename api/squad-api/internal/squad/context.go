// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_squad orchestrates one inbound SpeechSquadInfer stream
// against the three downstream Riva services. Each stream is driven by a
// single event loop goroutine; inbound messages and downstream callbacks all
// funnel into one channel, so the state machine below never needs a lock.
package internal_squad

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	internal_clients "github.com/rapidaai/speechsquad/api/squad-api/internal/clients"
	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/protos"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// State is the inbound-side progression of one stream.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateReceivingAudio
	StateAudioUploadComplete
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "UNINITIALIZED"
	case StateInitialized:
		return "INITIALIZED"
	case StateReceivingAudio:
		return "RECEIVING_AUDIO"
	case StateAudioUploadComplete:
		return "AUDIO_UPLOAD_COMPLETE"
	default:
		return "UNKNOWN"
	}
}

const (
	// Synthesis output is pinned to 22.05 kHz; the TTS service streams float
	// samples at this rate regardless of the input audio.
	ttsSampleRateHz = 22050
	ttsVoiceName    = "ljspeech"

	// Substituted as synthesis input when NLP finds no answer span.
	noAnswerText = "No answer"

	tracingPrefix = "tracing."

	measuredASRLatency = "tracing.speech_squad.asr_latency"
	measuredNLPLatency = "tracing.speech_squad.nlp_latency"
	measuredTTSLatency = "tracing.speech_squad.tts_latency"
)

// event is one unit of work for the context loop.
type (
	inboundConfig struct{ config *protos.SpeechSquadConfig }
	inboundAudio  struct{ content []byte }
	inboundClosed struct{}
	inboundError  struct{ err error }

	asrResponse struct{ response *riva.StreamingRecognizeResponse }
	asrFinished struct {
		err     error
		trailer internal_clients.Trailer
	}
	nlpResponse struct{ response *riva.NaturalQueryResponse }
	nlpFinished struct {
		err     error
		trailer internal_clients.Trailer
	}
	ttsResponse struct{ response *riva.SynthesizeSpeechResponse }
	ttsFinished struct {
		err     error
		trailer internal_clients.Trailer
	}
)

type timingEntry struct {
	label string
	ms    float32
}

// Context runs the state machine for one stream. Contexts are pooled;
// Serve may be called again after Reset.
type Context struct {
	logger  commons.Logger
	factory ClientFactory

	id     string
	state  State
	stream protos.SpeechSquadService_SpeechSquadInferServer

	squadContext string
	question     string
	answer       string
	nlpScore     float32
	ttsConfig    *protos.AudioConfig

	firstTTSResponse bool
	shouldCancel     bool
	debugTTS         bool

	// Timing labels accumulate in arrival order; later duplicates win when
	// the final map is assembled.
	timings []timingEntry

	asrWritesDone  time.Time
	asrOnComplete  time.Time
	nlpStart       time.Time
	nlpFinish      time.Time
	ttsStart       time.Time
	ttsFirstPacket time.Time

	asrClient ASRStream
	nlpClient NLPStream
	ttsClient TTSStream

	events   chan event
	loopDone chan struct{}
	// Downstream calls whose finish callback has not yet drained. The loop
	// may not exit, and the context may not be recycled, while this is
	// nonzero.
	pending int
	// Finish-block counter: incremented when the first downstream call is
	// registered, decremented exactly once when the last downstream
	// completion fires. Guards against recycling a context that a
	// downstream callback still points at.
	finishBlock int
	// No further work will be started; the loop exits once pending drains.
	done bool
	err  error
}

type event interface{}

// NewContext builds an idle context bound to a downstream client factory.
func NewContext(logger commons.Logger, factory ClientFactory) *Context {
	return &Context{
		logger:  logger,
		factory: factory,
		state:   StateUninitialized,
	}
}

// State reports the inbound-side state, for tests and the pool.
func (c *Context) State() State {
	return c.state
}

// Serve drives one inbound stream to completion. It blocks until every
// downstream callback has drained and returns the stream's terminal status.
func (c *Context) Serve(stream protos.SpeechSquadService_SpeechSquadInferServer) error {
	c.stream = stream
	c.id = uuid.NewString()
	c.events = make(chan event, 64)
	c.loopDone = make(chan struct{})
	c.firstTTSResponse = true

	// Stream opened: allocate the ASR call up front and block completion
	// until its events (and everything it leads to) have drained.
	c.blockFinish()
	asr, err := c.factory.NewASR(stream.Context(), internal_clients.ASRCallbacks{
		OnResponse: func(response *riva.StreamingRecognizeResponse) {
			c.post(asrResponse{response})
		},
		OnFinish: func(err error, trailer internal_clients.Trailer) {
			c.post(asrFinished{err, trailer})
		},
	})
	if err != nil {
		c.unblockFinish()
		c.logger.Errorf("%s: unable to open asr stream: %v", c.id, err)
		c.err = status.Error(codes.Unavailable, "asr service unavailable")
		return c.err
	}
	c.asrClient = asr
	c.pending++
	c.setState(StateInitialized)

	go c.readInbound(stream, c.events, c.loopDone)

	for !(c.done && c.pending == 0) {
		c.handle(<-c.events)
	}
	close(c.loopDone)

	if c.err != nil {
		c.logger.Infof("%s: stream finished with status %v", c.id, c.err)
	} else {
		c.logger.Debugf("%s: stream finished ok", c.id)
	}
	return c.err
}

// Reset returns the context to Uninitialized so the pool can reuse it.
func (c *Context) Reset() {
	if c.finishBlock != 0 {
		c.logger.Errorf("%s: resetting context with %d blocked finishes", c.id, c.finishBlock)
	}
	c.id = ""
	c.state = StateUninitialized
	c.stream = nil
	c.squadContext = ""
	c.question = ""
	c.answer = ""
	c.nlpScore = 0
	c.ttsConfig = nil
	c.firstTTSResponse = true
	c.shouldCancel = false
	c.debugTTS = false
	c.timings = nil
	c.asrWritesDone = time.Time{}
	c.asrOnComplete = time.Time{}
	c.nlpStart = time.Time{}
	c.nlpFinish = time.Time{}
	c.ttsStart = time.Time{}
	c.ttsFirstPacket = time.Time{}
	c.asrClient = nil
	c.nlpClient = nil
	c.ttsClient = nil
	c.events = nil
	c.loopDone = nil
	c.pending = 0
	c.finishBlock = 0
	c.done = false
	c.err = nil
}

// ============================================================================
// Inbound side
// ============================================================================

// readInbound may outlive one Serve call (its Recv only fails once the
// handler returns), so it holds its own references to the event channels
// rather than reading fields a Reset could clear.
func (c *Context) readInbound(stream protos.SpeechSquadService_SpeechSquadInferServer, events chan event, loopDone chan struct{}) {
	post := func(ev event) {
		select {
		case events <- ev:
		case <-loopDone:
		}
	}
	for {
		request, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				post(inboundClosed{})
			} else {
				post(inboundError{err})
			}
			return
		}
		switch payload := request.GetPayload().(type) {
		case *protos.SpeechSquadInferRequest_SpeechSquadConfig:
			post(inboundConfig{payload.SpeechSquadConfig})
		case *protos.SpeechSquadInferRequest_AudioContent:
			post(inboundAudio{payload.AudioContent})
		default:
			post(inboundError{status.Error(codes.InvalidArgument, "request carries no payload")})
		}
	}
}

func (c *Context) post(ev event) {
	select {
	case c.events <- ev:
	case <-c.loopDone:
	}
}

// ============================================================================
// Event loop
// ============================================================================

func (c *Context) handle(ev event) {
	switch ev := ev.(type) {
	case inboundConfig:
		c.onConfig(ev.config)
	case inboundAudio:
		c.onAudio(ev.content)
	case inboundClosed:
		c.onUploadDone()
	case inboundError:
		c.onInboundError(ev.err)
	case asrResponse:
		c.onASRResponse(ev.response)
	case asrFinished:
		c.pending--
		c.onASRFinished(ev.err, ev.trailer)
	case nlpResponse:
		c.onNLPResponse(ev.response)
	case nlpFinished:
		c.pending--
		c.onNLPFinished(ev.err, ev.trailer)
	case ttsResponse:
		c.onTTSResponse(ev.response)
	case ttsFinished:
		c.pending--
		c.onTTSFinished(ev.err, ev.trailer)
	}
}

func (c *Context) onConfig(config *protos.SpeechSquadConfig) {
	if c.failed() {
		return
	}
	if c.state != StateInitialized {
		c.protocolError("squad stream received an unexpected configuration message")
		return
	}
	input := config.GetInputAudioConfig()
	if input.GetEncoding() != protos.AudioEncoding_LINEAR_PCM {
		c.shouldCancel = true
		c.fail(status.Errorf(codes.Unimplemented, "unsupported input encoding %s", input.GetEncoding()))
		c.cancelDownstreams()
		return
	}
	c.setState(StateReceivingAudio)

	c.squadContext = config.GetSquadContext()
	c.ttsConfig = config.GetOutputAudioConfig()

	c.logger.Debugf("%s: speech squad stream initialized; rate=%d channels=%d language=%s",
		c.id, input.GetSampleRateHertz(), input.GetAudioChannelCount(), input.GetLanguageCode())

	request := &riva.StreamingRecognizeRequest{
		StreamingRequest: &riva.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: &riva.StreamingRecognitionConfig{
				Config: &riva.RecognitionConfig{
					Encoding:                            riva.AudioEncoding_LINEAR_PCM,
					SampleRateHertz:                     input.GetSampleRateHertz(),
					LanguageCode:                        input.GetLanguageCode(),
					AudioChannelCount:                   input.GetAudioChannelCount(),
					MaxAlternatives:                     1,
					EnableWordTimeOffsets:               false,
					EnableAutomaticPunctuation:          false,
					EnableSeparateRecognitionPerChannel: false,
					Model:                               c.factory.Model(),
				},
				InterimResults: false,
			},
		},
	}
	if err := c.asrClient.Write(request); err != nil {
		c.logger.Errorf("%s: writing asr configuration: %v", c.id, err)
		c.shouldCancel = true
		c.asrClient.Cancel()
	}
}

func (c *Context) onAudio(content []byte) {
	if c.failed() {
		return
	}
	if c.state != StateReceivingAudio {
		c.protocolError("squad stream received audio without a configuration message")
		return
	}
	request := &riva.StreamingRecognizeRequest{
		StreamingRequest: &riva.StreamingRecognizeRequest_AudioContent{AudioContent: content},
	}
	if err := c.asrClient.Write(request); err != nil {
		c.logger.Errorf("%s: forwarding audio to asr: %v", c.id, err)
		c.shouldCancel = true
		c.asrClient.Cancel()
	}
}

func (c *Context) onUploadDone() {
	if c.failed() {
		return
	}
	if c.state != StateReceivingAudio {
		c.protocolError("client closed upload before sending audio")
		return
	}
	c.setState(StateAudioUploadComplete)
	c.asrWritesDone = time.Now()
	if err := c.asrClient.CloseWrites(); err != nil {
		c.logger.Errorf("%s: closing asr upload: %v", c.id, err)
		c.shouldCancel = true
		c.asrClient.Cancel()
	}
}

func (c *Context) onInboundError(err error) {
	if c.failed() || c.done {
		return
	}
	c.logger.Infof("%s: inbound stream broke: %v", c.id, err)
	if s, ok := status.FromError(err); ok && s.Code() != codes.OK {
		c.fail(s.Err())
	} else {
		c.fail(status.Error(codes.Canceled, "inbound stream cancelled"))
	}
	c.cancelDownstreams()
	c.done = true
}

// ============================================================================
// ASR leg
// ============================================================================

func (c *Context) onASRResponse(response *riva.StreamingRecognizeResponse) {
	if len(response.GetResults()) == 0 {
		c.logger.Debugf("%s: asr response carried no results", c.id)
		return
	}
	result := response.GetResults()[0]
	if !result.GetIsFinal() {
		// Interim results are disabled in the configuration; drop any that
		// arrive anyway.
		c.logger.Debugf("%s: discarding non-final asr result", c.id)
		return
	}
	c.asrOnComplete = time.Now()
	if len(result.GetAlternatives()) == 0 {
		c.logger.Errorf("%s: final asr result without a transcript", c.id)
		c.asrClient.Cancel()
		return
	}
	top := result.GetAlternatives()[0]
	c.question = top.GetTranscript() + "?"
	c.logger.Debugf("%s: asr result q=%q confidence=%f", c.id, c.question, top.GetConfidence())
}

func (c *Context) onASRFinished(err error, trailer internal_clients.Trailer) {
	c.logger.Debugf("%s: asr stream completed, err=%v", c.id, err)
	if err != nil || c.failed() {
		c.unblockFinish()
		if err != nil {
			c.logger.Errorf("%s: asr error detected, cancelling squad stream: %v", c.id, err)
			c.fail(downstreamStatus("asr", err))
		}
		c.done = true
		return
	}
	if c.question == "" {
		// The recognizer completed cleanly but never produced a final
		// transcript; nothing downstream can run.
		c.unblockFinish()
		c.fail(status.Error(codes.Internal, "asr completed without a final transcript"))
		c.done = true
		return
	}

	c.extractTimings(trailer)

	c.nlpClient = c.factory.NewNLP(c.stream.Context(), internal_clients.NLPCallbacks{
		OnResponse: func(response *riva.NaturalQueryResponse) {
			c.post(nlpResponse{response})
		},
		OnFinish: func(err error, trailer internal_clients.Trailer) {
			c.post(nlpFinished{err, trailer})
		},
	})
	c.pending++
	c.nlpStart = time.Now()
	c.logger.Debugf("%s: issuing nlp request, question=%q", c.id, c.question)
	c.nlpClient.Write(&riva.NaturalQueryRequest{
		Query:   c.question,
		TopN:    1,
		Context: c.squadContext,
	})
}

// ============================================================================
// NLP leg
// ============================================================================

func (c *Context) onNLPResponse(response *riva.NaturalQueryResponse) {
	if c.failed() {
		return
	}
	if len(response.GetResults()) == 0 {
		c.logger.Errorf("%s: nlp did not return any results", c.id)
		c.unblockFinish()
		c.fail(status.Error(codes.Internal, "nlp did not return any results"))
		c.done = true
		return
	}
	c.nlpFinish = time.Now()

	top := response.GetResults()[0]
	if top.GetAnswer() != "" {
		c.answer = top.GetAnswer()
		c.nlpScore = top.GetScore()
	} else {
		c.answer = ""
		c.nlpScore = 0
	}
	c.logger.Debugf("%s: nlp complete q=%q a=%q score=%f", c.id, c.question, c.answer, c.nlpScore)

	if err := c.stream.Send(&protos.SpeechSquadInferResponse{
		Payload: &protos.SpeechSquadInferResponse_Metadata{
			Metadata: &protos.SpeechSquadResponseMeta{
				SquadQuestion:   c.question,
				SquadAnswer:     c.answer,
				SquadConfidence: c.nlpScore,
			},
		},
	}); err != nil {
		c.logger.Errorf("%s: writing metadata response: %v", c.id, err)
		c.fail(status.Error(codes.Canceled, "inbound stream broke while writing metadata"))
		c.cancelDownstreams()
		c.done = true
		return
	}

	c.ttsClient = c.factory.NewTTS(c.stream.Context(), internal_clients.TTSCallbacks{
		OnResponse: func(response *riva.SynthesizeSpeechResponse) {
			c.post(ttsResponse{response})
		},
		OnFinish: func(err error, trailer internal_clients.Trailer) {
			c.post(ttsFinished{err, trailer})
		},
	})
	c.pending++

	text := c.answer
	if text == "" {
		text = noAnswerText
	}
	c.firstTTSResponse = true
	c.ttsStart = time.Now()
	c.logger.Debugf("%s: sending tts request", c.id)
	c.ttsClient.Write(&riva.SynthesizeSpeechRequest{
		Text:         text,
		LanguageCode: c.ttsConfig.GetLanguageCode(),
		Encoding:     riva.AudioEncoding_LINEAR_PCM,
		SampleRateHz: ttsSampleRateHz,
		VoiceName:    ttsVoiceName,
	})
}

func (c *Context) onNLPFinished(err error, trailer internal_clients.Trailer) {
	c.logger.Debugf("%s: nlp call completed, err=%v", c.id, err)
	if err != nil {
		c.logger.Errorf("%s: nlp error detected, cancelling squad stream: %v", c.id, err)
		c.unblockFinish()
		c.fail(downstreamStatus("nlp", err))
		c.done = true
		return
	}
	if c.done {
		return
	}
	c.extractTimings(trailer)
}

// ============================================================================
// TTS leg
// ============================================================================

func (c *Context) onTTSResponse(response *riva.SynthesizeSpeechResponse) {
	if c.failed() {
		return
	}
	if c.firstTTSResponse {
		c.ttsFirstPacket = time.Now()
		c.firstTTSResponse = false
	}
	if len(response.GetAudio()) == 0 {
		c.logger.Warnf("%s: received 0 bytes of tts audio", c.id)
		c.debugTTS = true
		return
	}
	if err := c.stream.Send(&protos.SpeechSquadInferResponse{
		Payload: &protos.SpeechSquadInferResponse_AudioContent{AudioContent: response.GetAudio()},
	}); err != nil {
		c.logger.Errorf("%s: forwarding tts audio: %v", c.id, err)
		c.fail(status.Error(codes.Canceled, "inbound stream broke while writing audio"))
		c.cancelDownstreams()
		c.done = true
	}
}

func (c *Context) onTTSFinished(err error, trailer internal_clients.Trailer) {
	c.logger.Debugf("%s: tts stream completed, err=%v", c.id, err)
	if c.debugTTS {
		c.logger.Warnf("%s: tts stream emitted empty audio responses, err=%v", c.id, err)
	}

	// Every downstream callback has now fired; the upstream stream may
	// complete regardless of the outcome.
	c.unblockFinish()
	c.done = true

	if err != nil {
		c.logger.Errorf("%s: tts error detected, cancelling squad stream: %v", c.id, err)
		c.fail(downstreamStatus("tts", err))
		return
	}
	if c.failed() {
		return
	}

	c.extractTimings(trailer)

	timing := make(map[string]float32, len(c.timings)+3)
	for _, entry := range c.timings {
		timing[entry.label] = entry.ms
	}
	timing[measuredASRLatency] = msBetween(c.asrWritesDone, c.asrOnComplete)
	timing[measuredNLPLatency] = msBetween(c.nlpStart, c.nlpFinish)
	timing[measuredTTSLatency] = msBetween(c.ttsStart, c.ttsFirstPacket)

	if err := c.stream.Send(&protos.SpeechSquadInferResponse{
		Payload: &protos.SpeechSquadInferResponse_Metadata{
			Metadata: &protos.SpeechSquadResponseMeta{ComponentTiming: timing},
		},
	}); err != nil {
		c.logger.Errorf("%s: writing timing response: %v", c.id, err)
		c.fail(status.Error(codes.Canceled, "inbound stream broke while writing timings"))
	}
}

// ============================================================================
// Helpers
// ============================================================================

func (c *Context) setState(next State) {
	c.logger.Debugf("%s: %s -> %s", c.id, c.state, next)
	c.state = next
}

func (c *Context) protocolError(message string) {
	if c.failed() {
		return
	}
	c.logger.Errorf("%s: %s", c.id, message)
	c.shouldCancel = true
	c.fail(status.Error(codes.InvalidArgument, message))
	c.cancelDownstreams()
}

func (c *Context) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Context) failed() bool {
	return c.err != nil || c.shouldCancel
}

func (c *Context) cancelDownstreams() {
	if c.asrClient != nil {
		c.asrClient.Cancel()
	}
	if c.nlpClient != nil {
		c.nlpClient.Cancel()
	}
	if c.ttsClient != nil {
		c.ttsClient.Cancel()
	}
}

func (c *Context) blockFinish() {
	c.finishBlock++
}

func (c *Context) unblockFinish() {
	if c.finishBlock > 0 {
		c.finishBlock--
	}
}

// extractTimings copies float-valued tracing.* entries from a downstream
// call's trailing metadata.
func (c *Context) extractTimings(trailer metadata.MD) {
	for key, values := range trailer {
		if !strings.HasPrefix(key, tracingPrefix) {
			continue
		}
		for _, value := range values {
			ms, err := strconv.ParseFloat(value, 32)
			if err != nil {
				c.logger.Debugf("%s: unparsable timing %s=%q", c.id, key, value)
				continue
			}
			c.timings = append(c.timings, timingEntry{label: key, ms: float32(ms)})
		}
	}
}

func downstreamStatus(leg string, err error) error {
	if s, ok := status.FromError(err); ok && s.Code() != codes.OK && s.Code() != codes.Unknown {
		return s.Err()
	}
	return status.Errorf(codes.Internal, "%s call failed: %v", leg, err)
}

func msBetween(start, end time.Time) float32 {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return float32(end.Sub(start).Microseconds()) / 1000.
}
