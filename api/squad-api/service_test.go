// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package squad_api

import (
	"context"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/rapidaai/speechsquad/api/squad-api/config"
	internal_clients "github.com/rapidaai/speechsquad/api/squad-api/internal/clients"
	internal_squad "github.com/rapidaai/speechsquad/api/squad-api/internal/squad"
	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/protos"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// ============================================================================
// Scripted downstream fakes
// ============================================================================

type scriptedASR struct {
	callbacks internal_clients.ASRCallbacks
	once      sync.Once
}

func (f *scriptedASR) Write(*riva.StreamingRecognizeRequest) error { return nil }

func (f *scriptedASR) CloseWrites() error {
	f.callbacks.OnResponse(&riva.StreamingRecognizeResponse{
		Results: []*riva.StreamingRecognitionResult{{
			Alternatives: []*riva.SpeechRecognitionAlternative{{Transcript: "why is the sky blue", Confidence: 0.9}},
			IsFinal:      true,
		}},
	})
	f.finish(nil)
	return nil
}

func (f *scriptedASR) Cancel() {
	f.finish(status.Error(codes.Canceled, "cancelled"))
}

func (f *scriptedASR) finish(err error) {
	f.once.Do(func() {
		f.callbacks.OnFinish(err, internal_clients.Trailer{
			"tracing.server_latency.streaming_recognition": []string{"10"},
		})
	})
}

type scriptedNLP struct{ callbacks internal_clients.NLPCallbacks }

func (f *scriptedNLP) Write(*riva.NaturalQueryRequest) {
	f.callbacks.OnResponse(&riva.NaturalQueryResponse{
		Results: []*riva.NaturalQueryResult{{Answer: "Rayleigh scattering", Score: 0.8}},
	})
	f.callbacks.OnFinish(nil, internal_clients.Trailer{
		"tracing.server_latency.natural_query": []string{"5"},
	})
}

func (f *scriptedNLP) Cancel() {}

type scriptedTTS struct{ callbacks internal_clients.TTSCallbacks }

func (f *scriptedTTS) Write(*riva.SynthesizeSpeechRequest) {
	f.callbacks.OnResponse(&riva.SynthesizeSpeechResponse{Audio: []byte{1, 2, 3, 4}})
	f.callbacks.OnResponse(&riva.SynthesizeSpeechResponse{Audio: []byte{5, 6, 7, 8}})
	f.callbacks.OnFinish(nil, internal_clients.Trailer{
		"tracing.server_latency.speech_synthesis": []string{"25"},
	})
}

func (f *scriptedTTS) Cancel() {}

type scriptedFactory struct{}

func (scriptedFactory) NewASR(_ context.Context, callbacks internal_clients.ASRCallbacks) (internal_squad.ASRStream, error) {
	return &scriptedASR{callbacks: callbacks}, nil
}

func (scriptedFactory) NewNLP(_ context.Context, callbacks internal_clients.NLPCallbacks) internal_squad.NLPStream {
	return &scriptedNLP{callbacks: callbacks}
}

func (scriptedFactory) NewTTS(_ context.Context, callbacks internal_clients.TTSCallbacks) internal_squad.TTSStream {
	return &scriptedTTS{callbacks: callbacks}
}

func (scriptedFactory) Model() string { return "" }

// ============================================================================
// Harness
// ============================================================================

func startTestServer(t *testing.T) protos.SpeechSquadServiceClient {
	t.Helper()
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)

	api := &SpeechSquadAPI{
		logger: logger,
		cfg:    &config.ServerConfig{},
		pool:   internal_squad.NewContextPool(logger, scriptedFactory{}, 8),
	}

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	protos.RegisterSpeechSquadServiceServer(server, api)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return protos.NewSpeechSquadServiceClient(conn)
}

func sendConfig(t *testing.T, stream protos.SpeechSquadService_SpeechSquadInferClient) {
	t.Helper()
	require.NoError(t, stream.Send(&protos.SpeechSquadInferRequest{
		Payload: &protos.SpeechSquadInferRequest_SpeechSquadConfig{
			SpeechSquadConfig: &protos.SpeechSquadConfig{
				InputAudioConfig: &protos.AudioConfig{
					Encoding:          protos.AudioEncoding_LINEAR_PCM,
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
	}))
}

// ============================================================================
// Tests
// ============================================================================

func TestSpeechSquadInferEndToEnd(t *testing.T) {
	client := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	stream, err := client.SpeechSquadInfer(ctx)
	require.NoError(t, err)

	sendConfig(t, stream)
	require.NoError(t, stream.Send(&protos.SpeechSquadInferRequest{
		Payload: &protos.SpeechSquadInferRequest_AudioContent{AudioContent: make([]byte, 3244)},
	}))
	require.NoError(t, stream.CloseSend())

	var responses []*protos.SpeechSquadInferResponse
	for {
		response, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		responses = append(responses, response)
	}

	require.Len(t, responses, 4)

	// Exactly one metadata response with a nonempty question precedes all
	// audio responses.
	first := responses[0].GetMetadata()
	require.NotNil(t, first)
	assert.Equal(t, "why is the sky blue?", first.GetSquadQuestion())
	assert.Equal(t, "Rayleigh scattering", first.GetSquadAnswer())

	assert.NotEmpty(t, responses[1].GetAudioContent())
	assert.NotEmpty(t, responses[2].GetAudioContent())

	// Exactly one trailing metadata response with the six labels follows
	// all audio responses.
	timing := responses[3].GetMetadata().GetComponentTiming()
	require.Len(t, timing, 6)
	for label, value := range timing {
		assert.GreaterOrEqual(t, value, float32(0), label)
	}
}

func TestSpeechSquadInferAudioBeforeConfig(t *testing.T) {
	client := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	stream, err := client.SpeechSquadInfer(ctx)
	require.NoError(t, err)

	require.NoError(t, stream.Send(&protos.SpeechSquadInferRequest{
		Payload: &protos.SpeechSquadInferRequest_AudioContent{AudioContent: make([]byte, 128)},
	}))
	require.NoError(t, stream.CloseSend())

	// The stream must close with a non-OK status and zero audio responses.
	_, err = stream.Recv()
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSpeechSquadInferIdempotentReplays(t *testing.T) {
	client := startTestServer(t)

	var questions []string
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		stream, err := client.SpeechSquadInfer(ctx)
		require.NoError(t, err)

		sendConfig(t, stream)
		require.NoError(t, stream.Send(&protos.SpeechSquadInferRequest{
			Payload: &protos.SpeechSquadInferRequest_AudioContent{AudioContent: make([]byte, 1024)},
		}))
		require.NoError(t, stream.CloseSend())

		for {
			response, err := stream.Recv()
			if err != nil {
				break
			}
			if meta := response.GetMetadata(); meta != nil && meta.GetSquadQuestion() != "" {
				questions = append(questions, meta.GetSquadQuestion())
			}
		}
		cancel()
	}

	require.Len(t, questions, 3)
	assert.Equal(t, questions[0], questions[1])
	assert.Equal(t, questions[1], questions[2])
}
