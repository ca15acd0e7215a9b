// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_squad

import (
	"context"

	internal_clients "github.com/rapidaai/speechsquad/api/squad-api/internal/clients"
	internal_resources "github.com/rapidaai/speechsquad/api/squad-api/internal/resources"
	"github.com/rapidaai/speechsquad/pkg/commons"
	riva "github.com/rapidaai/speechsquad/protos/riva"
)

// ASRStream is the orchestrator's view of a bidirectional recognizer call.
type ASRStream interface {
	Write(*riva.StreamingRecognizeRequest) error
	CloseWrites() error
	Cancel()
}

// NLPStream is the orchestrator's view of a one-shot natural query call.
type NLPStream interface {
	Write(*riva.NaturalQueryRequest)
	Cancel()
}

// TTSStream is the orchestrator's view of a single-request synthesis call.
type TTSStream interface {
	Write(*riva.SynthesizeSpeechRequest)
	Cancel()
}

// ClientFactory mints downstream calls for a context. The production factory
// picks channels from the shared pools; tests substitute fakes.
type ClientFactory interface {
	NewASR(ctx context.Context, callbacks internal_clients.ASRCallbacks) (ASRStream, error)
	NewNLP(ctx context.Context, callbacks internal_clients.NLPCallbacks) NLPStream
	NewTTS(ctx context.Context, callbacks internal_clients.TTSCallbacks) TTSStream
	Model() string
}

type rivaFactory struct {
	logger    commons.Logger
	resources *internal_resources.Resources
}

// NewRivaFactory builds the production factory over the downstream channel
// pools.
func NewRivaFactory(logger commons.Logger, resources *internal_resources.Resources) ClientFactory {
	return &rivaFactory{logger: logger, resources: resources}
}

func (f *rivaFactory) NewASR(ctx context.Context, callbacks internal_clients.ASRCallbacks) (ASRStream, error) {
	stub, release := f.resources.ASRStub()
	return internal_clients.NewASRClient(ctx, f.logger, stub, release, callbacks)
}

func (f *rivaFactory) NewNLP(ctx context.Context, callbacks internal_clients.NLPCallbacks) NLPStream {
	stub, release := f.resources.NLPStub()
	return internal_clients.NewNLPClient(ctx, f.logger, stub, release, callbacks)
}

func (f *rivaFactory) NewTTS(ctx context.Context, callbacks internal_clients.TTSCallbacks) TTSStream {
	stub, release := f.resources.TTSStub()
	return internal_clients.NewTTSClient(ctx, f.logger, stub, release, callbacks)
}

func (f *rivaFactory) Model() string {
	return f.resources.Model()
}
