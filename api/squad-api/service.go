// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package squad_api exposes the SpeechSquad inference service: one
// bidirectional stream per spoken question, fanned out to the downstream
// Riva ASR, NLP and TTS services.
package squad_api

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/rapidaai/speechsquad/api/squad-api/config"
	internal_resources "github.com/rapidaai/speechsquad/api/squad-api/internal/resources"
	internal_squad "github.com/rapidaai/speechsquad/api/squad-api/internal/squad"
	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/protos"
)

// SpeechSquadAPI implements protos.SpeechSquadServiceServer over a bounded
// pool of stream contexts.
type SpeechSquadAPI struct {
	protos.UnimplementedSpeechSquadServiceServer

	logger    commons.Logger
	cfg       *config.ServerConfig
	resources *internal_resources.Resources
	pool      *internal_squad.ContextPool
}

// New connects the downstream channel pools and prepares the context pool.
// Downstream connectivity failures are fatal here, before the server ever
// accepts a stream.
func New(ctx context.Context, logger commons.Logger, cfg *config.ServerConfig) (*SpeechSquadAPI, error) {
	resources, err := internal_resources.New(
		ctx, logger,
		cfg.ASRServiceURL, cfg.NLPServiceURL, cfg.TTSServiceURL,
		cfg.Channels, cfg.ASRModelName,
	)
	if err != nil {
		return nil, err
	}

	factory := internal_squad.NewRivaFactory(logger, resources)
	capacity := cfg.Threads * cfg.ContextsPerThread

	return &SpeechSquadAPI{
		logger:    logger,
		cfg:       cfg,
		resources: resources,
		pool:      internal_squad.NewContextPool(logger, factory, capacity),
	}, nil
}

// SpeechSquadInfer serves one inbound stream on a pooled context. When every
// context is busy the stream is rejected immediately; that is the only
// back-pressure mechanism for new streams.
func (s *SpeechSquadAPI) SpeechSquadInfer(stream grpc.BidiStreamingServer[protos.SpeechSquadInferRequest, protos.SpeechSquadInferResponse]) error {
	streamContext, ok := s.pool.Acquire()
	if !ok {
		s.logger.Warnf("rejecting stream: all %d contexts are in flight", s.pool.Capacity())
		return status.Error(codes.ResourceExhausted, "all stream contexts are busy")
	}
	defer s.pool.Release(streamContext)
	return streamContext.Serve(stream)
}

// Serve registers the service and blocks serving the given listener address.
func (s *SpeechSquadAPI) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.URI)
	if err != nil {
		return err
	}

	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    30 * time.Second,
			Timeout: 10 * time.Second,
		}),
		grpc.MaxRecvMsgSize(16 * 1024 * 1024),
	)
	protos.RegisterSpeechSquadServiceServer(server, s)

	go func() {
		<-ctx.Done()
		server.GracefulStop()
	}()

	s.logger.Infof("speech squad server listening on %s", s.cfg.URI)
	return server.Serve(listener)
}

// Close tears down the downstream channel pools.
func (s *SpeechSquadAPI) Close() {
	s.resources.Close()
}
