// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	squad_api "github.com/rapidaai/speechsquad/api/squad-api"
	"github.com/rapidaai/speechsquad/api/squad-api/config"
	"github.com/rapidaai/speechsquad/pkg/commons"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := commons.NewApplicationLogger(commons.WithLevel(cfg.LogLevel))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := squad_api.New(ctx, logger, cfg)
	if err != nil {
		logger.Errorf("startup failed: %v", err)
		os.Exit(1)
	}
	defer server.Close()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return server.Serve(groupCtx) })
	group.Go(func() error { return server.ServeHealth(groupCtx) })

	if err := group.Wait(); err != nil {
		logger.Errorf("server terminated: %v", err)
		os.Exit(1)
	}
}
