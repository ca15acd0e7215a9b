// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	benchmark_api "github.com/rapidaai/speechsquad/api/benchmark-api"
	"github.com/rapidaai/speechsquad/api/benchmark-api/config"
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

	// Streaming i/o runs on goroutines; a nonzero executor count caps the
	// scheduler instead of sizing a thread pool.
	if cfg.ExecutorCount > 0 {
		runtime.GOMAXPROCS(cfg.ExecutorCount)
	}

	coord := benchmark_api.NewSingleProcessCoordinator()
	if coord.Size() > cfg.NumParallelRequests {
		fmt.Fprintln(os.Stderr, "--num_parallel_requests can not be less than the number of peer processes")
		os.Exit(1)
	}

	outputRoot := benchmark_api.OutputRootFor(cfg.OutputRootFolder, coord.Rank(), coord.Size())
	if cfg.PrintResults {
		if err := os.MkdirAll(outputRoot, 0o777); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create directory %q: %v\n", outputRoot, err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	client, err := benchmark_api.New(ctx, logger, cfg, coord, outputRoot)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runErr := client.Run(ctx)
	if closeErr := client.Close(); closeErr != nil {
		logger.Errorf("closing output files: %v", closeErr)
	}
	if runErr != nil {
		if errors.Is(runErr, benchmark_api.ErrMidRun) {
			os.Exit(-1)
		}
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
