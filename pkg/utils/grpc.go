// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package utils

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// DialInsecure opens an idle client connection to uri. Connection
// establishment is deferred until WaitUntilReady or the first call.
func DialInsecure(uri string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(uri, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %q: %w", uri, err)
	}
	return conn, nil
}

// WaitUntilReady drives the channel to READY, blocking until it connects or
// ctx expires.
func WaitUntilReady(ctx context.Context, conn *grpc.ClientConn, uri string) error {
	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("cannot establish grpc channel at uri %s: %w", uri, ctx.Err())
		}
	}
}
