// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_clients wraps the three downstream Riva calls behind a
// single adapter shape: Write / CloseWrites / Cancel on the way in, an
// OnResponse callback per message and one OnFinish callback carrying the
// terminal error and the call's trailing metadata on the way out.
//
// Callbacks fire on the adapter's receive goroutine. The owning stream
// context serializes them by funneling every callback into its event channel,
// so adapters never need to know about the orchestration state machine.
package internal_clients

import (
	"errors"
	"io"

	"google.golang.org/grpc/metadata"
)

// finishErr normalizes the receive-loop terminator: io.EOF is a clean end of
// stream, anything else is the call's terminal error.
func finishErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Trailer is the trailing metadata of a finished downstream call.
type Trailer = metadata.MD
