// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package utils

import "strings"

// EscapeQuotes backslash-escapes double quotes so answer and question text
// can be embedded in hand-built JSON records.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
