// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package idgen makes short identifiers for requests and cache busting.
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// entropyBytes is the number of random bytes appended to the timestamp.
const entropyBytes = 3

// Make makes a short ID: the wall-clock time as HHMMSS followed by
// entropyBytes of URL-safe base64 encoded randomness.
func Make() string {
	var entropy [entropyBytes]byte

	_, _ = rand.Read(entropy[:])

	return maketime(time.Now()) + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}
