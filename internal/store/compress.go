// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Cached payloads are stored as zstd frames. Encoder and decoder are shared:
// EncodeAll and DecodeAll are safe for concurrent use.
var (
	payloadEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	payloadDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedPayload))
)

// maxDecodedPayload bounds the size of one decompressed payload.
const maxDecodedPayload = 64 << 20

func compressPayload(payload []byte) []byte {
	return payloadEncoder.EncodeAll(payload, make([]byte, 0, len(payload)/2+16))
}

func decompressPayload(stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return nil, nil
	}

	out, err := payloadDecoder.DecodeAll(stored, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	return out, nil
}
