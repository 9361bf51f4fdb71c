// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xcall

import (
	"errors"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
)

const CodecVersion = 0

// Codec serializes the requests the local gateway keeps for rollbacks.
var Codec codec.Manager

func init() {
	Codec = codec.NewManager(MaxDataSize + MaxRollbackSize)
	lc := linearcodec.NewDefault()

	err := errors.Join(
		lc.RegisterType(&callRequest{}),
		Codec.RegisterCodec(CodecVersion, lc),
	)
	if err != nil {
		panic(err)
	}
}
