// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xvote

import "github.com/luxfi/version"

// Version of the voting dapp and its JSON-RPC surface.
var Version = &version.Semantic{
	Major: 1,
	Minor: 0,
	Patch: 0,
}
