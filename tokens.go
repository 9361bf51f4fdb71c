// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xvote

import "bytes"

// Campaign payloads carried by outbound call messages and the rollback
// payloads the gateway hands back when the remote side could not apply them.
const (
	VoteYesPayload  = "voteYes"
	VoteYesRollback = "voteYesRollback"
	VoteNoPayload   = "voteNo"
	VoteNoRollback  = "voteNoRollback"
)

// Tokens is the fixed payload/rollback pair of a vote kind.
type Tokens struct {
	Payload  []byte
	Rollback []byte
}

// TokensOf returns a fresh copy of the campaign tokens for kind. An unknown
// kind has no tokens.
func TokensOf(kind Kind) Tokens {
	switch kind {
	case Yes:
		return Tokens{
			Payload:  []byte(VoteYesPayload),
			Rollback: []byte(VoteYesRollback),
		}
	case No:
		return Tokens{
			Payload:  []byte(VoteNoPayload),
			Rollback: []byte(VoteNoRollback),
		}
	default:
		return Tokens{}
	}
}

// MatchRollback returns the kind whose rollback token equals data.
func MatchRollback(data []byte) (Kind, bool) {
	for _, kind := range Kinds {
		if bytes.Equal(data, TokensOf(kind).Rollback) {
			return kind, true
		}
	}
	return 0, false
}
