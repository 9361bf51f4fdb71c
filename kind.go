// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package xvote defines the vote kinds, campaign tokens and tally snapshot
// shared by the cross-chain voting dapp and its gateway integrations.
package xvote

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown vote kind")

// Kind is the outcome a voter selects.
type Kind uint8

const (
	Yes Kind = iota
	No
)

// Kinds lists every valid vote kind.
var Kinds = []Kind{Yes, No}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k == Yes || k == No
}

func (k Kind) String() string {
	switch k {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// Verify returns ErrUnknownKind for anything other than Yes or No.
func (k Kind) Verify() error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return nil
}

// ParseKind accepts "yes" or "no", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return Yes, nil
	case "no":
		return No, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Votes is an immutable snapshot of the tally.
type Votes struct {
	Yes uint64 `json:"yes"`
	No  uint64 `json:"no"`
}

// Get returns the counter for kind, or zero if kind is unknown.
func (v Votes) Get(kind Kind) uint64 {
	switch kind {
	case Yes:
		return v.Yes
	case No:
		return v.No
	default:
		return 0
	}
}
