// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package json provides the wire types shared by the JSON-RPC services.
package json

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

const Null = "null"

var errMissingHexPrefix = errors.New("missing 0x prefix")

// Uint64 is a uint64 that can be JSON marshaled as a string.
type Uint64 uint64

func (u Uint64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(u), 10) + `"`), nil
}

func (u *Uint64) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == Null {
		return nil
	}
	if len(str) >= 2 {
		if lastIndex := len(str) - 1; str[0] == '"' && str[lastIndex] == '"' {
			str = str[1:lastIndex]
		}
	}
	val, err := strconv.ParseUint(str, 10, 64)
	*u = Uint64(val)
	return err
}

// Bytes is a byte slice that is JSON marshaled as a 0x-prefixed hex string.
// An empty string or null decodes to nil.
type Bytes []byte

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(b)), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	str := string(text)
	if str == "" || str == Null {
		*b = nil
		return nil
	}
	if !strings.HasPrefix(str, "0x") {
		return errMissingHexPrefix
	}
	decoded, err := hex.DecodeString(str[2:])
	if err != nil {
		return err
	}
	if len(decoded) == 0 {
		*b = nil
		return nil
	}
	*b = decoded
	return nil
}
