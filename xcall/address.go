// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xcall

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/luxfi/ids"
)

const (
	contractPrefix = "cx"
	accountPrefix  = "hx"

	btpScheme = "btp://"

	addressLen = len(contractPrefix) + 2*len(ids.ShortID{})
)

var (
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidBTPAddress = errors.New("invalid btp address")
)

// Address identifies an account ("hx...") or a contract ("cx...") on the
// local chain.
type Address struct {
	Contract bool        `serialize:"true"`
	ID       ids.ShortID `serialize:"true"`
}

// ContractAddress returns the contract address with the given id.
func ContractAddress(id ids.ShortID) Address {
	return Address{Contract: true, ID: id}
}

// AccountAddress returns the account address with the given id.
func AccountAddress(id ids.ShortID) Address {
	return Address{ID: id}
}

// ParseAddress parses "cx" or "hx" followed by 40 hex characters.
func ParseAddress(s string) (Address, error) {
	if len(s) != addressLen {
		return Address{}, fmt.Errorf("%w: %q has length %d", ErrInvalidAddress, s, len(s))
	}

	var addr Address
	switch s[:len(contractPrefix)] {
	case contractPrefix:
		addr.Contract = true
	case accountPrefix:
	default:
		return Address{}, fmt.Errorf("%w: %q has unknown prefix", ErrInvalidAddress, s)
	}

	if _, err := hex.Decode(addr.ID[:], []byte(s[len(contractPrefix):])); err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return addr, nil
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	prefix := accountPrefix
	if a.Contract {
		prefix = contractPrefix
	}
	return prefix + hex.EncodeToString(a.ID[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Address{}
		return nil
	}
	addr, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// BTPAddress is a "btp://<network>/<account>" address naming an account on
// another chain.
type BTPAddress struct {
	Network string
	Account string
}

// ParseBTPAddress parses and validates a BTP address.
func ParseBTPAddress(s string) (BTPAddress, error) {
	rest, ok := strings.CutPrefix(s, btpScheme)
	if !ok {
		return BTPAddress{}, fmt.Errorf("%w: %q lacks %q scheme", ErrInvalidBTPAddress, s, btpScheme)
	}
	network, account, ok := strings.Cut(rest, "/")
	if !ok || network == "" || account == "" || strings.Contains(account, "/") {
		return BTPAddress{}, fmt.Errorf("%w: %q", ErrInvalidBTPAddress, s)
	}
	return BTPAddress{
		Network: network,
		Account: account,
	}, nil
}

// NetworkOf returns the network part of destination, or destination itself
// when it is not a BTP address.
func NetworkOf(destination string) string {
	addr, err := ParseBTPAddress(destination)
	if err != nil {
		return destination
	}
	return addr.Network
}

func (b BTPAddress) IsZero() bool {
	return b == BTPAddress{}
}

func (b BTPAddress) String() string {
	return btpScheme + b.Network + "/" + b.Account
}

func (b BTPAddress) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BTPAddress) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*b = BTPAddress{}
		return nil
	}
	addr, err := ParseBTPAddress(string(text))
	if err != nil {
		return err
	}
	*b = addr
	return nil
}
