// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state holds the persistent cells of the voting dapp: the two vote
// counters and the configuration written once at initialization.
package state

import (
	"errors"
	"fmt"

	"github.com/luxfi/database"

	"github.com/luxfi/xvote"
	"github.com/luxfi/xvote/xcall"
)

var (
	ErrInvariantViolation = errors.New("invariant violation")
	ErrAlreadyInitialized = errors.New("state already initialized")
	ErrNotInitialized     = errors.New("state not initialized")

	// Cell names
	yesKey         = []byte("yes")
	noKey          = []byte("no")
	destinationKey = []byte("btpAddress")
	xcallKey       = []byte("xcall")
)

// State reads and writes the dapp cells. It does no locking; callers
// serialize access.
type State struct {
	db database.Database
}

func New(db database.Database) *State {
	return &State{db: db}
}

// Initialize writes zero counters and the configuration. It fails with
// ErrAlreadyInitialized, without writing anything, if db was initialized
// before.
func (s *State) Initialize(destination string, gateway xcall.Address) error {
	initialized, err := s.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		return ErrAlreadyInitialized
	}

	batch := s.db.NewBatch()
	if err := batch.Put(destinationKey, []byte(destination)); err != nil {
		return err
	}
	if err := batch.Put(xcallKey, []byte(gateway.String())); err != nil {
		return err
	}
	if err := database.PutUInt64(batch, yesKey, 0); err != nil {
		return err
	}
	if err := database.PutUInt64(batch, noKey, 0); err != nil {
		return err
	}
	return batch.Write()
}

func (s *State) IsInitialized() (bool, error) {
	return s.db.Has(xcallKey)
}

// Increment adds one vote of kind.
func (s *State) Increment(kind xvote.Kind) error {
	key, err := counterKey(kind)
	if err != nil {
		return err
	}
	count, err := s.get(key)
	if err != nil {
		return err
	}
	return database.PutUInt64(s.db, key, count+1)
}

// Decrement removes one vote of kind. Removing a vote from a zero counter
// returns ErrInvariantViolation and leaves the counter untouched.
func (s *State) Decrement(kind xvote.Kind) error {
	key, err := counterKey(kind)
	if err != nil {
		return err
	}
	count, err := s.get(key)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s count is already zero", ErrInvariantViolation, kind)
	}
	return database.PutUInt64(s.db, key, count-1)
}

// Votes returns a snapshot of both counters.
func (s *State) Votes() (xvote.Votes, error) {
	yes, err := s.get(yesKey)
	if err != nil {
		return xvote.Votes{}, err
	}
	no, err := s.get(noKey)
	if err != nil {
		return xvote.Votes{}, err
	}
	return xvote.Votes{
		Yes: yes,
		No:  no,
	}, nil
}

// Destination is the remote dapp, exactly as it was initialized.
func (s *State) Destination() (string, error) {
	destinationBytes, err := s.db.Get(destinationKey)
	if errors.Is(err, database.ErrNotFound) {
		return "", ErrNotInitialized
	}
	return string(destinationBytes), err
}

// XCall is the address of the gateway trusted to deliver inbound messages.
func (s *State) XCall() (xcall.Address, error) {
	xcallBytes, err := s.db.Get(xcallKey)
	if errors.Is(err, database.ErrNotFound) {
		return xcall.Address{}, ErrNotInitialized
	}
	if err != nil {
		return xcall.Address{}, err
	}
	return xcall.ParseAddress(string(xcallBytes))
}

func (s *State) get(key []byte) (uint64, error) {
	count, err := database.GetUInt64(s.db, key)
	if errors.Is(err, database.ErrNotFound) {
		return 0, ErrNotInitialized
	}
	return count, err
}

func counterKey(kind xvote.Kind) ([]byte, error) {
	switch kind {
	case xvote.Yes:
		return yesKey, nil
	case xvote.No:
		return noKey, nil
	default:
		return nil, kind.Verify()
	}
}
