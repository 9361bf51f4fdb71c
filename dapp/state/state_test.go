// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/luxfi/database/memdb"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/xvote"
	"github.com/luxfi/xvote/xcall"
)

var (
	testDestination = "chainB/0xabc"
	testGateway     = xcall.ContractAddress(ids.ShortID{0x01})
)

func newTestState(t *testing.T) *State {
	s := New(memdb.New())
	require.NoError(t, s.Initialize(testDestination, testGateway))
	return s
}

func TestInitialize(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := New(db)

	initialized, err := s.IsInitialized()
	require.NoError(err)
	require.False(initialized)

	_, err = s.Votes()
	require.ErrorIs(err, ErrNotInitialized)
	_, err = s.Destination()
	require.ErrorIs(err, ErrNotInitialized)
	_, err = s.XCall()
	require.ErrorIs(err, ErrNotInitialized)

	require.NoError(s.Initialize(testDestination, testGateway))

	votes, err := s.Votes()
	require.NoError(err)
	require.Equal(xvote.Votes{}, votes)

	destination, err := s.Destination()
	require.NoError(err)
	require.Equal(testDestination, destination)

	gateway, err := s.XCall()
	require.NoError(err)
	require.Equal(testGateway, gateway)

	// A second initialization keeps the original cells.
	other := "btp://chainC/0xdef"
	require.ErrorIs(New(db).Initialize(other, testGateway), ErrAlreadyInitialized)
	destination, err = New(db).Destination()
	require.NoError(err)
	require.Equal(testDestination, destination)
}

func TestIncrementDecrement(t *testing.T) {
	require := require.New(t)

	s := newTestState(t)
	require.NoError(s.Increment(xvote.Yes))
	require.NoError(s.Increment(xvote.Yes))
	require.NoError(s.Increment(xvote.No))

	votes, err := s.Votes()
	require.NoError(err)
	require.Equal(xvote.Votes{Yes: 2, No: 1}, votes)

	require.NoError(s.Decrement(xvote.Yes))
	votes, err = s.Votes()
	require.NoError(err)
	require.Equal(xvote.Votes{Yes: 1, No: 1}, votes)
}

func TestDecrementZeroCounter(t *testing.T) {
	require := require.New(t)

	s := newTestState(t)
	require.NoError(s.Increment(xvote.Yes))

	err := s.Decrement(xvote.No)
	require.ErrorIs(err, ErrInvariantViolation)

	votes, err := s.Votes()
	require.NoError(err)
	require.Equal(xvote.Votes{Yes: 1}, votes)
}

func TestUnknownKind(t *testing.T) {
	require := require.New(t)

	s := newTestState(t)
	require.ErrorIs(s.Increment(xvote.Kind(7)), xvote.ErrUnknownKind)
	require.ErrorIs(s.Decrement(xvote.Kind(7)), xvote.ErrUnknownKind)
}
