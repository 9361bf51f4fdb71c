// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dapp implements the cross-chain voting dapp. Votes are counted
// locally and announced to the remote dapp through an xcall gateway; when the
// gateway reports that the remote side could not apply a vote, the local
// count is compensated.
package dapp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/log"

	"github.com/luxfi/xvote"
	"github.com/luxfi/xvote/dapp/config"
	"github.com/luxfi/xvote/dapp/metrics"
	"github.com/luxfi/xvote/dapp/state"
	"github.com/luxfi/xvote/xcall"
)

var (
	ErrUnauthorizedCaller  = errors.New("unauthorized caller")
	ErrUnrecognizedPayload = errors.New("unrecognized payload")
	ErrDispatchFailure     = errors.New("dispatch failure")
	ErrInvariantViolation  = state.ErrInvariantViolation

	_ xcall.Receiver = (*Dapp)(nil)
)

// Call carries what the ledger runtime attaches to an entry point
// invocation.
type Call struct {
	Caller xcall.Address
	// Value is forwarded to the gateway as is. nil means zero.
	Value *uint256.Int
}

// RollbackReceived is emitted after a vote was compensated.
type RollbackReceived struct {
	Caller xcall.Address
	From   string
	Data   []byte
	Kind   xvote.Kind
}

// Dapp is one instance of the voting contract. Its entry points are
// serialized.
type Dapp struct {
	log     log.Logger
	metrics metrics.Metrics
	gateway xcall.Gateway

	address     xcall.Address
	useRollback bool

	lock      sync.Mutex
	db        database.Database
	state     *state.State
	listeners []func(RollbackReceived)
}

// New returns the dapp stored in db, initializing db from config the first
// time. A db that was already initialized keeps its destination and gateway.
func New(
	config config.Config,
	db database.Database,
	gateway xcall.Gateway,
	logger log.Logger,
	metrics metrics.Metrics,
) (*Dapp, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := state.New(db)
	err := s.Initialize(config.Destination, config.XCall)
	switch {
	case errors.Is(err, state.ErrAlreadyInitialized):
		logger.Info("using stored dapp configuration",
			log.Stringer("address", config.Address),
		)
	case err != nil:
		return nil, fmt.Errorf("failed to initialize state: %w", err)
	default:
		logger.Info("initialized dapp",
			log.Stringer("address", config.Address),
			log.String("destination", config.Destination),
			log.Stringer("xcall", config.XCall),
		)
	}

	return &Dapp{
		log:         logger,
		metrics:     metrics,
		gateway:     gateway,
		address:     config.Address,
		useRollback: config.UseRollback,
		db:          db,
		state:       s,
	}, nil
}

// Address the dapp sends its messages from.
func (d *Dapp) Address() xcall.Address {
	return d.address
}

// OnRollback registers f to be called with every RollbackReceived event. f
// runs after the entry point released the dapp.
func (d *Dapp) OnRollback(f func(RollbackReceived)) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.listeners = append(d.listeners, f)
}

// CastVote counts a vote of kind and announces it to the destination. The
// count and the dispatch succeed or fail together: if the gateway refuses
// the message the tally is left as it was. The returned serial number is the
// one assigned by the gateway.
func (d *Dapp) CastVote(ctx context.Context, call Call, kind xvote.Kind) (uint64, error) {
	if err := kind.Verify(); err != nil {
		return 0, err
	}

	d.lock.Lock()
	defer d.lock.Unlock()

	vdb := versiondb.New(d.db)
	defer vdb.Abort()

	s := state.New(vdb)
	if err := s.Increment(kind); err != nil {
		return 0, err
	}
	destination, err := s.Destination()
	if err != nil {
		return 0, err
	}

	tokens := xvote.TokensOf(kind)
	msg := &xcall.CallMessage{
		From: d.address,
		To:   destination,
		Data: tokens.Payload,
	}
	if d.useRollback {
		msg.Rollback = tokens.Rollback
	}

	sn, err := d.gateway.SendCallMessage(ctx, msg, call.Value)
	if err != nil {
		d.metrics.MarkDispatchFailure(kind)
		d.log.Error("failed to dispatch vote",
			log.Stringer("voter", call.Caller),
			log.Stringer("kind", kind),
			log.String("destination", msg.To),
			log.Err(err),
		)
		return 0, fmt.Errorf("%w: %w", ErrDispatchFailure, err)
	}
	if err := vdb.Commit(); err != nil {
		d.log.Error("failed to commit vote after dispatch",
			log.Stringer("kind", kind),
			log.Uint64("sn", sn),
			log.Err(err),
		)
		return 0, err
	}

	d.metrics.MarkVoteCast(kind)
	d.log.Info("vote dispatched",
		log.Stringer("voter", call.Caller),
		log.Stringer("kind", kind),
		log.String("destination", msg.To),
		log.Uint64("sn", sn),
		log.Bool("rollback", msg.HasRollback()),
	)
	return sn, nil
}

// HandleCallMessage is the inbound entry point. Only the configured gateway
// may call it, and the only messages understood are the rollback payloads of
// the two campaigns, each of which takes back one vote.
func (d *Dapp) HandleCallMessage(_ context.Context, caller xcall.Address, from string, data []byte) error {
	event, listeners, err := d.handleCallMessage(caller, from, data)
	if err != nil {
		return err
	}
	for _, f := range listeners {
		f(event)
	}
	return nil
}

func (d *Dapp) handleCallMessage(caller xcall.Address, from string, data []byte) (RollbackReceived, []func(RollbackReceived), error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	trusted, err := d.state.XCall()
	if err != nil {
		return RollbackReceived{}, nil, err
	}
	if caller != trusted {
		d.metrics.MarkInboundRejected(metrics.ReasonUnauthorized)
		d.log.Warn("rejected inbound message",
			log.Stringer("caller", caller),
			log.String("from", from),
			log.Err(ErrUnauthorizedCaller),
		)
		return RollbackReceived{}, nil, fmt.Errorf("%w: %s", ErrUnauthorizedCaller, caller)
	}

	kind, ok := xvote.MatchRollback(data)
	if !ok {
		d.metrics.MarkInboundRejected(metrics.ReasonUnrecognized)
		d.log.Warn("rejected inbound message",
			log.String("from", from),
			log.String("data", string(data)),
			log.Err(ErrUnrecognizedPayload),
		)
		return RollbackReceived{}, nil, fmt.Errorf("%w: %q", ErrUnrecognizedPayload, data)
	}

	if err := d.state.Decrement(kind); err != nil {
		if errors.Is(err, ErrInvariantViolation) {
			d.metrics.MarkInboundRejected(metrics.ReasonInvariant)
			d.log.Error("rollback without a vote to compensate",
				log.String("from", from),
				log.Stringer("kind", kind),
				log.Err(err),
			)
		}
		return RollbackReceived{}, nil, err
	}

	d.metrics.MarkRollbackApplied(kind)
	d.log.Info("RollbackReceived",
		log.Stringer("caller", caller),
		log.String("from", from),
		log.Stringer("kind", kind),
	)

	event := RollbackReceived{
		Caller: caller,
		From:   from,
		Data:   bytes.Clone(data),
		Kind:   kind,
	}
	listeners := make([]func(RollbackReceived), len(d.listeners))
	copy(listeners, d.listeners)
	return event, listeners, nil
}

// GetVotes returns the current tally.
func (d *Dapp) GetVotes() (xvote.Votes, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.state.Votes()
}

func (d *Dapp) GetDestination() (string, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.state.Destination()
}

func (d *Dapp) GetXCallAddress() (xcall.Address, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.state.XCall()
}
