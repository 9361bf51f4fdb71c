// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xcall

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/log"
)

var (
	ErrInsufficientFee     = errors.New("insufficient fee")
	ErrRollbackNotPossible = errors.New("rollback requires a contract sender")
	ErrUnknownSerialNumber = errors.New("unknown serial number")
	ErrNoRollback          = errors.New("no pending rollback")
	ErrRollbackNotEnabled  = errors.New("rollback not enabled")
	ErrNoReceiver          = errors.New("no receiver registered")

	_ Gateway = (*LocalGateway)(nil)

	lastSNKey     = []byte("lastSN")
	requestPrefix = []byte("request")
)

// callRequest is kept for every message sent with a rollback until the
// remote side answers.
type callRequest struct {
	From     Address `serialize:"true"`
	To       string  `serialize:"true"`
	Rollback []byte  `serialize:"true"`
	Enabled  bool    `serialize:"true"`
}

// LocalGateway is an in-process messenger. Outbound messages are accepted
// and numbered; the remote side's answer is injected with HandleResponse and
// the resulting rollback is delivered with ExecuteRollback. Nothing is
// delivered unless asked for.
type LocalGateway struct {
	log    log.Logger
	config Config

	lock      sync.Mutex
	db        database.Database
	requests  database.Database
	lastSN    uint64
	receivers map[Address]Receiver
}

func NewLocalGateway(config Config, db database.Database, logger log.Logger) (*LocalGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	lastSN, err := database.GetUInt64(db, lastSNKey)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("failed to load last serial number: %w", err)
	}
	return &LocalGateway{
		log:       logger,
		config:    config,
		db:        db,
		requests:  prefixdb.New(requestPrefix, db),
		lastSN:    lastSN,
		receivers: make(map[Address]Receiver),
	}, nil
}

// Address the gateway delivers messages from.
func (g *LocalGateway) Address() Address {
	return g.config.Address
}

// BTPAddress of the gateway.
func (g *LocalGateway) BTPAddress() BTPAddress {
	return g.config.BTPAddress()
}

// Register binds addr to the receiver its rollbacks are delivered to.
func (g *LocalGateway) Register(addr Address, receiver Receiver) {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.receivers[addr] = receiver
}

func (g *LocalGateway) GetFee(_ context.Context, _ string, rollback bool) (*uint256.Int, error) {
	return g.fee(rollback), nil
}

func (g *LocalGateway) fee(rollback bool) *uint256.Int {
	fee := uint256.NewInt(g.config.ProtocolFee)
	if rollback {
		fee.Add(fee, uint256.NewInt(g.config.RollbackFee))
	}
	return fee
}

func (g *LocalGateway) SendCallMessage(_ context.Context, msg *CallMessage, value *uint256.Int) (uint64, error) {
	if err := msg.Validate(); err != nil {
		return 0, err
	}
	if msg.HasRollback() && !msg.From.Contract {
		return 0, fmt.Errorf("%w: %s", ErrRollbackNotPossible, msg.From)
	}
	if value == nil {
		value = new(uint256.Int)
	}
	if fee := g.fee(msg.HasRollback()); value.Lt(fee) {
		return 0, fmt.Errorf("%w: %s < %s", ErrInsufficientFee, value.Dec(), fee.Dec())
	}

	g.lock.Lock()
	defer g.lock.Unlock()

	sn := g.lastSN + 1
	if msg.HasRollback() {
		err := g.putRequest(sn, &callRequest{
			From:     msg.From,
			To:       msg.To,
			Rollback: msg.Rollback,
		})
		if err != nil {
			return 0, err
		}
	}
	if err := database.PutUInt64(g.db, lastSNKey, sn); err != nil {
		return 0, err
	}
	g.lastSN = sn

	g.log.Info("CallMessageSent",
		log.Stringer("from", msg.From),
		log.String("to", msg.To),
		log.Uint64("sn", sn),
		log.Bool("rollback", msg.HasRollback()),
	)
	return sn, nil
}

// HandleResponse records the remote side's answer to message sn. A success
// forgets the request; a failure enables its rollback.
func (g *LocalGateway) HandleResponse(sn uint64, success bool) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	req, err := g.getRequest(sn)
	if err != nil {
		return err
	}
	if success {
		g.log.Info("CallMessage succeeded",
			log.Uint64("sn", sn),
		)
		return g.requests.Delete(snKey(sn))
	}

	req.Enabled = true
	if err := g.putRequest(sn, req); err != nil {
		return err
	}
	g.log.Info("RollbackMessage",
		log.Uint64("sn", sn),
		log.Stringer("from", req.From),
	)
	return nil
}

// ExecuteRollback delivers the rollback payload of message sn to the dapp
// that sent it. The request is only forgotten once the receiver accepted it.
func (g *LocalGateway) ExecuteRollback(ctx context.Context, sn uint64) error {
	g.lock.Lock()
	req, err := g.getRequest(sn)
	if err != nil {
		g.lock.Unlock()
		return err
	}
	if !req.Enabled {
		g.lock.Unlock()
		return fmt.Errorf("%w: sn %d", ErrRollbackNotEnabled, sn)
	}
	receiver, ok := g.receivers[req.From]
	if !ok {
		g.lock.Unlock()
		return fmt.Errorf("%w: %s", ErrNoReceiver, req.From)
	}
	if err := g.requests.Delete(snKey(sn)); err != nil {
		g.lock.Unlock()
		return err
	}
	g.lock.Unlock()

	from := g.config.BTPAddress().String()
	if err := receiver.HandleCallMessage(ctx, g.config.Address, from, req.Rollback); err != nil {
		g.log.Warn("rollback rejected",
			log.Uint64("sn", sn),
			log.Stringer("receiver", req.From),
			log.Err(err),
		)

		g.lock.Lock()
		defer g.lock.Unlock()
		if putErr := g.putRequest(sn, req); putErr != nil {
			return errors.Join(err, putErr)
		}
		return err
	}

	g.log.Info("RollbackExecuted",
		log.Uint64("sn", sn),
		log.Stringer("receiver", req.From),
	)
	return nil
}

// getRequest assumes the lock is held.
func (g *LocalGateway) getRequest(sn uint64) (*callRequest, error) {
	if sn == 0 || sn > g.lastSN {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSerialNumber, sn)
	}
	reqBytes, err := g.requests.Get(snKey(sn))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: sn %d", ErrNoRollback, sn)
	}
	if err != nil {
		return nil, err
	}
	req := &callRequest{}
	if _, err := Codec.Unmarshal(reqBytes, req); err != nil {
		return nil, err
	}
	return req, nil
}

// putRequest assumes the lock is held.
func (g *LocalGateway) putRequest(sn uint64, req *callRequest) error {
	reqBytes, err := Codec.Marshal(CodecVersion, req)
	if err != nil {
		return err
	}
	return g.requests.Put(snKey(sn), reqBytes)
}

func snKey(sn uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, sn)
}
