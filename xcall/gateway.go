// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package xcall is the contract between a dapp and the cross-chain
// messenger: the envelope it sends, the entry point it exposes for inbound
// messages, and an in-process messenger usable for local networks.
package xcall

import (
	"context"

	"github.com/holiman/uint256"
)

// Gateway accepts outbound call messages. SendCallMessage returns the serial
// number the gateway assigned to the message.
type Gateway interface {
	SendCallMessage(ctx context.Context, msg *CallMessage, value *uint256.Int) (uint64, error)
	GetFee(ctx context.Context, network string, rollback bool) (*uint256.Int, error)
}

// Receiver is implemented by anything the gateway delivers messages to.
// caller is the identity of the gateway making the call and from is the BTP
// address the message originated from.
type Receiver interface {
	HandleCallMessage(ctx context.Context, caller Address, from string, data []byte) error
}
