// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapp

import (
	"context"

	"github.com/luxfi/rpc"

	"github.com/luxfi/xvote"
	"github.com/luxfi/xvote/xcall"
)

// Client for a dapp served by Service.
type Client struct {
	Requester rpc.EndpointRequester
}

func NewClient(uri string) *Client {
	return &Client{Requester: rpc.NewEndpointRequester(
		uri + "/ext/" + ServiceName,
	)}
}

// CastVote casts a vote of kind as caller, attaching value.
func (c *Client) CastVote(ctx context.Context, call Call, kind xvote.Kind) (uint64, error) {
	res := &VoteReply{}
	err := c.Requester.SendRequest(ctx, ServiceName+".castVote", &CastVoteArgs{
		VoteArgs: VoteArgs{
			Caller: formatCaller(call.Caller),
			Value:  xcall.FormatValue(call.Value),
		},
		Kind: kind.String(),
	}, res)
	return uint64(res.SN), err
}

func (c *Client) GetVotes(ctx context.Context) (xvote.Votes, error) {
	res := &GetVotesReply{}
	err := c.Requester.SendRequest(ctx, ServiceName+".getVotes", struct{}{}, res)
	return xvote.Votes{
		Yes: uint64(res.Yes),
		No:  uint64(res.No),
	}, err
}

func (c *Client) GetDestination(ctx context.Context) (string, error) {
	res := &AddressReply{}
	err := c.Requester.SendRequest(ctx, ServiceName+".getDestinationBtpAddress", struct{}{}, res)
	return res.Address, err
}

func (c *Client) GetXCallAddress(ctx context.Context) (xcall.Address, error) {
	res := &AddressReply{}
	err := c.Requester.SendRequest(ctx, ServiceName+".getXCallContractAddress", struct{}{}, res)
	if err != nil {
		return xcall.Address{}, err
	}
	return xcall.ParseAddress(res.Address)
}

func formatCaller(caller xcall.Address) string {
	if caller.IsZero() {
		return ""
	}
	return caller.String()
}
