// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xcall

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/luxfi/rpc"

	"github.com/luxfi/xvote/utils/json"
)

var _ Gateway = (*Client)(nil)

// Client for a gateway served by Service.
type Client struct {
	Requester rpc.EndpointRequester
}

// NewClient returns a client of the gateway served at uri.
func NewClient(uri string) *Client {
	return &Client{Requester: rpc.NewEndpointRequester(
		uri + "/ext/" + ServiceName,
	)}
}

func (c *Client) SendCallMessage(ctx context.Context, msg *CallMessage, value *uint256.Int) (uint64, error) {
	res := &SendCallMessageReply{}
	err := c.Requester.SendRequest(ctx, ServiceName+".sendCallMessage", &SendCallMessageArgs{
		From:     msg.From.String(),
		To:       msg.To,
		Data:     msg.Data,
		Rollback: msg.Rollback,
		Value:    FormatValue(value),
	}, res)
	return uint64(res.SN), err
}

func (c *Client) GetFee(ctx context.Context, network string, rollback bool) (*uint256.Int, error) {
	res := &GetFeeReply{}
	err := c.Requester.SendRequest(ctx, ServiceName+".getFee", &GetFeeArgs{
		Network:  network,
		Rollback: rollback,
	}, res)
	if err != nil {
		return nil, err
	}
	return ParseValue(res.Fee)
}

// HandleResponse injects the remote side's answer to message sn.
func (c *Client) HandleResponse(ctx context.Context, sn uint64, success bool) error {
	return c.Requester.SendRequest(ctx, ServiceName+".handleResponse", &HandleResponseArgs{
		SN:      json.Uint64(sn),
		Success: success,
	}, &EmptyReply{})
}

// ExecuteRollback delivers the rollback of message sn.
func (c *Client) ExecuteRollback(ctx context.Context, sn uint64) error {
	return c.Requester.SendRequest(ctx, ServiceName+".executeRollback", &ExecuteRollbackArgs{
		SN: json.Uint64(sn),
	}, &EmptyReply{})
}

func (c *Client) GetBTPAddress(ctx context.Context) (BTPAddress, error) {
	res := &GetBTPAddressReply{}
	err := c.Requester.SendRequest(ctx, ServiceName+".getBtpAddress", struct{}{}, res)
	if err != nil {
		return BTPAddress{}, err
	}
	return ParseBTPAddress(res.Address)
}
