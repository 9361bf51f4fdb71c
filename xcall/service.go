// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xcall

import (
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/holiman/uint256"
	"github.com/luxfi/log"

	"github.com/luxfi/xvote/utils/json"
)

const ServiceName = "xcall"

// EmptyReply is the reply of methods that return nothing.
type EmptyReply struct{}

// Service exposes a LocalGateway over JSON-RPC.
type Service struct {
	log     log.Logger
	gateway *LocalGateway
}

// NewService returns the JSON-RPC handler of gateway.
func NewService(gateway *LocalGateway, logger log.Logger) (http.Handler, error) {
	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(
		&Service{
			log:     logger,
			gateway: gateway,
		},
		ServiceName,
	)
}

type SendCallMessageArgs struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Data     json.Bytes `json:"data"`
	Rollback json.Bytes `json:"rollback"`
	Value    string     `json:"value"`
}

type SendCallMessageReply struct {
	SN json.Uint64 `json:"sn"`
}

func (s *Service) SendCallMessage(r *http.Request, args *SendCallMessageArgs, reply *SendCallMessageReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "sendCallMessage"),
	)

	from, err := ParseAddress(args.From)
	if err != nil {
		return err
	}
	value, err := ParseValue(args.Value)
	if err != nil {
		return err
	}
	sn, err := s.gateway.SendCallMessage(r.Context(), &CallMessage{
		From:     from,
		To:       args.To,
		Data:     args.Data,
		Rollback: args.Rollback,
	}, value)
	if err != nil {
		return err
	}
	reply.SN = json.Uint64(sn)
	return nil
}

type GetFeeArgs struct {
	Network  string `json:"network"`
	Rollback bool   `json:"rollback"`
}

type GetFeeReply struct {
	Fee string `json:"fee"`
}

func (s *Service) GetFee(r *http.Request, args *GetFeeArgs, reply *GetFeeReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "getFee"),
	)

	fee, err := s.gateway.GetFee(r.Context(), args.Network, args.Rollback)
	if err != nil {
		return err
	}
	reply.Fee = fee.Dec()
	return nil
}

type HandleResponseArgs struct {
	SN      json.Uint64 `json:"sn"`
	Success bool        `json:"success"`
}

func (s *Service) HandleResponse(_ *http.Request, args *HandleResponseArgs, _ *EmptyReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "handleResponse"),
	)

	return s.gateway.HandleResponse(uint64(args.SN), args.Success)
}

type ExecuteRollbackArgs struct {
	SN json.Uint64 `json:"sn"`
}

func (s *Service) ExecuteRollback(r *http.Request, args *ExecuteRollbackArgs, _ *EmptyReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "executeRollback"),
	)

	return s.gateway.ExecuteRollback(r.Context(), uint64(args.SN))
}

type GetBTPAddressReply struct {
	Address string `json:"address"`
}

func (s *Service) GetBtpAddress(_ *http.Request, _ *struct{}, reply *GetBTPAddressReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "getBtpAddress"),
	)

	reply.Address = s.gateway.BTPAddress().String()
	return nil
}

// ParseValue parses a decimal amount. The empty string is zero.
func ParseValue(s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	value, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return value, nil
}

// FormatValue is the inverse of ParseValue.
func FormatValue(value *uint256.Int) string {
	if value == nil {
		return "0"
	}
	return value.Dec()
}
