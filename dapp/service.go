// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapp

import (
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/luxfi/log"

	"github.com/luxfi/xvote"
	"github.com/luxfi/xvote/utils/json"
	"github.com/luxfi/xvote/xcall"
)

const ServiceName = "voting"

// Service exposes a Dapp over JSON-RPC. The voter of every entry point is
// taken from the request arguments, the way a ledger runtime would supply it.
// Inbound gateway messages are not served: they carry the gateway's identity,
// which a request cannot prove, so gateways deliver to the Dapp directly.
type Service struct {
	log  log.Logger
	dapp *Dapp
}

func NewService(dapp *Dapp, logger log.Logger) (http.Handler, error) {
	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	server.RegisterInterceptFunc(dapp.metrics.InterceptRequest)
	server.RegisterAfterFunc(dapp.metrics.AfterRequest)
	return server, server.RegisterService(
		&Service{
			log:  logger,
			dapp: dapp,
		},
		ServiceName,
	)
}

type VoteArgs struct {
	Caller string `json:"caller"`
	Value  string `json:"value"`
}

type VoteReply struct {
	SN json.Uint64 `json:"sn"`
}

func (s *Service) VoteYes(r *http.Request, args *VoteArgs, reply *VoteReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "voteYes"),
	)

	return s.castVote(r, args, xvote.Yes, reply)
}

func (s *Service) VoteNo(r *http.Request, args *VoteArgs, reply *VoteReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "voteNo"),
	)

	return s.castVote(r, args, xvote.No, reply)
}

type CastVoteArgs struct {
	VoteArgs
	Kind string `json:"kind"`
}

func (s *Service) CastVote(r *http.Request, args *CastVoteArgs, reply *VoteReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "castVote"),
		log.String("kind", args.Kind),
	)

	kind, err := xvote.ParseKind(args.Kind)
	if err != nil {
		return err
	}
	return s.castVote(r, &args.VoteArgs, kind, reply)
}

func (s *Service) castVote(r *http.Request, args *VoteArgs, kind xvote.Kind, reply *VoteReply) error {
	call, err := parseCall(args.Caller, args.Value)
	if err != nil {
		return err
	}
	sn, err := s.dapp.CastVote(r.Context(), call, kind)
	if err != nil {
		return err
	}
	reply.SN = json.Uint64(sn)
	return nil
}

type GetVotesReply struct {
	Yes json.Uint64 `json:"yes"`
	No  json.Uint64 `json:"no"`
}

func (s *Service) GetVotes(_ *http.Request, _ *struct{}, reply *GetVotesReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "getVotes"),
	)

	votes, err := s.dapp.GetVotes()
	if err != nil {
		return err
	}
	reply.Yes = json.Uint64(votes.Yes)
	reply.No = json.Uint64(votes.No)
	return nil
}

type AddressReply struct {
	Address string `json:"address"`
}

func (s *Service) GetDestinationBtpAddress(_ *http.Request, _ *struct{}, reply *AddressReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "getDestinationBtpAddress"),
	)

	destination, err := s.dapp.GetDestination()
	if err != nil {
		return err
	}
	reply.Address = destination
	return nil
}

func (s *Service) GetXCallContractAddress(_ *http.Request, _ *struct{}, reply *AddressReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "getXCallContractAddress"),
	)

	gateway, err := s.dapp.GetXCallAddress()
	if err != nil {
		return err
	}
	reply.Address = gateway.String()
	return nil
}

func parseCall(caller, value string) (Call, error) {
	var (
		call Call
		err  error
	)
	if caller != "" {
		call.Caller, err = xcall.ParseAddress(caller)
		if err != nil {
			return Call{}, err
		}
	}
	call.Value, err = xcall.ParseValue(value)
	return call, err
}
