// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vote

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/luxfi/xvote"
	"github.com/luxfi/xvote/xcall"
)

const (
	URIKey      = "uri"
	CallerKey   = "caller"
	RollbackKey = "rollback"
)

var errMissingKind = errors.New("expected exactly one argument: yes or no")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(URIKey, "http://127.0.0.1:9650", "URI of the node serving the dapp and its gateway")
	flags.String(CallerKey, "", "Address the vote is cast from")
	flags.Bool(RollbackKey, true, "Pay for a rollback; must match the dapp's useRollback setting")
}

type Config struct {
	URI      string
	Caller   xcall.Address
	Rollback bool
	Kind     xvote.Kind
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() != 1 {
		return nil, errMissingKind
	}
	kind, err := xvote.ParseKind(flags.Arg(0))
	if err != nil {
		return nil, err
	}

	uri, err := flags.GetString(URIKey)
	if err != nil {
		return nil, err
	}
	callerStr, err := flags.GetString(CallerKey)
	if err != nil {
		return nil, err
	}
	var caller xcall.Address
	if err := caller.UnmarshalText([]byte(callerStr)); err != nil {
		return nil, err
	}
	rollback, err := flags.GetBool(RollbackKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		URI:      uri,
		Caller:   caller,
		Rollback: rollback,
		Kind:     kind,
	}, nil
}
