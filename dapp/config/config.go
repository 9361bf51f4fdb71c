// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"

	"github.com/luxfi/xvote/xcall"
)

var (
	ErrInvalidDestination = errors.New("invalid destination")
	ErrInvalidXCall       = errors.New("invalid xcall address")
	ErrInvalidAddress     = errors.New("invalid dapp address")
)

// Config of a voting dapp instance.
type Config struct {
	// Destination names the counterpart dapp. It is handed to the gateway
	// as is.
	Destination string `json:"destination"`

	// XCall is the gateway trusted to deliver inbound messages.
	XCall xcall.Address `json:"xcall"`

	// Address the dapp sends from. Rollbacks are routed back to it.
	Address xcall.Address `json:"address"`

	// UseRollback attaches a rollback payload to every vote.
	UseRollback bool `json:"useRollback"`
}

func DefaultConfig() Config {
	return Config{
		UseRollback: true,
	}
}

// ParseConfig overlays configBytes onto DefaultConfig and validates the
// result.
func ParseConfig(configBytes []byte) (Config, error) {
	config := DefaultConfig()
	if len(configBytes) > 0 {
		if err := json.Unmarshal(configBytes, &config); err != nil {
			return Config{}, err
		}
	}
	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch {
	case c.Destination == "":
		return ErrInvalidDestination
	case c.XCall.IsZero() || !c.XCall.Contract:
		return ErrInvalidXCall
	case !c.Address.Contract:
		return ErrInvalidAddress
	}
	return nil
}
