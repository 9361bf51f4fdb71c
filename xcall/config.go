// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package xcall

import (
	"encoding/json"
	"errors"

	"github.com/luxfi/ids"

	"github.com/luxfi/xvote/utils/units"
)

var (
	ErrInvalidNetwork        = errors.New("invalid network")
	ErrInvalidGatewayAddress = errors.New("gateway address must be a contract")
)

// Config of a LocalGateway.
type Config struct {
	// Address the gateway calls receivers from.
	Address Address `json:"address"`

	// Network label of the local chain, used to build the gateway's own BTP
	// address.
	Network string `json:"network"`

	// ProtocolFee is charged for every message.
	ProtocolFee uint64 `json:"protocolFee"`

	// RollbackFee is charged on top when the message carries a rollback.
	RollbackFee uint64 `json:"rollbackFee"`
}

func DefaultConfig() Config {
	return Config{
		Address:     ContractAddress(ids.ShortID{0x01}),
		Network:     "0x1.local",
		ProtocolFee: 10 * units.MilliLux,
		RollbackFee: 5 * units.MilliLux,
	}
}

// ParseConfig overlays configBytes onto DefaultConfig.
func ParseConfig(configBytes []byte) (Config, error) {
	config := DefaultConfig()
	if len(configBytes) == 0 {
		return config, nil
	}
	if err := json.Unmarshal(configBytes, &config); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch {
	case c.Network == "":
		return ErrInvalidNetwork
	case !c.Address.Contract:
		return ErrInvalidGatewayAddress
	}
	return nil
}

// BTPAddress of the gateway itself.
func (c *Config) BTPAddress() BTPAddress {
	return BTPAddress{
		Network: c.Network,
		Account: c.Address.String(),
	}
}
