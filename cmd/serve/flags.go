// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/luxfi/ids"
	"github.com/spf13/pflag"

	"github.com/luxfi/xvote/dapp/config"
	"github.com/luxfi/xvote/xcall"
)

const (
	HTTPHostKey    = "http-host"
	HTTPPortKey    = "http-port"
	ConfigFileKey  = "config"
	DestinationKey = "destination"
	NetworkKey     = "network"
	UseRollbackKey = "use-rollback"
)

// DefaultDappAddress is used when no config file names the dapp.
var DefaultDappAddress = xcall.ContractAddress(ids.ShortID{0x02})

func AddFlags(flags *pflag.FlagSet) {
	flags.String(HTTPHostKey, "127.0.0.1", "Address the HTTP server listens on")
	flags.Uint16(HTTPPortKey, 9650, "Port the HTTP server listens on")
	flags.String(ConfigFileKey, "", "JSON file with \"dapp\" and \"xcall\" sections")
	flags.String(DestinationKey, "", "BTP address of the remote dapp, overrides the config file")
	flags.String(NetworkKey, "", "Network label of the local gateway, overrides the config file")
	flags.Bool(UseRollbackKey, true, "Attach rollback payloads to votes")
}

type Config struct {
	HTTPHost string
	HTTPPort uint16
	Dapp     config.Config
	XCall    xcall.Config
}

type fileConfig struct {
	Dapp  json.RawMessage `json:"dapp"`
	XCall json.RawMessage `json:"xcall"`
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	host, err := flags.GetString(HTTPHostKey)
	if err != nil {
		return nil, err
	}
	port, err := flags.GetUint16(HTTPPortKey)
	if err != nil {
		return nil, err
	}
	configFile, err := flags.GetString(ConfigFileKey)
	if err != nil {
		return nil, err
	}

	c := &Config{
		HTTPHost: host,
		HTTPPort: port,
		Dapp:     config.DefaultConfig(),
		XCall:    xcall.DefaultConfig(),
	}
	c.Dapp.Address = DefaultDappAddress

	if configFile != "" {
		configBytes, err := os.ReadFile(configFile)
		if err != nil {
			return nil, err
		}
		var file fileConfig
		if err := json.Unmarshal(configBytes, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
		}
		if len(file.XCall) > 0 {
			if err := json.Unmarshal(file.XCall, &c.XCall); err != nil {
				return nil, fmt.Errorf("failed to parse xcall config: %w", err)
			}
		}
		if len(file.Dapp) > 0 {
			if err := json.Unmarshal(file.Dapp, &c.Dapp); err != nil {
				return nil, fmt.Errorf("failed to parse dapp config: %w", err)
			}
		}
	}

	if flags.Changed(DestinationKey) {
		c.Dapp.Destination, err = flags.GetString(DestinationKey)
		if err != nil {
			return nil, err
		}
	}
	if flags.Changed(NetworkKey) {
		c.XCall.Network, err = flags.GetString(NetworkKey)
		if err != nil {
			return nil, err
		}
	}
	if flags.Changed(UseRollbackKey) || configFile == "" {
		c.Dapp.UseRollback, err = flags.GetBool(UseRollbackKey)
		if err != nil {
			return nil, err
		}
	}

	// The dapp trusts the gateway served next to it.
	c.Dapp.XCall = c.XCall.Address

	if err := c.XCall.Validate(); err != nil {
		return nil, err
	}
	if err := c.Dapp.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
