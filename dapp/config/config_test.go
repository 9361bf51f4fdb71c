// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/xvote/xcall"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		configJSON  string
		expected    Config
		expectedErr error
	}{
		{
			name: "full",
			configJSON: `{
				"destination": "btp://chainB/0xabc",
				"xcall": "cx0100000000000000000000000000000000000000",
				"address": "cxda00000000000000000000000000000000000000",
				"useRollback": false
			}`,
			expected: Config{
				Destination: "btp://chainB/0xabc",
				XCall:       xcall.ContractAddress(ids.ShortID{0x01}),
				Address:     xcall.ContractAddress(ids.ShortID{0xda}),
			},
		},
		{
			name: "rollback on by default",
			configJSON: `{
				"destination": "btp://chainB/0xabc",
				"xcall": "cx0100000000000000000000000000000000000000",
				"address": "cxda00000000000000000000000000000000000000"
			}`,
			expected: Config{
				Destination: "btp://chainB/0xabc",
				XCall:       xcall.ContractAddress(ids.ShortID{0x01}),
				Address:     xcall.ContractAddress(ids.ShortID{0xda}),
				UseRollback: true,
			},
		},
		{
			name:        "empty",
			configJSON:  "",
			expectedErr: ErrInvalidDestination,
		},
		{
			name: "account as gateway",
			configJSON: `{
				"destination": "btp://chainB/0xabc",
				"xcall": "hx0100000000000000000000000000000000000000",
				"address": "cxda00000000000000000000000000000000000000"
			}`,
			expectedErr: ErrInvalidXCall,
		},
		{
			name: "account as dapp",
			configJSON: `{
				"destination": "btp://chainB/0xabc",
				"xcall": "cx0100000000000000000000000000000000000000",
				"address": "hxda00000000000000000000000000000000000000"
			}`,
			expectedErr: ErrInvalidAddress,
		},
		{
			name: "opaque destination",
			configJSON: `{
				"destination": "chainB/0xabc",
				"xcall": "cx0100000000000000000000000000000000000000",
				"address": "cxda00000000000000000000000000000000000000"
			}`,
			expected: Config{
				Destination: "chainB/0xabc",
				XCall:       xcall.ContractAddress(ids.ShortID{0x01}),
				Address:     xcall.ContractAddress(ids.ShortID{0xda}),
				UseRollback: true,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			config, err := ParseConfig([]byte(test.configJSON))
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(test.expected, config)
		})
	}
}
