// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/luxfi/xvote"
	"github.com/luxfi/xvote/dapp"
	"github.com/luxfi/xvote/dapp/config"
	"github.com/luxfi/xvote/xcall"
)

func parse(args ...string) (*Config, error) {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	AddFlags(flags)
	return ParseFlags(flags, args)
}

func TestParseFlags(t *testing.T) {
	require := require.New(t)

	c, err := parse("--destination=btp://chainB/0xabc", "--http-port=0", "--use-rollback=false")
	require.NoError(err)
	require.Equal(uint16(0), c.HTTPPort)
	require.Equal("btp://chainB/0xabc", c.Dapp.Destination)
	require.Equal(xcall.DefaultConfig().Address, c.Dapp.XCall)
	require.Equal(DefaultDappAddress, c.Dapp.Address)
	require.False(c.Dapp.UseRollback)
}

func TestParseFlagsRequiresDestination(t *testing.T) {
	_, err := parse()
	require.ErrorIs(t, err, config.ErrInvalidDestination)
}

func TestParseFlagsConfigFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(path, []byte(`{
		"dapp": {
			"destination": "btp://0xaa36a7.eth2/0x597F",
			"address": "cxda00000000000000000000000000000000000000",
			"useRollback": false
		},
		"xcall": {
			"address": "cx0500000000000000000000000000000000000000",
			"network": "0x2.icon",
			"protocolFee": 1,
			"rollbackFee": 2
		}
	}`), 0o600))

	c, err := parse("--config="+path, "--network=0x3.icon")
	require.NoError(err)
	require.Equal(xcall.Config{
		Address:     xcall.ContractAddress(ids.ShortID{0x05}),
		Network:     "0x3.icon",
		ProtocolFee: 1,
		RollbackFee: 2,
	}, c.XCall)
	require.Equal(config.Config{
		Destination: "btp://0xaa36a7.eth2/0x597F",
		XCall:       xcall.ContractAddress(ids.ShortID{0x05}),
		Address:     xcall.ContractAddress(ids.ShortID{0xda}),
	}, c.Dapp)
}

func TestNewHandler(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	c, err := parse("--destination=btp://chainB/0xabc")
	require.NoError(err)
	handler, err := NewHandler(c, log.NoLog{}, metric.NewRegistry())
	require.NoError(err)

	server := httptest.NewServer(handler)
	defer server.Close()

	gatewayClient := xcall.NewClient(server.URL)
	dappClient := dapp.NewClient(server.URL)

	fee, err := gatewayClient.GetFee(ctx, "chainB", true)
	require.NoError(err)
	sn, err := dappClient.CastVote(ctx, dapp.Call{Value: fee}, xvote.Yes)
	require.NoError(err)

	votes, err := dappClient.GetVotes(ctx)
	require.NoError(err)
	require.Equal(xvote.Votes{Yes: 1}, votes)

	require.NoError(gatewayClient.HandleResponse(ctx, sn, false))
	require.NoError(gatewayClient.ExecuteRollback(ctx, sn))

	votes, err = dappClient.GetVotes(ctx)
	require.NoError(err)
	require.Equal(xvote.Votes{}, votes)
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	require := require.New(t)

	c, err := parse("--destination=btp://chainB/0xabc", "--http-port=0")
	require.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(Run(ctx, c, log.NoLog{}))
}
