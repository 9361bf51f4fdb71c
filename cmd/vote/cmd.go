// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vote

import (
	"context"

	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/xvote/dapp"
	"github.com/luxfi/xvote/xcall"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "vote yes|no",
		Short: "Casts a vote, paying the gateway fee for the destination",
		RunE:  voteFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func voteFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	sn, err := Vote(c.Context(), config, dapp.NewClient(config.URI), xcall.NewClient(config.URI))
	if err != nil {
		return err
	}
	log.Root().Info("vote cast",
		log.Stringer("kind", config.Kind),
		log.Uint64("sn", sn),
	)
	return nil
}

// Vote looks up the fee the gateway charges for the dapp's destination and
// casts the vote with exactly that value attached.
func Vote(ctx context.Context, config *Config, client *dapp.Client, gateway xcall.Gateway) (uint64, error) {
	destination, err := client.GetDestination(ctx)
	if err != nil {
		return 0, err
	}
	fee, err := gateway.GetFee(ctx, xcall.NetworkOf(destination), config.Rollback)
	if err != nil {
		return 0, err
	}
	return client.CastVote(ctx, dapp.Call{
		Caller: config.Caller,
		Value:  fee,
	}, config.Kind)
}
