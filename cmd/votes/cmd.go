// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package votes

import (
	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/xvote/dapp"
)

const URIKey = "uri"

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "votes",
		Short: "Prints the tally and configuration of a dapp",
		Args:  cobra.NoArgs,
		RunE:  votesFunc,
	}
	c.Flags().String(URIKey, "http://127.0.0.1:9650", "URI of the node serving the dapp")
	return c
}

func votesFunc(c *cobra.Command, _ []string) error {
	uri, err := c.Flags().GetString(URIKey)
	if err != nil {
		return err
	}

	ctx := c.Context()
	client := dapp.NewClient(uri)
	votes, err := client.GetVotes(ctx)
	if err != nil {
		return err
	}
	destination, err := client.GetDestination(ctx)
	if err != nil {
		return err
	}
	gateway, err := client.GetXCallAddress(ctx)
	if err != nil {
		return err
	}

	log.Root().Info("votes",
		log.Uint64("yes", votes.Yes),
		log.Uint64("no", votes.No),
		log.String("destination", destination),
		log.Stringer("xcall", gateway),
	)
	return nil
}
