// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rollback

import (
	"strconv"

	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/xvote/xcall"
)

const URIKey = "uri"

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "rollback <sn>",
		Short: "Delivers the rollback of a failed message to the dapp that sent it",
		Args:  cobra.ExactArgs(1),
		RunE:  rollbackFunc,
	}
	c.Flags().String(URIKey, "http://127.0.0.1:9650", "URI of the node serving the gateway")
	return c
}

func rollbackFunc(c *cobra.Command, args []string) error {
	uri, err := c.Flags().GetString(URIKey)
	if err != nil {
		return err
	}
	sn, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return err
	}

	if err := xcall.NewClient(uri).ExecuteRollback(c.Context(), sn); err != nil {
		return err
	}
	log.Root().Info("rollback executed",
		log.Uint64("sn", sn),
	)
	return nil
}
