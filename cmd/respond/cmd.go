// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package respond

import (
	"strconv"

	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/xvote/xcall"
)

const (
	URIKey     = "uri"
	SuccessKey = "success"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "respond <sn>",
		Short: "Injects the remote chain's response to a message into the local gateway",
		Args:  cobra.ExactArgs(1),
		RunE:  respondFunc,
	}
	flags := c.Flags()
	flags.String(URIKey, "http://127.0.0.1:9650", "URI of the node serving the gateway")
	flags.Bool(SuccessKey, false, "Whether the remote chain applied the message")
	return c
}

func respondFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	uri, err := flags.GetString(URIKey)
	if err != nil {
		return err
	}
	success, err := flags.GetBool(SuccessKey)
	if err != nil {
		return err
	}
	sn, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return err
	}

	if err := xcall.NewClient(uri).HandleResponse(c.Context(), sn, success); err != nil {
		return err
	}
	log.Root().Info("response recorded",
		log.Uint64("sn", sn),
		log.Bool("success", success),
	)
	return nil
}
