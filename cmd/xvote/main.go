// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/xvote/cmd/respond"
	"github.com/luxfi/xvote/cmd/rollback"
	"github.com/luxfi/xvote/cmd/serve"
	"github.com/luxfi/xvote/cmd/version"
	"github.com/luxfi/xvote/cmd/vote"
	"github.com/luxfi/xvote/cmd/votes"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := &cobra.Command{
		Use:          "xvote",
		Short:        "Cross-chain voting dapp",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		serve.Command(),
		vote.Command(),
		votes.Command(),
		respond.Command(),
		rollback.Command(),
		version.Command(),
	)
	ctx := context.Background()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
