// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/xvote/dapp"
	"github.com/luxfi/xvote/dapp/metrics"
	"github.com/luxfi/xvote/xcall"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var (
	dappPrefix  = []byte("dapp")
	xcallPrefix = []byte("xcall")
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serves a voting dapp and a local xcall gateway over JSON-RPC",
		RunE:  serveFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func serveFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, config, log.Root())
}

// Run serves until ctx is cancelled.
func Run(ctx context.Context, config *Config, logger log.Logger) error {
	handler, err := NewHandler(config, logger, metric.NewRegistry())
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", net.JoinHostPort(config.HTTPHost, strconv.Itoa(int(config.HTTPPort))))
	if err != nil {
		return err
	}
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	logger.Info("serving",
		log.Stringer("address", listener.Addr()),
		log.Stringer("dapp", config.Dapp.Address),
		log.String("destination", config.Dapp.Destination),
		log.Stringer("xcall", config.XCall.BTPAddress()),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NewHandler wires a dapp to an in-process gateway over a fresh in-memory
// ledger and routes both JSON-RPC services.
func NewHandler(config *Config, logger log.Logger, registry metric.Registry) (http.Handler, error) {
	db := memdb.New()

	gateway, err := xcall.NewLocalGateway(config.XCall, prefixdb.New(xcallPrefix, db), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	dappMetrics, err := metrics.New(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	d, err := dapp.New(config.Dapp, prefixdb.New(dappPrefix, db), gateway, logger, dappMetrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create dapp: %w", err)
	}
	gateway.Register(d.Address(), d)

	dappHandler, err := dapp.NewService(d, logger)
	if err != nil {
		return nil, err
	}
	gatewayHandler, err := xcall.NewService(gateway, logger)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.Handle("/ext/"+dapp.ServiceName, dappHandler)
	router.Handle("/ext/"+xcall.ServiceName, gatewayHandler)
	return router, nil
}
