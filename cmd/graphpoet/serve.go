// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphpoet/internal/observability"
	"github.com/katalvlaran/graphpoet/internal/server"
	"github.com/katalvlaran/graphpoet/internal/watch"
	"github.com/katalvlaran/graphpoet/poet"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve poems over HTTP and reload the corpus when it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log := observability.NewLogger(cfg.Log)
			defer func() { _ = log.Sync() }()

			metrics := observability.NewCollector("graphpoet")
			store := server.NewStore(metrics, log, poet.WithLogger(log))
			if _, err := store.LoadFile(cfg.Corpus); err != nil {
				return err
			}
			srv := server.New(cfg.Server, store, metrics, log)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return srv.Run(ctx) })
			if cfg.Watch.Enabled {
				g.Go(func() error {
					return watch.Corpus(ctx, cfg.Corpus, cfg.Watch.Debounce, func() error {
						_, err := store.LoadFile(cfg.Corpus)
						return err
					}, log)
				})
			}

			log.Info("graphpoet serving",
				zap.String("addr", cfg.Server.Addr),
				zap.String("corpus", cfg.Corpus),
				zap.Bool("watch", cfg.Watch.Enabled),
			)

			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")

	return cmd
}
