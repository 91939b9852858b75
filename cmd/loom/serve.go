package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/inspect"
	"github.com/loom-ui/loom/pkg/runtime"
	"github.com/loom-ui/loom/pkg/snapshot"
	"github.com/loom-ui/loom/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo app behind the inspector",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, interval)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "inspector listen address (default from loom.json)")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "demo tick interval")
	return cmd
}

func runServe(addr string, interval time.Duration) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(log)

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.InspectAddress()
	}

	registry := prometheus.NewRegistry()
	feed := inspect.NewFeed(log)
	container := dom.NewElement("main")

	rt, err := runtime.Attach(vdom.Component(demoApp, vdom.Props{"tick": 0}), container,
		runtime.WithLogger(log),
		runtime.WithMetrics(registry),
		runtime.WithObserver(feed.Observer()),
	)
	if err != nil {
		return err
	}
	defer rt.Unmount()

	store, err := snapshotStore(cfg)
	if err != nil {
		return err
	}

	srv := inspect.NewServer(rt,
		inspect.WithLogger(log),
		inspect.WithGatherer(registry),
		inspect.WithFeed(feed),
		inspect.WithSnapshotStore(store),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tick++
				if err := rt.Render(vdom.Component(demoApp, vdom.Props{"tick": tick})); err != nil {
					log.Error("render failed", "error", err)
				}
			}
		}
	}()

	log.Info("demo app mounted", "interval", interval.String())
	return srv.Run(ctx, addr)
}

func snapshotStore(cfg *config.Config) (snapshot.Store, error) {
	if cfg.Snapshots.Bucket != "" {
		client := s3.New(s3.Options{Region: cfg.Snapshots.Region})
		return snapshot.NewS3Store(client, cfg.Snapshots.Bucket, cfg.Snapshots.Prefix), nil
	}
	return snapshot.NewDiskStore(cfg.Snapshots.Dir)
}
