// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SoftbearStudios/blast2d/testbed"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		configPath     string
		port           int
		maxConnections int
	)

	flag.StringVar(&configPath, "config", "", "yaml config file")
	flag.IntVar(&port, "port", 0, "http service port, overrides config (negative runs headless)")
	flag.IntVar(&maxConnections, "max-connections", 0, "maximum number of inbound TCP connections, overrides config")
	flag.Parse()

	config := testbed.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = testbed.LoadConfig(configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if port != 0 {
		config.Port = port
	}
	if maxConnections != 0 {
		config.MaxConnections = maxConnections
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := testbed.NewLogger(config.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(config, logger); err != nil {
		logger.Fatal("testbed stopped", zap.Error(err))
	}
}

func run(config testbed.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim, err := testbed.NewSimulation(config, logger)
	if err != nil {
		return err
	}
	hub := testbed.NewHub(sim, logger)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return hub.Run(ctx)
	})

	if config.Port < 0 {
		logger.Info("simulation started headless")
		return group.Wait()
	}

	l, err := net.Listen("tcp", fmt.Sprint(":", config.Port))
	if err != nil {
		stop()
		_ = group.Wait()
		return fmt.Errorf("listen: %w", err)
	}
	l = netutil.LimitListener(l, config.MaxConnections)

	server := &http.Server{
		Handler:           hub.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group.Go(func() error {
		logger.Info("testbed server started", zap.String("addr", l.Addr().String()))
		if err := server.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
