// Copyright 2026 The CodeCircle Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package platform boots the workspace provisioning control plane.
package platform

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"codecircle/internal/config"
	"codecircle/pkg/log"
	"codecircle/platform/database"
	"codecircle/platform/server"
)

// StartOptions override the configured defaults from the command line.
type StartOptions struct {
	Env      string
	Listen   string
	LogLevel string
}

// Start runs the platform server until SIGINT/SIGTERM, then shuts down
// gracefully: the HTTP listener drains in-flight requests and the sync loop
// gets a short window to finish queued pushes.
func Start(opts StartOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.InitConfig(opts.Env)

	logLevel := cfg.App.LogLevel
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	log.Loglevel = log.SetLogLevel(logLevel)
	logger := log.GetLogger("platform")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return err
	}

	listen := cfg.App.Listen
	if opts.Listen != "" {
		listen = opts.Listen
	}

	hs, err := server.NewServer(&server.ServerConfig{
		Listen:   listen,
		DB:       db,
		Services: &cfg.Services,
	})
	if err != nil {
		return err
	}
	defer hs.Shutdown()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		srv := &http.Server{
			Addr:    hs.Listen(),
			Handler: hs,
		}

		go func() {
			<-ctx.Done()
			logger.Infof("shutting down API server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		logger.Infof("platform listening on %s", hs.Listen())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("platform exited with error: %v", err)
		return err
	}
	return nil
}
