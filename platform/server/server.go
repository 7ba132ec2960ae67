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

// Package server is the platform's HTTP control plane.
package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"codecircle/internal/config"
	"codecircle/pkg/log"
	"codecircle/platform/controller"
	"codecircle/platform/repository"
	"codecircle/platform/server/middleware"
	"codecircle/platform/service"
)

// Server is the main server struct.
type Server struct {
	*gin.Engine
	logger *log.Logger
	listen string
	db     *gorm.DB

	services *config.ServicesConfig
	clients  *service.Clients
	syncer   *service.Syncer

	workspaceController controller.WorkspaceController
	setupController     controller.SetupController
	aiConfigController  controller.AIConfigController
	healthService       *service.HealthService
}

// ServerConfig is the server configuration.
type ServerConfig struct {
	Listen   string
	DB       *gorm.DB
	Services *config.ServicesConfig
}

// NewServer wires repositories, clients, services and controllers and
// registers all routes.
func NewServer(cfg *ServerConfig) (*Server, error) {
	logger := log.GetLogger("server")

	wsRepo := repository.NewWorkspaceRepository(cfg.DB)
	aiRepo := repository.NewAIConfigRepository(cfg.DB)

	clients := service.NewClients(cfg.Services)
	syncer := service.NewSyncer(wsRepo, aiRepo, clients, cfg.Services)
	provisioner := service.NewProvisioner(clients, cfg.Services)

	s := &Server{
		Engine:   gin.New(),
		logger:   logger,
		listen:   cfg.Listen,
		db:       cfg.DB,
		services: cfg.Services,
		clients:  clients,
		syncer:   syncer,

		workspaceController: controller.NewWorkspaceController(
			service.NewWorkspaceService(wsRepo, clients, cfg.Services, syncer)),
		setupController: controller.NewSetupController(
			service.NewSetupService(wsRepo, provisioner)),
		aiConfigController: controller.NewAIConfigController(
			service.NewAIConfigService(aiRepo, wsRepo, syncer)),
		healthService: service.NewHealthService(cfg.Services),
	}

	s.Use(gin.Recovery())
	s.Use(middleware.CORS())
	s.Use(middleware.Metrics())

	s.registerRoutes()
	return s, nil
}

// Listen is the configured bind address.
func (s *Server) Listen() string {
	return s.listen
}

// Shutdown stops the background sync loop.
func (s *Server) Shutdown() {
	s.syncer.Stop()
}
