package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/hr-structure/internal/adapters/httpapi"
	"github.com/ogurasousui/hr-structure/internal/adapters/repository/postgres"
	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
	"github.com/ogurasousui/hr-structure/internal/core/position"
	"github.com/ogurasousui/hr-structure/internal/platform/config"
	pg "github.com/ogurasousui/hr-structure/internal/platform/db/postgres"
	"github.com/ogurasousui/hr-structure/internal/platform/server"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize database pool")
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	companySvc := company.NewService(postgres.NewCompanyRepository(dbPool), nil, txManager)
	areaSvc := area.NewService(postgres.NewAreaRepository(dbPool), nil, txManager)
	departmentSvc := department.NewService(postgres.NewDepartmentRepository(dbPool), nil, txManager)
	positionSvc := position.NewService(postgres.NewPositionRepository(dbPool), nil, txManager)
	treeSvc := orgtree.NewService(postgres.NewTreeRepository(dbPool))

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Logger:      logger,
		AuthToken:   cfg.Server.AuthToken,
		Companies:   companySvc,
		Areas:       areaSvc,
		Departments: departmentSvc,
		Positions:   positionSvc,
		Tree:        treeSvc,
	})

	httpServer := server.New(cfg.Server, router)

	logger.WithField("addr", cfg.Server.ListenAddr).Info("http server listening")

	if err := httpServer.Run(ctx); err != nil {
		logger.WithError(err).Fatal("server stopped with error")
	}
}
