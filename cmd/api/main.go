package main

import (
	"context"

	"github.com/salenest/salenest-api/infrastructure/database/postgres"
	"github.com/salenest/salenest-api/infrastructure/repository"
	"github.com/salenest/salenest-api/internal/api"
	"github.com/salenest/salenest-api/internal/config"
	"github.com/salenest/salenest-api/internal/scheduler"
	"github.com/salenest/salenest-api/internal/usecases/catalog"
	"github.com/salenest/salenest-api/internal/usecases/selling"
	"github.com/salenest/salenest-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		log.L.Warnf("nível de log inválido %q, usando info", cfg.App.LogLevel)
	}
	log.L.Infof("nível de log configurado para %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	itemRepo := repository.NewItemRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)

	catalogService := catalog.NewService(itemRepo)
	salesService := selling.NewService(saleRepo)

	dailyReport := scheduler.NewDailyRevenueReportService(salesService, cfg.DailyReport)
	if err := dailyReport.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o relatório diário de faturamento")
	}

	server, err := api.New(cfg, catalogService, salesService, pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor encerrado com erro")
	}

	// o relatório não pode rodar contra um pool já fechado
	cancel()
	dailyReport.Stop()

	if err := pgConn.Close(); err != nil {
		log.L.WithError(err).Error("Erro ao fechar a conexão com o PostgreSQL")
	}
}

// pgconn cria a conexão com o PostgreSQL e garante o schema
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
