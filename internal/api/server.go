package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/salenest/salenest-api/internal/api/handler"
	"github.com/salenest/salenest-api/internal/api/handler/router"
	"github.com/salenest/salenest-api/internal/config"
	"github.com/salenest/salenest-api/internal/usecases/catalog"
	"github.com/salenest/salenest-api/internal/usecases/selling"
	"github.com/salenest/salenest-api/pkg/log"
	"github.com/salenest/salenest-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	cfg *config.Config,
	catalogService catalog.CatalogService,
	salesService selling.SalesService,
	store handler.Pinger,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address(),
			Handler:           NewHandler(catalogService, salesService, store),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}

	return srv, nil
}

// NewHandler monta o roteador atrás da cadeia global de middlewares
func NewHandler(
	catalogService catalog.CatalogService,
	salesService selling.SalesService,
	store handler.Pinger,
) http.Handler {
	rt := router.New(
		router.WithNotFound(handler.NotFoundHandler()),
		router.WithRoutes(handler.Healthcheck(store)...),
		router.WithRoutes(handler.Catalog(catalogService)...),
		router.WithRoutes(handler.Sales(salesService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-serveErr:
		log.L.WithError(err).Error("Falha no servidor")
		return err
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto da aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", s.shutdownTimeout.String()).Info("Encerrando o servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro ao encerrar o servidor")
		return err
	}

	log.L.Info("Servidor encerrado")
	return nil
}

// Shutdown para de aceitar conexões e aguarda as requisições em andamento
func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
