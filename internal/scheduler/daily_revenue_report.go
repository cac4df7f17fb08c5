package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/salenest/salenest-api/internal/config"
	"github.com/salenest/salenest-api/internal/domain"
	"github.com/salenest/salenest-api/internal/usecases/selling"
	"github.com/salenest/salenest-api/pkg/log"
	"github.com/salenest/salenest-api/pkg/utils"
)

// DailyRevenueReportService registra no log a quantidade e o faturamento
// das vendas do dia, conforme o cron configurado.
type DailyRevenueReportService struct {
	scheduler   *gocron.Scheduler
	config      config.DailyReport
	sales       selling.SalesService
	running     bool
	mutex       sync.Mutex
	stopOnce    sync.Once
	lastSummary *domain.SalesSummary
	lastRunAt   time.Time
}

func NewDailyRevenueReportService(sales selling.SalesService, cfg config.DailyReport) *DailyRevenueReportService {
	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Relatório diário de faturamento configurado")

	return &DailyRevenueReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		sales:     sales,
	}
}

// Start agenda o relatório e para o agendador quando ctx termina. Não faz
// nada se o relatório estiver desabilitado.
func (s *DailyRevenueReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Relatório diário de faturamento desabilitado na configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule daily revenue report: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop para o agendador e aguarda o relatório em execução terminar
func (s *DailyRevenueReportService) Stop() {
	s.stopOnce.Do(func() {
		log.L.Info("Encerrando o relatório diário de faturamento")
		s.scheduler.Stop()
	})
}

// LastSummary retorna o resumo da última execução com sucesso, nil antes dela
func (s *DailyRevenueReportService) LastSummary() (*domain.SalesSummary, time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastSummary, s.lastRunAt
}

func (s *DailyRevenueReportService) runReport(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		log.L.Info("Relatório diário de faturamento já em execução, ignorando")
		return
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	summary, err := s.sales.TodaySales(ctx)
	if err != nil {
		logger.WithError(err).Error("Falha no relatório diário de faturamento")
		return
	}

	s.mutex.Lock()
	s.lastSummary = summary
	s.lastRunAt = time.Now()
	s.mutex.Unlock()

	logger.WithFields(log.Fields{
		"count":         summary.Count,
		"total_revenue": utils.RoundToCents(summary.TotalRevenue),
	}).Info("Relatório diário de faturamento")
}
