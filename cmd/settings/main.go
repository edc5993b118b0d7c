package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/database"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/metrics"
	"golang.org/x/sync/errgroup"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
	"github.com/wyfcoding/settingsservice/internal/settings/domain"
	"github.com/wyfcoding/settingsservice/internal/settings/infrastructure/messaging"
	"github.com/wyfcoding/settingsservice/internal/settings/infrastructure/persistence/mysql"
	"github.com/wyfcoding/settingsservice/internal/settings/infrastructure/trading"
	httpserver "github.com/wyfcoding/settingsservice/internal/settings/interfaces/http"
)

var configPath = flag.String("config", "configs/settings/config.toml", "config file path")

// Config 服务扩展配置
type Config struct {
	config.Config `mapstructure:",squash"`
	Settings      SettingsConfig `mapstructure:"settings"`
}

// SettingsConfig 配置服务自身的业务参数
type SettingsConfig struct {
	DefaultLegalEntity       string                                  `mapstructure:"default_legal_entity"`
	EventsTopic              string                                  `mapstructure:"events_topic"`
	DefaultTradingInstrument domain.DefaultTradingInstrumentSettings `mapstructure:"default_trading_instrument"`
}

func main() {
	flag.Parse()

	// 1. 配置
	var cfg Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 日志
	logCfg := &logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	// 3. 指标
	metricsImpl := metrics.NewMetrics(cfg.Server.Name)

	// 4. 数据库
	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Environment == "dev" {
		if err := db.RawDB().AutoMigrate(
			&mysql.AssetModel{},
			&mysql.MarketModel{},
			&mysql.AssetPairModel{},
			&mysql.TradingConditionModel{},
			&mysql.TradingInstrumentModel{},
			&mysql.TradingRouteModel{},
			&mysql.ScheduleSettingsModel{},
			&mysql.MaintenanceModeModel{},
		); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Kafka
	kafkaProducer := kafka.NewProducer(&cfg.MessageQueue.Kafka, logger, metricsImpl)
	eventSender := messaging.NewKafkaEventSender(kafkaProducer, cfg.Settings.EventsTopic)

	// 6. 仓储
	assetRepo := mysql.NewAssetRepository(db.RawDB())
	marketRepo := mysql.NewMarketRepository(db.RawDB())
	pairRepo := mysql.NewAssetPairRepository(db.RawDB())
	conditionRepo := mysql.NewTradingConditionRepository(db.RawDB())
	instrumentRepo := mysql.NewTradingInstrumentRepository(db.RawDB())
	routeRepo := mysql.NewTradingRouteRepository(db.RawDB())
	scheduleRepo := mysql.NewScheduleSettingsRepository(db.RawDB())
	maintenanceRepo := mysql.NewMaintenanceModeRepository(db.RawDB())

	// 7. 应用服务
	tradingSvc := trading.NewNoopTradingService()
	assetSvc := application.NewAssetService(assetRepo, eventSender)
	marketSvc := application.NewMarketService(marketRepo, eventSender)
	pairSvc := application.NewAssetPairService(pairRepo, assetRepo, marketRepo, eventSender, cfg.Settings.DefaultLegalEntity)
	conditionSvc := application.NewTradingConditionService(conditionRepo, assetRepo, eventSender, cfg.Settings.DefaultLegalEntity)
	instrumentSvc := application.NewTradingInstrumentService(
		instrumentRepo, conditionRepo, pairRepo, assetRepo, tradingSvc, eventSender,
		cfg.Settings.DefaultTradingInstrument)
	routeSvc := application.NewTradingRouteService(routeRepo, eventSender)
	scheduleSvc := application.NewScheduleSettingsService(scheduleRepo, pairRepo, eventSender)
	maintenanceSvc := application.NewMaintenanceModeService(maintenanceRepo, eventSender)

	// 8. 接口层
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler := httpserver.NewSettingsHandler(
		assetSvc, pairSvc, marketSvc, conditionSvc, instrumentSvc, routeSvc, scheduleSvc, maintenanceSvc)
	handler.RegisterRoutes(r)

	// 9. 启动
	g, ctx := errgroup.WithContext(context.Background())

	addr := fmt.Sprintf(":%d", cfg.Server.HTTP.Port)
	server := &http.Server{Addr: addr, Handler: r}

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down servers...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
