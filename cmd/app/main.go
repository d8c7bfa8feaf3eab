package main

import (
	"context"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gasdelivery/cmd"
	httpadapter "gasdelivery/internal/adapters/in/http"
	"gasdelivery/internal/adapters/out/postgres/agentrepo"
	"gasdelivery/internal/adapters/out/postgres/orderrepo"
	"gasdelivery/internal/adapters/out/postgres/subscriptionrepo"
	"gasdelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager, err := jobs.NewJobManager(
		app.CreateGenerateSchedulesCommandHandler(),
		configs.GenerationCronSpec,
		configs.GenerationHorizonDays,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create job manager: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:             goDotEnvVariable("JWT_SECRET"),
		GenerationCronSpec:    goDotEnvVariable("GENERATION_CRON_SPEC"),
		GenerationHorizonDays: goDotEnvIntVariable("GENERATION_HORIZON_DAYS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&subscriptionrepo.SubscriptionDTO{},
		&agentrepo.AgentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		GenerateSchedules: app.CreateGenerateSchedulesCommandHandler(),
		AssignAgent:       app.CreateAssignAgentCommandHandler(),
		AcceptOrder:       app.CreateAcceptOrderCommandHandler(),
		StartDelivery:     app.CreateStartDeliveryCommandHandler(),
		CompleteDelivery:  app.CreateCompleteDeliveryCommandHandler(),
		FailDelivery:      app.CreateFailDeliveryCommandHandler(),
		CancelOrder:       app.CreateCancelOrderCommandHandler(),
		ListOrders:        app.CreateListOrdersQueryHandler(),
		GetOrder:          app.CreateGetOrderQueryHandler(),
		TodayStats:        app.CreateTodayStatsQueryHandler(),
		AgentOrders:       app.CreateGetAgentOrdersQueryHandler(),
		ListAgents:        app.CreateListAgentsQueryHandler(),
	})
	server.RegisterRoutes(e, configs.JWTSecret)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != stdhttp.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
