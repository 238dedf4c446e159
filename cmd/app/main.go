package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"consolidation/cmd"
	httpin "consolidation/internal/adapters/in/http"
	"consolidation/internal/adapters/out/notifier"
	"consolidation/internal/adapters/out/postgres/consolidationrepo"
	"consolidation/internal/adapters/out/postgres/deliveryrepo"
	"consolidation/internal/adapters/out/postgres/outboxrepo"
	"consolidation/internal/adapters/out/postgres/receiptrepo"
	"consolidation/internal/adapters/out/postgres/requestrepo"
	"consolidation/internal/adapters/out/postgres/sequences"
	"consolidation/internal/generated/servers"
	"consolidation/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	notificationClient, err := notifier.NewClient(configs.NotificationServiceURL)
	if err != nil {
		log.Fatalf("Failed to create notification client: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, notificationClient)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateRelayNotificationsCommandHandler(),
		configs.NotificationRelaySchedule,
		configs.NotificationBatchSize,
		configs.NotificationMaxAttempts,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		NotificationServiceURL:    goDotEnvVariable("NOTIFICATION_SERVICE_URL"),
		NotificationRelaySchedule: envOrDefault("NOTIFICATION_RELAY_SCHEDULE", "*/5 * * * * *"),
		NotificationBatchSize:     envIntOrDefault("NOTIFICATION_BATCH_SIZE", 50),
		NotificationMaxAttempts:   envIntOrDefault("NOTIFICATION_MAX_ATTEMPTS", 5),
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

func envOrDefault(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&consolidationrepo.ConsolidationDTO{},
		&deliveryrepo.DeliveryDTO{},
		&receiptrepo.ReceiptDTO{},
		&requestrepo.RequestDTO{},
		&outboxrepo.OutboxMessageDTO{},
		&sequences.SequenceCounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, "OpenAPI document unavailable")
		}
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	server := httpin.NewServer(app.CreateServerCommands(), app.CreateServerQueries())
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
