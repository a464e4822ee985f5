package main

import (
	"context"
	"fmt"
	"os"

	"shipping/api"
	"shipping/cmd"
	"shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres/historyrepo"
	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/adapters/out/postgres/quoterepo"
	"shipping/internal/adapters/out/postgres/vendorrepo"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Shipping Quotation API
// @version 1.0
// @description Multi-vendor shipping rate quotation and order lifecycle service.
// @BasePath /
func main() {
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	if err := seedRateCatalog(&app); err != nil {
		log.Fatalf("Failed to load rate catalog: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateExpireQuotesCommandHandler(),
		app.CreateReloadRateCatalogCommandHandler(),
		configs.QuoteSweepSchedule,
		configs.CatalogReloadSchedule,
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		QuoteTTL:               goDotEnvVariable("QUOTE_TTL"),
		QuoteVendorTimeout:     goDotEnvVariable("QUOTE_VENDOR_TIMEOUT"),
		QuoteSweepSchedule:     goDotEnvVariable("QUOTE_SWEEP_SCHEDULE"),
		CatalogReloadSchedule:  goDotEnvVariable("CATALOG_RELOAD_SCHEDULE"),
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

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&quoterepo.QuoteDTO{},
		&historyrepo.RecordDTO{},
		&vendorrepo.VendorDTO{},
		&vendorrepo.RateTierDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

// seedRateCatalog fills the in-memory catalog before the first request; the
// reload job keeps it fresh afterwards.
func seedRateCatalog(app *cmd.CompositionRoot) error {
	reloadCmd, err := commands.NewReloadRateCatalogCommand()
	if err != nil {
		return err
	}

	handler := app.CreateReloadRateCatalogCommandHandler()
	return handler.Handle(context.Background(), reloadCmd)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	openapiDoc, err := api.Spec(context.Background())
	if err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}

	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateRequestQuotesCommandHandler(),
		app.CreateBindQuoteCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRecordDeliveryEventCommandHandler(),
		app.CreateGetOrderQuotesQueryHandler(),
		app.CreateGetStatsQueryHandler(),
		openapiDoc,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
