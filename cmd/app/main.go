package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"pedidos/cmd"
	"pedidos/internal/adapters/in/cli"
	orderhttp "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultOrderTTL = 30 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		orderTTL(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if configs.DemoMode == "true" {
		runDemo(app, logger)
	}

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		DemoMode:        goDotEnvVariable("DEMO_MODE"),
		OrderTTLMinutes: goDotEnvVariable("ORDER_TTL_MINUTES"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func orderTTL(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.OrderTTLMinutes == "" {
		return defaultOrderTTL
	}

	minutes, err := strconv.Atoi(configs.OrderTTLMinutes)
	if err != nil || minutes <= 0 {
		logger.Warn("Invalid ORDER_TTL_MINUTES, using default",
			"value", configs.OrderTTLMinutes, "default", defaultOrderTTL)
		return defaultOrderTTL
	}

	return time.Duration(minutes) * time.Minute
}

func runDemo(app cmd.CompositionRoot, logger *slog.Logger) {
	demo := cli.NewDemo(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddProductCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		logger,
	)

	if err := demo.Run(context.Background()); err != nil {
		logger.Error("Demo walkthrough failed", "error", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := orderhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddProductCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
