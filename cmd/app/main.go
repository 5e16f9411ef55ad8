package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courierdesk/cmd"
	httpserver "courierdesk/internal/adapters/in/http"
	"courierdesk/internal/adapters/out/auth"
	"courierdesk/internal/adapters/out/postgres/clientrepo"
	"courierdesk/internal/adapters/out/postgres/courierrepo"
	"courierdesk/internal/adapters/out/postgres/invoicerepo"
	"courierdesk/internal/adapters/out/postgres/shipmentrepo"
	"courierdesk/internal/adapters/out/warehouse"
	"courierdesk/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs := getConfigs(logger)

	gormDB, err := openDB(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	root := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	jobManager := jobs.NewJobManager(
		root.CreateDispatchPendingCommandHandler(),
		root.CreateMarkOverdueInvoicesCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file found, relying on environment variables")
	}

	return cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		WarehouseBaseURL: os.Getenv("WAREHOUSE_BASE_URL"),
		WarehouseToken:   os.Getenv("WAREHOUSE_TOKEN"),
		AuthBaseURL:      os.Getenv("AUTH_BASE_URL"),
	}
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
		&courierrepo.CourierDTO{},
		&clientrepo.ClientDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.LineItemDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(root cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	var warehouseClient *warehouse.Client
	if configs.WarehouseBaseURL != "" {
		var err error
		warehouseClient, err = root.CreateWarehouseClient(configs)
		if err != nil {
			logger.Error("Failed to create warehouse client", "error", err)
			os.Exit(1)
		}
	}

	var authClient *auth.Client
	if configs.AuthBaseURL != "" {
		var err error
		authClient, err = root.CreateAuthClient(configs)
		if err != nil {
			logger.Error("Failed to create auth client", "error", err)
			os.Exit(1)
		}
	}

	srv := httpserver.NewServer(httpserver.Handlers{
		CreateShipment:      root.CreateCreateShipmentCommandHandler(),
		TransitionShipment:  root.CreateTransitionShipmentCommandHandler(),
		AppendTrackingEvent: root.CreateAppendTrackingEventCommandHandler(),
		AssignCourier:       root.CreateAssignCourierCommandHandler(),
		DispatchPending:     root.CreateDispatchPendingCommandHandler(),
		RecordDelivery:      root.CreateRecordDeliveryCommandHandler(),
		CreateCourier:       root.CreateCreateCourierCommandHandler(),
		SetCourierStatus:    root.CreateSetCourierStatusCommandHandler(),
		CreateClient:        root.CreateCreateClientCommandHandler(),
		SetClientStatus:     root.CreateSetClientStatusCommandHandler(),
		CreateInvoice:       root.CreateCreateInvoiceCommandHandler(),
		AddInvoiceLine:      root.CreateAddInvoiceLineCommandHandler(),
		UpdateInvoiceLine:   root.CreateUpdateInvoiceLineCommandHandler(),
		RemoveInvoiceLine:   root.CreateRemoveInvoiceLineCommandHandler(),
		TransitionInvoice:   root.CreateTransitionInvoiceCommandHandler(),
		ListShipments:       root.CreateListShipmentsQueryHandler(),
		ListCouriers:        root.CreateListCouriersQueryHandler(),
		ListClients:         root.CreateListClientsQueryHandler(),
		ListInvoices:        root.CreateListInvoicesQueryHandler(),
		GetTimeline:         root.CreateGetTimelineQueryHandler(),
		Warehouse:           warehouseClient,
		Auth:                authClient,
	})
	srv.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("Web server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}
