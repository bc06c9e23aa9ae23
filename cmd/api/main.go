package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "ashok-storefront/configs"
	"ashok-storefront/internal/pkg/helper"
	"ashok-storefront/internal/pkg/logger"
	"ashok-storefront/internal/pkg/validation"
	serverApp "ashok-storefront/internal/server"
	catalogService "ashok-storefront/internal/service/catalog"
	orderService "ashok-storefront/internal/service/order"

	"github.com/gin-gonic/gin"
)

// @title           Storefront Catalog API
// @version         1.0
// @description     Prices and WhatsApp order links for the storefront page

// @BasePath        /api
func main() {
	logger.Setup()

	env, err := config.GetEnv()
	if err != nil {
		logger.Error.Println("Error getting environment", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Setup Catalog
	catalog, err := setupCatalog(env)
	if err != nil {
		logger.Error.Println("Error loading catalog", err)
		cancel()
		os.Exit(1)
	}

	// Setup Order links
	order := orderService.NewService(env.OrderConfig(), catalog)

	setupServer(&config.SetupServerDto{
		Ctx:     ctx,
		Cancel:  cancel,
		Env:     env,
		Catalog: catalog,
		Order:   order,
	})
}

func setupCatalog(env *config.Config) (catalogService.IService, error) {
	if env.CatalogPath != "" {
		logger.Info.Printf("Loading catalog from %s", env.CatalogPath)
	} else {
		logger.Info.Println("Loading built-in catalog")
	}

	table, err := catalogService.Open(env.CatalogPath)
	if err != nil {
		return nil, err
	}

	logger.Info.Printf("Catalog loaded with %d products", len(table.Products))
	return catalogService.NewService(table, env.CurrencySymbol), nil
}

func setupServer(payload *config.SetupServerDto) {
	env := payload.Env
	ctx := payload.Ctx
	cancel := payload.Cancel

	defer cancel()

	err := validation.Setup()
	if err != nil {
		logger.Error.Println("Failed to setup validation")
		panic(err)
	}

	if env.AppEnv.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	e := gin.New()
	e.Use(gin.Recovery())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", env.AppPort),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverApp.Setup(e, ctx, payload.Catalog, payload.Order, helper.ParseCommaSeperatedString(env.CorsAllowOrigins))

	go func() {
		logger.HTTP.Println("========= Server Started =========")
		logger.HTTP.Println("=========", env.AppPort, "=========")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Println("Server error:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.HTTP.Println("========= Server Shutting Down =========")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
}
