package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/auth"
	"github.com/tallermanager/workshop-backend/internal/config"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/handlers"
	"github.com/tallermanager/workshop-backend/internal/middleware"
	"github.com/tallermanager/workshop-backend/internal/server"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	log.Info("connected to MongoDB")

	database := client.Database(cfg.MongoDB)
	users := &db.MongoUserCollection{Collection: database.Collection("users")}
	clients := &db.MongoClientCollection{Collection: database.Collection("clients")}
	workshops := &db.MongoWorkshopCollection{Collection: database.Collection("workshops")}
	appointments := &db.MongoAppointmentCollection{Collection: database.Collection("appointments")}
	services := &db.MongoServiceCollection{Collection: database.Collection("services")}
	products := &db.MongoProductCollection{Collection: database.Collection("products")}
	stocks := &db.MongoStockCollection{Collection: database.Collection("stocks")}
	suppliers := &db.MongoSupplierCollection{Collection: database.Collection("suppliers")}
	invoices := &db.MongoInvoiceCollection{Collection: database.Collection("invoices")}
	transactions := &db.MongoTransactionCollection{Collection: database.Collection("transactions")}

	authService := auth.NewService(cfg.JWTSecret, cfg.TokenExpiry)
	authMw := middleware.NewAuthMiddleware(authService)

	router := server.NewRouter(authMw, server.Handlers{
		Auth:         handlers.NewAuthHandler(authService, users),
		Users:        handlers.NewUserHandler(authService, users),
		Appointments: handlers.NewAppointmentHandler(appointments, clients),
		Clients:      handlers.NewClientHandler(clients),
		Workshops:    handlers.NewWorkshopHandler(workshops),
		Services:     handlers.NewServiceHandler(services),
		Products:     handlers.NewProductHandler(products),
		Stocks:       handlers.NewStockHandler(stocks),
		Suppliers:    handlers.NewSupplierHandler(suppliers),
		Invoices:     handlers.NewInvoiceHandler(invoices),
		Transactions: handlers.NewTransactionHandler(transactions),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		os.Exit(1)
	}
}
