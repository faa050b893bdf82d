package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/banca-ledger/internal/adapter/http/controller"
	"github.com/api-sage/banca-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/banca-ledger/internal/adapter/http/router"
	"github.com/api-sage/banca-ledger/internal/adapter/repository/sqlite"
	"github.com/api-sage/banca-ledger/internal/config"
	"github.com/api-sage/banca-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rate, err := cfg.InterestRate()
	if err != nil {
		log.Fatalf("parse interest rate: %v", err)
	}

	client, err := sqlite.NewClient(sqlite.Config{Path: cfg.DatabasePath})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer client.Close()

	customerRepo := sqlite.NewCustomerRepository(client)
	accountRepo := sqlite.NewAccountRepository(client)
	transactionRepo := sqlite.NewTransactionRepository(client)

	customerService := services.NewCustomerService(customerRepo)
	accountService := services.NewAccountService(accountRepo, customerRepo)
	transactionService := services.NewTransactionService(accountRepo, transactionRepo)
	interestService := services.NewInterestService(accountRepo, rate)

	mux := router.New(
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
		controller.NewCustomerController(customerService),
		controller.NewAccountController(accountService),
		controller.NewTransactionController(transactionService),
		controller.NewInterestController(interestService),
	)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: middleware.WithRequestID(mux),
	}

	go func() {
		log.Printf("starting banca ledger server on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server exited")
}
