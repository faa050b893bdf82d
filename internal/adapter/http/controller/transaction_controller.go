package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/logger"
)

type TransactionService interface {
	Deposit(ctx context.Context, req models.MovementRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.MovementRequest) (commons.Response[models.TransactionResponse], error)
	GetHistory(ctx context.Context, accountNumber string) (commons.Response[[]models.TransactionResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	depositHandler := http.HandlerFunc(c.deposit)
	withdrawHandler := http.HandlerFunc(c.withdraw)
	historyHandler := http.HandlerFunc(c.history)
	if authMiddleware != nil {
		depositHandler = authMiddleware(depositHandler).ServeHTTP
		withdrawHandler = authMiddleware(withdrawHandler).ServeHTTP
		historyHandler = authMiddleware(historyHandler).ServeHTTP
	}
	mux.Handle("/transactions/deposit", http.HandlerFunc(depositHandler))
	mux.Handle("/transactions/withdraw", http.HandlerFunc(withdrawHandler))
	mux.Handle("/transactions", http.HandlerFunc(historyHandler))
}

func (c *TransactionController) deposit(w http.ResponseWriter, r *http.Request) {
	c.movement(w, r, c.service.Deposit)
}

func (c *TransactionController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.movement(w, r, c.service.Withdraw)
}

func (c *TransactionController) movement(
	w http.ResponseWriter,
	r *http.Request,
	post func(ctx context.Context, req models.MovementRequest) (commons.Response[models.TransactionResponse], error),
) {
	start := time.Now()

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.TransactionResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := post(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) history(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		response := commons.ErrorResponse[[]models.TransactionResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetHistory(r.Context(), r.URL.Query().Get("accountNumber"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
