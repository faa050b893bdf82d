package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/logger"
)

type InterestService interface {
	ApplyMonthlyInterest(ctx context.Context) (commons.Response[models.ApplyInterestResponse], error)
}

type InterestController struct {
	service InterestService
}

func NewInterestController(service InterestService) *InterestController {
	return &InterestController{service: service}
}

func (c *InterestController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.HandlerFunc(c.applyInterest)
	if authMiddleware != nil {
		handler = authMiddleware(handler).ServeHTTP
	}
	mux.Handle("/interest/apply", http.HandlerFunc(handler))
}

func (c *InterestController) applyInterest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.ApplyInterestResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}
	logRequest(r, nil)

	response, err := c.service.ApplyMonthlyInterest(r.Context())
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
