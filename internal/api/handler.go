package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

// @title Kickserv to HubSpot Proxy API
// @version 1.0
// @description Pushes field-service jobs into the CRM as deals with linked companies and contacts
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

const (
	msgRunning       = "✅ Kickserv → HubSpot Proxy is running"
	msgDealSent      = "✅ Deal sent to HubSpot!"
	msgMissingFields = "Missing job number or deal name."
	msgInvalidJSON   = "Invalid JSON body."
	msgInvalidTotal  = "Job total must be a number."
	msgCRMError      = "HubSpot Error"
)

type Service interface {
	SyncDeal(ctx context.Context, job entity.Job) (entity.SyncResult, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type SendDealResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	DealID  string `json:"dealId"`
	Created bool   `json:"created"`
}

// SendDeal upserts the job as a deal
// @Summary Send deal
// @Description Finds or creates the company, parent company and contact, upserts the deal by job number and links them
// @Tags deals
// @Accept json
// @Produce json
// @Param SendDealRequest body SendDealRequest true "Job"
// @Success 200 {object} SendDealResponse
// @Failure 400 {object} ErrorResponse "Missing job number or deal name"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 500 {object} ErrorResponse "CRM error"
// @Router /send [post]
// @Security ApiKeyAuth
func (h *Handler) SendDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SendDealRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, msgInvalidJSON)
		return
	}

	job, err := req.Job()
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, msgInvalidTotal)
		return
	}

	res, err := h.s.SyncDeal(ctx, job)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, msgMissingFields)
		default:
			SendJSONErrDetails(ctx, w, http.StatusInternalServerError, err, msgCRMError, errorDetails(err))
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, SendDealResponse{
		Success: true,
		Message: msgDealSent,
		DealID:  res.DealID,
		Created: res.DealCreated,
	})
}

// errorDetails returns the CRM answer when there is one, the error text otherwise.
func errorDetails(err error) any {
	var remoteErr *entity.RemoteError

	if errors.As(err, &remoteErr) && len(remoteErr.Body) > 0 {
		if json.Valid(remoteErr.Body) {
			return json.RawMessage(remoteErr.Body)
		}

		return string(remoteErr.Body)
	}

	return err.Error()
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "✅ Kickserv → HubSpot Proxy is running"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	_, err := w.Write([]byte(msgRunning))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "write health response")
		return
	}
}
