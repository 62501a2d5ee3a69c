package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
	"github.com/Xausdorf/girocode/internal/usecase/generategirocode"
)

const codeIDHeader = "X-Girocode-Id"

type Handler struct {
	generateUC *generategirocode.UseCase
	logger     *slog.Logger
}

func NewHandler(generateUC *generategirocode.UseCase, logger *slog.Logger) *Handler {
	return &Handler{
		generateUC: generateUC,
		logger:     logger,
	}
}

type GenerateRequest struct {
	Beneficiary string `json:"beneficiary"`
	IBAN        string `json:"iban"`
	Remittance  string `json:"remittance"`
	Amount      string `json:"amount"`
	BIC         string `json:"bic"`
	Reference   string `json:"reference"`
	Charset     string `json:"charset"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	h.generate(w, generategirocode.Input(req))
}

func (h *Handler) HandleGenerateQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.generate(w, generategirocode.Input{
		Beneficiary: q.Get("beneficiary"),
		IBAN:        q.Get("iban"),
		Remittance:  q.Get("remittance"),
		Amount:      q.Get("amount"),
		BIC:         q.Get("bic"),
		Reference:   q.Get("reference"),
		Charset:     q.Get("charset"),
	})
}

func (h *Handler) generate(w http.ResponseWriter, in generategirocode.Input) {
	codeID := uuid.New().String()
	png, err := h.generateUC.ExecuteInput(in)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("girocode generation failed", "code_id", codeID, "error", err)
		}
		writeError(w, status, err.Error())
		return
	}

	h.logger.Info("girocode generated", "code_id", codeID, "charset", in.Charset)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set(codeIDHeader, codeID)
	_, _ = w.Write(png)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, girocode.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, girocode.ErrUnsupportedCharacter),
		errors.Is(err, girocode.ErrPayloadEmpty),
		errors.Is(err, girocode.ErrPayloadTooLarge):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
