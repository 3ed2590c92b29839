package operator

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samatva/samatva/internal/validation"
	log "github.com/sirupsen/logrus"
)

type OperatorDTO struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) CurrentOperator(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	op, err := h.service.GetCurrentOperator(r.Context())
	if err != nil {
		http.Error(w, "operator not found", http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(op)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ListOperators(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing operators")
	w.Header().Set("Content-Type", "application/json")
	operators, err := h.service.ListOperators(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]OperatorDTO, 0, len(operators))
	for _, op := range operators {
		dtos = append(dtos, toDTO(op))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateOperator(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating operator")
	w.Header().Set("Content-Type", "application/json")
	var dto OperatorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.service.CreateOperator(r.Context(), fromDTO(dto))
	if err != nil {
		if validation.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteOperator(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting operator")
	vars := mux.Vars(r)
	if err := h.service.DeleteOperator(r.Context(), vars["operatorId"]); err != nil {
		if errors.Is(err, ErrOperatorNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(op Operator) OperatorDTO {
	return OperatorDTO{
		Id:     op.Id,
		Name:   op.Name,
		Email:  op.Email,
		Role:   op.Role,
		Status: op.Status,
	}
}

func fromDTO(dto OperatorDTO) Operator {
	return Operator{
		Id:     dto.Id,
		Name:   dto.Name,
		Email:  dto.Email,
		Role:   dto.Role,
		Status: dto.Status,
	}
}
