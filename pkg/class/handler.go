package class

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/taxonomy"
	log "github.com/sirupsen/logrus"
)

type ClassDTO struct {
	Id               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	FocusArea        string `json:"focusArea"`
	SubFocusArea     string `json:"subFocusArea"`
	ServiceId        string `json:"serviceId,omitempty"`
	ProviderId       string `json:"providerId"`
	InstructorName   string `json:"instructorName"`
	Recurrence       string `json:"recurrence"`
	Mode             string `json:"mode"`
	Capacity         int    `json:"capacity"`
	SubscriptionType string `json:"subscriptionType"`
	Status           string `json:"status"`
	BasePrice        int64  `json:"basePrice"`
	Currency         string `json:"currency"`
	CreatedBy        string `json:"createdBy"`
	CreatedDate      string `json:"createdDate"`
}

type Handler struct {
	service Service
}

func NewClassHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListClasses(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing classes")
	w.Header().Set("Content-Type", "application/json")
	classes, err := h.service.ListClasses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ClassDTO, 0, len(classes))
	for _, c := range classes {
		dtos = append(dtos, ClassToDTO(c))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating class")
	w.Header().Set("Content-Type", "application/json")
	var dto ClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.service.CreateClass(r.Context(), DTOToClass(dto))
	if err != nil {
		writeClassError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ClassToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating class")
	w.Header().Set("Content-Type", "application/json")
	classId := mux.Vars(r)["classId"]
	var dto ClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != classId {
		http.Error(w, "Invalid class id in request body", http.StatusBadRequest)
		return
	}
	updated, err := h.service.UpdateClass(r.Context(), DTOToClass(dto))
	if err != nil {
		writeClassError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ClassToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting class")
	deleted, err := h.service.DeleteClass(r.Context(), mux.Vars(r)["classId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "class not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeClassError(w http.ResponseWriter, err error) {
	if validation.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrClassNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func ClassToDTO(c Class) ClassDTO {
	return ClassDTO{
		Id:               c.Id,
		Title:            c.Title,
		Description:      c.Description,
		FocusArea:        string(c.FocusArea),
		SubFocusArea:     c.SubFocusArea,
		ServiceId:        c.ServiceId,
		ProviderId:       c.ProviderId,
		InstructorName:   c.InstructorName,
		Recurrence:       c.Recurrence,
		Mode:             string(c.Mode),
		Capacity:         c.Capacity,
		SubscriptionType: c.SubscriptionType,
		Status:           string(c.Status),
		BasePrice:        c.BasePrice,
		Currency:         c.Currency,
		CreatedBy:        c.CreatedBy,
		CreatedDate:      displayDate(c.CreatedAt),
	}
}

func DTOToClass(dto ClassDTO) Class {
	return Class{
		Id:               dto.Id,
		Title:            dto.Title,
		Description:      dto.Description,
		FocusArea:        taxonomy.FocusArea(dto.FocusArea),
		SubFocusArea:     dto.SubFocusArea,
		ServiceId:        dto.ServiceId,
		ProviderId:       dto.ProviderId,
		InstructorName:   dto.InstructorName,
		Recurrence:       dto.Recurrence,
		Mode:             Mode(dto.Mode),
		Capacity:         dto.Capacity,
		SubscriptionType: dto.SubscriptionType,
		Status:           Status(dto.Status),
		BasePrice:        dto.BasePrice,
		Currency:         dto.Currency,
		CreatedBy:        dto.CreatedBy,
	}
}
