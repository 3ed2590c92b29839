package bundle

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samatva/samatva/internal/validation"
	log "github.com/sirupsen/logrus"
)

type BundleDTO struct {
	Id              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	BundleType      string   `json:"bundleType"`
	ProgramIds      []string `json:"programIds"`
	ClassIds        []string `json:"classIds"`
	BundlePrice     int64    `json:"bundlePrice"`
	OriginalPrice   int64    `json:"originalPrice"`
	DiscountPercent int      `json:"discountPercent"`
	ValidityDays    int      `json:"validityDays"`
	Status          string   `json:"status"`
	CreatedBy       string   `json:"createdBy"`
	CreatedDate     string   `json:"createdDate"`
}

type Handler struct {
	service Service
}

func NewBundleHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListBundles(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing bundles")
	w.Header().Set("Content-Type", "application/json")
	bundles, err := h.service.ListBundles(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]BundleDTO, 0, len(bundles))
	for _, b := range bundles {
		dtos = append(dtos, BundleToDTO(b))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateBundle(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating bundle")
	w.Header().Set("Content-Type", "application/json")
	var dto BundleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.service.CreateBundle(r.Context(), DTOToBundle(dto))
	if err != nil {
		writeBundleError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(BundleToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateBundle(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating bundle")
	w.Header().Set("Content-Type", "application/json")
	bundleId := mux.Vars(r)["bundleId"]
	var dto BundleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != bundleId {
		http.Error(w, "Invalid bundle id in request body", http.StatusBadRequest)
		return
	}
	updated, err := h.service.UpdateBundle(r.Context(), DTOToBundle(dto))
	if err != nil {
		writeBundleError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(BundleToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteBundle(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting bundle")
	deleted, err := h.service.DeleteBundle(r.Context(), mux.Vars(r)["bundleId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "bundle not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBundleError(w http.ResponseWriter, err error) {
	if validation.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrBundleNotFound) {
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

func BundleToDTO(b Bundle) BundleDTO {
	programIds := b.ProgramIds
	if programIds == nil {
		programIds = []string{}
	}
	classIds := b.ClassIds
	if classIds == nil {
		classIds = []string{}
	}
	return BundleDTO{
		Id:              b.Id,
		Name:            b.Name,
		Description:     b.Description,
		BundleType:      string(b.BundleType),
		ProgramIds:      programIds,
		ClassIds:        classIds,
		BundlePrice:     b.BundlePrice,
		OriginalPrice:   b.OriginalPrice,
		DiscountPercent: b.DiscountPercent,
		ValidityDays:    b.ValidityDays,
		Status:          string(b.Status),
		CreatedBy:       b.CreatedBy,
		CreatedDate:     displayDate(b.CreatedAt),
	}
}

func DTOToBundle(dto BundleDTO) Bundle {
	return Bundle{
		Id:              dto.Id,
		Name:            dto.Name,
		Description:     dto.Description,
		BundleType:      BundleType(dto.BundleType),
		ProgramIds:      dto.ProgramIds,
		ClassIds:        dto.ClassIds,
		BundlePrice:     dto.BundlePrice,
		OriginalPrice:   dto.OriginalPrice,
		DiscountPercent: dto.DiscountPercent,
		ValidityDays:    dto.ValidityDays,
		Status:          Status(dto.Status),
		CreatedBy:       dto.CreatedBy,
	}
}
