package partner

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samatva/samatva/internal/validation"
	log "github.com/sirupsen/logrus"
)

type PartnerDTO struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Roles         []string `json:"roles"`
	ContactPerson string   `json:"contactPerson"`
	ContactEmail  string   `json:"contactEmail"`
	ContactPhone  string   `json:"contactPhone"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	Status        string   `json:"status"`
	ParentId      string   `json:"parentId,omitempty"`
}

type Handler struct {
	service Service
}

func NewPartnerHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing partners")
	w.Header().Set("Content-Type", "application/json")

	var (
		partners []Partner
		err      error
	)
	if r.URL.Query().Get("type") == "provider" {
		partners, err = h.service.ListProviders(r.Context())
	} else {
		partners, err = h.service.ListPartners(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]PartnerDTO, 0, len(partners))
	for _, p := range partners {
		dtos = append(dtos, PartnerToDTO(p))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetPartner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	p, err := h.service.GetPartner(r.Context(), mux.Vars(r)["partnerId"])
	if err != nil {
		if errors.Is(err, ErrPartnerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(PartnerToDTO(p)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating partner")
	w.Header().Set("Content-Type", "application/json")
	var dto PartnerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreatePartner(r.Context(), DTOToPartner(dto))
	if err != nil {
		if validation.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(PartnerToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating partner")
	w.Header().Set("Content-Type", "application/json")
	partnerId := mux.Vars(r)["partnerId"]

	var dto PartnerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != partnerId {
		http.Error(w, "Invalid partner id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdatePartner(r.Context(), DTOToPartner(dto))
	if err != nil {
		if validation.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrPartnerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(PartnerToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting partner")
	deleted, err := h.service.DeletePartner(r.Context(), mux.Vars(r)["partnerId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "partner not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func PartnerToDTO(p Partner) PartnerDTO {
	roles := p.Roles
	if roles == nil {
		roles = []string{}
	}
	return PartnerDTO{
		Id:            p.Id,
		Name:          p.Name,
		Type:          string(p.Type),
		Roles:         roles,
		ContactPerson: p.ContactPerson,
		ContactEmail:  p.ContactEmail,
		ContactPhone:  p.ContactPhone,
		City:          p.City,
		State:         p.State,
		Country:       p.Country,
		Status:        p.Status,
		ParentId:      p.ParentId,
	}
}

func DTOToPartner(dto PartnerDTO) Partner {
	return Partner{
		Id:            dto.Id,
		Name:          dto.Name,
		Type:          PartnerType(dto.Type),
		Roles:         dto.Roles,
		ContactPerson: dto.ContactPerson,
		ContactEmail:  dto.ContactEmail,
		ContactPhone:  dto.ContactPhone,
		City:          dto.City,
		State:         dto.State,
		Country:       dto.Country,
		Status:        dto.Status,
		ParentId:      dto.ParentId,
	}
}
