package platform_user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samatva/samatva/internal/validation"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Id           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Mobile       string           `json:"mobile"`
	Role         string           `json:"role"`
	Status       string           `json:"status"`
	PartnerLinks []PartnerLinkDTO `json:"partnerLinks"`
}

type PartnerLinkDTO struct {
	PartnerId        string `json:"partnerId"`
	RelationshipType string `json:"relationshipType"`
}

type Handler struct {
	service Service
}

func NewUserHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing platform users")
	w.Header().Set("Content-Type", "application/json")
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, UserToDTO(u))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating platform user")
	w.Header().Set("Content-Type", "application/json")
	var dto UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.service.CreateUser(r.Context(), DTOToUser(dto))
	if err != nil {
		if validation.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(UserToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating platform user")
	w.Header().Set("Content-Type", "application/json")
	userId := mux.Vars(r)["userId"]

	var dto UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != userId {
		http.Error(w, "Invalid user id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateUser(r.Context(), DTOToUser(dto))
	if err != nil {
		if validation.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(UserToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting platform user")
	deleted, err := h.service.DeleteUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func UserToDTO(u PlatformUser) UserDTO {
	links := make([]PartnerLinkDTO, 0, len(u.PartnerLinks))
	for _, l := range u.PartnerLinks {
		links = append(links, PartnerLinkDTO{PartnerId: l.PartnerId, RelationshipType: string(l.RelationshipType)})
	}
	return UserDTO{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		Mobile:       u.Mobile,
		Role:         string(u.Role),
		Status:       u.Status,
		PartnerLinks: links,
	}
}

func DTOToUser(dto UserDTO) PlatformUser {
	links := make([]PartnerLink, 0, len(dto.PartnerLinks))
	for _, l := range dto.PartnerLinks {
		links = append(links, PartnerLink{PartnerId: l.PartnerId, RelationshipType: RelationshipType(l.RelationshipType)})
	}
	return PlatformUser{
		Id:           dto.Id,
		Name:         dto.Name,
		Email:        dto.Email,
		Mobile:       dto.Mobile,
		Role:         Role(dto.Role),
		Status:       dto.Status,
		PartnerLinks: links,
	}
}
