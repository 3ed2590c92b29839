package program

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samatva/samatva/internal/rest"
	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/taxonomy"
	log "github.com/sirupsen/logrus"
)

type ProgramDTO struct {
	Id                  string   `json:"id"`
	Title               string   `json:"title"`
	ShortDescription    string   `json:"shortDescription"`
	DetailedDescription string   `json:"detailedDescription"`
	FocusArea           string   `json:"focusArea"`
	SubFocusArea        string   `json:"subFocusArea"`
	Tags                []string `json:"tags"`
	Duration            int      `json:"duration"`
	ProgramType         string   `json:"programType"`
	ProviderId          string   `json:"providerId"`
	Gender              string   `json:"gender"`
	AgeGroup            string   `json:"ageGroup"`
	Geography           string   `json:"geography"`
	Status              string   `json:"status"`
	BasePrice           int64    `json:"basePrice"`
	OfferPrice          *int64   `json:"offerPrice,omitempty"`
	Currency            string   `json:"currency"`
	CreatedBy           string   `json:"createdBy"`
	CreatedDate         string   `json:"createdDate"`
}

type ItemDTO struct {
	Id                 string `json:"id,omitempty"`
	AssetType          string `json:"assetType"`
	AssetId            string `json:"assetId"`
	DayNo              int    `json:"dayNo"`
	SequenceNo         int    `json:"sequenceNo"`
	Title              string `json:"title"`
	IsOptional         bool   `json:"isOptional"`
	CompletionRequired bool   `json:"completionRequired"`
}

type ResolvedItemDTO struct {
	ItemDTO
	AssetTitle string `json:"assetTitle,omitempty"`
}

// SaveProgramDTO is the builder's submit payload: the record plus the full
// working item list.
type SaveProgramDTO struct {
	ProgramDTO
	Items []ItemDTO `json:"items"`
}

type Handler struct {
	service Service
}

func NewProgramHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing programs")
	w.Header().Set("Content-Type", "application/json")
	programs, err := h.service.ListPrograms(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ProgramDTO, 0, len(programs))
	for _, p := range programs {
		dtos = append(dtos, ProgramToDTO(p))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetProgram(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	p, err := h.service.GetProgram(r.Context(), mux.Vars(r)["programId"])
	if err != nil {
		writeSaveError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ProgramToDTO(p)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetProgramItems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.service.GetProgramItems(r.Context(), mux.Vars(r)["programId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ResolvedItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ResolvedItemToDTO(item))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating program")
	w.Header().Set("Content-Type", "application/json")
	var dto SaveProgramDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dto.Id = ""
	saved, err := h.service.SaveProgram(r.Context(), DTOToProgram(dto.ProgramDTO), DTOToItems(dto.Items))
	if err != nil {
		writeSaveError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ProgramToDTO(saved)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating program")
	w.Header().Set("Content-Type", "application/json")
	programId := mux.Vars(r)["programId"]
	var dto SaveProgramDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != programId {
		http.Error(w, "Invalid program id in request body", http.StatusBadRequest)
		return
	}
	saved, err := h.service.SaveProgram(r.Context(), DTOToProgram(dto.ProgramDTO), DTOToItems(dto.Items))
	if err != nil {
		writeSaveError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ProgramToDTO(saved)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting program")
	deleted, err := h.service.DeleteProgram(r.Context(), mux.Vars(r)["programId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "program not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeSaveError(w http.ResponseWriter, err error) {
	if validation.IsValidationError(err) {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	if errors.Is(err, ErrProgramNotFound) {
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

func ProgramToDTO(p Program) ProgramDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProgramDTO{
		Id:                  p.Id,
		Title:               p.Title,
		ShortDescription:    p.ShortDescription,
		DetailedDescription: p.DetailedDescription,
		FocusArea:           string(p.FocusArea),
		SubFocusArea:        p.SubFocusArea,
		Tags:                tags,
		Duration:            p.Duration,
		ProgramType:         string(p.ProgramType),
		ProviderId:          p.ProviderId,
		Gender:              string(p.Gender),
		AgeGroup:            string(p.AgeGroup),
		Geography:           p.Geography,
		Status:              string(p.Status),
		BasePrice:           p.BasePrice,
		OfferPrice:          p.OfferPrice,
		Currency:            p.Currency,
		CreatedBy:           p.CreatedBy,
		CreatedDate:         displayDate(p.CreatedAt),
	}
}

func DTOToProgram(dto ProgramDTO) Program {
	return Program{
		Id:                  dto.Id,
		Title:               dto.Title,
		ShortDescription:    dto.ShortDescription,
		DetailedDescription: dto.DetailedDescription,
		FocusArea:           taxonomy.FocusArea(dto.FocusArea),
		SubFocusArea:        dto.SubFocusArea,
		Tags:                dto.Tags,
		Duration:            dto.Duration,
		ProgramType:         ProgramType(dto.ProgramType),
		ProviderId:          dto.ProviderId,
		Gender:              taxonomy.Gender(dto.Gender),
		AgeGroup:            taxonomy.AgeGroup(dto.AgeGroup),
		Geography:           dto.Geography,
		Status:              Status(dto.Status),
		BasePrice:           dto.BasePrice,
		OfferPrice:          dto.OfferPrice,
		Currency:            dto.Currency,
	}
}

func ItemToDTO(item Item) ItemDTO {
	return ItemDTO{
		Id:                 item.Id,
		AssetType:          string(item.Asset.Type),
		AssetId:            item.Asset.Id,
		DayNo:              item.DayNo,
		SequenceNo:         item.SequenceNo,
		Title:              item.Title,
		IsOptional:         item.IsOptional,
		CompletionRequired: item.CompletionRequired,
	}
}

func ResolvedItemToDTO(item ResolvedItem) ResolvedItemDTO {
	dto := ResolvedItemDTO{ItemDTO: ItemToDTO(item.Item)}
	if item.Asset != nil {
		dto.AssetTitle = item.Asset.Title()
	}
	return dto
}

func DTOToItems(dtos []ItemDTO) []Item {
	items := make([]Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, Item{
			Id:                 dto.Id,
			Asset:              asset.Ref{Type: asset.Type(dto.AssetType), Id: dto.AssetId},
			DayNo:              dto.DayNo,
			SequenceNo:         dto.SequenceNo,
			Title:              dto.Title,
			IsOptional:         dto.IsOptional,
			CompletionRequired: dto.CompletionRequired,
		})
	}
	return items
}
