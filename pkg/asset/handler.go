package asset

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

type SessionDTO struct {
	Id                  string   `json:"id"`
	Title               string   `json:"title"`
	ShortDescription    string   `json:"shortDescription"`
	DetailedDescription string   `json:"detailedDescription"`
	FocusArea           string   `json:"focusArea"`
	SubFocusArea        string   `json:"subFocusArea"`
	Tags                []string `json:"tags"`
	ContentType         string   `json:"contentType"`
	Duration            int      `json:"duration"`
	Language            string   `json:"language"`
	ProviderId          string   `json:"providerId"`
	FileUrl             string   `json:"fileUrl"`
	ThumbnailUrl        string   `json:"thumbnailUrl,omitempty"`
	Gender              string   `json:"gender"`
	AgeGroup            string   `json:"ageGroup"`
	Geography           string   `json:"geography"`
	Status              string   `json:"status"`
	IsFree              bool     `json:"isFree"`
	BasePrice           *int64   `json:"basePrice,omitempty"`
	Currency            string   `json:"currency,omitempty"`
	CreatedBy           string   `json:"createdBy"`
	CreatedDate         string   `json:"createdDate"`
}

type ServiceDTO struct {
	Id                  string   `json:"id"`
	Title               string   `json:"title"`
	ShortDescription    string   `json:"shortDescription"`
	DetailedDescription string   `json:"detailedDescription"`
	FocusArea           string   `json:"focusArea"`
	SubFocusArea        string   `json:"subFocusArea"`
	Tags                []string `json:"tags"`
	ServiceType         string   `json:"serviceType"`
	DeliveryChannel     string   `json:"deliveryChannel"`
	DefaultDuration     int      `json:"defaultDuration"`
	DefaultCapacity     int      `json:"defaultCapacity"`
	QualifiedRoles      string   `json:"qualifiedRoles"`
	ProviderId          string   `json:"providerId"`
	CenterId            string   `json:"centerId,omitempty"`
	Gender              string   `json:"gender"`
	AgeGroup            string   `json:"ageGroup"`
	Geography           string   `json:"geography"`
	Status              string   `json:"status"`
	BasePrice           int64    `json:"basePrice"`
	Currency            string   `json:"currency"`
	CreatedBy           string   `json:"createdBy"`
	CreatedDate         string   `json:"createdDate"`
}

type UploadURLDTO struct {
	UploadUrl string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type DownloadURLDTO struct {
	DownloadUrl string `json:"downloadUrl"`
}

type Handler struct {
	catalog Catalog
}

func NewAssetHandler(catalog Catalog) *Handler {
	return &Handler{catalog}
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing sessions")
	w.Header().Set("Content-Type", "application/json")
	sessions, err := h.catalog.ListSessions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, SessionToDTO(s))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating session")
	w.Header().Set("Content-Type", "application/json")
	var dto SessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.catalog.CreateSession(r.Context(), DTOToSession(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SessionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating session")
	w.Header().Set("Content-Type", "application/json")
	sessionId := mux.Vars(r)["sessionId"]
	var dto SessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != sessionId {
		http.Error(w, "Invalid session id in request body", http.StatusBadRequest)
		return
	}
	updated, err := h.catalog.UpdateSession(r.Context(), DTOToSession(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SessionToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting session")
	deleted, err := h.catalog.DeleteSession(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing services")
	w.Header().Set("Content-Type", "application/json")
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ServiceDTO, 0, len(services))
	for _, s := range services {
		dtos = append(dtos, ServiceToDTO(s))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating service")
	w.Header().Set("Content-Type", "application/json")
	var dto ServiceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.catalog.CreateService(r.Context(), DTOToService(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ServiceToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating service")
	w.Header().Set("Content-Type", "application/json")
	serviceId := mux.Vars(r)["serviceId"]
	var dto ServiceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != serviceId {
		http.Error(w, "Invalid service id in request body", http.StatusBadRequest)
		return
	}
	updated, err := h.catalog.UpdateService(r.Context(), DTOToService(dto))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ServiceToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting service")
	deleted, err := h.catalog.DeleteService(r.Context(), mux.Vars(r)["serviceId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "service not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MediaUploadURL hands out a presigned URL so the console can upload session
// media straight to the object store.
func (h *Handler) MediaUploadURL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	filename := r.URL.Query().Get("filename")
	contentType := r.URL.Query().Get("contentType")

	url, key, err := h.catalog.MediaUploadURL(r.Context(), filename, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(UploadURLDTO{UploadUrl: url, ObjectKey: key}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// MediaDownloadURL hands out a presigned URL for streaming or downloading a
// session's media file.
func (h *Handler) MediaDownloadURL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	url, err := h.catalog.MediaDownloadURL(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(DownloadURLDTO{DownloadUrl: url}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	if validation.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrServiceNotFound) {
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

func SessionToDTO(s Session) SessionDTO {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return SessionDTO{
		Id:                  s.Id,
		Title:               s.Title,
		ShortDescription:    s.ShortDescription,
		DetailedDescription: s.DetailedDescription,
		FocusArea:           string(s.FocusArea),
		SubFocusArea:        s.SubFocusArea,
		Tags:                tags,
		ContentType:         string(s.ContentType),
		Duration:            s.Duration,
		Language:            s.Language,
		ProviderId:          s.ProviderId,
		FileUrl:             s.FileUrl,
		ThumbnailUrl:        s.ThumbnailUrl,
		Gender:              string(s.Gender),
		AgeGroup:            string(s.AgeGroup),
		Geography:           s.Geography,
		Status:              string(s.Status),
		IsFree:              s.IsFree,
		BasePrice:           s.BasePrice,
		Currency:            s.Currency,
		CreatedBy:           s.CreatedBy,
		CreatedDate:         displayDate(s.CreatedAt),
	}
}

func DTOToSession(dto SessionDTO) Session {
	return Session{
		Id:                  dto.Id,
		Title:               dto.Title,
		ShortDescription:    dto.ShortDescription,
		DetailedDescription: dto.DetailedDescription,
		FocusArea:           taxonomy.FocusArea(dto.FocusArea),
		SubFocusArea:        dto.SubFocusArea,
		Tags:                dto.Tags,
		ContentType:         ContentType(dto.ContentType),
		Duration:            dto.Duration,
		Language:            dto.Language,
		ProviderId:          dto.ProviderId,
		FileUrl:             dto.FileUrl,
		ThumbnailUrl:        dto.ThumbnailUrl,
		Gender:              taxonomy.Gender(dto.Gender),
		AgeGroup:            taxonomy.AgeGroup(dto.AgeGroup),
		Geography:           dto.Geography,
		Status:              SessionStatus(dto.Status),
		IsFree:              dto.IsFree,
		BasePrice:           dto.BasePrice,
		Currency:            dto.Currency,
		CreatedBy:           dto.CreatedBy,
	}
}

func ServiceToDTO(s Service) ServiceDTO {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return ServiceDTO{
		Id:                  s.Id,
		Title:               s.Title,
		ShortDescription:    s.ShortDescription,
		DetailedDescription: s.DetailedDescription,
		FocusArea:           string(s.FocusArea),
		SubFocusArea:        s.SubFocusArea,
		Tags:                tags,
		ServiceType:         string(s.ServiceType),
		DeliveryChannel:     s.DeliveryChannel,
		DefaultDuration:     s.DefaultDuration,
		DefaultCapacity:     s.DefaultCapacity,
		QualifiedRoles:      s.QualifiedRoles,
		ProviderId:          s.ProviderId,
		CenterId:            s.CenterId,
		Gender:              string(s.Gender),
		AgeGroup:            s.AgeGroup,
		Geography:           s.Geography,
		Status:              string(s.Status),
		BasePrice:           s.BasePrice,
		Currency:            s.Currency,
		CreatedBy:           s.CreatedBy,
		CreatedDate:         displayDate(s.CreatedAt),
	}
}

func DTOToService(dto ServiceDTO) Service {
	return Service{
		Id:                  dto.Id,
		Title:               dto.Title,
		ShortDescription:    dto.ShortDescription,
		DetailedDescription: dto.DetailedDescription,
		FocusArea:           taxonomy.FocusArea(dto.FocusArea),
		SubFocusArea:        dto.SubFocusArea,
		Tags:                dto.Tags,
		ServiceType:         ServiceType(dto.ServiceType),
		DeliveryChannel:     dto.DeliveryChannel,
		DefaultDuration:     dto.DefaultDuration,
		DefaultCapacity:     dto.DefaultCapacity,
		QualifiedRoles:      dto.QualifiedRoles,
		ProviderId:          dto.ProviderId,
		CenterId:            dto.CenterId,
		Gender:              taxonomy.Gender(dto.Gender),
		AgeGroup:            dto.AgeGroup,
		Geography:           dto.Geography,
		Status:              ServiceStatus(dto.Status),
		BasePrice:           dto.BasePrice,
		Currency:            dto.Currency,
		CreatedBy:           dto.CreatedBy,
	}
}
