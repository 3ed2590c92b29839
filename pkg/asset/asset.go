package asset

import (
	"time"

	"github.com/samatva/samatva/pkg/taxonomy"
)

// Type discriminates the two kinds of content a program item can reference.
type Type string

const (
	TypeSession Type = "session"
	TypeService Type = "service"
)

func ValidType(t Type) bool {
	return t == TypeSession || t == TypeService
}

// Ref is a typed reference to a session or a service.
type Ref struct {
	Type Type
	Id   string
}

// Resolved carries the asset details for one Ref. Exactly one of Session and
// Service is set, matching Ref.Type.
type Resolved struct {
	Ref     Ref
	Session *Session
	Service *Service
}

// Title returns the display title of whichever variant is present.
func (r Resolved) Title() string {
	switch {
	case r.Session != nil:
		return r.Session.Title
	case r.Service != nil:
		return r.Service.Title
	}
	return ""
}

// Session is a piece of on-demand media content.
type Session struct {
	Id                  string
	Title               string
	ShortDescription    string
	DetailedDescription string
	FocusArea           taxonomy.FocusArea
	SubFocusArea        string
	Tags                []string
	ContentType         ContentType
	// Duration is the playback length in minutes.
	Duration     int
	Language     string
	ProviderId   string
	FileUrl      string
	ThumbnailUrl string
	Gender       taxonomy.Gender
	AgeGroup     taxonomy.AgeGroup
	Geography    string
	Status       SessionStatus
	IsFree       bool
	// BasePrice is in minor currency units; nil when the session is free.
	BasePrice *int64
	Currency  string
	CreatedBy string
	CreatedAt time.Time
}

type ContentType string

const (
	ContentAudio       ContentType = "audio"
	ContentVideo       ContentType = "video"
	ContentText        ContentType = "text"
	ContentInteractive ContentType = "interactive"
)

type SessionStatus string

const (
	SessionDraft     SessionStatus = "draft"
	SessionReview    SessionStatus = "review"
	SessionApproved  SessionStatus = "approved"
	SessionPublished SessionStatus = "published"
	SessionArchived  SessionStatus = "archived"
)

// Service is a bookable live offering: a consultation, class or workshop.
type Service struct {
	Id                  string
	Title               string
	ShortDescription    string
	DetailedDescription string
	FocusArea           taxonomy.FocusArea
	SubFocusArea        string
	Tags                []string
	ServiceType         ServiceType
	DeliveryChannel     string
	// DefaultDuration is in minutes, DefaultCapacity in attendees.
	DefaultDuration int
	DefaultCapacity int
	QualifiedRoles  string
	ProviderId      string
	CenterId        string
	Gender          taxonomy.Gender
	AgeGroup        string
	Geography       string
	Status          ServiceStatus
	BasePrice       int64
	Currency        string
	CreatedBy       string
	CreatedAt       time.Time
}

type ServiceType string

const (
	ServiceTeleConsult ServiceType = "tele-consult"
	ServiceInPerson    ServiceType = "in-person"
	ServiceHybrid      ServiceType = "hybrid"
	ServiceGroupClass  ServiceType = "group-class"
	ServiceWorkshop    ServiceType = "workshop"
)

type ServiceStatus string

const (
	ServiceDefined   ServiceStatus = "defined"
	ServiceValidated ServiceStatus = "validated"
	ServiceApproved  ServiceStatus = "approved"
	ServiceActive    ServiceStatus = "active"
	ServiceRetired   ServiceStatus = "retired"
)
