package class

import (
	"time"

	"github.com/samatva/samatva/pkg/taxonomy"
)

// Class is a recurring live offering, usually an instance of a bookable
// service run on a schedule.
type Class struct {
	Id           string
	Title        string
	Description  string
	FocusArea    taxonomy.FocusArea
	SubFocusArea string
	// ServiceId points at the service this class instantiates; empty for
	// standalone classes.
	ServiceId      string
	ProviderId     string
	InstructorName string
	// Recurrence is a free-text schedule, e.g. "Mon/Wed/Fri 07:00".
	Recurrence       string
	Mode             Mode
	Capacity         int
	SubscriptionType string
	Status           Status
	BasePrice        int64
	Currency         string
	CreatedBy        string
	CreatedAt        time.Time
}

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)
