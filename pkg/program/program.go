package program

import (
	"time"

	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/taxonomy"
)

// Program is the top-level catalog entity for a structured multi-day
// offering. Its execution plan and scheduled items live in ProgramPlan and
// ProgramItem.
type Program struct {
	Id                  string
	Title               string
	ShortDescription    string
	DetailedDescription string
	FocusArea           taxonomy.FocusArea
	SubFocusArea        string
	Tags                []string
	// Duration is the length of the program in days and bounds every
	// item's DayNo.
	Duration    int
	ProgramType ProgramType
	ProviderId  string
	Gender      taxonomy.Gender
	AgeGroup    taxonomy.AgeGroup
	Geography   string
	Status      Status
	// BasePrice is in minor currency units. OfferPrice, when set, must be
	// strictly less than BasePrice.
	BasePrice  int64
	OfferPrice *int64
	Currency   string
	CreatedBy  string
	CreatedAt  time.Time
}

type ProgramType string

const (
	TypeSequential ProgramType = "sequential"
	TypeModular    ProgramType = "modular"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusApproved  Status = "approved"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Plan is the single active execution blueprint for a program. At most one
// plan per program holds StatusActive at a time.
type Plan struct {
	Id          string
	ProgramId   string
	PlanType    PlanType
	Title       string
	Description string
	// SequenceOrder is reserved for multi-plan programs; the console always
	// writes 1.
	SequenceOrder int
	Status        PlanStatus
	CreatedAt     time.Time
}

type PlanType string

const (
	PlanDay  PlanType = "Day"
	PlanStep PlanType = "Step"
)

// PlanTypeFor maps a program's type to the plan type persisted with it:
// sequential programs schedule by day, modular programs by step.
func PlanTypeFor(t ProgramType) PlanType {
	if t == TypeModular {
		return PlanStep
	}
	return PlanDay
}

type PlanStatus string

const (
	PlanActive   PlanStatus = "active"
	PlanInactive PlanStatus = "inactive"
)

// Item is one scheduled asset reference within a plan, scoped to a day and an
// intra-day sequence position.
type Item struct {
	Id     string
	PlanId string
	Asset  asset.Ref
	// DayNo is 1-based and must not exceed the program's Duration.
	DayNo              int
	SequenceNo         int
	Title              string
	IsOptional         bool
	CompletionRequired bool
	CreatedBy          string
	CreatedAt          time.Time
}
