package bundle

import "time"

// Bundle groups programs and/or classes into one discounted purchase.
type Bundle struct {
	Id          string
	Name        string
	Description string
	BundleType  BundleType
	// ProgramIds and ClassIds are the included catalog entities. Deleted
	// programs and classes are pruned from these lists via lifecycle
	// events.
	ProgramIds []string
	ClassIds   []string
	// Prices are in minor currency units. OriginalPrice is the sum of the
	// included entities' prices at composition time.
	BundlePrice     int64
	OriginalPrice   int64
	DiscountPercent int
	ValidityDays    int
	Status          Status
	CreatedBy       string
	CreatedAt       time.Time
}

type BundleType string

const (
	TypePrograms BundleType = "programs"
	TypeClasses  BundleType = "classes"
	TypeMixed    BundleType = "mixed"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
