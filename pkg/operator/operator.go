package operator

// Operator is a person using the admin console. Every create/update in the
// catalog is attributed to the operator resolved from the request.
type Operator struct {
	Id     string
	Name   string
	Email  string
	Role   string
	Status string
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
