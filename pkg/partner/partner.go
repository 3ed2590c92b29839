package partner

// Partner is a business organization listed in the directory: a content
// provider, an institution buying for its members, a physical center, or a
// combination ("dual").
type Partner struct {
	Id            string
	Name          string
	Type          PartnerType
	Roles         []string
	ContactPerson string
	ContactEmail  string
	ContactPhone  string
	City          string
	State         string
	Country       string
	Status        string
	// ParentId links a center to its owning organization. Empty when top-level.
	ParentId string
}

type PartnerType string

const (
	TypeProvider    PartnerType = "provider"
	TypeInstitution PartnerType = "institution"
	TypeCenter      PartnerType = "center"
	TypeDual        PartnerType = "dual"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// IsProvider reports whether the partner can be assigned as the provider of a
// catalog entity.
func (p Partner) IsProvider() bool {
	return p.Type == TypeProvider || p.Type == TypeDual
}
