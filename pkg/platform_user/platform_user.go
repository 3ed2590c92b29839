package platform_user

// PlatformUser is an end user or staff member of the marketplace itself,
// as managed from the console's user administration screen.
type PlatformUser struct {
	Id           string
	Name         string
	Email        string
	Mobile       string
	Role         Role
	Status       string
	PartnerLinks []PartnerLink
}

// PartnerLink associates a user with a partner organization in a given
// capacity. The link set is replaced as a whole whenever the user is saved.
type PartnerLink struct {
	PartnerId        string
	RelationshipType RelationshipType
}

type Role string

const (
	RoleSuperAdmin       Role = "super_admin"
	RoleProviderAdmin    Role = "provider_admin"
	RoleInstitutionAdmin Role = "institution_admin"
	RoleContentAuthor    Role = "content_author"
	RoleInstructor       Role = "instructor"
	RoleConsultant       Role = "consultant"
	RoleEndUser          Role = "end_user"
)

type RelationshipType string

const (
	RelationshipAdmin      RelationshipType = "admin"
	RelationshipMember     RelationshipType = "member"
	RelationshipInstructor RelationshipType = "instructor"
	RelationshipConsultant RelationshipType = "consultant"
	RelationshipAuthor     RelationshipType = "author"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleProviderAdmin, RoleInstitutionAdmin,
		RoleContentAuthor, RoleInstructor, RoleConsultant, RoleEndUser:
		return true
	}
	return false
}
