package domain

type Role string

const (
	// Guest can browse published events and apply for an elevated role.
	RoleGuest Role = "guest"
	// Organizer can create and manage events.
	RoleOrganizer Role = "organizer"
	// Master runs bathhouse sessions, can create events, and reviews
	// role applications.
	RoleMaster Role = "master"
)

func IsValidRole(r string) bool {
	return r == string(RoleGuest) || r == string(RoleOrganizer) || r == string(RoleMaster)
}

// IsApplicableRole reports whether a role can be requested through a role
// application. Guest is the default role and cannot be applied for.
func IsApplicableRole(r string) bool {
	return r == string(RoleOrganizer) || r == string(RoleMaster)
}

// CanCreateEvents gates event creation: organizers and masters only.
func CanCreateEvents(r string) bool {
	return r == string(RoleOrganizer) || r == string(RoleMaster)
}

// CanReviewApplications gates the pending-applications queue.
func CanReviewApplications(r string) bool {
	return r == string(RoleMaster)
}
