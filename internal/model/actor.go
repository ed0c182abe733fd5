package model

// Actor is the resolved caller of a request. A nil *Actor is anonymous.
type Actor struct {
	UserID int64
	Role   string
}

// IsAdmin reports whether a is an authenticated admin.
func (a *Actor) IsAdmin() bool { return a != nil && a.Role == RoleAdmin }

// Owns reports whether a created the entity owned by ownerID.
func (a *Actor) Owns(ownerID int64) bool { return a != nil && a.UserID == ownerID }

// ListScope narrows a listing query for a particular viewer.
type ListScope struct {
	// AllStatuses disables the status filter (admins).
	AllStatuses bool
	// CreatorID, when non-zero, restricts results to entities created by it.
	CreatorID int64
	// ViewerID, when non-zero, adds the viewer's own pending and rejected
	// entities to the approved ones.
	ViewerID int64
	// ExcludeHeld drops held startups and vacancies of held startups.
	ExcludeHeld bool
}
