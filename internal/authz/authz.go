// Package authz holds the capability checks every service operation runs
// before touching the store.
package authz

import (
	"yourfuture/internal/model"
	"yourfuture/internal/serrors"
)

// Capability names an action guarded by role or ownership.
type Capability string

const (
	// Authenticated only requires a known caller.
	Authenticated Capability = "authenticated"

	// Moderate covers approve and reject on every moderated kind.
	Moderate   Capability = "moderate"
	ToggleHold Capability = "toggle_hold"
	ListUsers  Capability = "list_users"
	SendNotice Capability = "send_notification"

	// EditStartup covers funds and timeline edits.
	EditStartup Capability = "edit_startup"
	// PostVacancy covers creating a vacancy under a startup.
	PostVacancy Capability = "post_vacancy"
)

var adminOnly = map[Capability]bool{ //nolint: gochecknoglobals
	Moderate:   true,
	ToggleHold: true,
	ListUsers:  true,
	SendNotice: true,
}

var ownerOrAdmin = map[Capability]bool{ //nolint: gochecknoglobals
	EditStartup: true,
	PostVacancy: true,
}

// Check reports whether actor holds c. ownerID is the creator of the target
// entity and is ignored for capabilities that do not depend on ownership.
func Check(actor *model.Actor, c Capability, ownerID int64) error {
	if actor == nil {
		return serrors.New(serrors.ErrUnauthorized, "authentication required")
	}

	switch {
	case adminOnly[c]:
		if !actor.IsAdmin() {
			return serrors.New(serrors.ErrForbidden, "admin role required")
		}
	case ownerOrAdmin[c]:
		if !actor.IsAdmin() && !actor.Owns(ownerID) {
			return serrors.New(serrors.ErrForbidden, "only the creator or an admin can do this")
		}
	case c == Authenticated:
	default:
		return serrors.New(serrors.ErrInternal, "unknown capability %q", c)
	}

	return nil
}
