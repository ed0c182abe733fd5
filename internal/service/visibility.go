package service

import (
	"yourfuture/internal/model"
	"yourfuture/internal/serrors"
)

// listScope narrows a listing for actor. mineOnly restricts it to the
// actor's own entities and needs a known actor. Non-admins never see held
// startups or the vacancies under them.
func listScope(actor *model.Actor, mineOnly bool) (model.ListScope, error) {
	if actor == nil {
		if mineOnly {
			return model.ListScope{}, serrors.New(serrors.ErrBadRequest, "mine_only requires authentication")
		}
		return model.ListScope{ExcludeHeld: true}, nil
	}

	if actor.IsAdmin() {
		scope := model.ListScope{AllStatuses: true}
		if mineOnly {
			scope.CreatorID = actor.UserID
		}
		return scope, nil
	}

	scope := model.ListScope{ExcludeHeld: true}
	if mineOnly {
		scope.CreatorID = actor.UserID
	} else {
		scope.ViewerID = actor.UserID
	}
	return scope, nil
}

// moderationVisible is rule 3: approved entities are public, pending and
// rejected ones are visible to their creator only.
func moderationVisible(actor *model.Actor, status model.ModerationStatus, creatorID int64) bool {
	if status == model.StatusApproved {
		return true
	}
	return actor.Owns(creatorID) && (status == model.StatusPending || status == model.StatusRejected)
}

func startupVisible(actor *model.Actor, s *model.Startup) bool {
	if actor.IsAdmin() {
		return true
	}
	if s.IsHeld {
		return false
	}
	return moderationVisible(actor, s.Status, s.CreatorUserID)
}

func meetupVisible(actor *model.Actor, m *model.Meetup) bool {
	if actor.IsAdmin() {
		return true
	}
	return moderationVisible(actor, m.Status, m.CreatorUserID)
}

// vacancyVisible counts a vacancy as approved only while its startup is
// approved too.
func vacancyVisible(actor *model.Actor, v *model.VacancyWithStartup) bool {
	if actor.IsAdmin() {
		return true
	}
	if v.EffectivelyHeld() {
		return false
	}
	if v.Status == model.StatusApproved && v.Startup.Status == model.StatusApproved {
		return true
	}
	return actor.Owns(v.CreatorUserID) && (v.Status == model.StatusPending || v.Status == model.StatusRejected)
}

// canSeeApplicants reports whether actor may read the applicant list of v.
func canSeeApplicants(actor *model.Actor, v *model.VacancyWithStartup) bool {
	if actor.IsAdmin() {
		return true
	}
	return v.Startup != nil && actor.Owns(v.Startup.CreatorUserID)
}
