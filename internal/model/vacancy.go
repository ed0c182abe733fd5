package model

import "time"

// Applicant is the contact snapshot stored when a user applies.
type Applicant struct {
	UserID     int64  `json:"user_id"`
	Telegram   string `json:"telegram"`
	ResumeLink string `json:"resume_link"`
}

// Vacancy is a job opening under a startup
type Vacancy struct {
	ID            int64
	StartupID     int64
	Title         string
	Description   string
	Salary        *string
	Requirements  string
	Applicants    []Applicant
	Moderation
	CreatorUserID int64
	CreatedAt     time.Time
}

// HasApplicant reports whether userID already applied.
func (v *Vacancy) HasApplicant(userID int64) bool {
	for _, a := range v.Applicants {
		if a.UserID == userID {
			return true
		}
	}

	return false
}

// StartupRef is the part of the owning startup a vacancy needs for
// visibility and serialization.
type StartupRef struct {
	Name          string
	CreatorUserID int64
	Status        ModerationStatus
	IsHeld        bool
}

// VacancyWithStartup is a vacancy joined with its owning startup. Startup is
// nil when the startup no longer exists.
type VacancyWithStartup struct {
	Vacancy
	Startup *StartupRef
}

// EffectivelyHeld reports whether the vacancy is hidden by its startup.
func (v *VacancyWithStartup) EffectivelyHeld() bool {
	return v.Startup == nil || v.Startup.IsHeld
}

// CreateVacancyRequest is the payload of POST /vacancies.
type CreateVacancyRequest struct {
	StartupID    int64   `json:"startup_id" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Salary       *string `json:"salary"`
	Requirements string  `json:"requirements" binding:"required"`
}
