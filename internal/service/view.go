package service

import "yourfuture/internal/model"

const missingName = "N/A"

// ProfileView is the JSON shape of the caller's own profile.
type ProfileView struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	FullName   string  `json:"full_name"`
	Telegram   *string `json:"telegram"`
	ResumeLink *string `json:"resume_link"`
}

func profileView(u *model.User) ProfileView {
	return ProfileView{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		FullName:   u.FullName,
		Telegram:   u.Telegram,
		ResumeLink: u.ResumeLink,
	}
}

// StartupView is the JSON shape of a startup. Creator contacts are shown to
// every viewer who can see the startup.
type StartupView struct {
	ID                int64                  `json:"id"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	FundsRaised       map[string]float64     `json:"funds_raised"`
	OpenseaLink       *string                `json:"opensea_link"`
	Status            model.ModerationStatus `json:"status"`
	RejectionReason   *string                `json:"rejection_reason"`
	CreatorUserID     int64                  `json:"creator_user_id"`
	CurrentStage      model.Stage            `json:"current_stage"`
	StageTimeline     model.StageTimeline    `json:"stage_timeline"`
	IsHeld            bool                   `json:"is_held"`
	CreatorUsername   string                 `json:"creator_username"`
	CreatorTelegram   *string                `json:"creator_telegram"`
	CreatorResumeLink *string                `json:"creator_resume_link"`
	CreatedAt         string                 `json:"created_at"`
}

func startupView(_ *model.Actor, s *model.StartupWithCreator) StartupView {
	v := StartupView{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		FundsRaised:     s.FundsRaised,
		OpenseaLink:     s.OpenseaLink,
		Status:          s.Status,
		RejectionReason: s.RejectionReason,
		CreatorUserID:   s.CreatorUserID,
		CurrentStage:    s.CurrentStage,
		StageTimeline:   s.StageTimeline,
		IsHeld:          s.IsHeld,
		CreatorUsername: missingName,
		CreatedAt:       model.FormatUTC(s.CreatedAt),
	}
	if v.FundsRaised == nil {
		v.FundsRaised = map[string]float64{}
	}
	if v.StageTimeline == nil {
		v.StageTimeline = model.StageTimeline{}
	}
	if s.Creator != nil {
		v.CreatorUsername = s.Creator.Username
		v.CreatorTelegram = s.Creator.Telegram
		v.CreatorResumeLink = s.Creator.ResumeLink
	}
	return v
}

// MeetupView is the JSON shape of a meetup.
type MeetupView struct {
	ID              int64                  `json:"id"`
	Title           string                 `json:"title"`
	Date            string                 `json:"date"`
	Description     string                 `json:"description"`
	Link            string                 `json:"link"`
	Status          model.ModerationStatus `json:"status"`
	RejectionReason *string                `json:"rejection_reason"`
	CreatorUserID   int64                  `json:"creator_user_id"`
	CreatorUsername string                 `json:"creator_username"`
}

func meetupView(_ *model.Actor, m *model.MeetupWithCreator) MeetupView {
	v := MeetupView{
		ID:              m.ID,
		Title:           m.Title,
		Date:            model.FormatUTC(m.Date),
		Description:     m.Description,
		Link:            m.Link,
		Status:          m.Status,
		RejectionReason: m.RejectionReason,
		CreatorUserID:   m.CreatorUserID,
		CreatorUsername: missingName,
	}
	if m.CreatorUsername != nil {
		v.CreatorUsername = *m.CreatorUsername
	}
	return v
}

// VacancyView is the JSON shape of a vacancy. Applicants is null unless the
// viewer created the owning startup or is an admin; ApplicantCount is always
// set.
type VacancyView struct {
	ID                int64                  `json:"id"`
	StartupID         int64                  `json:"startup_id"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	Salary            *string                `json:"salary"`
	Requirements      string                 `json:"requirements"`
	Applicants        []model.Applicant      `json:"applicants"`
	ApplicantCount    int                    `json:"applicant_count"`
	Status            model.ModerationStatus `json:"status"`
	RejectionReason   *string                `json:"rejection_reason"`
	CreatorUserID     int64                  `json:"creator_user_id"`
	StartupName       string                 `json:"startup_name"`
	StartupCreatorID  *int64                 `json:"startup_creator_id"`
	IsEffectivelyHeld bool                   `json:"is_effectively_held"`
}

func vacancyView(actor *model.Actor, v *model.VacancyWithStartup) VacancyView {
	out := VacancyView{
		ID:                v.ID,
		StartupID:         v.StartupID,
		Title:             v.Title,
		Description:       v.Description,
		Salary:            v.Salary,
		Requirements:      v.Requirements,
		ApplicantCount:    len(v.Applicants),
		Status:            v.Status,
		RejectionReason:   v.RejectionReason,
		CreatorUserID:     v.CreatorUserID,
		StartupName:       missingName,
		IsEffectivelyHeld: v.EffectivelyHeld(),
	}
	if v.Startup != nil {
		out.StartupName = v.Startup.Name
		creatorID := v.Startup.CreatorUserID
		out.StartupCreatorID = &creatorID
	}
	if canSeeApplicants(actor, v) {
		out.Applicants = v.Applicants
		if out.Applicants == nil {
			out.Applicants = []model.Applicant{}
		}
	}
	return out
}

// NotificationView is the JSON shape of a notification.
type NotificationView struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	AdminID   int64  `json:"admin_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"is_read"`
}

func notificationView(n *model.Notification) NotificationView {
	return NotificationView{
		ID:        n.ID,
		UserID:    n.UserID,
		AdminID:   n.AdminID,
		Message:   n.Message,
		Timestamp: model.FormatUTC(n.Timestamp),
		IsRead:    n.IsRead,
	}
}
