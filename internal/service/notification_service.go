package service

import (
	"context"
	"strings"
	"time"

	"yourfuture/internal/authz"
	"yourfuture/internal/logger"
	"yourfuture/internal/metrics"
	"yourfuture/internal/model"
	"yourfuture/internal/repository"
	"yourfuture/internal/serrors"

	"go.uber.org/zap"
)

// NotificationService is the admin-authored per-user message log.
type NotificationService interface {
	// Send returns the stored notification and the recipient's username.
	Send(ctx context.Context, actor *model.Actor, recipientID int64, message string) (NotificationView, string, error)
	ListMine(ctx context.Context, actor *model.Actor) ([]NotificationView, error)
}

type notificationService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	metrics          *metrics.Metrics
	now              func() time.Time
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(userRepo repository.UserRepository, notificationRepo repository.NotificationRepository, m *metrics.Metrics) NotificationService {
	return &notificationService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		metrics:          m,
		now:              time.Now,
	}
}

func (s *notificationService) Send(ctx context.Context, actor *model.Actor, recipientID int64, message string) (NotificationView, string, error) {
	if err := authz.Check(actor, authz.SendNotice, 0); err != nil {
		return NotificationView{}, "", err
	}

	recipient, err := s.userRepo.FindByID(ctx, recipientID)
	if err != nil {
		return NotificationView{}, "", err
	}
	if recipient == nil {
		return NotificationView{}, "", serrors.New(serrors.ErrNotFound, "recipient %d not found", recipientID)
	}
	if recipient.ID == actor.UserID {
		return NotificationView{}, "", serrors.New(serrors.ErrBadRequest, "cannot send a notification to yourself")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return NotificationView{}, "", serrors.New(serrors.ErrBadRequest, "message is empty")
	}

	n := &model.Notification{
		UserID:    recipient.ID,
		AdminID:   actor.UserID,
		Message:   message,
		Timestamp: s.now().UTC(),
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return NotificationView{}, "", err
	}

	s.metrics.NotificationSent()
	logger.Info(ctx, "notification sent", zap.Int64("notification_id", n.ID),
		zap.Int64("admin_id", actor.UserID), zap.Int64("user_id", recipient.ID))
	return notificationView(n), recipient.Username, nil
}

// ListMine returns the caller's notifications, newest first.
func (s *notificationService) ListMine(ctx context.Context, actor *model.Actor) ([]NotificationView, error) {
	if err := authz.Check(actor, authz.Authenticated, 0); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	views := make([]NotificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, notificationView(&notifications[i]))
	}
	return views, nil
}
