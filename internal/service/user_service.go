package service

import (
	"context"

	"yourfuture/internal/authz"
	"yourfuture/internal/logger"
	"yourfuture/internal/model"
	"yourfuture/internal/repository"
	"yourfuture/internal/serrors"

	"go.uber.org/zap"
)

// UserService manages profiles and the admin user directory.
type UserService interface {
	GetProfile(ctx context.Context, actor *model.Actor) (ProfileView, error)
	// UpdateProfile applies the fields present in req. The boolean is false
	// when req carried nothing to update.
	UpdateProfile(ctx context.Context, actor *model.Actor, req model.UpdateProfileRequest) (ProfileView, bool, error)
	ListUsers(ctx context.Context, actor *model.Actor) ([]model.UserSummary, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) current(ctx context.Context, actor *model.Actor) (*model.User, error) {
	if err := authz.Check(actor, authz.Authenticated, 0); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serrors.New(serrors.ErrNotFound, "user not found")
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, actor *model.Actor) (ProfileView, error) {
	user, err := s.current(ctx, actor)
	if err != nil {
		return ProfileView{}, err
	}
	return profileView(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *model.Actor, req model.UpdateProfileRequest) (ProfileView, bool, error) {
	user, err := s.current(ctx, actor)
	if err != nil {
		return ProfileView{}, false, err
	}
	if req.Empty() {
		return profileView(user), false, nil
	}

	if req.FullName.Set {
		user.FullName = user.Username
		if name := req.FullName.Trimmed(); name != nil {
			user.FullName = *name
		}
	}

	if req.Telegram.Set {
		user.Telegram = nil
		if tg := req.Telegram.Trimmed(); tg != nil {
			handle := model.NormalizeTelegram(*tg)
			holder, err := s.userRepo.FindByTelegram(ctx, handle)
			if err != nil {
				return ProfileView{}, false, err
			}
			if holder != nil && holder.ID != user.ID {
				return ProfileView{}, false, serrors.New(serrors.ErrConflict, "telegram handle is already taken")
			}
			user.Telegram = &handle
		}
	}

	if req.ResumeLink.Set {
		link := req.ResumeLink.Trimmed()
		if link != nil && !model.IsValidURL(*link) {
			return ProfileView{}, false, serrors.New(serrors.ErrBadRequest, "invalid resume link")
		}
		user.ResumeLink = link
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return ProfileView{}, false, err
	}

	logger.Info(ctx, "profile updated", zap.Int64("user_id", user.ID))
	return profileView(user), true, nil
}

// ListUsers returns every user except the calling admin.
func (s *userService) ListUsers(ctx context.Context, actor *model.Actor) ([]model.UserSummary, error) {
	if err := authz.Check(actor, authz.ListUsers, 0); err != nil {
		return nil, err
	}
	return s.userRepo.ListExcept(ctx, actor.UserID)
}
