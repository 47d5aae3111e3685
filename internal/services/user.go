package services

import (
	"context"

	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/repos"
	"github.com/yungbote/contacts-backend/internal/types"
)

type UserService interface {
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	List(ctx context.Context) ([]*types.User, error)
	UpdateNames(ctx context.Context, email, firstName, lastName string) (*types.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{log: log.With("service", "UserService"), userRepo: userRepo}
}

func (us *userService) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	return us.userRepo.FindByEmail(ctx, email)
}

func (us *userService) List(ctx context.Context) ([]*types.User, error) {
	return us.userRepo.List(ctx)
}

func (us *userService) UpdateNames(ctx context.Context, email, firstName, lastName string) (*types.User, error) {
	user, err := us.userRepo.UpdateNames(ctx, email, firstName, lastName)
	if err != nil {
		return nil, err
	}
	us.log.Debug("User names updated", "user_key", user.UserKey)
	return user, nil
}
