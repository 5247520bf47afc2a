package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/logger"
	"moodwave/pkg/queue"
)

type UserUpdateInput struct {
	Name           *string
	Email          *string
	Role           *string
	IsActive       *bool
	FavoriteGenres []string
	PreferredMoods []string
}

type UserUseCase interface {
	List(limit, offset int) ([]*entity.User, error)
	Get(userID string) (*entity.User, error)
	Update(userID, requesterID, requesterRole string, input UserUpdateInput) (*entity.User, error)
	Delete(userID string) error
	Follow(userID, targetID string) (*entity.User, error)
	Unfollow(userID, targetID string) (*entity.User, error)
}

type userUseCase struct {
	userRepo    persistent.UserRepository
	graph       graph.Adapter
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	graphAdapter graph.Adapter,
	queueClient *queue.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:    userRepo,
		graph:       graphAdapter,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *userUseCase) List(limit, offset int) ([]*entity.User, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

func (uc *userUseCase) Get(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}
	user.Password = ""
	return user, nil
}

func (uc *userUseCase) Update(userID, requesterID, requesterRole string, input UserUpdateInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	isAdmin := requesterRole == string(entity.RoleAdmin)
	if !isAdmin && requesterID != userID {
		return nil, fmt.Errorf("%w: cannot modify another user", entity.ErrForbidden)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < 2 {
			return nil, fmt.Errorf("%w: name must be at least 2 characters", entity.ErrValidation)
		}
		user.Name = name
	}

	// Plain users may only rename themselves; everything else is admin-only.
	if isAdmin {
		if input.Email != nil {
			user.Email = strings.ToLower(*input.Email)
		}
		if input.Role != nil {
			if !entity.ValidRole(*input.Role) {
				return nil, fmt.Errorf("%w: invalid role %q", entity.ErrValidation, *input.Role)
			}
			user.Role = entity.UserRole(*input.Role)
		}
		if input.IsActive != nil {
			user.IsActive = *input.IsActive
		}
		if input.FavoriteGenres != nil {
			user.FavoriteGenres = input.FavoriteGenres
		}
		if input.PreferredMoods != nil {
			user.PreferredMoods = input.PreferredMoods
		}
	} else if input.Email != nil || input.Role != nil || input.IsActive != nil ||
		input.FavoriteGenres != nil || input.PreferredMoods != nil {
		return nil, fmt.Errorf("%w: only the name can be changed", entity.ErrForbidden)
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) Delete(userID string) error {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	if err := uc.userRepo.Delete(userID); err != nil {
		return err
	}

	if err := uc.graph.DeleteNode(context.Background(), graph.LabelUser, userID); err != nil {
		uc.logger.Warn("Graph detach failed for user %s: %v", userID, err)
	}
	return nil
}

func (uc *userUseCase) Follow(userID, targetID string) (*entity.User, error) {
	if userID == targetID {
		return nil, fmt.Errorf("%w: cannot follow yourself", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}
	target, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, targetID)
	}

	if !contains(user.Following, targetID) {
		user.Following = append(user.Following, targetID)
		if err := uc.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	if err := uc.graph.Follow(context.Background(), userID, targetID); err != nil {
		uc.logger.Warn("Graph mirror failed for follow %s -> %s: %v", userID, targetID, err)
	}

	if uc.queueClient != nil {
		task := map[string]interface{}{
			"type":       "new_follower",
			"user_id":    target.UserID,
			"actor_id":   user.UserID,
			"actor_name": user.Name,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Warn("Failed to publish follow notification: %v", err)
		}
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) Unfollow(userID, targetID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	kept := make([]string, 0, len(user.Following))
	for _, id := range user.Following {
		if id != targetID {
			kept = append(kept, id)
		}
	}
	user.Following = kept
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	if err := uc.graph.Unfollow(context.Background(), userID, targetID); err != nil {
		uc.logger.Warn("Graph mirror failed for unfollow %s -> %s: %v", userID, targetID, err)
	}

	user.Password = ""
	return user, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
