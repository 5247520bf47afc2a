package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/jwt"
	"moodwave/pkg/logger"
	"moodwave/pkg/s3"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	FavoriteGenres []string
	PreferredMoods []string
}

type AuthUseCase interface {
	Register(input RegisterInput, requesterRole string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
	ListUsers(limit, offset int) ([]*entity.User, error)
	UpdateUserRole(userID, role string) (*entity.User, error)
	DeleteUser(userID, requesterID string) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	moodRepo   persistent.MoodRepository
	graph      graph.Adapter
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	moodRepo persistent.MoodRepository,
	graphAdapter graph.Adapter,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		moodRepo:   moodRepo,
		graph:      graphAdapter,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(input RegisterInput, requesterRole string) (*entity.User, string, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		return nil, "", fmt.Errorf("%w: name must be at least 2 characters", entity.ErrValidation)
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, "", fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", entity.ErrValidation)
	}

	role := entity.RoleUser
	if input.Role != "" && input.Role != string(entity.RoleUser) {
		if requesterRole != string(entity.RoleAdmin) {
			return nil, "", fmt.Errorf("%w: only admins can assign elevated roles", entity.ErrForbidden)
		}
		if !entity.ValidRole(input.Role) {
			return nil, "", fmt.Errorf("%w: invalid role %q", entity.ErrValidation, input.Role)
		}
		role = entity.UserRole(input.Role)
	}

	// Self-service signups must pick exactly three preferred moods so the
	// recommendation engine has something to work with from day one.
	if requesterRole != string(entity.RoleAdmin) && len(input.PreferredMoods) != 3 {
		return nil, "", fmt.Errorf("%w: exactly 3 preferred moods are required", entity.ErrValidation)
	}
	for _, moodName := range input.PreferredMoods {
		if _, err := uc.moodRepo.GetByName(moodName); err != nil {
			return nil, "", fmt.Errorf("%w: unknown mood %q", entity.ErrValidation, moodName)
		}
	}

	if _, err := uc.userRepo.GetByEmail(input.Email); err == nil {
		return nil, "", fmt.Errorf("%w: user with this email already exists", entity.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Name:           name,
		Email:          strings.ToLower(input.Email),
		Password:       string(hashedPassword),
		Role:           role,
		IsActive:       true,
		FavoriteGenres: input.FavoriteGenres,
		PreferredMoods: input.PreferredMoods,
		Following:      []string{},
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	if err := uc.graph.MergeNode(context.Background(), graph.LabelUser, user.UserID); err != nil {
		uc.logger.Warn("Graph mirror failed for user %s: %v", user.UserID, err)
	}

	token, err := uc.jwtService.GenerateToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("%w: account is deactivated", entity.ErrForbidden)
	}

	token, err := uc.jwtService.GenerateToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: new password must be at least 6 characters", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", entity.ErrUnauthorized)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to change password")
	}

	user.Password = string(hashedPassword)
	return uc.userRepo.Update(user)
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) ListUsers(limit, offset int) ([]*entity.User, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

func (uc *authUseCase) UpdateUserRole(userID, role string) (*entity.User, error) {
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role %q", entity.ErrValidation, role)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	user.Role = entity.UserRole(role)
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) DeleteUser(userID, requesterID string) error {
	if userID == requesterID {
		return fmt.Errorf("%w: cannot delete your own account", entity.ErrValidation)
	}

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
