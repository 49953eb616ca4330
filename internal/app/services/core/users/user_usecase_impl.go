package users

import (
	"context"
	"fmt"
	"mindfit-service/internal/app/config"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
	"mindfit-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var allowedProfilePictureFormats = []string{"jpg", "jpeg", "png", "webp"}

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	StorageService contracts.StorageService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			StorageService: storageService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	user, err := uc.sessionUser(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.mapUserToProfileResponse(ctx, user)
}

func (uc *userUsecase) UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	user, err := uc.sessionUser(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if request.Fullname != "" {
		user.Fullname = request.Fullname
	}
	if request.Bio != "" {
		user.Bio = request.Bio
	}
	if request.BirthDate != "" {
		user.BirthDate = request.BirthDate
	}

	if len(request.ProfilePictureData) > 0 {
		objectKey := fmt.Sprintf("profile-pictures/%s.%s", user.ID, request.ProfilePictureExtension)
		contentType := fmt.Sprintf("image/%s", request.ProfilePictureExtension)
		if err := uc.StorageService.UploadObject(ctx, objectKey, request.ProfilePictureData, contentType); err != nil {
			return nil, err
		}
		user.ProfilePictureKey = objectKey
	}

	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return uc.mapUserToProfileResponse(ctx, user)
}

func (uc *userUsecase) DeactivateUserBySession(ctx context.Context, sessionData string) error {
	user, err := uc.sessionUser(ctx, sessionData)
	if err != nil {
		return err
	}

	user.Active = false
	now := time.Now()
	user.UpdatedAt = now
	user.DeletedAt = &now
	return uc.UserRepository.UpdateUser(ctx, user)
}

func (uc *userUsecase) sessionUser(ctx context.Context, sessionData string) (*models.User, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

func (uc *userUsecase) mapUserToProfileResponse(ctx context.Context, user *models.User) (*responses.UserProfile, error) {
	profile := &responses.UserProfile{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Fullname:  user.Fullname,
		Bio:       user.Bio,
		BirthDate: user.BirthDate,
	}

	if user.ProfilePictureKey != "" {
		expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryInHour) * time.Hour
		url, err := uc.StorageService.GetPresignedURL(ctx, user.ProfilePictureKey, expiry)
		if err != nil {
			// A broken presign must not take the whole profile down.
			uc.Log.Warn("failed to presign profile picture URL", zap.String("user_id", user.ID), zap.Error(err))
		} else {
			profile.ProfilePictureURL = url
		}
	}

	return profile, nil
}
