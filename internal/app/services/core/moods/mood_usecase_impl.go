package moods

import (
	"context"
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

type moodUsecase struct {
	MoodRepository             contracts.MoodRepository
	EmergencyContactRepository contracts.EmergencyContactRepository
	NotificationPublisher      contracts.NotificationPublisher
	SessionService             contracts.SessionService
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
}

var (
	moodUsecaseInstance contracts.MoodUsecase
	onceMoodUsecase     sync.Once
)

func NewMoodUsecase(
	moodRepository contracts.MoodRepository,
	emergencyContactRepository contracts.EmergencyContactRepository,
	notificationPublisher contracts.NotificationPublisher,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MoodUsecase {
	onceMoodUsecase.Do(func() {
		moodUsecaseInstance = &moodUsecase{
			MoodRepository:             moodRepository,
			EmergencyContactRepository: emergencyContactRepository,
			NotificationPublisher:      notificationPublisher,
			SessionService:             sessionService,
			InternalConfig:             internalConfig,
			Log:                        logger,
		}
	})
	return moodUsecaseInstance
}

func (uc *moodUsecase) CreateMood(ctx context.Context, sessionData string, request *requests.CreateMood) (*responses.Mood, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	mood := &models.Mood{
		UserID: session.UserID,
		Scale:  request.Scale,
		Note:   request.Note,
		Tags:   request.Tags,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	moodID, err := uc.MoodRepository.CreateMood(ctx, mood)
	if err != nil {
		return nil, err
	}
	mood.ID = moodID

	if mood.Scale <= uc.InternalConfig.App.CrisisScaleThreshold {
		uc.publishCrisisAlert(ctx, session, mood)
	}

	return mapMoodToResponse(mood), nil
}

func (uc *moodUsecase) ListMoods(ctx context.Context, sessionData string, request *requests.ListMoods) ([]responses.Mood, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	from, err := parseDateBound(request.FromDate, false)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	to, err := parseDateBound(request.ToDate, true)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	moods, err := uc.MoodRepository.FindAllByUserID(ctx, session.UserID, from, to)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Mood, 0, len(moods))
	for i := range moods {
		response = append(response, *mapMoodToResponse(&moods[i]))
	}
	return response, nil
}

func (uc *moodUsecase) FindMoodByID(ctx context.Context, sessionData, moodID string) (*responses.Mood, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	mood, err := uc.MoodRepository.FindByIDAndUserID(ctx, moodID, session.UserID)
	if err != nil {
		return nil, err
	}
	if mood == nil {
		return nil, exceptions.ErrMoodEntryNotFound(nil)
	}
	return mapMoodToResponse(mood), nil
}

func (uc *moodUsecase) UpdateMood(ctx context.Context, sessionData string, request *requests.UpdateMood) (*responses.Mood, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existing, err := uc.MoodRepository.FindByIDAndUserID(ctx, request.MoodID, session.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrMoodEntryNotFound(nil)
	}

	existing.Scale = request.Scale
	existing.Note = request.Note
	existing.Tags = request.Tags
	existing.UpdatedAt = time.Now()

	if err := uc.MoodRepository.UpdateMood(ctx, existing); err != nil {
		return nil, err
	}

	if existing.Scale <= uc.InternalConfig.App.CrisisScaleThreshold {
		uc.publishCrisisAlert(ctx, session, existing)
	}

	return mapMoodToResponse(existing), nil
}

func (uc *moodUsecase) DeleteMoodByID(ctx context.Context, sessionData, moodID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	existing, err := uc.MoodRepository.FindByIDAndUserID(ctx, moodID, session.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrMoodEntryNotFound(nil)
	}
	return uc.MoodRepository.DeleteByIDAndUserID(ctx, moodID, session.UserID)
}

// publishCrisisAlert enqueues a job for the notification worker. A publish
// failure is logged but never surfaces to the user logging their mood.
func (uc *moodUsecase) publishCrisisAlert(ctx context.Context, session *models.Session, mood *models.Mood) {
	contacts, err := uc.EmergencyContactRepository.FindAllByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("failed to load emergency contacts for crisis alert",
			zap.String("user_id", session.UserID), zap.Error(err))
		return
	}

	contactIDs := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		contactIDs = append(contactIDs, contact.ID)
	}

	job := &contracts.CrisisAlertJob{
		UserID:    session.UserID,
		Username:  session.Username,
		MoodID:    mood.ID,
		Scale:     mood.Scale,
		ContactID: contactIDs,
	}

	if err := uc.NotificationPublisher.PublishCrisisAlert(ctx, job); err != nil {
		uc.Log.Error("failed to publish crisis alert",
			zap.String("user_id", session.UserID),
			zap.String("mood_id", mood.ID),
			zap.Error(err))
	}
}

func parseDateBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}

func mapMoodToResponse(mood *models.Mood) *responses.Mood {
	return &responses.Mood{
		MoodID:    mood.ID,
		Scale:     mood.Scale,
		Note:      mood.Note,
		Tags:      mood.Tags,
		CreatedAt: mood.CreatedAt,
	}
}
