package moods

import (
	"context"
	"mindfit-service/internal/app/config"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMoodRepository struct {
	created []models.Mood
}

func (f *fakeMoodRepository) CreateMood(ctx context.Context, mood *models.Mood) (string, error) {
	f.created = append(f.created, *mood)
	return "mood-1", nil
}

func (f *fakeMoodRepository) FindAllByUserID(ctx context.Context, userID string, from, to *time.Time) ([]models.Mood, error) {
	return nil, nil
}

func (f *fakeMoodRepository) FindByIDAndUserID(ctx context.Context, moodID, userID string) (*models.Mood, error) {
	return nil, nil
}

func (f *fakeMoodRepository) UpdateMood(ctx context.Context, mood *models.Mood) error {
	return nil
}

func (f *fakeMoodRepository) DeleteByIDAndUserID(ctx context.Context, moodID, userID string) error {
	return nil
}

type fakeContactRepository struct {
	contacts []models.EmergencyContact
}

func (f *fakeContactRepository) CreateContact(ctx context.Context, contact *models.EmergencyContact) (string, error) {
	return "", nil
}

func (f *fakeContactRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	return f.contacts, nil
}

func (f *fakeContactRepository) FindByIDAndUserID(ctx context.Context, contactID, userID string) (*models.EmergencyContact, error) {
	return nil, nil
}

func (f *fakeContactRepository) UpdateContact(ctx context.Context, contact *models.EmergencyContact) error {
	return nil
}

func (f *fakeContactRepository) DeleteByIDAndUserID(ctx context.Context, contactID, userID string) error {
	return nil
}

type fakePublisher struct {
	published []contracts.CrisisAlertJob
}

func (f *fakePublisher) PublishCrisisAlert(ctx context.Context, job *contracts.CrisisAlertJob) error {
	f.published = append(f.published, *job)
	return nil
}

type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func newTestMoodUsecase(publisher *fakePublisher, threshold int) *moodUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.CrisisScaleThreshold = threshold

	return &moodUsecase{
		MoodRepository: &fakeMoodRepository{},
		EmergencyContactRepository: &fakeContactRepository{
			contacts: []models.EmergencyContact{
				{ID: "contact-1", UserID: "user-1", Name: "Alex"},
				{ID: "contact-2", UserID: "user-1", Name: "Sam"},
			},
		},
		NotificationPublisher: publisher,
		SessionService: &fakeSessionService{
			session: &models.Session{SessionID: "sess-1", UserID: "user-1", Username: "janedoe"},
		},
		InternalConfig: internalConfig,
		Log:            zap.NewNop(),
	}
}

func TestCreateMood_CrisisThreshold(t *testing.T) {
	t.Run("At Threshold Publishes Alert", func(t *testing.T) {
		publisher := &fakePublisher{}
		uc := newTestMoodUsecase(publisher, 2)

		result, err := uc.CreateMood(context.Background(), "session-data", &requests.CreateMood{Scale: 2})
		require.NoError(t, err)
		assert.Equal(t, "mood-1", result.MoodID)

		require.Len(t, publisher.published, 1)
		job := publisher.published[0]
		assert.Equal(t, "user-1", job.UserID)
		assert.Equal(t, "janedoe", job.Username)
		assert.Equal(t, 2, job.Scale)
		assert.Equal(t, []string{"contact-1", "contact-2"}, job.ContactID)
	})

	t.Run("Below Threshold Publishes Alert", func(t *testing.T) {
		publisher := &fakePublisher{}
		uc := newTestMoodUsecase(publisher, 2)

		_, err := uc.CreateMood(context.Background(), "session-data", &requests.CreateMood{Scale: 1})
		require.NoError(t, err)
		assert.Len(t, publisher.published, 1)
	})

	t.Run("Above Threshold Stays Quiet", func(t *testing.T) {
		publisher := &fakePublisher{}
		uc := newTestMoodUsecase(publisher, 2)

		_, err := uc.CreateMood(context.Background(), "session-data", &requests.CreateMood{Scale: 3})
		require.NoError(t, err)
		assert.Empty(t, publisher.published)
	})
}

func TestParseDateBound(t *testing.T) {
	t.Run("Empty Is Nil", func(t *testing.T) {
		bound, err := parseDateBound("", false)
		require.NoError(t, err)
		assert.Nil(t, bound)
	})

	t.Run("Start Of Day", func(t *testing.T) {
		bound, err := parseDateBound("2024-06-12", false)
		require.NoError(t, err)
		require.NotNil(t, bound)
		assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), *bound)
	})

	t.Run("End Of Day Covers The Whole Date", func(t *testing.T) {
		bound, err := parseDateBound("2024-06-12", true)
		require.NoError(t, err)
		require.NotNil(t, bound)
		assert.True(t, bound.After(time.Date(2024, 6, 12, 23, 59, 59, 0, time.UTC)))
		assert.True(t, bound.Before(time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Garbage Errors", func(t *testing.T) {
		_, err := parseDateBound("June 12th", false)
		assert.Error(t, err)
	})
}
