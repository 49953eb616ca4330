package notifications

import (
	"context"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes crisis-alert jobs onto a durable RabbitMQ queue so that
// notifying a user's emergency contacts never blocks the request path.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (s *Service) PublishCrisisAlert(ctx context.Context, job *contracts.CrisisAlertJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, s.queueName)
	}

	s.log.Info("crisis alert published",
		zap.String("user_id", job.UserID),
		zap.String("mood_id", job.MoodID),
		zap.Int("scale", job.Scale),
	)
	return nil
}

// Consume returns the delivery channel for the crisis-alert queue.
func (s *Service) Consume() (<-chan amqp.Delivery, error) {
	return s.ch.Consume(
		s.queueName,
		"",    // consumer
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
}
