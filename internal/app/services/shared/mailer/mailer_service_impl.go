package mailer

import (
	"context"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of *amqp091.Channel the mailer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type mailerService struct {
	Channel Publisher
	Queue   string
	Log     *zap.Logger
	mu      sync.Mutex
}

// NewMailerService opens a dedicated channel and declares the durable mail
// queue so that messages published before the worker starts are kept.
func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, mailQueueArgs); err != nil {
		channel.Close()
		return nil, err
	}
	return newMailerService(channel, queue, logger), nil
}

func newMailerService(channel Publisher, queue string, logger *zap.Logger) *mailerService {
	return &mailerService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *mailerService) SendEmail(ctx context.Context, message *models.MailMessage) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
		zap.String(constvars.LoggingEventTypeKey, message.Type),
	)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    utils.GenerateRequestID(),
		Type:         message.Type,
		Headers: amqp091.Table{
			constvars.MessageHeaderRequestID: requestID,
			constvars.MessageHeaderEventType: message.Type,
		},
	}

	// amqp091 channels are not safe for concurrent publishing.
	s.mu.Lock()
	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, publishing)
	s.mu.Unlock()
	if err != nil {
		s.Log.Error("mailerService.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}
	return nil
}
