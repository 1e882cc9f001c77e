package mailer

import (
	"context"
	"errors"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestMailerService_SendEmail(t *testing.T) {
	publisher := new(MockPublisher)
	var published amqp091.Publishing
	publisher.On("PublishWithContext", mock.Anything, "", "sensus.mailer", false, false, mock.AnythingOfType("amqp091.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
		Return(nil)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	svc := newMailerService(publisher, "sensus.mailer", zap.NewNop())

	err := svc.SendEmail(ctx, &models.MailMessage{To: "ana@example.com", Subject: "Hi", Body: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
	assert.Equal(t, constvars.MIMEApplicationJSON, published.ContentType)
	assert.Equal(t, "req-1", published.Headers[constvars.MessageHeaderRequestID])

	var decoded models.MailMessage
	require.NoError(t, json.Unmarshal(published.Body, &decoded))
	assert.Equal(t, "ana@example.com", decoded.To)
}

func TestMailerService_SendEmailPublishError(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	svc := newMailerService(publisher, "sensus.mailer", zap.NewNop())
	err := svc.SendEmail(context.Background(), &models.MailMessage{To: "ana@example.com"})
	assert.Error(t, err)
}
