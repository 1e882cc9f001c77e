package mailer

import (
	"context"
	"errors"
	"fmt"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const maxDeliveryAttempts = 3

// mailQueueArgs declares the mail queue as a quorum queue so the broker
// stamps x-delivery-count on every redelivery. Publisher and consumer must
// declare it with the same arguments.
var mailQueueArgs = amqp091.Table{"x-queue-type": "quorum"}

// MailWorker drains the mail queue and hands each message to a MailSender.
// A message that fails is requeued until it has been redelivered
// maxDeliveryAttempts times, then dropped.
type MailWorker struct {
	Sender contracts.MailSender
	Log    *zap.Logger
}

func NewMailWorker(sender contracts.MailSender, logger *zap.Logger) *MailWorker {
	return &MailWorker{Sender: sender, Log: logger}
}

// Run blocks until ctx is done or deliveries is closed.
func (w *MailWorker) Run(ctx context.Context, deliveries <-chan amqp091.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			w.handle(delivery)
		}
	}
}

func (w *MailWorker) handle(delivery amqp091.Delivery) {
	requestID, _ := delivery.Headers[constvars.MessageHeaderRequestID].(string)

	var message models.MailMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil || message.To == "" {
		w.Log.Error("MailWorker.handle dropping malformed message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMessageIDKey, delivery.MessageId),
			zap.Error(err),
		)
		delivery.Reject(false)
		return
	}

	if err := w.Sender.Send(message.To, message.Subject, message.Body); err != nil {
		attempts := deliveryAttempts(delivery)
		requeue := attempts < maxDeliveryAttempts
		w.Log.Error("MailWorker.handle error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMessageIDKey, delivery.MessageId),
			zap.Int(constvars.LoggingAttemptKey, attempts),
			zap.Bool(constvars.LoggingRequeueKey, requeue),
			zap.Error(err),
		)
		delivery.Nack(false, requeue)
		return
	}

	w.Log.Info("MailWorker.handle email sent",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, delivery.MessageId),
	)
	delivery.Ack(false)
}

// deliveryAttempts counts the current attempt from the x-delivery-count
// header, which holds the number of prior deliveries.
func deliveryAttempts(delivery amqp091.Delivery) int {
	switch count := delivery.Headers["x-delivery-count"].(type) {
	case int64:
		return int(count) + 1
	case int32:
		return int(count) + 1
	case int16:
		return int(count) + 1
	case int8:
		return int(count) + 1
	}
	if delivery.Redelivered {
		return 2
	}
	return 1
}

// StartMailWorker consumes queue on its own channel and returns a stop
// function that cancels the consumer and waits for the worker to return.
func StartMailWorker(conn *amqp091.Connection, queue string, worker *MailWorker) (func(), error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, mailQueueArgs); err != nil {
		channel.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := channel.Qos(10, 0, false); err != nil {
		channel.Close()
		return nil, err
	}

	consumerTag := "sensus-mail-worker"
	deliveries, err := channel.Consume(queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("consume queue %s: %w", queue, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx, deliveries)
	}()

	stop := func() {
		cancel()
		wg.Wait()
		if err := channel.Cancel(consumerTag, false); err != nil && !errors.Is(err, amqp091.ErrClosed) {
			worker.Log.Warn("MailWorker stop error cancelling consumer", zap.Error(err))
		}
		channel.Close()
	}
	return stop, nil
}
