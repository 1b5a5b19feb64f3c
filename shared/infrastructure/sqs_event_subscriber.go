package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

type sqsMessage struct {
	Message types.Message
	Event   *events.Event
}

// SQSEventSubscriber pulls bus messages from an SQS queue and dispatches
// them to a handler through a worker pool. Messages are deleted from the
// queue only after the handler succeeds.
type SQSEventSubscriber struct {
	client   *sqs.Client
	queueURL string
	handler  events.EventHandler
	logger   *slog.Logger

	workers             int
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	sleepAfterError     time.Duration

	running  atomic.Bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	messages chan *sqsMessage
}

// SQSSubscriberOption configures the subscriber
type SQSSubscriberOption func(*SQSEventSubscriber)

// WithWorkers sets the number of handler workers
func WithWorkers(workers int) SQSSubscriberOption {
	return func(s *SQSEventSubscriber) {
		s.workers = workers
	}
}

// WithWaitTimeSeconds sets the long-poll wait time
func WithWaitTimeSeconds(seconds int32) SQSSubscriberOption {
	return func(s *SQSEventSubscriber) {
		s.waitTimeSeconds = seconds
	}
}

// NewSQSEventSubscriber creates a new SQS event subscriber
func NewSQSEventSubscriber(
	client *sqs.Client,
	queueURL string,
	handler events.EventHandler,
	logger *slog.Logger,
	opts ...SQSSubscriberOption,
) *SQSEventSubscriber {
	s := &SQSEventSubscriber{
		client:              client,
		queueURL:            queueURL,
		handler:             handler,
		logger:              logger,
		workers:             10,
		maxNumberOfMessages: 5,
		waitTimeSeconds:     15,
		sleepAfterError:     time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins reading from the queue. It blocks until ctx is cancelled or
// Stop is called.
func (s *SQSEventSubscriber) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("subscriber already running")
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.messages = make(chan *sqsMessage, s.workers)

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			close(s.messages)
			s.wg.Wait()
			s.running.Store(false)
			return nil
		default:
		}

		if err := s.read(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("failed to read from queue", "error", err)
			time.Sleep(s.sleepAfterError)
		}
	}
}

// Stop cancels the read loop and waits for in-flight handlers
func (s *SQSEventSubscriber) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *SQSEventSubscriber) read(ctx context.Context) error {
	out, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            &s.queueURL,
		MaxNumberOfMessages: s.maxNumberOfMessages,
		WaitTimeSeconds:     s.waitTimeSeconds,
	})
	if err != nil {
		return errors.Wrap(err, "failed to receive messages")
	}

	for _, msg := range out.Messages {
		event, err := decodeBusMessage(msg)
		if err != nil {
			s.logger.Error("dropping undecodable message",
				"message_id", aws.ToString(msg.MessageId), "error", err)
			s.delete(ctx, msg)
			continue
		}

		select {
		case s.messages <- &sqsMessage{Message: msg, Event: event}:
		case <-ctx.Done():
			return nil
		}
	}

	return nil
}

func (s *SQSEventSubscriber) worker(ctx context.Context) {
	defer s.wg.Done()

	for msg := range s.messages {
		if err := s.handler.Handle(ctx, msg.Event); err != nil {
			// Leave the message in the queue; SQS redelivers it after the
			// visibility timeout expires.
			s.logger.Error("event handler failed",
				"topic", msg.Event.Topic.String(),
				"event_id", msg.Event.ID,
				"error", err)
			continue
		}
		s.delete(ctx, msg.Message)
	}
}

func (s *SQSEventSubscriber) delete(ctx context.Context, msg types.Message) {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &s.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil && ctx.Err() == nil {
		s.logger.Error("failed to delete message",
			"message_id", aws.ToString(msg.MessageId), "error", err)
	}
}

func decodeBusMessage(msg types.Message) (*events.Event, error) {
	var bus busMessage
	if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &bus); err != nil {
		return nil, errors.Wrap(err, "failed to decode bus message")
	}

	topic, err := events.NewTopic(bus.Topic)
	if err != nil {
		return nil, err
	}

	return &events.Event{
		ID:            bus.ID,
		AggregateID:   models.ID(bus.AggregateID),
		Topic:         topic,
		Data:          bus.Payload,
		Metadata:      bus.Metadata,
		Timestamp:     bus.Timestamp,
		CorrelationID: bus.CorrelationID,
	}, nil
}
