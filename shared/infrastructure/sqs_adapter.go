package infrastructure

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
)

// SQSSubscriberAdapter adapts SQSEventSubscriber to the events.Subscriber
// interface. Events whose topic does not match the subscribed pattern are
// acknowledged without being handled.
type SQSSubscriberAdapter struct {
	queueURL   string
	client     *sqs.Client
	logger     *slog.Logger
	subscriber *SQSEventSubscriber
}

// NewSQSSubscriberAdapter creates a new SQS subscriber adapter
func NewSQSSubscriberAdapter(queueURL string, logger *slog.Logger) (*SQSSubscriberAdapter, error) {
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &SQSSubscriberAdapter{
		queueURL: queueURL,
		client:   sqs.NewFromConfig(cfg),
		logger:   logger,
	}, nil
}

// Subscribe implements events.Subscriber. It blocks until the context is
// cancelled.
func (a *SQSSubscriberAdapter) Subscribe(ctx context.Context, pattern events.Topic, handler events.EventHandler) error {
	filtered := events.EventHandlerFunc(func(ctx context.Context, event *events.Event) error {
		if pattern != "" && !event.Topic.Matches(pattern) {
			return nil
		}
		return handler.Handle(ctx, event)
	})

	a.subscriber = NewSQSEventSubscriber(a.client, a.queueURL, filtered, a.logger)
	return a.subscriber.Start(ctx)
}

// Close stops the underlying subscriber
func (a *SQSSubscriberAdapter) Close() error {
	if a.subscriber != nil {
		a.subscriber.Stop()
	}
	return nil
}
