package sync

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleTransport carries envelopes over Google Cloud Pub/Sub. Each context
// publishes to a shared topic and receives on its own subscription.
type googleTransport struct {
	client     *pubsub.Client
	publisher  *pubsub.Publisher
	subID      string
	logger     *slog.Logger
	receiveCtx context.Context
	cancel     context.CancelFunc
}

// NewGoogleTransport creates a Pub/Sub backed transport. The topic must
// already exist; the subscription is the caller's own endpoint on it.
func NewGoogleTransport(ctx context.Context, projectID, topicID, subscriptionID string, logger *slog.Logger) (Transport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	receiveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	logger.Info("Google Pub/Sub sync transport initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
		slog.String("subscription_id", subscriptionID),
	)

	return &googleTransport{
		client:     client,
		publisher:  client.Publisher(topicID),
		subID:      subscriptionID,
		logger:     logger,
		receiveCtx: receiveCtx,
		cancel:     cancel,
	}, nil
}

func (t *googleTransport) Broadcast(ctx context.Context, data []byte) error {
	result := t.publisher.Publish(ctx, &pubsub.Message{Data: data})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	t.logger.Debug("[GoogleSync] Envelope broadcast",
		slog.String("server_id", serverID),
	)

	return nil
}

func (t *googleTransport) Listen(fn func(data []byte)) error {
	subscriber := t.client.Subscriber(t.subID)

	go func() {
		err := subscriber.Receive(t.receiveCtx, func(_ context.Context, msg *pubsub.Message) {
			fn(msg.Data)
			msg.Ack()
		})
		if err != nil && t.receiveCtx.Err() == nil {
			t.logger.Error("[GoogleSync] Receive loop terminated",
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

func (t *googleTransport) Close() error {
	t.cancel()
	if t.publisher != nil {
		t.publisher.Stop()
	}
	if t.client != nil {
		return errors.WithStack(t.client.Close())
	}

	return nil
}
