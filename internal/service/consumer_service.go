package service

import (
	"context"
	"encoding/json"
	"fmt"

	"linkmark-be/internal/dto"
	"linkmark-be/internal/pkg/logger"
	"linkmark-be/pkg/events"
	natsbus "linkmark-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService bridges the in-process bus and the NATS bus: it
// forwards freshly created bookmarks out to enrichment workers and
// applies the content those workers push back.
type IConsumerService interface {
	Start(ctx context.Context) error
}

type consumerService struct {
	pubSub          *gochannel.GoChannel
	enrichTopic     string
	natsPublisher   *natsbus.Publisher
	natsSubscriber  *natsbus.Subscriber
	bookmarkService IBookmarkService
	log             logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	enrichTopic string,
	natsPublisher *natsbus.Publisher,
	natsSubscriber *natsbus.Subscriber,
	bookmarkService IBookmarkService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		enrichTopic:     enrichTopic,
		natsPublisher:   natsPublisher,
		natsSubscriber:  natsSubscriber,
		bookmarkService: bookmarkService,
		log:             log,
	}
}

// Start wires both directions and returns; the consumers run until ctx
// is cancelled. A nil NATS side degrades to local-only operation.
func (s *consumerService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.enrichTopic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", s.enrichTopic, err)
	}

	go func() {
		for msg := range messages {
			s.forwardToBus(msg.Context(), msg.Payload)
			msg.Ack()
		}
	}()

	if s.natsSubscriber != nil {
		subject := fmt.Sprintf("bookmarks.%s", events.TypeBookmarkEnriched)
		if err := s.natsSubscriber.Subscribe(subject, "linkmark-enrichment", s.handleEnriched); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
	}

	s.log.Info("consumer", "consumer service started", map[string]interface{}{
		"topic": s.enrichTopic,
	})
	return nil
}

func (s *consumerService) forwardToBus(ctx context.Context, payload []byte) {
	if s.natsPublisher == nil {
		return
	}

	var msg dto.EnrichBookmarkMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		s.log.Error("consumer", "failed to decode enrichment message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	event := events.NewBookmarkCreated(msg.BookmarkId, msg.UserId, msg.Url)
	if err := s.natsPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("consumer", "failed to forward event to bus", map[string]interface{}{
			"bookmark_id": msg.BookmarkId.String(),
			"error":       err.Error(),
		})
	}
}

func (s *consumerService) handleEnriched(ctx context.Context, subject string, payload []byte) error {
	var msg dto.BookmarkEnrichedMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		// Malformed payloads are dropped, not redelivered.
		s.log.Error("consumer", "failed to decode enriched message", map[string]interface{}{
			"subject": subject,
			"error":   err.Error(),
		})
		return nil
	}
	if msg.BookmarkId == uuid.Nil {
		return nil
	}

	if err := s.bookmarkService.ApplyEnrichment(ctx, &msg); err != nil {
		s.log.Error("consumer", "failed to apply enrichment", map[string]interface{}{
			"bookmark_id": msg.BookmarkId.String(),
			"error":       err.Error(),
		})
		return err
	}

	s.log.Info("consumer", "applied enrichment", map[string]interface{}{
		"bookmark_id": msg.BookmarkId.String(),
	})
	return nil
}
