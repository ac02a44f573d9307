// Package analytics publishes API usage events to Kafka for offline
// reporting. Tracking is fire-and-forget: a failed publish is logged and
// never surfaces to the request that produced it.
package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mssola/useragent"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Event is one tracked API request.
type Event struct {
	APIKey     string `json:"api_key,omitempty"`
	Category   string `json:"category"`
	Action     string `json:"action"`
	Label      string `json:"label,omitempty"`
	Value      int    `json:"value"`
	Browser    string `json:"browser,omitempty"`
	BrowserVer string `json:"browser_version,omitempty"`
	OS         string `json:"os,omitempty"`
	Mobile     bool   `json:"mobile"`
	Bot        bool   `json:"bot"`
	OccurredAt string `json:"occurred_at"`
}

// Publisher writes events to a Kafka topic. A nil Publisher is valid and
// drops every event, which is how tracking is disabled.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewPublisher connects a Kafka producer. Returns nil when no brokers are
// configured.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

// Track publishes one event asynchronously. The user agent string, when
// present, is parsed into browser and platform fields.
func (p *Publisher) Track(ctx context.Context, event Event, userAgent string) {
	if p == nil {
		return
	}

	if userAgent != "" {
		ua := useragent.New(userAgent)
		event.Browser, event.BrowserVer = ua.Browser()
		event.OS = ua.OS()
		event.Mobile = ua.Mobile()
		event.Bot = ua.Bot()
	}
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("analytics event marshal failed", "category", event.Category, "error", err)
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Category),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Warn("analytics event publish failed", "category", event.Category, "error", err)
		}
	})
}

// Close drains buffered events and shuts the producer down.
func (p *Publisher) Close(ctx context.Context) {
	if p == nil {
		return
	}
	if err := p.client.Flush(ctx); err != nil {
		p.logger.Warn("analytics flush failed", "error", err)
	}
	p.client.Close()
}
