package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

const publishTimeout = 5 * time.Second

type Config struct {
	Broker      string
	ClientID    string
	TopicPrefix string
}

type message struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Publisher sends masters change events to an MQTT broker, one topic per event.
type Publisher struct {
	client paho.Client
	prefix string
	logger ports.LoggerPort
}

func NewPublisher(cfg Config, logger ports.LoggerPort) (*Publisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Warn("MQTT connection lost", map[string]interface{}{
			"error": err.Error(),
		})
	})

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout: %s", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", err)
	}

	return newPublisher(client, cfg.TopicPrefix, logger), nil
}

func newPublisher(client paho.Client, prefix string, logger ports.LoggerPort) *Publisher {
	return &Publisher{client: client, prefix: strings.TrimSuffix(prefix, "/"), logger: logger}
}

func (p *Publisher) Topic(event string) string {
	if p.prefix == "" {
		return event
	}
	return p.prefix + "/" + event
}

func (p *Publisher) Publish(ctx context.Context, event string, payload interface{}) error {
	data, err := json.Marshal(message{Event: event, Payload: payload, Timestamp: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", event, err)
	}

	token := p.client.Publish(p.Topic(event), 1, false, data)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("mqtt publish timeout: %s", event)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish error: %w", err)
	}
	p.logger.Debug("Event published", map[string]interface{}{
		"topic": p.Topic(event),
	})
	return nil
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}

// LogPublisher only logs events. Used when no broker is configured.
type LogPublisher struct {
	logger ports.LoggerPort
}

func NewLogPublisher(logger ports.LoggerPort) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event string, payload interface{}) error {
	p.logger.Info("Event", map[string]interface{}{
		"event":   event,
		"payload": payload,
	})
	return nil
}

func (p *LogPublisher) Close() {}
