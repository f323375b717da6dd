package nsq

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/flashfood/internal/pkg/logger"
)

// ErrProducerStopped is returned by Publish once Stop has been called
var ErrProducerStopped = errors.New("nsq producer stopped")

// Publisher is the part of the producer gateways depend on
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// Producer publishes JSON encoded events to nsqd
type Producer struct {
	producer *nsq.Producer
	stopped  atomic.Bool
}

// NewProducer connects to the nsqd at address and pings it
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(newNSQLogger("producer"), nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}
	return &Producer{producer: producer}, nil
}

// Publish encodes message as JSON and publishes it synchronously to topic
func (p *Producer) Publish(topic string, message interface{}) error {
	if !nsq.IsValidTopicName(topic) {
		return fmt.Errorf("invalid NSQ topic %q", topic)
	}
	if p.stopped.Load() {
		return ErrProducerStopped
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	logger.Debug("Published message",
		logger.String("topic", topic),
		logger.Int("bytes", len(body)))
	return nil
}

// Ping checks the connection to nsqd; used by the readiness check
func (p *Producer) Ping() error {
	if p.stopped.Load() {
		return ErrProducerStopped
	}
	return p.producer.Ping()
}

// Stop closes the connection; later publishes fail with ErrProducerStopped
func (p *Producer) Stop() {
	if p.stopped.Swap(true) {
		return
	}
	p.producer.Stop()
}
