package nsq

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/flashfood/internal/pkg/logger"
)

const (
	DefaultMaxAttempts = 5
	DefaultMaxInFlight = 1
)

// MessageHandler processes one message body; a returned error requeues it
type MessageHandler func(message []byte) error

// ConsumerConfig describes one topic/channel subscription
type ConsumerConfig struct {
	Topic   string
	Channel string
	// NSQDAddress is used only when LookupdAddresses is empty
	NSQDAddress      string
	LookupdAddresses []string
	MaxAttempts      uint16
	MaxInFlight      int
}

// Consumer wraps an nsq.Consumer bound to a single handler
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer subscribes handler to cfg.Topic/cfg.Channel and connects
// through lookupd, or straight to nsqd when no lookupd is configured
func NewConsumer(cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	if cfg.NSQDAddress == "" && len(cfg.LookupdAddresses) == 0 {
		return nil, errors.New("nsq consumer needs an nsqd or lookupd address")
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = DefaultMaxInFlight
	}

	config := nsq.NewConfig()
	config.MaxAttempts = cfg.MaxAttempts
	config.MaxInFlight = cfg.MaxInFlight

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(newNSQLogger("consumer"), nsq.LogLevelWarning)

	// Handlers must be added before connecting
	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		err := handler(message.Body)
		if err == nil {
			return nil
		}
		fields := []logger.Field{
			logger.String("topic", cfg.Topic),
			logger.String("channel", cfg.Channel),
			logger.Int("attempts", int(message.Attempts)),
			logger.Err(err),
		}
		if message.Attempts >= cfg.MaxAttempts {
			logger.Error("Giving up on message after final attempt", fields...)
		} else {
			logger.Warn("Message processing failed, requeueing", fields...)
		}
		return err
	}))

	if len(cfg.LookupdAddresses) > 0 {
		err = consumer.ConnectToNSQLookupds(cfg.LookupdAddresses)
	} else {
		err = consumer.ConnectToNSQD(cfg.NSQDAddress)
	}
	if err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect NSQ consumer: %w", err)
	}

	logger.Info("NSQ consumer started",
		logger.String("topic", cfg.Topic),
		logger.String("channel", cfg.Channel),
		logger.Int("max_in_flight", cfg.MaxInFlight))

	return &Consumer{consumer: consumer}, nil
}

// UnmarshalMessage decodes a JSON message body into v
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop stops the consumer and waits for in-flight messages to finish
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
