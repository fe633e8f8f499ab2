package pulsar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"

	"github.com/orbit-suite/orbit/pkg/log"
)

const defaultSendTimeout = 5 * time.Second

type Config struct {
	Address     string
	SendTimeout time.Duration
}

type Producer interface {
	Send(ctx context.Context, topic, key string, payload []byte) error
	Close()
}

type producer struct {
	client      pulsar.Client
	sendTimeout time.Duration

	mu             sync.Mutex
	topicProducers map[string]pulsar.Producer
}

func NewProducer(config *Config, logger log.Logger) (Producer, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pulsar client: %w", err)
	}

	sendTimeout := defaultSendTimeout
	if config.SendTimeout > 0 {
		sendTimeout = config.SendTimeout
	}

	return &producer{
		client:         client,
		sendTimeout:    sendTimeout,
		topicProducers: make(map[string]pulsar.Producer),
	}, nil
}

func (p *producer) Send(ctx context.Context, topic, key string, payload []byte) error {
	topicProducer, err := p.getOrCreateTopicProducer(topic)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.sendTimeout)
	defer cancel()

	_, err = topicProducer.Send(ctx, &pulsar.ProducerMessage{
		Payload: payload,
		Key:     key,
	})
	return err
}

func (p *producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, topicProducer := range p.topicProducers {
		topicProducer.Close()
	}
	p.client.Close()
}

func (p *producer) getOrCreateTopicProducer(topic string) (pulsar.Producer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	topicProducer, ok := p.topicProducers[topic]
	if ok {
		return topicProducer, nil
	}

	topicProducer, err := p.client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create producer for topic %s: %w", topic, err)
	}

	p.topicProducers[topic] = topicProducer
	return topicProducer, nil
}
