// Package events publishes pricing outcomes to Kafka for downstream
// analytics. Publishing is best-effort: failures are logged and never fail
// the request that produced the estimate.
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"pricepilot/internal/models"
)

type Publisher interface {
	Publish(topic string, event interface{}) error
	Close() error
}

// PriceEstimateEvent is emitted whenever the optimizer and forecaster run
// against a product.
type PriceEstimateEvent struct {
	ProductID      int      `json:"product_id"`
	Category       string   `json:"category"`
	OptimizedPrice *float64 `json:"optimized_price,omitempty"`
	DemandForecast *float64 `json:"demand_forecast,omitempty"`
	EstimatedAt    string   `json:"estimated_at"`
}

// MenuPricingEvent is emitted for every priced menu item.
type MenuPricingEvent struct {
	MenuItemID     int     `json:"menu_item_id"`
	MealType       string  `json:"meal_type"`
	OptimizedPrice float64 `json:"optimized_price"`
	ExpectedDemand int     `json:"expected_demand"`
	Revenue        float64 `json:"revenue"`
	Date           string  `json:"date"`
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewKafkaPublisher(config *models.Config) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	if config.SessionTimeoutMs > 0 {
		saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	} else {
		saramaConfig.Consumer.Group.Session.Timeout = 45 * time.Second // default value
	}

	brokerList := strings.Split(config.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return &KafkaPublisher{producer: producer}, nil
}

func (p *KafkaPublisher) Publish(topic string, event interface{}) error {
	if p.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", topic, err)
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NopPublisher drops every event; used when Kafka output is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(string, interface{}) error { return nil }
func (NopPublisher) Close() error                      { return nil }
