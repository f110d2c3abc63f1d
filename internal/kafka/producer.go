package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"gigboard/internal/config"
	"gigboard/internal/models"
)

// DirectoryEvent is the envelope for every lifecycle event the directory
// publishes after a committed mutation.
type DirectoryEvent struct {
	EventID    string      `json:"event_id"`
	Kind       string      `json:"kind"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type Producer struct {
	Writer *kafka.Writer
	Topics config.TopicConfig
}

func NewProducer(brokers []string, topics config.TopicConfig) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{Writer: writer, Topics: topics}
}

func (p *Producer) publish(topic, kind string, key int64, payload interface{}) error {
	event := DirectoryEvent{
		EventID:    uuid.New().String(),
		Kind:       kind,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
	msgBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(context.Background(), kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(key, 10)),
		Value: msgBytes,
	})
}

func (p *Producer) PublishVenueCreated(v models.Venue) error {
	return p.publish(p.Topics.VenueEvents, "venue.created", v.ID, v)
}

func (p *Producer) PublishVenueUpdated(v models.Venue) error {
	return p.publish(p.Topics.VenueEvents, "venue.updated", v.ID, v)
}

func (p *Producer) PublishVenueDeleted(id int64) error {
	return p.publish(p.Topics.VenueEvents, "venue.deleted", id, map[string]int64{"id": id})
}

func (p *Producer) PublishArtistCreated(a models.Artist) error {
	return p.publish(p.Topics.ArtistEvents, "artist.created", a.ID, a)
}

func (p *Producer) PublishArtistUpdated(a models.Artist) error {
	return p.publish(p.Topics.ArtistEvents, "artist.updated", a.ID, a)
}

func (p *Producer) PublishArtistDeleted(id int64) error {
	return p.publish(p.Topics.ArtistEvents, "artist.deleted", id, map[string]int64{"id": id})
}

func (p *Producer) PublishShowCreated(s models.Show) error {
	return p.publish(p.Topics.ShowEvents, "show.created", s.ID, s)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
