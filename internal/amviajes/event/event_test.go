package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func sampleEvent() Event {
	return Event{
		ID:         "e1",
		Type:       TypeItinerarySelected,
		ClientID:   "c1",
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Payload:    map[string]string{"itinerary_id": "i1"},
	}
}

func TestEvent_Encode(t *testing.T) {
	data, err := sampleEvent().Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "e1",
		"type": "itinerary.selected",
		"client_id": "c1",
		"occurred_at": "2026-03-01T12:00:00Z",
		"payload": {"itinerary_id": "i1"}
	}`, string(data))

	bad := sampleEvent()
	bad.Payload = make(chan int)
	_, err = bad.Encode()
	assert.ErrorContains(t, err, "encode event itinerary.selected")
}

func TestKafka_Publish(t *testing.T) {
	w := &fakeWriter{}
	k := &Kafka{writer: w, topic: "amviajes.events"}

	require.NoError(t, k.Publish(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("c1"), w.msgs[0].Key)
	assert.Equal(t, "event-type", w.msgs[0].Headers[0].Key)
	assert.Equal(t, []byte("itinerary.selected"), w.msgs[0].Headers[0].Value)

	var decoded Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, "e1", decoded.ID)

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
	assert.Equal(t, "amviajes.events", k.Topic())
}

func TestKafka_PublishError(t *testing.T) {
	k := &Kafka{writer: &fakeWriter{err: errors.New("broker down")}}
	err := k.Publish(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "broker down")
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), sampleEvent()))
	assert.NoError(t, p.Close())
}
