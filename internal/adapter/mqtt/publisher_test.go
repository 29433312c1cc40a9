package mqtt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, completed bool) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	if completed {
		close(t.done)
	}
	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient overrides the calls the publisher makes.
type fakeClient struct {
	paho.Client
	token        *fakeToken
	published    []published
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) paho.Token {
	c.published = append(c.published, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return c.token
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func TestPublisher_Publish(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, true)}
	p := newPublisher(client, "webike/masters/", logger.NewWithWriter(&bytes.Buffer{}))

	err := p.Publish(context.Background(), "citiesUpdated", []string{"BLR", "Del"})
	require.NoError(t, err)
	require.Len(t, client.published, 1)
	assert.Equal(t, "webike/masters/citiesUpdated", client.published[0].topic)
	assert.Equal(t, byte(1), client.published[0].qos)

	var msg struct {
		Event   string   `json:"event"`
		Payload []string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(client.published[0].payload, &msg))
	assert.Equal(t, "citiesUpdated", msg.Event)
	assert.Equal(t, []string{"BLR", "Del"}, msg.Payload)

	p.Close()
	assert.True(t, client.disconnected)
}

func TestPublisher_PublishError(t *testing.T) {
	client := &fakeClient{token: newFakeToken(errors.New("not connected"), true)}
	p := newPublisher(client, "", logger.NewWithWriter(&bytes.Buffer{}))

	err := p.Publish(context.Background(), "partsUpdated", nil)
	assert.ErrorContains(t, err, "not connected")
	assert.Equal(t, "partsUpdated", client.published[0].topic)
}

func TestPublisher_PublishCancelled(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, false)}
	p := newPublisher(client, "x", logger.NewWithWriter(&bytes.Buffer{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Publish(ctx, "cmDataUpdated", map[string]int{"BLR": 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(logger.NewWithWriter(&buf))

	require.NoError(t, p.Publish(context.Background(), "citiesUpdated", []string{"BLR"}))
	assert.Contains(t, buf.String(), "citiesUpdated")
}
