package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRabbitPublisher_ClosedOrNil(t *testing.T) {
	var nilPub *RabbitPublisher
	assert.ErrorIs(t, nilPub.PublishJSON(context.Background(), map[string]string{"a": "b"}), ErrPublisherClosed)
	nilPub.Close()

	p := &RabbitPublisher{Queue: "q"}
	assert.ErrorIs(t, p.PublishJSON(context.Background(), map[string]string{"a": "b"}), ErrPublisherClosed)
	p.Close()
}

func TestRabbitPublisher_RejectsUnencodable(t *testing.T) {
	p := &RabbitPublisher{Queue: "q"}
	err := p.PublishJSON(context.Background(), make(chan int))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPublisherClosed)
}
