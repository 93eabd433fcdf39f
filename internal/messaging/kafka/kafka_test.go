package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisherFlushesPromptly(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"})
	defer p.Close()

	kp, ok := p.(*kafkaPublisher)
	require.True(t, ok)
	assert.LessOrEqual(t, kp.writer.BatchTimeout, 50*time.Millisecond)
	assert.True(t, kp.writer.AllowAutoTopicCreation)
}
