package handler

import (
	"encoding/base64"
	"testing"

	"pulse/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrigger_FromPayload(t *testing.T) {
	h := &PushHandler{}

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(`{"task":"generate","request_id":"req-1"}`))

	trigger, err := h.parseTrigger(&msg)
	require.NoError(t, err)
	assert.Equal(t, service.TaskGenerate, trigger.Task)
	assert.Equal(t, "req-1", trigger.RequestID)
}

func TestParseTrigger_FallsBackToAttribute(t *testing.T) {
	h := &PushHandler{}

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"task": "dispatch"}

	trigger, err := h.parseTrigger(&msg)
	require.NoError(t, err)
	assert.Equal(t, service.TaskDispatch, trigger.Task)
}

func TestParseTrigger_RejectsUnknownTask(t *testing.T) {
	h := &PushHandler{}

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"task": "reindex"}

	_, err := h.parseTrigger(&msg)
	require.Error(t, err)
}

func TestParseTrigger_RejectsBadBase64(t *testing.T) {
	h := &PushHandler{}

	var msg PubSubMessage
	msg.Message.Data = "not-base64!!"

	_, err := h.parseTrigger(&msg)
	require.Error(t, err)
}

func TestRetryableError_Classification(t *testing.T) {
	base := errors.New("database unavailable")
	wrapped := newRetryableError(base)

	assert.True(t, isRetryableError(wrapped))
	assert.True(t, isRetryableError(errors.Wrap(wrapped, "outer")))
	assert.False(t, isRetryableError(base))
	assert.ErrorIs(t, wrapped, base)
}
