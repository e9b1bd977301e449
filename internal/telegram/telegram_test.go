package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChatID(t *testing.T) {
	chatID, err := ParseChatID("123456789")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), chatID)

	chatID, err = ParseChatID("-1001234567890")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), chatID)

	_, err = ParseChatID("")
	require.Error(t, err)

	_, err = ParseChatID("not-a-chat")
	require.Error(t, err)
}
