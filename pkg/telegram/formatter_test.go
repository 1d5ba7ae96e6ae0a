package telegram

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"golang-trading-insights/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBotAlerts_Empty(t *testing.T) {
	assert.Empty(t, FormatBotAlerts(time.Now(), nil))
}

func TestFormatBotAlerts_SingleMessage(t *testing.T) {
	at := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	messages := FormatBotAlerts(at, []entity.BotAlert{
		{Kind: entity.BotAlertKillSwitchOn, SessionID: "s1", Name: "AAPL"},
	})

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "02 Jan 2026 15:04 UTC")
	assert.Contains(t, messages[0], "Kill switch activated")
	assert.Contains(t, messages[0], "`AAPL`")
}

func TestFormatBotAlerts_SplitsLongOutput(t *testing.T) {
	var alerts []entity.BotAlert
	for i := 0; i < 200; i++ {
		alerts = append(alerts, entity.BotAlert{Kind: entity.BotAlertStopped, SessionID: fmt.Sprintf("session-%03d", i), Name: "SYMBOL"})
	}

	messages := FormatBotAlerts(time.Now(), alerts)
	require.Greater(t, len(messages), 1)
	total := 0
	for _, m := range messages {
		assert.LessOrEqual(t, len(m), MaxMessageLength)
		total += strings.Count(m, "Bot stopped")
	}
	assert.Equal(t, 200, total)
	assert.True(t, strings.HasPrefix(messages[1], "🤖 *Bot Alerts Part 2*"))
}
