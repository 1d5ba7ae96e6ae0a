package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-trading-insights/internal/entity"
)

// MaxMessageLength keeps messages under Telegram's 4096 character limit.
const MaxMessageLength = 4090

func alertIcon(kind entity.BotAlertKind) (string, string) {
	switch kind {
	case entity.BotAlertStarted:
		return "🟢", "Bot started"
	case entity.BotAlertStopped:
		return "🔴", "Bot stopped"
	case entity.BotAlertKillSwitchOn:
		return "⛔", "Kill switch activated"
	case entity.BotAlertKillSwitchOff:
		return "✅", "Kill switch released"
	case entity.BotAlertSessionAppeared:
		return "🆕", "New bot session"
	case entity.BotAlertSessionVanished:
		return "👻", "Bot session gone"
	default:
		return "🔔", string(kind)
	}
}

// FormatBotAlerts renders alerts as Markdown, split into parts no longer than
// MaxMessageLength. No alerts yields no messages.
func FormatBotAlerts(at time.Time, alerts []entity.BotAlert) []string {
	if len(alerts) == 0 {
		return nil
	}

	var messages []string
	var current strings.Builder
	part := 1

	startNewPart := func() {
		current.Reset()
		if part == 1 {
			current.WriteString(fmt.Sprintf("🤖 *Bot Alerts* (%s)\n\n", at.Format("02 Jan 2006 15:04 MST")))
		} else {
			current.WriteString(fmt.Sprintf("🤖 *Bot Alerts Part %d*\n\n", part))
		}
	}
	startNewPart()

	for _, a := range alerts {
		icon, title := alertIcon(a.Kind)
		entry := fmt.Sprintf("%s *%s:* `%s` (session `%s`)\n", icon, title, a.Name, a.SessionID)
		if current.Len()+len(entry) > MaxMessageLength {
			messages = append(messages, current.String())
			part++
			startNewPart()
		}
		current.WriteString(entry)
	}
	return append(messages, current.String())
}
