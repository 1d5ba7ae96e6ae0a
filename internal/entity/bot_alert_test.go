package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func status(session, symbol string, running, killSwitch bool) BotStatusDetail {
	return BotStatusDetail{SessionID: session, Symbol: &symbol, IsRunning: running, KillSwitchActive: killSwitch}
}

func TestDetectBotAlerts_NoChange(t *testing.T) {
	snapshot := []BotStatusDetail{status("s1", "AAPL", true, false)}
	assert.Empty(t, DetectBotAlerts(snapshot, snapshot))
}

func TestDetectBotAlerts_Transitions(t *testing.T) {
	prev := []BotStatusDetail{
		status("s1", "AAPL", true, false),
		status("s2", "MSFT", true, false),
		status("s3", "NVDA", true, false),
	}
	curr := []BotStatusDetail{
		status("s1", "AAPL", false, true),
		status("s2", "MSFT", true, false),
		status("s4", "TSLA", true, false),
	}

	assert.Equal(t, []BotAlert{
		{Kind: BotAlertStopped, SessionID: "s1", Name: "AAPL"},
		{Kind: BotAlertKillSwitchOn, SessionID: "s1", Name: "AAPL"},
		{Kind: BotAlertSessionAppeared, SessionID: "s4", Name: "TSLA"},
		{Kind: BotAlertSessionVanished, SessionID: "s3", Name: "NVDA"},
	}, DetectBotAlerts(prev, curr))
}

func TestDetectBotAlerts_NamelessSessionUsesPrefix(t *testing.T) {
	curr := []BotStatusDetail{{SessionID: "0123456789abcdef", IsRunning: true}}

	alerts := DetectBotAlerts(nil, curr)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "01234567", alerts[0].Name)
}
