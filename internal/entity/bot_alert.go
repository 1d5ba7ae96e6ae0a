package entity

// BotAlertKind is the state transition an alert reports.
type BotAlertKind string

const (
	BotAlertStarted         BotAlertKind = "STARTED"
	BotAlertStopped         BotAlertKind = "STOPPED"
	BotAlertKillSwitchOn    BotAlertKind = "KILL_SWITCH_ON"
	BotAlertKillSwitchOff   BotAlertKind = "KILL_SWITCH_OFF"
	BotAlertSessionAppeared BotAlertKind = "SESSION_APPEARED"
	BotAlertSessionVanished BotAlertKind = "SESSION_VANISHED"
)

// BotAlert is one transition between two consecutive status snapshots.
type BotAlert struct {
	Kind      BotAlertKind `json:"kind"`
	SessionID string       `json:"session_id"`
	Name      string       `json:"name"`
}

// DetectBotAlerts compares two snapshots by session id. Alerts follow the
// order of curr, then vanished sessions in the order of prev.
func DetectBotAlerts(prev, curr []BotStatusDetail) []BotAlert {
	before := make(map[string]BotStatusDetail, len(prev))
	for _, b := range prev {
		before[b.SessionID] = b
	}

	var alerts []BotAlert
	seen := make(map[string]struct{}, len(curr))
	for _, b := range curr {
		seen[b.SessionID] = struct{}{}
		old, ok := before[b.SessionID]
		if !ok {
			alerts = append(alerts, BotAlert{Kind: BotAlertSessionAppeared, SessionID: b.SessionID, Name: b.DisplayName()})
			continue
		}
		if old.IsRunning != b.IsRunning {
			kind := BotAlertStopped
			if b.IsRunning {
				kind = BotAlertStarted
			}
			alerts = append(alerts, BotAlert{Kind: kind, SessionID: b.SessionID, Name: b.DisplayName()})
		}
		if old.KillSwitchActive != b.KillSwitchActive {
			kind := BotAlertKillSwitchOff
			if b.KillSwitchActive {
				kind = BotAlertKillSwitchOn
			}
			alerts = append(alerts, BotAlert{Kind: kind, SessionID: b.SessionID, Name: b.DisplayName()})
		}
	}

	for _, b := range prev {
		if _, ok := seen[b.SessionID]; !ok {
			alerts = append(alerts, BotAlert{Kind: BotAlertSessionVanished, SessionID: b.SessionID, Name: b.DisplayName()})
		}
	}
	return alerts
}
