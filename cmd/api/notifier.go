package api

import (
	"context"
	"fmt"
	"log"

	alertdomain "cosmic-watch-backend/internal/alert/domain"
	authrepository "cosmic-watch-backend/internal/auth/repository"
	"cosmic-watch-backend/pkg/fcm"
	"cosmic-watch-backend/pkg/mailer"
	"cosmic-watch-backend/pkg/realtime"
)

// AlertNotifier fans alerts out over email, websocket and FCM. The fcm
// client may be nil when Firebase is not configured; push then becomes a
// no-op.
type AlertNotifier struct {
	mailer    *mailer.Service
	hub       *realtime.Hub
	fcmClient *fcm.Client
	fcmRepo   authrepository.FCMTokenRepository
}

func NewAlertNotifier(m *mailer.Service, hub *realtime.Hub, fcmClient *fcm.Client, fcmRepo authrepository.FCMTokenRepository) *AlertNotifier {
	return &AlertNotifier{mailer: m, hub: hub, fcmClient: fcmClient, fcmRepo: fcmRepo}
}

func (n *AlertNotifier) EmailAlert(ctx context.Context, to string, alert *alertdomain.Alert) error {
	return n.mailer.SendAlertEmail(ctx, to, mailer.AlertEmail{
		AsteroidName:   alert.AsteroidName,
		Message:        alert.Message,
		Severity:       string(alert.Severity),
		RiskScore:      alert.RiskScore,
		MissDistanceKM: alert.MissDistance,
	})
}

func (n *AlertNotifier) NotifyUser(userID, event string, payload any) {
	n.hub.SendToUser(userID, event, payload)
}

func (n *AlertNotifier) NotifyAll(event string, payload any) {
	n.hub.Broadcast(event, payload)
}

func (n *AlertNotifier) PushAlert(ctx context.Context, userID string, alert *alertdomain.Alert) {
	if n.fcmClient == nil {
		return
	}

	tokens, err := n.fcmRepo.GetTokensByUserID(userID)
	if err != nil {
		log.Printf("[Notifier] loading FCM tokens for %s failed: %v", userID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	tokenStrings := make([]string, len(tokens))
	for i, t := range tokens {
		tokenStrings[i] = t.Token
	}

	failed, err := n.fcmClient.SendToDevices(ctx, tokenStrings, fcm.NotificationData{
		Title: fmt.Sprintf("Cosmic Watch: %s", alert.AsteroidName),
		Body:  alert.Message,
		Data: map[string]string{
			"alert_id":    alert.ID,
			"asteroid_id": alert.AsteroidID,
			"severity":    string(alert.Severity),
		},
	})
	if err != nil {
		log.Printf("[Notifier] FCM push for %s failed: %v", userID, err)
		return
	}

	// Prune registrations that no longer deliver.
	for _, token := range failed {
		if err := n.fcmRepo.DeleteToken(token); err != nil {
			log.Printf("[Notifier] pruning stale FCM token failed: %v", err)
		}
	}
}
