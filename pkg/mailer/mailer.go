package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// AlertEmail carries the fields rendered into the alert template.
type AlertEmail struct {
	AsteroidName   string
	Message        string
	Severity       string
	RiskScore      int
	MissDistanceKM float64
}

// Service sends alert emails through SES. When no sender address is
// configured it logs a mock line and reports success, so a missing email
// setup never breaks the alert pipeline.
type Service struct {
	client *ses.Client
	from   string
}

func New(ctx context.Context, region, from string) (*Service, error) {
	if from == "" {
		log.Println("[Mailer] SES_FROM_EMAIL not set, emails will be mocked")
		return &Service{}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &Service{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (s *Service) SendAlertEmail(ctx context.Context, to string, alert AlertEmail) error {
	subject := fmt.Sprintf("⚠️ Cosmic Watch Alert: %s Risk - %s", alert.Severity, alert.AsteroidName)

	if s.client == nil {
		log.Printf("[Mailer] [MOCK EMAIL] To: %s | Subject: %s", to, subject)
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(renderAlertHTML(alert)),
				},
			},
		},
		Source: aws.String(s.from),
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		log.Printf("[Mailer] SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	log.Printf("[Mailer] 📧 Email sent to %s", to)
	return nil
}

func severityColor(severity string) string {
	switch severity {
	case "CRITICAL":
		return "#ff0000"
	case "HIGH":
		return "#ff4500"
	case "MEDIUM":
		return "#ffa500"
	default:
		return "#00ced1"
	}
}

func renderAlertHTML(alert AlertEmail) string {
	message := strings.ReplaceAll(alert.Message, "\n", "<br>")
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #0b0d17; color: #ffffff; padding: 20px; border-radius: 10px;">
    <h2 style="color: %s; text-align: center; text-transform: uppercase;">%s ALERT</h2>
    <div style="background-color: #15192b; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0; color: #00f0ff;">%s</h3>
        <p style="font-size: 16px; line-height: 1.5;">%s</p>
        <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 10px; margin-top: 15px;">
            <div style="background: rgba(255,255,255,0.05); padding: 10px; border-radius: 5px;">
                <span style="display: block; font-size: 12px; color: #888;">RISK SCORE</span>
                <span style="font-size: 18px; font-weight: bold;">%d/100</span>
            </div>
            <div style="background: rgba(255,255,255,0.05); padding: 10px; border-radius: 5px;">
                <span style="display: block; font-size: 12px; color: #888;">MISS DISTANCE</span>
                <span style="font-size: 18px; font-weight: bold;">%.0f km</span>
            </div>
        </div>
    </div>
    <p style="text-align: center; color: #555; font-size: 12px;">Cosmic Watch Automated Alert System</p>
</div>`,
		severityColor(alert.Severity), alert.Severity, alert.AsteroidName, message, alert.RiskScore, alert.MissDistanceKM)
}
