package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"typemood/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends mood summary reports via Amazon SES
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService creates a new email service. If fromEmail is empty the
// service is disabled and all sends are skipped.
func NewEmailService(awsRegion, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendMoodReport emails a 30-day typing mood summary
func (s *EmailService) SendMoodReport(ctx context.Context, toEmail string, summary *models.StatsSummary) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): mood report to %s", toEmail)
		return nil
	}

	subject := "Your TypeMood 30-Day Summary"
	htmlBody := buildReportHTML(summary)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data: aws.String(subject),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data: aws.String(htmlBody),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send mood report: %w", err)
	}

	log.Printf("Mood report sent to %s", toEmail)
	return nil
}

func buildReportHTML(summary *models.StatsSummary) string {
	var trends strings.Builder
	for _, t := range summary.MoodTrends {
		fmt.Fprintf(&trends,
			"<tr><td>%s</td><td>%.1f</td><td>%.1f</td><td>%.1f</td></tr>",
			t.Date, t.Focus, t.Stress, t.Confidence)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		table { border-collapse: collapse; width: 100%%; }
		th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h1>TypeMood Summary</h1></div>
		<div class="content">
			<p>Here is your typing mood summary for the last 30 days.</p>
			<p>
				Sessions: <strong>%d</strong><br>
				Average speed: <strong>%.1f WPM</strong><br>
				Average focus: <strong>%.1f</strong><br>
				Average stress: <strong>%.1f</strong><br>
				Average confidence: <strong>%.1f</strong>
			</p>
			<table>
				<tr><th>Date</th><th>Focus</th><th>Stress</th><th>Confidence</th></tr>
				%s
			</table>
		</div>
	</div>
</body>
</html>`,
		summary.TotalSessions, summary.AvgSpeed, summary.AvgFocus,
		summary.AvgStress, summary.AvgConfidence, trends.String())
}
