package notify

import (
	"context"
	"encoding/json"
	"fmt"

	appconfig "pulsefit/fitness-app/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// SNSNotifier publishes missed-workout events to an SNS topic; a downstream
// consumer turns them into device pushes.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
}

var _ Notifier = (*SNSNotifier)(nil)

// NewSNSNotifier creates the SNS-backed notifier.
func NewSNSNotifier(cfg appconfig.NotifyConfig) (*SNSNotifier, error) {
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SNS: %w", err)
	}
	return &SNSNotifier{
		client:   sns.NewFromConfig(awsSDKConfig),
		topicARN: cfg.TopicARN,
	}, nil
}

type missedWorkoutMessage struct {
	EventID         string `json:"eventId"`
	Type            string `json:"type"`
	UserID          string `json:"userId"`
	FirstMissedDate string `json:"firstMissedDate"`
	MissedCount     int    `json:"missedCount"`
}

// MissedWorkout publishes one event per detection. The event id lets the
// consumer dedup re-deliveries.
func (n *SNSNotifier) MissedWorkout(ctx context.Context, userID, firstMissedDate string, missedCount int) error {
	msg := missedWorkoutMessage{
		EventID:         uuid.NewString(),
		Type:            "workout.missed",
		UserID:          userID,
		FirstMissedDate: firstMissedDate,
		MissedCount:     missedCount,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal missed workout message: %w", err)
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("publish missed workout notification: %w", err)
	}

	log.WithFields(log.Fields{
		"userId":      userID,
		"missedCount": missedCount,
	}).Debug("missed workout notification published")
	return nil
}
