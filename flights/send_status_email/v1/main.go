package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	queuemsg "github.com/meetupaws/travel_catalog/flights/internal/model"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error)

type Mailer interface {
	SendEmail(subject string, body string, from string, to []string, cc []string) error
}

var emailTemplate = `Hello,

Flight %v (%v) from %v to %v departing %v is now %v.
Previous status: %v.
`

func subject(msg queuemsg.QueueMsgStatusChanged) string {
	return fmt.Sprintf("Flight %s %s", msg.FlightNumber, msg.Status)
}

func body(msg queuemsg.QueueMsgStatusChanged) string {
	previous := string(msg.PreviousStatus)
	if previous == "" {
		previous = "unknown"
	}
	return fmt.Sprintf(
		emailTemplate,
		msg.FlightNumber,
		msg.Airline,
		msg.DepartureAirport,
		msg.ArrivalAirport,
		msg.DepartureTime,
		strings.ToUpper(string(msg.Status)),
		previous,
	)
}

// Adapter reports the records it could not deliver as batch item failures, so
// SQS only redelivers those.
func Adapter(mailer Mailer, senderEmail string, recipients []string, logger logrus.FieldLogger) Handler {
	return func(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
		response := events.SQSEventResponse{
			BatchItemFailures: []events.SQSBatchItemFailure{},
		}
		for _, record := range event.Records {
			logger := logger.WithField("message_id", record.MessageId)

			msg, err := send(mailer, senderEmail, recipients, record)
			if err != nil {
				logger.WithError(err).Error("status alert failed")
				response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
					ItemIdentifier: record.MessageId,
				})
				continue
			}

			logger.WithFields(logrus.Fields{
				"event_id":  msg.EventID,
				"flight_id": msg.FlightID,
				"status":    msg.Status,
			}).Info("status alert sent")
		}
		return response, nil
	}
}

func send(mailer Mailer, senderEmail string, recipients []string, record events.SQSMessage) (queuemsg.QueueMsgStatusChanged, error) {
	msg := queuemsg.QueueMsgStatusChanged{}
	if err := json.Unmarshal([]byte(record.Body), &msg); err != nil {
		return msg, errors.Wrapf(err, "decoding message %s", record.MessageId)
	}

	err := mailer.SendEmail(
		subject(msg),
		body(msg),
		senderEmail,
		recipients,
		nil,
	)
	return msg, err
}

func main() {
	logger := internal.NewLogger()
	senderEmail := internal.MustEnv("SENDER_EMAIL")
	recipients := internal.SplitList(internal.MustEnv("STATUS_ALERT_RECIPIENTS"))

	session := session.Must(session.NewSession())
	mailer := internal.NewMailer(ses.New(session))
	lambda.Start(Adapter(mailer, senderEmail, recipients, logger))
}
