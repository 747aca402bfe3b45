package internal

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	"github.com/pkg/errors"
)

type Mailer struct {
	client sesiface.SESAPI
}

func (m *Mailer) SendEmail(
	subject string,
	body string,
	from string,
	to []string,
	cc []string,
) error {
	if len(to) == 0 {
		return errors.New("no_recipients")
	}

	input := &ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: aws.StringSlice(to),
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Text: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(body),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
		},
		Source: aws.String(from),
	}
	if len(cc) > 0 {
		input.Destination.CcAddresses = aws.StringSlice(cc)
	}

	_, err := m.client.SendEmail(input)
	return errors.Wrap(err, "sending email")
}

func NewMailer(client sesiface.SESAPI) *Mailer {
	return &Mailer{
		client: client,
	}
}
