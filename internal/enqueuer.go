package internal

import (
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/pkg/errors"
)

// Enqueuer publishes JSON messages to SQS queues looked up by name.
type Enqueuer struct {
	client sqsiface.SQSAPI

	mu        sync.Mutex
	queueURLs map[string]string
}

func (e *Enqueuer) SendMsg(msg interface{}, queue string) error {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encoding queue message")
	}

	queueURL, err := e.queueURL(queue)
	if err != nil {
		return err
	}

	_, err = e.client.SendMessage(&sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBytes)),
		QueueUrl:    aws.String(queueURL),
	})
	if err != nil {
		return errors.Wrapf(err, "sending message to %s", queue)
	}

	return nil
}

func (e *Enqueuer) queueURL(queue string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if u, ok := e.queueURLs[queue]; ok {
		return u, nil
	}

	out, err := e.client.GetQueueUrl(&sqs.GetQueueUrlInput{
		QueueName: aws.String(queue),
	})
	if err != nil {
		return "", errors.Wrapf(err, "resolving queue %s", queue)
	}

	e.queueURLs[queue] = aws.StringValue(out.QueueUrl)
	return e.queueURLs[queue], nil
}

func NewEnqueuer(client sqsiface.SQSAPI) *Enqueuer {
	return &Enqueuer{
		client:    client,
		queueURLs: map[string]string{},
	}
}
