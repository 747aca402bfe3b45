package internal

import (
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/ory/dockertest/v3"
)

// DynamodbStart runs amazon/dynamodb-local in Docker for a test and returns a
// client pointed at it. The test is skipped when Docker is not reachable.
func DynamodbStart(t *testing.T) (func(), *dynamodb.DynamoDB) {
	t.Helper()

	if os.Getenv("SKIP_DOCKER_TESTS") != "" {
		t.Skip("SKIP_DOCKER_TESTS is set")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("Could not connect to docker: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("Docker is not available: %s", err)
	}
	pool.MaxWait = 30 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository:   "amazon/dynamodb-local",
		Tag:          "latest",
		ExposedPorts: []string{"8000"},
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}

	closer := func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatal(err)
		}
	}

	client := dynamodb.New(
		session.Must(session.NewSession()),
		&aws.Config{
			Endpoint:    aws.String("http://" + resource.GetHostPort("8000/tcp")),
			Region:      aws.String("us-east-1"),
			Credentials: credentials.NewStaticCredentials("x", "x", ""),
		},
	)

	err = pool.Retry(func() error {
		_, err := client.ListTables(&dynamodb.ListTablesInput{})
		return err
	})
	if err != nil {
		closer()
		t.Fatalf("Could not connect to resource: %s", resource.GetHostPort("8000/tcp"))
	}

	return closer, client
}
