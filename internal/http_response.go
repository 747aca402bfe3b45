package internal

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/xeipuuv/gojsonschema"
)

func Respond(statusCode int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: body,
	}
}

func RespondJSON(statusCode int, v interface{}) events.APIGatewayProxyResponse {
	b, err := json.Marshal(v)
	if err != nil {
		return Error(500, err)
	}
	return Respond(statusCode, string(b))
}

func Error(statusCode int, err error) events.APIGatewayProxyResponse {
	return Errors(statusCode, []string{err.Error()})
}

func Errors(statusCode int, msgs []string) events.APIGatewayProxyResponse {
	responseBytes, _ := json.Marshal(map[string]interface{}{
		"errors": msgs,
	})

	return Respond(statusCode, string(responseBytes))
}

func SchemaErrors(statusCode int, schemaErrors []gojsonschema.ResultError) events.APIGatewayProxyResponse {
	msgs := []string{}

	for _, e := range schemaErrors {
		msgs = append(msgs, fmt.Sprintf("%v", e))
	}

	return Errors(statusCode, msgs)
}
