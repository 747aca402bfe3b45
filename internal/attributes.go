package internal

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pkg/errors"
)

// PutString sets a string attribute, leaving it out when empty so optional
// fields and index keys are never written as "".
func PutString(item map[string]*dynamodb.AttributeValue, key, value string) {
	if value == "" {
		return
	}
	item[key] = &dynamodb.AttributeValue{S: aws.String(value)}
}

func PutInt(item map[string]*dynamodb.AttributeValue, key string, value int) {
	item[key] = IntAttr(value)
}

func IntAttr(value int) *dynamodb.AttributeValue {
	return &dynamodb.AttributeValue{N: aws.String(strconv.Itoa(value))}
}

func GetString(item map[string]*dynamodb.AttributeValue, key string) string {
	if v, ok := item[key]; ok && v.S != nil {
		return *v.S
	}
	return ""
}

func GetInt(item map[string]*dynamodb.AttributeValue, key string) (int, error) {
	v, ok := item[key]
	if !ok || v.N == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(*v.N)
	if err != nil {
		return 0, errors.Wrapf(err, "attribute %s", key)
	}
	return n, nil
}
