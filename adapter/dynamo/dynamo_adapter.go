package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/filevault/adapter"
)

// Client is the interface for DynamoDB operations used by the adapter.
// *dynamodb.Client satisfies it; tests substitute an in-memory mock.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Adapter implements adapter.Adapter backed by a DynamoDB table.
//
// Table schema:
//   - Partition key: pk (string) - the record key
//   - Attribute: content (binary) - the record content
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name filevault \
//	  --attribute-definitions AttributeName=pk,AttributeType=S \
//	  --key-schema AttributeName=pk,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type Adapter struct {
	client    Client
	tableName string
}

// New creates a new DynamoDB adapter writing to tableName.
func New(client Client, tableName string) *Adapter {
	return &Adapter{
		client:    client,
		tableName: tableName,
	}
}

// Save persists the record as a table item.
func (a *Adapter) Save(ctx context.Context, rec *adapter.Record) (bool, error) {
	_, err := a.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.tableName),
		Item: map[string]types.AttributeValue{
			"pk":      &types.AttributeValueMemberS{Value: rec.Key},
			"content": &types.AttributeValueMemberB{Value: rec.Content},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to put item: %w", err)
	}
	return true, nil
}

// Load fetches the item stored under key.
func (a *Adapter) Load(ctx context.Context, key string) (*adapter.Record, error) {
	resp, err := a.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(a.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if len(resp.Item) == 0 {
		return nil, adapter.ErrNotFound
	}

	contentAttr, ok := resp.Item["content"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, errors.New("invalid content attribute in item")
	}
	return &adapter.Record{Key: key, Content: contentAttr.Value}, nil
}

// Init constructs a new, empty record bound to key. No item is written
// until the record is saved.
func (a *Adapter) Init(_ context.Context, key string, _ bool) (*adapter.Record, error) {
	return &adapter.Record{Key: key}, nil
}

// Delete removes the item stored under key. A conditional delete turns the
// silent DynamoDB no-op on absent items into the not-found contract.
func (a *Adapter) Delete(ctx context.Context, key string) (bool, error) {
	_, err := a.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(a.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: key},
		},
		ConditionExpression: aws.String("attribute_exists(pk)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return false, adapter.ErrNotFound
		}
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	return true, nil
}
