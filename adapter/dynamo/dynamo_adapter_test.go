package dynamo

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/filevault/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is an in-memory DynamoDB mock for testing.
type mockClient struct {
	mu    sync.RWMutex
	items map[string]map[string]types.AttributeValue // pk -> item
}

func newMockClient() *mockClient {
	return &mockClient{
		items: make(map[string]map[string]types.AttributeValue),
	}
}

func (m *mockClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pk := params.Item["pk"].(*types.AttributeValueMemberS).Value
	m.items[pk] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pk := params.Key["pk"].(*types.AttributeValueMemberS).Value
	item, ok := m.items[pk]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (m *mockClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pk := params.Key["pk"].(*types.AttributeValueMemberS).Value
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_exists(pk)" {
		if _, exists := m.items[pk]; !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
		}
	}
	delete(m.items, pk)
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestAdapter_Lifecycle(t *testing.T) {
	ctx := context.Background()
	a := New(newMockClient(), "filevault-test")

	_, err := a.Load(ctx, "missing")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	_, err = a.Delete(ctx, "missing")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	ok, err := a.Save(ctx, adapter.NewRecord("k", []byte("content")))
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err := a.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "k", rec.Key)
	assert.Equal(t, []byte("content"), rec.Content)

	ok, err = a.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = a.Load(ctx, "k")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestAdapter_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	a := New(newMockClient(), "filevault-test")

	_, err := a.Save(ctx, adapter.NewRecord("k", []byte("v1")))
	require.NoError(t, err)
	_, err = a.Save(ctx, adapter.NewRecord("k", []byte("v2")))
	require.NoError(t, err)

	rec, err := a.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), rec.Content)
}

func TestAdapter_Init(t *testing.T) {
	ctx := context.Background()
	client := newMockClient()
	a := New(client, "filevault-test")

	rec, err := a.Init(ctx, "fresh", false)
	require.NoError(t, err)
	assert.Equal(t, "fresh", rec.Key)
	assert.True(t, rec.Empty())

	// Init alone writes nothing.
	assert.Empty(t, client.items)
}
