package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/notification-types-api/internal/domain"
)

// NotificationTypeRepo provides typed DynamoDB operations for the
// notification_types table.
type NotificationTypeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNotificationTypeRepo(client *dynamodb.Client, tableName string) *NotificationTypeRepo {
	return &NotificationTypeRepo{client: client, tableName: tableName}
}

// Scan returns every notification type record. Availability filtering is
// business logic and happens in the catalog service, not here.
func (r *NotificationTypeRepo) Scan(ctx context.Context) ([]domain.NotificationType, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var nts []domain.NotificationType
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &nts); err != nil {
		return nil, err
	}
	return nts, nil
}

func (r *NotificationTypeRepo) Get(ctx context.Context, key string) (*domain.NotificationType, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("key", key),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("notification type %q: %w", key, domain.ErrNotFound)
	}
	var nt domain.NotificationType
	if err := attributevalue.UnmarshalMap(out.Item, &nt); err != nil {
		return nil, err
	}
	return &nt, nil
}

func (r *NotificationTypeRepo) Put(ctx context.Context, nt *domain.NotificationType) error {
	item, err := attributevalue.MarshalMap(nt)
	if err != nil {
		return fmt.Errorf("marshal notification type: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
