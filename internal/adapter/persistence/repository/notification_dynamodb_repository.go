package repository

import (
	"context"
	"sort"
	"time"

	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsJobIDIndex       = "job_id-index"
)

type notificationItem struct {
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	RecipientPhone string `dynamodbav:"recipient_phone"`
	Message        string `dynamodbav:"message"`
	Timestamp      string `dynamodbav:"timestamp"`
}

// NotificationDynamoRepository persists the notification audit log in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// The log is append-only: no update or delete operations exist.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationLogRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, entry entities.NotificationLogEntry) (entities.NotificationLogEntry, error) {
	it := toNotificationItem(entry)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.NotificationLogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.NotificationLogEntry{}, err
	}
	return entry, nil
}

func (r *NotificationDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.NotificationLogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.NotificationLogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromNotificationItem(it))
	}

	sort.SliceStable(entries, func(i, k int) bool {
		return entries[i].Timestamp.After(entries[k].Timestamp)
	})
	return entries, nil
}

func toNotificationItem(e entities.NotificationLogEntry) notificationItem {
	return notificationItem{
		ID:             e.ID,
		JobID:          e.JobID,
		RecipientPhone: e.RecipientPhone,
		Message:        e.Message,
		Timestamp:      e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.NotificationLogEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.NotificationLogEntry{
		ID:             it.ID,
		JobID:          it.JobID,
		RecipientPhone: it.RecipientPhone,
		Message:        it.Message,
		Timestamp:      ts,
	}
}
