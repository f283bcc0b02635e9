package repository

import (
	"context"
	"errors"
	"time"

	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsPlateKeyIndex    = "plate_key-index"
	jobsPhoneKeyIndex    = "phone_key-index"
)

type costItemRecord struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Amount      int64  `dynamodbav:"amount"`
}

type logEntryRecord struct {
	ID        string `dynamodbav:"id"`
	Timestamp string `dynamodbav:"timestamp"`
	Message   string `dynamodbav:"message"`
}

type jobItem struct {
	ID               string           `dynamodbav:"id"`
	PlateKey         string           `dynamodbav:"plate_key"`
	PhoneKey         string           `dynamodbav:"phone_key"`
	CustomerName     string           `dynamodbav:"customer_name"`
	CustomerPhone    string           `dynamodbav:"customer_phone"`
	VehicleModel     string           `dynamodbav:"vehicle_model"`
	PlateNumber      string           `dynamodbav:"plate_number"`
	IssueType        string           `dynamodbav:"issue_type"`
	IssueDescription string           `dynamodbav:"issue_description"`
	Status           string           `dynamodbav:"status"`
	EntryDate        string           `dynamodbav:"entry_date"`
	CostItems        []costItemRecord `dynamodbav:"cost_items"`
	Logs             []logEntryRecord `dynamodbav:"logs"`
	Visuals          []string         `dynamodbav:"visuals"`
	CreatedAt        string           `dynamodbav:"created_at"`
	UpdatedAt        string           `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plate_key-index (PK: plate_key)
//   - GSI: phone_key-index (PK: phone_key)
//
// plate_key/phone_key are normalized match keys maintained alongside the
// stored plate and phone, which stay exactly as entered. Cost items and
// logs live inside the job item: append via list_append keeps the write a
// single UpdateItem, with logs prepended so logs[0] is the newest entry.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	it := toJobItem(job)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	// Shop-floor sized table; a paginated scan is the whole dashboard.
	var jobs []entities.Job
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return jobs, nil
}

func (r *JobDynamoRepository) GetByPlateKey(ctx context.Context, plateKey string) (entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsPlateKeyIndex),
		KeyConditionExpression: aws.String("plate_key = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: plateKey},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Items) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListByPhoneKey(ctx context.Context, phoneKey string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsPhoneKeyIndex),
		KeyConditionExpression: aws.String("phone_key = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: phoneKey},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) AppendCostItem(ctx context.Context, id string, item entities.CostItem) (entities.Job, error) {
	av, err := attributevalue.MarshalList([]costItemRecord{{
		ID:          item.ID,
		Description: item.Description,
		Amount:      item.Amount,
	}})
	if err != nil {
		return entities.Job{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #cost_items = list_append(#cost_items, :item), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":item":       &types.AttributeValueMemberL{Value: av},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#cost_items": "cost_items",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) PrependLogEntry(ctx context.Context, id string, entry entities.LogEntry) (entities.Job, error) {
	av, err := attributevalue.MarshalList([]logEntryRecord{{
		ID:        entry.ID,
		Timestamp: entry.Timestamp,
		Message:   entry.Message,
	}})
	if err != nil {
		return entities.Job{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		// New entry first: logs are stored newest-first.
		expr := "SET #logs = list_append(:entry, #logs), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":entry":      &types.AttributeValueMemberL{Value: av},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#logs":       "logs",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	costItems := make([]costItemRecord, 0, len(j.CostItems))
	for _, c := range j.CostItems {
		costItems = append(costItems, costItemRecord{ID: c.ID, Description: c.Description, Amount: c.Amount})
	}
	logs := make([]logEntryRecord, 0, len(j.Logs))
	for _, l := range j.Logs {
		logs = append(logs, logEntryRecord{ID: l.ID, Timestamp: l.Timestamp, Message: l.Message})
	}
	visuals := j.Visuals
	if visuals == nil {
		visuals = []string{}
	}

	return jobItem{
		ID:               j.ID,
		PlateKey:         entities.PlateKey(j.PlateNumber),
		PhoneKey:         entities.PhoneKey(j.CustomerPhone),
		CustomerName:     j.CustomerName,
		CustomerPhone:    j.CustomerPhone,
		VehicleModel:     j.VehicleModel,
		PlateNumber:      j.PlateNumber,
		IssueType:        j.IssueType,
		IssueDescription: j.IssueDescription,
		Status:           string(j.Status),
		EntryDate:        j.EntryDate.UTC().Format(time.RFC3339Nano),
		CostItems:        costItems,
		Logs:             logs,
		Visuals:          visuals,
		CreatedAt:        j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobItem(it jobItem) entities.Job {
	entryDate, _ := time.Parse(time.RFC3339Nano, it.EntryDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	costItems := make([]entities.CostItem, 0, len(it.CostItems))
	for _, c := range it.CostItems {
		costItems = append(costItems, entities.CostItem{ID: c.ID, Description: c.Description, Amount: c.Amount})
	}
	logs := make([]entities.LogEntry, 0, len(it.Logs))
	for _, l := range it.Logs {
		logs = append(logs, entities.LogEntry{ID: l.ID, Timestamp: l.Timestamp, Message: l.Message})
	}

	return entities.Job{
		ID:               it.ID,
		CustomerName:     it.CustomerName,
		CustomerPhone:    it.CustomerPhone,
		VehicleModel:     it.VehicleModel,
		PlateNumber:      it.PlateNumber,
		IssueType:        it.IssueType,
		IssueDescription: it.IssueDescription,
		Status:           entities.JobStatus(it.Status),
		EntryDate:        entryDate,
		CostItems:        costItems,
		Logs:             logs,
		Visuals:          it.Visuals,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
