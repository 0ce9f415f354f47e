// Package dynamodb implements the order repository on DynamoDB for
// deployed environments.
package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"orders-backend/domain/core/aggregates"
	"orders-backend/domain/core/valueobjects"
	appErrors "orders-backend/pkg/errors"
)

const metadataSK = "METADATA"

// orderItemRecord is the persisted shape of one line item
type orderItemRecord struct {
	ProductID   string  `dynamodbav:"ProductID"`
	ProductName string  `dynamodbav:"ProductName"`
	Units       int     `dynamodbav:"Units"`
	UnitPrice   float64 `dynamodbav:"UnitPrice"`
	Discount    float64 `dynamodbav:"Discount"`
}

// orderRecord is the persisted shape of an order
type orderRecord struct {
	PK          string            `dynamodbav:"PK"`
	SK          string            `dynamodbav:"SK"`
	OrderNumber string            `dynamodbav:"OrderNumber"`
	UserID      string            `dynamodbav:"UserID"`
	UserName    string            `dynamodbav:"UserName"`
	Status      string            `dynamodbav:"Status"`
	Items       []orderItemRecord `dynamodbav:"Items"`
	CreatedAt   string            `dynamodbav:"CreatedAt"`
	PaidAt      string            `dynamodbav:"PaidAt,omitempty"`
}

// OrderRepository implements ports.OrderRepository using DynamoDB
type OrderRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewOrderRepository creates a new DynamoDB-backed order repository
func NewOrderRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// GetByNumber retrieves an order, returning (nil, nil) when absent.
func (r *OrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*aggregates.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: orderKey(orderNumber)},
			"SK": &types.AttributeValueMemberS{Value: metadataSK},
		},
	})
	if err != nil {
		return nil, appErrors.NewInternal("failed to get order", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var record orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, appErrors.NewInternal("failed to unmarshal order", err)
	}

	return r.toAggregate(record)
}

// Save persists an order, creating or replacing it.
func (r *OrderRepository) Save(ctx context.Context, order *aggregates.Order) error {
	record := toRecord(order)

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return appErrors.NewInternal("failed to marshal order", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return appErrors.NewInternal("failed to save order", err)
	}

	return nil
}

func orderKey(orderNumber string) string {
	return "ORDER#" + orderNumber
}

func toRecord(order *aggregates.Order) orderRecord {
	items := make([]orderItemRecord, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, orderItemRecord{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Units:       item.Units(),
			UnitPrice:   item.UnitPrice(),
			Discount:    item.Discount(),
		})
	}

	record := orderRecord{
		PK:          orderKey(order.OrderNumber()),
		SK:          metadataSK,
		OrderNumber: order.OrderNumber(),
		UserID:      order.UserID(),
		UserName:    order.UserName(),
		Status:      string(order.Status()),
		Items:       items,
		CreatedAt:   order.CreatedAt().Format(time.RFC3339Nano),
	}
	if !order.PaidAt().IsZero() {
		record.PaidAt = order.PaidAt().Format(time.RFC3339Nano)
	}
	return record
}

func (r *OrderRepository) toAggregate(record orderRecord) (*aggregates.Order, error) {
	items := make([]valueobjects.OrderItem, 0, len(record.Items))
	for _, rec := range record.Items {
		item, err := valueobjects.NewOrderItem(rec.ProductID, rec.ProductName, rec.Units, rec.UnitPrice, rec.Discount)
		if err != nil {
			return nil, appErrors.NewInternal("corrupt order item record", err)
		}
		items = append(items, item)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		return nil, appErrors.NewInternal("corrupt order timestamp", err)
	}

	var paidAt time.Time
	if record.PaidAt != "" {
		if paidAt, err = time.Parse(time.RFC3339Nano, record.PaidAt); err != nil {
			return nil, appErrors.NewInternal("corrupt payment timestamp", err)
		}
	}

	return aggregates.Rehydrate(
		record.OrderNumber,
		record.UserID,
		record.UserName,
		aggregates.OrderStatus(record.Status),
		items,
		createdAt,
		paidAt,
	), nil
}
