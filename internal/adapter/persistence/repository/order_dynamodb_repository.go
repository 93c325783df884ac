package repository

import (
	"context"
	"errors"
	"time"

	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOrdersTableName  = "orders"
	ordersRestaurantIDIndex = "restaurant_id-index"
)

type orderLineItemRecord struct {
	ID          string `dynamodbav:"id"`
	MenuItemID  string `dynamodbav:"menu_item_id"`
	Name        string `dynamodbav:"name,omitempty"`
	Quantity    int    `dynamodbav:"quantity"`
	PriceAtTime string `dynamodbav:"price_at_time"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

type orderRecord struct {
	ID            string                `dynamodbav:"id"`
	RestaurantID  string                `dynamodbav:"restaurant_id"`
	CustomerPhone string                `dynamodbav:"customer_phone,omitempty"`
	Status        string                `dynamodbav:"status"`
	OrderType     string                `dynamodbav:"order_type"`
	TotalAmount   string                `dynamodbav:"total_amount"`
	Items         []orderLineItemRecord `dynamodbav:"items"`
	CreatedAt     string                `dynamodbav:"created_at"`
	UpdatedAt     string                `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)
//
// Line items are embedded in the order item; they share the order's
// lifecycle and are never read independently. Money travels as decimal
// strings so no precision is lost in the number round-trip.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

// ListByRestaurantID pages through the whole GSI partition. Aggregation
// needs every order of the tenant, so the LastEvaluatedKey loop runs to
// exhaustion instead of returning a single page.
func (r *OrderDynamoRepository) ListByRestaurantID(ctx context.Context, restaurantID string) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersRestaurantIDIndex),
			KeyConditionExpression: aws.String("restaurant_id = :rid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: restaurantID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var rec orderRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderRecord(rec))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderLineItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineItemRecord{
			ID:          it.ID,
			MenuItemID:  it.MenuItemID,
			Name:        it.Name,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime.String(),
			Notes:       it.Notes,
		})
	}
	return orderRecord{
		ID:            o.ID,
		RestaurantID:  o.RestaurantID,
		CustomerPhone: o.CustomerPhone,
		Status:        string(o.Status),
		OrderType:     string(o.OrderType),
		TotalAmount:   o.TotalAmount.String(),
		Items:         items,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	total, _ := decimal.NewFromString(rec.TotalAmount)

	items := make([]entities.OrderLineItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		price, _ := decimal.NewFromString(it.PriceAtTime)
		items = append(items, entities.OrderLineItem{
			ID:          it.ID,
			OrderID:     rec.ID,
			MenuItemID:  it.MenuItemID,
			Name:        it.Name,
			Quantity:    it.Quantity,
			PriceAtTime: price,
			Notes:       it.Notes,
		})
	}
	return entities.Order{
		ID:            rec.ID,
		RestaurantID:  rec.RestaurantID,
		CustomerPhone: rec.CustomerPhone,
		Status:        entities.OrderStatus(rec.Status),
		OrderType:     entities.OrderType(rec.OrderType),
		TotalAmount:   total,
		Items:         items,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
