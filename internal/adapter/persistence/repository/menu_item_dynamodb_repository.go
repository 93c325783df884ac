package repository

import (
	"context"

	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultMenuItemsTableName  = "menu_items"
	menuItemsRestaurantIDIndex = "restaurant_id-index"
)

type menuItemRecord struct {
	ID           string `dynamodbav:"id"`
	RestaurantID string `dynamodbav:"restaurant_id"`
	Name         string `dynamodbav:"name"`
	Description  string `dynamodbav:"description,omitempty"`
	Price        string `dynamodbav:"price"`
	Available    bool   `dynamodbav:"available"`
}

// MenuItemDynamoRepository reads the live menu of a restaurant.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: restaurant_id-index (PK: restaurant_id)

type MenuItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMenuItemRepository = (*MenuItemDynamoRepository)(nil)

func NewMenuItemDynamoRepository(ddb *dynamodb.Client) *MenuItemDynamoRepository {
	return &MenuItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MENU_ITEMS_TABLE", defaultMenuItemsTableName),
	}
}

func (r *MenuItemDynamoRepository) ListByRestaurantID(ctx context.Context, restaurantID string) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(menuItemsRestaurantIDIndex),
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
			var rec menuItemRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			price, _ := decimal.NewFromString(rec.Price)
			items = append(items, entities.MenuItem{
				ID:           rec.ID,
				RestaurantID: rec.RestaurantID,
				Name:         rec.Name,
				Description:  rec.Description,
				Price:        price,
				Available:    rec.Available,
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}
