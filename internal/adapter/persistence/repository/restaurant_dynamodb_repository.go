package repository

import (
	"context"
	"time"

	"restauplus/internal/domain/entities"
	"restauplus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRestaurantsTableName = "restaurants"

type restaurantRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	LogoURL   string `dynamodbav:"logo_url,omitempty"`
	Website   string `dynamodbav:"website,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// RestaurantDynamoRepository reads tenant metadata from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The platform service owns writes to this table; the analytics service
// only ever reads it for receipt headers.

type RestaurantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRestaurantRepository = (*RestaurantDynamoRepository)(nil)

func NewRestaurantDynamoRepository(ddb *dynamodb.Client) *RestaurantDynamoRepository {
	return &RestaurantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESTAURANTS_TABLE", defaultRestaurantsTableName),
	}
}

func (r *RestaurantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Restaurant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Restaurant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Restaurant{}, nil
	}

	var rec restaurantRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Restaurant{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Restaurant{
		ID:        rec.ID,
		Name:      rec.Name,
		Address:   rec.Address,
		Phone:     rec.Phone,
		LogoURL:   rec.LogoURL,
		Website:   rec.Website,
		CreatedAt: createdAt,
	}, nil
}
