package repository

import (
	"context"
	"errors"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog"

type catalogEntryItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	UnitPriceByArea string `dynamodbav:"unit_price_by_area,omitempty"`
	UnitPriceByUnit string `dynamodbav:"unit_price_by_unit,omitempty"`
	PricingMode     string `dynamodbav:"pricing_mode"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists CatalogEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogEntryItem(e))
	if err != nil {
		return entities.CatalogEntry{}, err
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
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}

	var it catalogEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogEntry{}, err
	}
	return fromCatalogEntryItem(it), nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	entries := make([]entities.CatalogEntry, 0)

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
			var it catalogEntryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromCatalogEntryItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func (r *CatalogDynamoRepository) Update(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogEntryItem(e))
	if err != nil {
		return entities.CatalogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogEntry{}, nil
		}
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

func toCatalogEntryItem(e entities.CatalogEntry) catalogEntryItem {
	it := catalogEntryItem{
		ID:          e.ID,
		Name:        e.Name,
		PricingMode: string(e.PricingMode),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.UnitPriceByArea > 0 {
		it.UnitPriceByArea = floatToString(e.UnitPriceByArea)
	}
	if e.UnitPriceByUnit > 0 {
		it.UnitPriceByUnit = floatToString(e.UnitPriceByUnit)
	}
	return it
}

func fromCatalogEntryItem(it catalogEntryItem) entities.CatalogEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CatalogEntry{
		ID:              it.ID,
		Name:            it.Name,
		UnitPriceByArea: stringToFloat(it.UnitPriceByArea),
		UnitPriceByUnit: stringToFloat(it.UnitPriceByUnit),
		PricingMode:     entities.PricingMode(it.PricingMode),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
