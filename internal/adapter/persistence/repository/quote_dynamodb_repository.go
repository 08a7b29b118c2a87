package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type serviceFeeItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	UnitPriceByArea string `dynamodbav:"unit_price_by_area"`
}

type quoteItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name,omitempty"`
	Status string `dynamodbav:"status"`

	CustomerName  string `dynamodbav:"customer_name"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`

	MaterialID        string `dynamodbav:"material_id"`
	MaterialName      string `dynamodbav:"material_name"`
	MaterialUnitPrice string `dynamodbav:"material_unit_price"`
	PricingMode       string `dynamodbav:"pricing_mode"`

	ItemHeightCm string `dynamodbav:"item_height_cm"`
	ItemWidthCm  string `dynamodbav:"item_width_cm"`
	AreaHeightM  string `dynamodbav:"area_height_m"`
	AreaWidthM   string `dynamodbav:"area_width_m"`

	Services []serviceFeeItem `dynamodbav:"services,omitempty"`

	Quantity      int    `dynamodbav:"quantity"`
	MaterialValue string `dynamodbav:"material_value"`
	ServicesValue string `dynamodbav:"services_value"`
	Subtotal      string `dynamodbav:"subtotal"`

	DiscountKind   string `dynamodbav:"discount_kind,omitempty"`
	DiscountAmount string `dynamodbav:"discount_amount,omitempty"`
	DiscountValue  string `dynamodbav:"discount_value"`
	Total          string `dynamodbav:"total"`
	UnitValue      string `dynamodbav:"unit_value"`

	Notes     string `dynamodbav:"notes,omitempty"`
	QuoteID   string `dynamodbav:"quote_id,omitempty"`
	PaymentID string `dynamodbav:"payment_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists priced documents (quotes and finalized
// sales) in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update rewrites the whole item (PutItem guarded by attribute_exists), which
// gives the full-replace edit semantics the document flow requires.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)

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
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
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
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	services := make([]serviceFeeItem, 0, len(q.Services))
	for _, s := range q.Services {
		services = append(services, serviceFeeItem{
			ID:              s.ID,
			Name:            s.Name,
			UnitPriceByArea: floatToString(s.UnitPriceByArea),
		})
	}
	if len(services) == 0 {
		services = nil
	}

	return quoteItem{
		ID:     q.ID,
		Name:   q.Name,
		Status: string(q.Status),

		CustomerName:  q.Customer.Name,
		CustomerPhone: q.Customer.Phone,
		CustomerEmail: q.Customer.Email,

		MaterialID:        q.Material.ID,
		MaterialName:      q.Material.Name,
		MaterialUnitPrice: floatToString(q.Material.UnitPrice),
		PricingMode:       string(q.Material.PricingMode),

		ItemHeightCm: floatToString(q.ItemHeightCm),
		ItemWidthCm:  floatToString(q.ItemWidthCm),
		AreaHeightM:  floatToString(q.AreaHeightM),
		AreaWidthM:   floatToString(q.AreaWidthM),

		Services: services,

		Quantity:      q.Quantity,
		MaterialValue: floatToString(q.MaterialValue),
		ServicesValue: floatToString(q.ServicesValue),
		Subtotal:      floatToString(q.Subtotal),

		DiscountKind:   string(q.Discount.Kind),
		DiscountAmount: floatToString(q.Discount.Amount),
		DiscountValue:  floatToString(q.DiscountValue),
		Total:          floatToString(q.Total),
		UnitValue:      floatToString(q.UnitValue),

		Notes:     q.Notes,
		QuoteID:   q.QuoteID,
		PaymentID: q.PaymentID,

		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	services := make([]entities.ServiceFee, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.ServiceFee{
			ID:              s.ID,
			Name:            s.Name,
			UnitPriceByArea: stringToFloat(s.UnitPriceByArea),
		})
	}
	if len(services) == 0 {
		services = nil
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Quote{
		ID:     it.ID,
		Name:   it.Name,
		Status: entities.QuoteStatus(it.Status),

		Customer: entities.Customer{
			Name:  it.CustomerName,
			Phone: it.CustomerPhone,
			Email: it.CustomerEmail,
		},

		Material: entities.MaterialSnapshot{
			ID:          it.MaterialID,
			Name:        it.MaterialName,
			UnitPrice:   stringToFloat(it.MaterialUnitPrice),
			PricingMode: entities.PricingMode(it.PricingMode),
		},

		ItemHeightCm: stringToFloat(it.ItemHeightCm),
		ItemWidthCm:  stringToFloat(it.ItemWidthCm),
		AreaHeightM:  stringToFloat(it.AreaHeightM),
		AreaWidthM:   stringToFloat(it.AreaWidthM),

		Services: services,

		Quantity:      it.Quantity,
		MaterialValue: stringToFloat(it.MaterialValue),
		ServicesValue: stringToFloat(it.ServicesValue),
		Subtotal:      stringToFloat(it.Subtotal),

		Discount: entities.Discount{
			Kind:   entities.DiscountKind(it.DiscountKind),
			Amount: stringToFloat(it.DiscountAmount),
		},
		DiscountValue: stringToFloat(it.DiscountValue),
		Total:         stringToFloat(it.Total),
		UnitValue:     stringToFloat(it.UnitValue),

		Notes:     it.Notes,
		QuoteID:   it.QuoteID,
		PaymentID: it.PaymentID,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
