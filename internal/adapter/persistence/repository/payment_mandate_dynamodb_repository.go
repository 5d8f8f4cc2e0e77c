package repository

import (
	"context"
	"errors"
	"strconv"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMandatesTableName = "payment_mandates"

type mandateItem struct {
	ID                    string `dynamodbav:"mandate_id"`
	SessionID             string `dynamodbav:"session_id,omitempty"`
	PONumber              string `dynamodbav:"po_number,omitempty"`
	SupplierID            string `dynamodbav:"supplier_id"`
	Amount                string `dynamodbav:"amount"`
	Currency              string `dynamodbav:"currency"`
	MandateType           string `dynamodbav:"mandate_type"`
	SignedToken           string `dynamodbav:"signed_mandate"`
	SignatureAlgorithm    string `dynamodbav:"signature_algorithm"`
	PublicKeyID           string `dynamodbav:"public_key_id"`
	MerchantAuthorization string `dynamodbav:"merchant_authorization,omitempty"`
	ProviderPaymentID     string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus        string `dynamodbav:"provider_status,omitempty"`
	Status                string `dynamodbav:"status"`
	CreatedAt             string `dynamodbav:"created_at"`
	ExpiresAt             string `dynamodbav:"expires_at"`
	ExecutedAt            string `dynamodbav:"executed_at,omitempty"`
	ErrorMessage          string `dynamodbav:"error_message,omitempty"`
	Version               int64  `dynamodbav:"version"`
}

// PaymentMandateDynamoRepository persists PaymentMandate records in DynamoDB.
//
// Table requirements:
//   - PK: mandate_id (string)
//
// Only the lifecycle fields are ever rewritten; the signed token, amount and expiry
// are fixed at creation.
type PaymentMandateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentMandateRepository = (*PaymentMandateDynamoRepository)(nil)

func NewPaymentMandateDynamoRepository(ddb DynamoAPI, tableName string) *PaymentMandateDynamoRepository {
	return &PaymentMandateDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultMandatesTableName),
	}
}

func (r *PaymentMandateDynamoRepository) Create(ctx context.Context, m entities.PaymentMandate) (entities.PaymentMandate, error) {
	m.Version = 1
	av, err := attributevalue.MarshalMap(toMandateItem(m))
	if err != nil {
		return entities.PaymentMandate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "mandate_id",
		},
	})
	if err != nil {
		return entities.PaymentMandate{}, err
	}
	return m, nil
}

func (r *PaymentMandateDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMandate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"mandate_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMandate{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMandate{}, nil
	}

	var it mandateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMandate{}, err
	}
	return fromMandateItem(it), nil
}

func (r *PaymentMandateDynamoRepository) Update(ctx context.Context, m entities.PaymentMandate, expectedVersion int64) (entities.PaymentMandate, error) {
	it := toMandateItem(m)
	expr := "SET #status = :status, #version = :next" +
		", #merchant_authorization = :merchant_authorization" +
		", #provider_payment_id = :provider_payment_id" +
		", #provider_status = :provider_status" +
		", #po_number = :po_number" +
		", #executed_at = :executed_at" +
		", #error_message = :error_message"
	vals := map[string]types.AttributeValue{
		":status":                 &types.AttributeValueMemberS{Value: it.Status},
		":next":                   &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		":expected":               &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		":merchant_authorization": &types.AttributeValueMemberS{Value: it.MerchantAuthorization},
		":provider_payment_id":    &types.AttributeValueMemberS{Value: it.ProviderPaymentID},
		":provider_status":        &types.AttributeValueMemberS{Value: it.ProviderStatus},
		":po_number":              &types.AttributeValueMemberS{Value: it.PONumber},
		":executed_at":            &types.AttributeValueMemberS{Value: it.ExecutedAt},
		":error_message":          &types.AttributeValueMemberS{Value: it.ErrorMessage},
	}
	names := mergeNames(map[string]string{
		"#id":      "mandate_id",
		"#status":  "status",
		"#version": "version",
	}, map[string]string{
		"#merchant_authorization": "merchant_authorization",
		"#provider_payment_id":    "provider_payment_id",
		"#provider_status":        "provider_status",
		"#po_number":              "po_number",
		"#executed_at":            "executed_at",
		"#error_message":          "error_message",
	})

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"mandate_id": &types.AttributeValueMemberS{Value: m.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentMandate{}, interfaces.ErrStaleVersion
		}
		return entities.PaymentMandate{}, err
	}

	var updated mandateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.PaymentMandate{}, err
	}
	return fromMandateItem(updated), nil
}

func toMandateItem(m entities.PaymentMandate) mandateItem {
	return mandateItem{
		ID:                    m.ID,
		SessionID:             m.SessionID,
		PONumber:              m.PONumber,
		SupplierID:            m.SupplierID,
		Amount:                m.Amount.String(),
		Currency:              m.Currency,
		MandateType:           string(m.MandateType),
		SignedToken:           m.SignedToken,
		SignatureAlgorithm:    m.SignatureAlgorithm,
		PublicKeyID:           m.PublicKeyID,
		MerchantAuthorization: m.MerchantAuthorization,
		ProviderPaymentID:     m.ProviderPaymentID,
		ProviderStatus:        m.ProviderStatus,
		Status:                string(m.Status),
		CreatedAt:             formatTime(m.CreatedAt),
		ExpiresAt:             formatTime(m.ExpiresAt),
		ExecutedAt:            formatTimePtr(m.ExecutedAt),
		ErrorMessage:          m.ErrorMessage,
		Version:               m.Version,
	}
}

func fromMandateItem(it mandateItem) entities.PaymentMandate {
	return entities.PaymentMandate{
		ID:                    it.ID,
		SessionID:             it.SessionID,
		PONumber:              it.PONumber,
		SupplierID:            it.SupplierID,
		Amount:                parseDecimal(it.Amount),
		Currency:              it.Currency,
		MandateType:           entities.MandateType(it.MandateType),
		SignedToken:           it.SignedToken,
		SignatureAlgorithm:    it.SignatureAlgorithm,
		PublicKeyID:           it.PublicKeyID,
		MerchantAuthorization: it.MerchantAuthorization,
		ProviderPaymentID:     it.ProviderPaymentID,
		ProviderStatus:        it.ProviderStatus,
		Status:                entities.MandateStatus(it.Status),
		CreatedAt:             parseTime(it.CreatedAt),
		ExpiresAt:             parseTime(it.ExpiresAt),
		ExecutedAt:            parseTimePtr(it.ExecutedAt),
		ErrorMessage:          it.ErrorMessage,
		Version:               it.Version,
	}
}
