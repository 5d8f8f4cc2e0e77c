package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName = "negotiation_sessions"
	defaultRoundsTableName   = "negotiation_rounds"

	// TransactWriteItems accepts at most 100 actions.
	maxTransactItems = 100
)

type lineItemAttr struct {
	SKU         string `dynamodbav:"sku"`
	Title       string `dynamodbav:"title,omitempty"`
	Quantity    int    `dynamodbav:"quantity"`
	TargetPrice string `dynamodbav:"target_price,omitempty"`
}

type sessionItem struct {
	ID                string         `dynamodbav:"session_id"`
	Status            string         `dynamodbav:"status"`
	Items             []lineItemAttr `dynamodbav:"items"`
	TargetPrice       string         `dynamodbav:"target_price,omitempty"`
	SupplierIDs       []string       `dynamodbav:"supplier_ids,omitempty"`
	MaxRounds         int            `dynamodbav:"max_rounds"`
	CurrentRound      int            `dynamodbav:"current_round"`
	WinningSupplierID string         `dynamodbav:"winning_supplier_id,omitempty"`
	FinalPrice        string         `dynamodbav:"final_price,omitempty"`
	TotalValue        string         `dynamodbav:"total_value,omitempty"`
	Notes             string         `dynamodbav:"notes,omitempty"`
	CreatedBy         string         `dynamodbav:"created_by,omitempty"`
	CreatedAt         string         `dynamodbav:"created_at"`
	CompletedAt       string         `dynamodbav:"completed_at,omitempty"`
	Version           int64          `dynamodbav:"version"`
}

type roundItem struct {
	SessionID          string `dynamodbav:"session_id"`
	ID                 string `dynamodbav:"round_id"`
	SupplierID         string `dynamodbav:"supplier_id"`
	RoundNumber        int    `dynamodbav:"round_number"`
	OfferType          string `dynamodbav:"offer_type"`
	OfferedPrice       string `dynamodbav:"offered_price"`
	TotalValue         string `dynamodbav:"total_value"`
	CounterPrice       string `dynamodbav:"counter_price,omitempty"`
	Justification      string `dynamodbav:"justification,omitempty"`
	Status             string `dynamodbav:"status"`
	CreatedAt          string `dynamodbav:"created_at"`
	ResponseReceivedAt string `dynamodbav:"response_received_at,omitempty"`
}

// NegotiationDynamoRepository persists sessions and rounds in DynamoDB.
//
// Table requirements:
//   - negotiation_sessions: PK session_id (string)
//   - negotiation_rounds: PK session_id (string), SK round_id (string)
//
// Rounds share the session partition so ListRounds is a single strongly consistent Query.
// Every Commit is one TransactWriteItems call: the session put is conditioned on the
// version the caller read, so a lost race cancels the whole transaction.
type NegotiationDynamoRepository struct {
	ddb           DynamoAPI
	sessionsTable string
	roundsTable   string
}

var _ interfaces.INegotiationRepository = (*NegotiationDynamoRepository)(nil)

func NewNegotiationDynamoRepository(ddb DynamoAPI, sessionsTable, roundsTable string) *NegotiationDynamoRepository {
	return &NegotiationDynamoRepository{
		ddb:           ddb,
		sessionsTable: tableOrDefault(sessionsTable, defaultSessionsTableName),
		roundsTable:   tableOrDefault(roundsTable, defaultRoundsTableName),
	}
}

func (r *NegotiationDynamoRepository) CreateSession(ctx context.Context, s entities.NegotiationSession) (entities.NegotiationSession, error) {
	s.Version = 1
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.NegotiationSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.sessionsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "session_id",
		},
	})
	if err != nil {
		return entities.NegotiationSession{}, err
	}
	return s, nil
}

func (r *NegotiationDynamoRepository) GetSession(ctx context.Context, id string) (entities.NegotiationSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.sessionsTable),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.NegotiationSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.NegotiationSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.NegotiationSession{}, err
	}
	return fromSessionItem(it), nil
}

func (r *NegotiationDynamoRepository) ListRounds(ctx context.Context, sessionID string) ([]entities.NegotiationRound, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.roundsTable),
		KeyConditionExpression: aws.String("#sid = :sid"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "session_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})

	var rounds []entities.NegotiationRound
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []roundItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rounds = append(rounds, fromRoundItem(it))
		}
	}
	return rounds, nil
}

func (r *NegotiationDynamoRepository) Commit(ctx context.Context, c interfaces.NegotiationCommit) (entities.NegotiationSession, error) {
	if n := 1 + len(c.NewRounds) + len(c.UpdatedRounds); n > maxTransactItems {
		return entities.NegotiationSession{}, fmt.Errorf("commit of %d writes exceeds transaction limit", n)
	}

	s := c.Session
	s.Version = c.ExpectedVersion + 1
	sessionAV, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.NegotiationSession{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.sessionsTable),
			Item:                sessionAV,
			ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "session_id",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(c.ExpectedVersion, 10)},
			},
		},
	}}

	for _, rd := range c.UpdatedRounds {
		put, err := r.roundPut(rd, "attribute_exists(#rid)")
		if err != nil {
			return entities.NegotiationSession{}, err
		}
		writes = append(writes, types.TransactWriteItem{Put: put})
	}
	for _, rd := range c.NewRounds {
		put, err := r.roundPut(rd, "attribute_not_exists(#rid)")
		if err != nil {
			return entities.NegotiationSession{}, err
		}
		writes = append(writes, types.TransactWriteItem{Put: put})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		if sessionConditionFailed(err) {
			return entities.NegotiationSession{}, interfaces.ErrStaleVersion
		}
		return entities.NegotiationSession{}, err
	}
	return s, nil
}

func (r *NegotiationDynamoRepository) roundPut(rd entities.NegotiationRound, condition string) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toRoundItem(rd))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(r.roundsTable),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#rid": "round_id",
		},
	}, nil
}

// sessionConditionFailed reports whether the transaction was cancelled because the
// session version check (always the first action) did not hold.
func sessionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if len(tce.CancellationReasons) == 0 {
		return false
	}
	return aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed"
}

func toSessionItem(s entities.NegotiationSession) sessionItem {
	items := make([]lineItemAttr, 0, len(s.Items))
	for _, li := range s.Items {
		items = append(items, lineItemAttr{
			SKU:         li.SKU,
			Title:       li.Title,
			Quantity:    li.Quantity,
			TargetPrice: formatDecimalPtr(li.TargetPrice),
		})
	}
	return sessionItem{
		ID:                s.ID,
		Status:            string(s.Status),
		Items:             items,
		TargetPrice:       formatDecimalPtr(s.TargetPrice),
		SupplierIDs:       s.SupplierIDs,
		MaxRounds:         s.MaxRounds,
		CurrentRound:      s.CurrentRound,
		WinningSupplierID: s.WinningSupplierID,
		FinalPrice:        formatDecimalPtr(s.FinalPrice),
		TotalValue:        formatDecimalPtr(s.TotalValue),
		Notes:             s.Notes,
		CreatedBy:         s.CreatedBy,
		CreatedAt:         formatTime(s.CreatedAt),
		CompletedAt:       formatTimePtr(s.CompletedAt),
		Version:           s.Version,
	}
}

func fromSessionItem(it sessionItem) entities.NegotiationSession {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{
			SKU:         li.SKU,
			Title:       li.Title,
			Quantity:    li.Quantity,
			TargetPrice: parseDecimalPtr(li.TargetPrice),
		})
	}
	return entities.NegotiationSession{
		ID:                it.ID,
		Status:            entities.SessionStatus(it.Status),
		Items:             items,
		TargetPrice:       parseDecimalPtr(it.TargetPrice),
		SupplierIDs:       it.SupplierIDs,
		MaxRounds:         it.MaxRounds,
		CurrentRound:      it.CurrentRound,
		WinningSupplierID: it.WinningSupplierID,
		FinalPrice:        parseDecimalPtr(it.FinalPrice),
		TotalValue:        parseDecimalPtr(it.TotalValue),
		Notes:             it.Notes,
		CreatedBy:         it.CreatedBy,
		CreatedAt:         parseTime(it.CreatedAt),
		CompletedAt:       parseTimePtr(it.CompletedAt),
		Version:           it.Version,
	}
}

func toRoundItem(rd entities.NegotiationRound) roundItem {
	return roundItem{
		SessionID:          rd.SessionID,
		ID:                 rd.ID,
		SupplierID:         rd.SupplierID,
		RoundNumber:        rd.RoundNumber,
		OfferType:          string(rd.OfferType),
		OfferedPrice:       rd.OfferedPrice.String(),
		TotalValue:         rd.TotalValue.String(),
		CounterPrice:       formatDecimalPtr(rd.CounterPrice),
		Justification:      rd.Justification,
		Status:             string(rd.Status),
		CreatedAt:          formatTime(rd.CreatedAt),
		ResponseReceivedAt: formatTimePtr(rd.ResponseReceivedAt),
	}
}

func fromRoundItem(it roundItem) entities.NegotiationRound {
	return entities.NegotiationRound{
		ID:                 it.ID,
		SessionID:          it.SessionID,
		SupplierID:         it.SupplierID,
		RoundNumber:        it.RoundNumber,
		OfferType:          entities.OfferType(it.OfferType),
		OfferedPrice:       parseDecimal(it.OfferedPrice),
		TotalValue:         parseDecimal(it.TotalValue),
		CounterPrice:       parseDecimalPtr(it.CounterPrice),
		Justification:      it.Justification,
		Status:             entities.RoundStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		ResponseReceivedAt: parseTimePtr(it.ResponseReceivedAt),
	}
}
