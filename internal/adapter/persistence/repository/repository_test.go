package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeDynamo stores items keyed by table and primary key attribute values.
type fakeDynamo struct {
	items    map[string][]map[string]types.AttributeValue
	transact []*dynamodb.TransactWriteItemsInput
	updates  []*dynamodb.UpdateItemInput

	transactErr error
	updateErr   error
	updateOut   map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string][]map[string]types.AttributeValue)}
}

func attrS(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	for _, it := range f.items[aws.ToString(in.TableName)] {
		match := true
		for k, v := range in.Key {
			if attrS(it, k) != v.(*types.AttributeValueMemberS).Value {
				match = false
			}
		}
		if match {
			return &dynamodb.GetItemOutput{Item: it}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	table := aws.ToString(in.TableName)
	f.items[table] = append(f.items[table], in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	sid := in.ExpressionAttributeValues[":sid"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, it := range f.items[aws.ToString(in.TableName)] {
		if attrS(it, "session_id") == sid {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transact = append(f.transact, in)
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	for _, w := range in.TransactItems {
		table := aws.ToString(w.Put.TableName)
		f.items[table] = append(f.items[table], w.Put.Item)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleSession() entities.NegotiationSession {
	return entities.NegotiationSession{
		ID:     "neg-1",
		Status: entities.SessionStatusOpen,
		Items: []entities.LineItem{
			{SKU: "B001", Title: "Widget", Quantity: 500, TargetPrice: decPtr("3.8000")},
		},
		TargetPrice: decPtr("3.8"),
		SupplierIDs: []string{"SUP-001", "SUP-002"},
		MaxRounds:   3,
		CreatedBy:   "buyer",
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC),
	}
}

func TestNegotiationDynamoRepository_CreateAndGetSession(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewNegotiationDynamoRepository(ddb, "", "")

	created, err := repo.CreateSession(context.Background(), sampleSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Version != 1 {
		t.Fatalf("expected version 1, got %d", created.Version)
	}

	got, err := repo.GetSession(context.Background(), "neg-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.TargetPrice.Equal(decimal.RequireFromString("3.8")) || !got.Items[0].TargetPrice.Equal(decimal.RequireFromString("3.8")) {
		t.Fatalf("decimals not preserved: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at %v, got %v", created.CreatedAt, got.CreatedAt)
	}
	if got.CompletedAt != nil || got.FinalPrice != nil {
		t.Fatalf("expected unset optional fields, got %+v", got)
	}
	if len(got.SupplierIDs) != 2 || got.Version != 1 {
		t.Fatalf("unexpected session: %+v", got)
	}

	missing, err := repo.GetSession(context.Background(), "neg-404")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero session, got %+v err=%v", missing, err)
	}
}

func TestNegotiationDynamoRepository_CommitWritesOneTransaction(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewNegotiationDynamoRepository(ddb, "sessions", "rounds")

	s := sampleSession()
	s.Status = entities.SessionStatusQuoting
	s.CurrentRound = 2
	existing := entities.NegotiationRound{ID: "rnd-1", SessionID: s.ID, SupplierID: "SUP-001", RoundNumber: 1,
		OfferedPrice: decimal.RequireFromString("4.40"), TotalValue: decimal.RequireFromString("2200"), Status: entities.RoundStatusCountered}
	fresh := entities.NegotiationRound{ID: "rnd-2", SessionID: s.ID, SupplierID: "SUP-001", RoundNumber: 2,
		OfferType: entities.OfferTypeCounter, OfferedPrice: decimal.RequireFromString("4.365"),
		TotalValue: decimal.RequireFromString("2182.50"), Status: entities.RoundStatusReceived}

	got, err := repo.Commit(context.Background(), interfaces.NegotiationCommit{
		Session:         s,
		ExpectedVersion: 4,
		NewRounds:       []entities.NegotiationRound{fresh},
		UpdatedRounds:   []entities.NegotiationRound{existing},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Version != 5 {
		t.Fatalf("expected version 5, got %d", got.Version)
	}

	if len(ddb.transact) != 1 {
		t.Fatalf("expected a single transaction, got %d", len(ddb.transact))
	}
	writes := ddb.transact[0].TransactItems
	if len(writes) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(writes))
	}
	sessionPut := writes[0].Put
	if aws.ToString(sessionPut.TableName) != "sessions" {
		t.Fatalf("expected session write first, got %s", aws.ToString(sessionPut.TableName))
	}
	if v := sessionPut.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "4" {
		t.Fatalf("expected condition on version 4, got %s", v)
	}
	if c := aws.ToString(writes[1].Put.ConditionExpression); c != "attribute_exists(#rid)" {
		t.Fatalf("updated round must already exist, got %q", c)
	}
	if c := aws.ToString(writes[2].Put.ConditionExpression); c != "attribute_not_exists(#rid)" {
		t.Fatalf("new round must not exist, got %q", c)
	}

	rounds, err := repo.ListRounds(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(rounds))
	}
	for _, rd := range rounds {
		if rd.ID == "rnd-2" && !rd.OfferedPrice.Equal(decimal.RequireFromString("4.365")) {
			t.Fatalf("offered price not preserved: %s", rd.OfferedPrice)
		}
	}
}

func TestNegotiationDynamoRepository_CommitConflicts(t *testing.T) {
	cases := []struct {
		name      string
		reasons   []types.CancellationReason
		wantStale bool
	}{
		{
			name:      "session version moved",
			reasons:   []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}},
			wantStale: true,
		},
		{
			name:    "round condition failed",
			reasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ddb := newFakeDynamo()
			ddb.transactErr = &types.TransactionCanceledException{CancellationReasons: tc.reasons}
			repo := NewNegotiationDynamoRepository(ddb, "", "")

			_, err := repo.Commit(context.Background(), interfaces.NegotiationCommit{
				Session:         sampleSession(),
				ExpectedVersion: 1,
				NewRounds:       []entities.NegotiationRound{{ID: "rnd-1", SessionID: "neg-1"}},
			})
			if got := errors.Is(err, interfaces.ErrStaleVersion); got != tc.wantStale {
				t.Fatalf("expected stale=%v, got err=%v", tc.wantStale, err)
			}
			if err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestNegotiationDynamoRepository_CommitTooLarge(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewNegotiationDynamoRepository(ddb, "", "")

	rounds := make([]entities.NegotiationRound, maxTransactItems)
	_, err := repo.Commit(context.Background(), interfaces.NegotiationCommit{Session: sampleSession(), UpdatedRounds: rounds})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if len(ddb.transact) != 0 {
		t.Fatalf("expected no transaction to be sent")
	}
}

func sampleMandate() entities.PaymentMandate {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.PaymentMandate{
		ID:                 "ap2-0123456789",
		SupplierID:         "SUP-001",
		Amount:             decimal.RequireFromString("2182.50"),
		Currency:           "USD",
		MandateType:        entities.MandateTypeCheckout,
		SignedToken:        "a.b.c",
		SignatureAlgorithm: "RS256",
		PublicKeyID:        "key-1",
		Status:             entities.MandateStatusCreated,
		CreatedAt:          created,
		ExpiresAt:          created.Add(24 * time.Hour),
	}
}

func TestPaymentMandateDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewPaymentMandateDynamoRepository(ddb, "")

	created, err := repo.Create(context.Background(), sampleMandate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Version != 1 {
		t.Fatalf("expected version 1, got %d", created.Version)
	}

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("2182.5")) || !got.ExpiresAt.Equal(created.ExpiresAt) {
		t.Fatalf("unexpected mandate: %+v", got)
	}
	if got.ExecutedAt != nil {
		t.Fatalf("expected nil executed_at")
	}
}

func TestPaymentMandateDynamoRepository_Update(t *testing.T) {
	t.Run("returns stored record", func(t *testing.T) {
		m := sampleMandate()
		executed := m.CreatedAt.Add(time.Hour)
		m.Status = entities.MandateStatusExecuted
		m.ExecutedAt = &executed
		m.PONumber = "PO-1"

		stored := m
		stored.Version = 3
		out, err := attributevalue.MarshalMap(toMandateItem(stored))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		ddb := newFakeDynamo()
		ddb.updateOut = out
		repo := NewPaymentMandateDynamoRepository(ddb, "")

		got, err := repo.Update(context.Background(), m, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 3 || got.Status != entities.MandateStatusExecuted || got.ExecutedAt == nil {
			t.Fatalf("unexpected mandate: %+v", got)
		}

		in := ddb.updates[0]
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "2" {
			t.Fatalf("expected condition on version 2, got %s", v)
		}
		if v := in.ExpressionAttributeValues[":next"].(*types.AttributeValueMemberN).Value; v != "3" {
			t.Fatalf("expected next version 3, got %s", v)
		}
	})

	t.Run("condition failure is stale version", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.updateErr = &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
		repo := NewPaymentMandateDynamoRepository(ddb, "")

		_, err := repo.Update(context.Background(), sampleMandate(), 1)
		if !errors.Is(err, interfaces.ErrStaleVersion) {
			t.Fatalf("expected ErrStaleVersion, got %v", err)
		}
	})
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case **string:
			if v, ok := r.values[i].(string); ok {
				*p = &v
			}
		case *int:
			*p = r.values[i].(int)
		case **float64:
			if v, ok := r.values[i].(float64); ok {
				*p = &v
			}
		case *bool:
			*p = r.values[i].(bool)
		}
	}
	return nil
}

type fakeQuerier struct {
	row  fakeRow
	args []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	q.args = args
	return q.row
}

func TestSupplierPostgresCatalog_LookupSupplier(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{values: []any{"SUP-001", "Acme", "4.10", 7, 4.5, nil, true}}}
	catalog := NewSupplierPostgresCatalog(q)

	s, err := catalog.LookupSupplier(context.Background(), "SUP-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.args[0] != "SUP-001" {
		t.Fatalf("expected query by id, got %v", q.args)
	}
	if s.BaseCost == nil || !s.BaseCost.Equal(decimal.RequireFromString("4.1")) {
		t.Fatalf("unexpected base cost: %v", s.BaseCost)
	}
	if s.QualityRating == nil || *s.QualityRating != 4.5 || s.OnTimeRate != nil {
		t.Fatalf("unexpected metrics: %+v", s)
	}
}

func TestSupplierPostgresCatalog_NotFound(t *testing.T) {
	catalog := NewSupplierPostgresCatalog(&fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}})

	s, err := catalog.LookupSupplier(context.Background(), "SUP-404")
	if err != nil || s.ID != "" {
		t.Fatalf("expected zero supplier, got %+v err=%v", s, err)
	}
	p, err := catalog.LookupProduct(context.Background(), "NOPE")
	if err != nil || p.SKU != "" {
		t.Fatalf("expected zero product, got %+v err=%v", p, err)
	}
}

func TestSupplierPostgresCatalog_LookupProductError(t *testing.T) {
	boom := errors.New("connection reset")
	catalog := NewSupplierPostgresCatalog(&fakeQuerier{row: fakeRow{err: boom}})

	if _, err := catalog.LookupProduct(context.Background(), "B001"); !errors.Is(err, boom) {
		t.Fatalf("expected driver error, got %v", err)
	}
}
