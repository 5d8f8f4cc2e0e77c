package usecase

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"supplymind/internal/adapter/persistence/memory"
	"supplymind/internal/domain/entities"
	"supplymind/internal/infrastructure/signing"
	"supplymind/internal/usecase/interfaces"
	mock_interfaces "supplymind/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func sharedTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testKey = k
	})
	return testKey
}

type mandateFixture struct {
	uc    *PaymentMandateUseCase
	repo  *memory.PaymentMandateRepository
	clock *fakeClock
}

func newMandateFixture(t *testing.T, gateway interfaces.IPaymentGateway, autoVerify bool) mandateFixture {
	t.Helper()
	repo := memory.NewPaymentMandateRepository()
	clock := newFakeClock()
	keys := signing.NewStaticKeyProvider("supplymind-key-001", sharedTestKey(t))
	uc := NewPaymentMandateUseCase(repo, memory.NewDemoSupplierCatalog(), keys, gateway, clock, &seqIDs{},
		MandateOptions{Issuer: "SupplyMind", Audience: "ap2-payment-gateway", Validity: 24 * time.Hour, AutoVerifyOnExecute: autoVerify})
	return mandateFixture{uc: uc, repo: repo, clock: clock}
}

func (f mandateFixture) create(t *testing.T) entities.PaymentMandate {
	t.Helper()
	m, err := f.uc.CreateMandate(context.Background(), CreateMandateInput{
		SupplierID:   "SUP-001",
		Amount:       dec("2200.00"),
		Currency:     "usd",
		OrderDetails: map[string]any{"sku": "B001", "quantity": 500},
		SessionID:    "neg-0001",
		UserConsent:  true,
	})
	if err != nil {
		t.Fatalf("create mandate: %v", err)
	}
	return m
}

func TestPaymentMandateUseCase_CreateMandate(t *testing.T) {
	t.Run("consent required", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		_, err := f.uc.CreateMandate(context.Background(), CreateMandateInput{SupplierID: "SUP-001", Amount: dec("2200.00"), Currency: "USD", UserConsent: false})
		if !errors.Is(err, ErrConsentRequired) {
			t.Fatalf("expected ErrConsentRequired, got %v", err)
		}
	})

	t.Run("created with 24h validity", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		if m.Status != entities.MandateStatusCreated || m.ID != "ap2-0001" {
			t.Fatalf("unexpected mandate: %+v", m)
		}
		if !m.ExpiresAt.Equal(m.CreatedAt.Add(24 * time.Hour)) {
			t.Fatalf("expected expires_at = created_at + 24h, got %s / %s", m.CreatedAt, m.ExpiresAt)
		}
		if m.Currency != "USD" || m.MandateType != entities.MandateTypeCheckout || m.SignatureAlgorithm != "RS256" || m.PublicKeyID != "supplymind-key-001" {
			t.Fatalf("unexpected mandate: %+v", m)
		}
		if strings.Count(m.SignedToken, ".") != 2 {
			t.Fatalf("expected compact JWS, got %q", m.SignedToken)
		}
	})

	t.Run("signed amount is a json number", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)

		parts := strings.Split(m.SignedToken, ".")
		raw, err := base64.RawURLEncoding.DecodeString(parts[1])
		if err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		amount, ok := payload["amount"].(float64)
		if !ok || amount != 2200 {
			t.Fatalf("expected numeric amount 2200, got %#v", payload["amount"])
		}
	})

	t.Run("ids and timestamps come from injected sources", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clock := mock_interfaces.NewMockIClock(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		issuedAt := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
		uc := NewPaymentMandateUseCase(memory.NewPaymentMandateRepository(), memory.NewDemoSupplierCatalog(),
			signing.NewStaticKeyProvider("supplymind-key-001", sharedTestKey(t)), nil, clock, ids,
			MandateOptions{Issuer: "SupplyMind", Audience: "ap2-payment-gateway", Validity: time.Hour})

		clock.EXPECT().Now().Return(issuedAt).AnyTimes()
		ids.EXPECT().NewID("ap2", 10).Return("ap2-00c0ffee00")

		m, err := uc.CreateMandate(context.Background(), CreateMandateInput{SupplierID: "SUP-001", Amount: dec("99.90"), UserConsent: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != "ap2-00c0ffee00" || !m.CreatedAt.Equal(issuedAt) || !m.ExpiresAt.Equal(issuedAt.Add(time.Hour)) {
			t.Fatalf("unexpected mandate: %+v", m)
		}
	})

	t.Run("unknown supplier", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		_, err := f.uc.CreateMandate(context.Background(), CreateMandateInput{SupplierID: "SUP-999", Amount: dec("10"), UserConsent: true})
		if !errors.Is(err, ErrSupplierNotFound) {
			t.Fatalf("expected ErrSupplierNotFound, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		cases := []struct {
			in   CreateMandateInput
			want error
		}{
			{in: CreateMandateInput{SupplierID: "SUP-001", Amount: dec("0"), UserConsent: true}, want: ErrInvalidAmount},
			{in: CreateMandateInput{SupplierID: "SUP-001", Amount: dec("1"), Currency: "DOLLARS", UserConsent: true}, want: ErrInvalidCurrency},
			{in: CreateMandateInput{SupplierID: "SUP-001", Amount: dec("1"), MandateType: "subscription", UserConsent: true}, want: ErrInvalidMandateType},
			{in: CreateMandateInput{SupplierID: " ", Amount: dec("1"), UserConsent: true}, want: ErrInvalidSupplierID},
		}
		for _, tc := range cases {
			if _, err := f.uc.CreateMandate(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		}
	})

	t.Run("signing key unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		keys := mock_interfaces.NewMockISigningKeyProvider(ctrl)
		repo := mock_interfaces.NewMockIPaymentMandateRepository(ctrl)
		uc := NewPaymentMandateUseCase(repo, memory.NewDemoSupplierCatalog(), keys, nil, newFakeClock(), &seqIDs{}, MandateOptions{})

		keys.EXPECT().SigningKey(gomock.Any()).Return(interfaces.SigningKey{}, errors.New("vault down"))

		_, err := uc.CreateMandate(context.Background(), CreateMandateInput{SupplierID: "SUP-001", Amount: dec("1"), UserConsent: true})
		if err == nil || !strings.Contains(err.Error(), "vault down") {
			t.Fatalf("expected key error, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentMandateRepository(ctrl)
		uc := NewPaymentMandateUseCase(repo, memory.NewDemoSupplierCatalog(), signing.NewStaticKeyProvider("supplymind-key-001", sharedTestKey(t)), nil, newFakeClock(), &seqIDs{},
			MandateOptions{Issuer: "SupplyMind", Audience: "ap2-payment-gateway", Validity: 24 * time.Hour})

		storeErr := errors.New("table unavailable")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.PaymentMandate) (entities.PaymentMandate, error) {
			if m.Status != entities.MandateStatusCreated || m.SupplierID != "SUP-001" {
				t.Fatalf("unexpected mandate passed to repository: %+v", m)
			}
			return entities.PaymentMandate{}, storeErr
		})

		_, err := uc.CreateMandate(context.Background(), CreateMandateInput{SupplierID: "SUP-001", Amount: dec("1"), UserConsent: true})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}

func TestPaymentMandateUseCase_VerifyMandate(t *testing.T) {
	t.Run("round trip claims", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)

		res, err := f.uc.VerifyMandate(context.Background(), m.ID, "merchant-sig")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Valid || res.Mandate.Status != entities.MandateStatusVerified || res.Mandate.MerchantAuthorization != "merchant-sig" {
			t.Fatalf("unexpected result: %+v", res)
		}
		c := res.Claims
		if !c.Amount.Equal(dec("2200")) || c.Currency != "USD" || c.Subject != "SUP-001" || c.MandateID != m.ID || c.ID != m.ID {
			t.Fatalf("unexpected claims: %+v", c)
		}
		if c.Issuer != "SupplyMind" || c.SessionID != "neg-0001" || !c.UserConsent {
			t.Fatalf("unexpected claims: %+v", c)
		}
	})

	t.Run("verified without merchant authorization", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		res, err := f.uc.VerifyMandate(context.Background(), m.ID, "")
		if err != nil || !res.Valid || res.Mandate.Status != entities.MandateStatusVerified {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("valid at exactly expires_at", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		f.clock.Set(m.ExpiresAt)
		res, err := f.uc.VerifyMandate(context.Background(), m.ID, "")
		if err != nil || !res.Valid {
			t.Fatalf("expected valid at expires_at, got %+v err=%v", res, err)
		}
	})

	t.Run("expired one nanosecond after", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		f.clock.Set(m.ExpiresAt.Add(time.Nanosecond))

		res, err := f.uc.VerifyMandate(context.Background(), m.ID, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Valid || res.Mandate.Status != entities.MandateStatusExpired {
			t.Fatalf("expected expired, got %+v", res)
		}
		stored, _ := f.repo.GetByID(context.Background(), m.ID)
		if stored.Status != entities.MandateStatusExpired {
			t.Fatalf("expected stored status expired, got %s", stored.Status)
		}
	})

	t.Run("tampered token fails", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)

		tampered := m
		last := tampered.SignedToken[len(tampered.SignedToken)-2]
		repl := byte('A')
		if last == 'A' {
			repl = 'B'
		}
		tampered.SignedToken = tampered.SignedToken[:len(tampered.SignedToken)-2] + string(repl) + tampered.SignedToken[len(tampered.SignedToken)-1:]
		if _, err := f.repo.Update(context.Background(), tampered, m.Version); err != nil {
			t.Fatalf("update: %v", err)
		}

		res, err := f.uc.VerifyMandate(context.Background(), m.ID, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Valid || res.Mandate.Status != entities.MandateStatusFailed || res.Mandate.ErrorMessage == "" {
			t.Fatalf("expected failed, got %+v", res)
		}
	})

	t.Run("terminal mandates are not mutated", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		f.clock.Set(m.ExpiresAt.Add(time.Hour))
		_, _ = f.uc.VerifyMandate(context.Background(), m.ID, "")
		before, _ := f.repo.GetByID(context.Background(), m.ID)

		f.clock.Set(m.CreatedAt)
		res, err := f.uc.VerifyMandate(context.Background(), m.ID, "late-auth")
		if err != nil || res.Valid {
			t.Fatalf("expected invalid result, got %+v err=%v", res, err)
		}
		after, _ := f.repo.GetByID(context.Background(), m.ID)
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("terminal mandate changed:\n%+v\n%+v", before, after)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		if _, err := f.uc.VerifyMandate(context.Background(), "ap2-missing", ""); !errors.Is(err, ErrMandateNotFound) {
			t.Fatalf("expected ErrMandateNotFound, got %v", err)
		}
	})

	t.Run("signed by another key", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)

		other, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		uc := NewPaymentMandateUseCase(f.repo, memory.NewDemoSupplierCatalog(), signing.NewStaticKeyProvider("supplymind-key-001", other), nil, f.clock, &seqIDs{}, MandateOptions{})
		res, err := uc.VerifyMandate(context.Background(), m.ID, "")
		if err != nil || res.Valid || res.Mandate.Status != entities.MandateStatusFailed {
			t.Fatalf("expected failed, got %+v err=%v", res, err)
		}
	})

	t.Run("wrong audience fails", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		uc := NewPaymentMandateUseCase(f.repo, memory.NewDemoSupplierCatalog(), signing.NewStaticKeyProvider("supplymind-key-001", sharedTestKey(t)), nil, f.clock, &seqIDs{},
			MandateOptions{Audience: "another-gateway"})
		res, err := uc.VerifyMandate(context.Background(), m.ID, "")
		if err != nil || res.Valid || res.Mandate.Status != entities.MandateStatusFailed {
			t.Fatalf("expected failed, got %+v err=%v", res, err)
		}
	})
}

func TestPaymentMandateUseCase_ExecutePayment(t *testing.T) {
	t.Run("verified mandate executes", func(t *testing.T) {
		f := newMandateFixture(t, nil, false)
		m := f.create(t)
		if _, err := f.uc.VerifyMandate(context.Background(), m.ID, ""); err != nil {
			t.Fatalf("verify: %v", err)
		}

		got, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-2026-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.MandateStatusExecuted || got.ExecutedAt == nil || got.PONumber != "PO-2026-0001" {
			t.Fatalf("unexpected mandate: %+v", got)
		}
	})

	t.Run("created mandate auto-verifies", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		got, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-1")
		if err != nil || got.Status != entities.MandateStatusExecuted {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("created mandate without auto-verify", func(t *testing.T) {
		f := newMandateFixture(t, nil, false)
		m := f.create(t)
		if _, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-1"); !errors.Is(err, ErrMandateNotVerified) {
			t.Fatalf("expected ErrMandateNotVerified, got %v", err)
		}
	})

	t.Run("auto-verify of expired mandate", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		f.clock.Set(m.ExpiresAt.Add(time.Second))
		if _, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-1"); !errors.Is(err, ErrMandateExpired) {
			t.Fatalf("expected ErrMandateExpired, got %v", err)
		}
		stored, _ := f.repo.GetByID(context.Background(), m.ID)
		if stored.Status != entities.MandateStatusExpired {
			t.Fatalf("expected expired, got %s", stored.Status)
		}
	})

	t.Run("verified mandate past expiry", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		_, _ = f.uc.VerifyMandate(context.Background(), m.ID, "")
		f.clock.Set(m.ExpiresAt.Add(time.Minute))
		if _, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-1"); !errors.Is(err, ErrMandateExpired) {
			t.Fatalf("expected ErrMandateExpired, got %v", err)
		}
	})

	t.Run("executed mandate cannot run twice", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		if _, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-1"); !errors.Is(err, ErrMandateNotExecutable) {
			t.Fatalf("expected ErrMandateNotExecutable, got %v", err)
		}
	})

	t.Run("po number required", func(t *testing.T) {
		f := newMandateFixture(t, nil, true)
		m := f.create(t)
		if _, err := f.uc.ExecutePayment(context.Background(), m.ID, " "); !errors.Is(err, ErrInvalidPONumber) {
			t.Fatalf("expected ErrInvalidPONumber, got %v", err)
		}
	})

	t.Run("gateway handoff records provider result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		f := newMandateFixture(t, gateway, true)
		m := f.create(t)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if body["external_reference"] != "PO-7" || body["transaction_amount"] != 2200.0 {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return "pay-123", "approved", json.RawMessage(`{}`), nil
			},
		)

		got, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProviderPaymentID != "pay-123" || got.ProviderStatus != "approved" {
			t.Fatalf("unexpected mandate: %+v", got)
		}
	})

	t.Run("gateway failure marks mandate failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		f := newMandateFixture(t, gateway, true)
		m := f.create(t)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("declined"))

		if _, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-7"); !errors.Is(err, ErrPaymentGatewayFailed) {
			t.Fatalf("expected ErrPaymentGatewayFailed, got %v", err)
		}
		stored, _ := f.repo.GetByID(context.Background(), m.ID)
		if stored.Status != entities.MandateStatusFailed || stored.ErrorMessage != "declined" {
			t.Fatalf("unexpected stored mandate: %+v", stored)
		}
	})
}

func TestPaymentMandateUseCase_ExecutePayment_ConcurrentSingleWinner(t *testing.T) {
	f := newMandateFixture(t, nil, true)
	m := f.create(t)

	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.uc.ExecutePayment(context.Background(), m.ID, "PO-1"); err == nil {
				wins.Add(1)
			} else if !errors.Is(err, ErrMandateNotExecutable) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("expected exactly one execution, got %d", wins.Load())
	}
}

func TestPaymentMandateUseCase_StaleWriteIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentMandateRepository(ctrl)
	f := newMandateFixture(t, nil, true)
	m := f.create(t)
	uc := NewPaymentMandateUseCase(repo, memory.NewDemoSupplierCatalog(), signing.NewStaticKeyProvider("supplymind-key-001", sharedTestKey(t)), nil, f.clock, &seqIDs{},
		MandateOptions{AutoVerifyOnExecute: true})

	repo.EXPECT().GetByID(gomock.Any(), m.ID).Return(m, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), m.Version).Return(entities.PaymentMandate{}, interfaces.ErrStaleVersion)

	if _, err := uc.VerifyMandate(context.Background(), m.ID, ""); !errors.Is(err, ErrConcurrentUpdate) {
		t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
	}
}

func TestPaymentMandateUseCase_GetPublicKey(t *testing.T) {
	f := newMandateFixture(t, nil, true)
	a, err := f.uc.GetPublicKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := f.uc.GetPublicKey(context.Background())
	if a != b {
		t.Fatalf("public key differs between calls")
	}
	if a.KeyID != "supplymind-key-001" || a.Algorithm != "RS256" || !strings.HasPrefix(a.PublicKeyPEM, "-----BEGIN PUBLIC KEY-----") {
		t.Fatalf("unexpected key info: %+v", a)
	}
}

func TestPaymentMandateUseCase_GetMandate(t *testing.T) {
	f := newMandateFixture(t, nil, true)
	m := f.create(t)

	got, err := f.uc.GetMandate(context.Background(), m.ID)
	if err != nil || got.ID != m.ID {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
	if _, err := f.uc.GetMandate(context.Background(), "ap2-none"); !errors.Is(err, ErrMandateNotFound) {
		t.Fatalf("expected ErrMandateNotFound, got %v", err)
	}
	if _, err := f.uc.GetMandate(context.Background(), ""); !errors.Is(err, ErrInvalidMandateID) {
		t.Fatalf("expected ErrInvalidMandateID, got %v", err)
	}
}
