package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/events"
	"github.com/dukerupert/tenancy/internal/notify"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockLinkMailer struct {
	sent []notify.ContributionLinkEmail
}

func (m *mockLinkMailer) SendContributionLink(ctx context.Context, data notify.ContributionLinkEmail) error {
	m.sent = append(m.sent, data)
	return nil
}

type splitFixture struct {
	store   *fakeStore
	gateway *billing.MockProvider
	mailer  *mockLinkMailer
	events  *events.Recorder
	svc     *splitPaymentService
	now     time.Time
}

func newSplitFixture(t *testing.T) *splitFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &splitFixture{
		store:   &fakeStore{MockQuerier: repository.NewMockQuerier(ctrl)},
		gateway: billing.NewMockProvider(),
		mailer:  &mockLinkMailer{},
		events:  &events.Recorder{},
		now:     time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewSplitPaymentService(f.store, f.gateway, f.mailer, f.events, "https://app.example.com", testLogger()).(*splitPaymentService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func threeWay(total int64) []domain.Contributor {
	share := decimal.NewFromInt(total / 3)
	return []domain.Contributor{
		{Name: "Ana", Email: "ana@example.com", Amount: share},
		{Name: "Ben", Email: "ben@example.com", Amount: share},
		{Name: "Cy", Email: "cy@example.com", Amount: share},
	}
}

func TestSplitPaymentService_CreateSplitPayment(t *testing.T) {
	f := newSplitFixture(t)

	invoiceID := uuid.New()
	splitID := uuid.New()
	items := []domain.LineItem{{Description: "Rent", Amount: decimal.NewFromInt(1200)}}
	contributors := threeWay(1200)

	f.store.EXPECT().GetInvoiceDetail(gomock.Any(), invoiceID).
		Return(invoiceRow(invoiceID, items, "pending", f.now.AddDate(0, 0, 10)), nil)

	f.store.EXPECT().CreatePaymentSplit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreatePaymentSplitParams) (repository.PaymentSplit, error) {
			assert.Equal(t, invoiceID, arg.InvoiceID)
			assert.True(t, decimal.NewFromInt(1200).Equal(arg.TotalAmount))
			assert.Equal(t, f.now.Add(domain.SplitExpiry), arg.ExpiresAt)
			return repository.PaymentSplit{
				ID:           splitID,
				InvoiceID:    arg.InvoiceID,
				TotalAmount:  arg.TotalAmount,
				Contributors: arg.Contributors,
				Status:       "pending",
				ExpiresAt:    arg.ExpiresAt,
				CreatedAt:    f.now,
			}, nil
		})
	f.store.EXPECT().CreateSplitContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateSplitContributionParams) (repository.SplitContribution, error) {
			assert.Equal(t, splitID, arg.SplitID)
			assert.NotEmpty(t, arg.PaymentLink)
			return repository.SplitContribution{
				ID:               uuid.New(),
				SplitID:          arg.SplitID,
				ContributorName:  arg.ContributorName,
				ContributorEmail: arg.ContributorEmail,
				Amount:           arg.Amount,
				Status:           "pending",
				PaymentLink:      arg.PaymentLink,
			}, nil
		}).Times(3)

	split, err := f.svc.CreateSplitPayment(context.Background(), CreateSplitParams{
		InvoiceID:    invoiceID,
		TotalAmount:  decimal.NewFromInt(1200),
		Contributors: contributors,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SplitStatusPending, split.Status)
	assert.Equal(t, contributors, split.Contributors)
	require.Len(t, split.Contributions, 3)

	links := map[string]bool{}
	for i, c := range split.Contributions {
		assert.Equal(t, domain.ContributionStatusPending, c.Status)
		assert.True(t, decimal.NewFromInt(400).Equal(c.Amount))
		assert.Equal(t, contributors[i].Email, c.ContributorEmail)
		links[c.PaymentLink] = true
	}
	assert.Len(t, links, 3, "each contribution gets its own link")

	assert.Equal(t, 1, f.store.txCalls)
	assert.Len(t, f.gateway.Calls(), 3)

	require.Len(t, f.mailer.sent, 3)
	assert.Equal(t, "$400.00", f.mailer.sent[0].Amount)
	assert.Equal(t, "Dana Ruiz", f.mailer.sent[0].RequesterName)
	assert.Equal(t, "https://app.example.com/pay/"+split.Contributions[0].PaymentLink, f.mailer.sent[0].PaymentURL)
}

func TestSplitPaymentService_CreateSplitPayment_RejectsBeforeSideEffects(t *testing.T) {
	tests := []struct {
		name         string
		total        decimal.Decimal
		contributors []domain.Contributor
		validation   bool
	}{
		{
			name:  "shares do not add up",
			total: decimal.NewFromInt(1200),
			contributors: []domain.Contributor{
				{Name: "Ana", Email: "ana@example.com", Amount: decimal.NewFromInt(400)},
				{Name: "Ben", Email: "ben@example.com", Amount: decimal.NewFromInt(400)},
				{Name: "Cy", Email: "cy@example.com", Amount: decimal.NewFromInt(300)},
			},
		},
		{
			name:  "one cent over",
			total: decimal.RequireFromString("100.00"),
			contributors: []domain.Contributor{
				{Name: "Ana", Email: "ana@example.com", Amount: decimal.RequireFromString("50.00")},
				{Name: "Ben", Email: "ben@example.com", Amount: decimal.RequireFromString("50.01")},
			},
		},
		{
			name:         "no contributors",
			total:        decimal.NewFromInt(100),
			contributors: nil,
			validation:   true,
		},
		{
			name:  "bad email",
			total: decimal.NewFromInt(100),
			contributors: []domain.Contributor{
				{Name: "Ana", Email: "not-an-email", Amount: decimal.NewFromInt(100)},
			},
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: any call fails the test.
			f := newSplitFixture(t)

			_, err := f.svc.CreateSplitPayment(context.Background(), CreateSplitParams{
				InvoiceID:    uuid.New(),
				TotalAmount:  tt.total,
				Contributors: tt.contributors,
			})
			require.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
			assert.Equal(t, tt.validation, domain.IsValidationError(err))

			assert.Empty(t, f.gateway.Calls())
			assert.Zero(t, f.store.txCalls)
			assert.Empty(t, f.mailer.sent)
		})
	}
}

func TestSplitPaymentService_CreateSplitPayment_PaidInvoice(t *testing.T) {
	f := newSplitFixture(t)

	invoiceID := uuid.New()
	items := []domain.LineItem{{Description: "Rent", Amount: decimal.NewFromInt(1200)}}
	f.store.EXPECT().GetInvoiceDetail(gomock.Any(), invoiceID).
		Return(invoiceRow(invoiceID, items, "paid", f.now), nil)

	_, err := f.svc.CreateSplitPayment(context.Background(), CreateSplitParams{
		InvoiceID:    invoiceID,
		TotalAmount:  decimal.NewFromInt(1200),
		Contributors: threeWay(1200),
	})
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	assert.Empty(t, f.gateway.Calls())
}

func TestSplitPaymentService_CreateSplitPayment_UnknownInvoice(t *testing.T) {
	f := newSplitFixture(t)

	f.store.EXPECT().GetInvoiceDetail(gomock.Any(), gomock.Any()).
		Return(repository.InvoiceDetailRow{}, sql.ErrNoRows)

	_, err := f.svc.CreateSplitPayment(context.Background(), CreateSplitParams{
		InvoiceID:    uuid.New(),
		TotalAmount:  decimal.NewFromInt(1200),
		Contributors: threeWay(1200),
	})
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestSplitPaymentService_CreateSplitPayment_RollsBack(t *testing.T) {
	f := newSplitFixture(t)

	invoiceID := uuid.New()
	items := []domain.LineItem{{Description: "Rent", Amount: decimal.NewFromInt(1200)}}
	f.store.EXPECT().GetInvoiceDetail(gomock.Any(), invoiceID).
		Return(invoiceRow(invoiceID, items, "pending", f.now), nil)
	f.store.EXPECT().CreatePaymentSplit(gomock.Any(), gomock.Any()).
		Return(repository.PaymentSplit{ID: uuid.New(), InvoiceID: invoiceID, Status: "pending"}, nil)
	gomock.InOrder(
		f.store.EXPECT().CreateSplitContribution(gomock.Any(), gomock.Any()).
			Return(repository.SplitContribution{ID: uuid.New(), Status: "pending"}, nil),
		f.store.EXPECT().CreateSplitContribution(gomock.Any(), gomock.Any()).
			Return(repository.SplitContribution{}, errors.New("connection reset")),
	)

	split, err := f.svc.CreateSplitPayment(context.Background(), CreateSplitParams{
		InvoiceID:    invoiceID,
		TotalAmount:  decimal.NewFromInt(1200),
		Contributors: threeWay(1200),
	})
	assert.Nil(t, split)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
	assert.Empty(t, f.mailer.sent, "no emails for a rolled back split")
}

func TestSplitPaymentService_CreateSplitPayment_GatewayFailure(t *testing.T) {
	f := newSplitFixture(t)
	f.gateway.CreatePaymentLinkFunc = func(ctx context.Context, params billing.CreatePaymentLinkParams) (*billing.PaymentLink, error) {
		return nil, &billing.GatewayError{Message: "rate limited", StatusCode: 429}
	}

	invoiceID := uuid.New()
	items := []domain.LineItem{{Description: "Rent", Amount: decimal.NewFromInt(1200)}}
	f.store.EXPECT().GetInvoiceDetail(gomock.Any(), invoiceID).
		Return(invoiceRow(invoiceID, items, "pending", f.now), nil)

	_, err := f.svc.CreateSplitPayment(context.Background(), CreateSplitParams{
		InvoiceID:    invoiceID,
		TotalAmount:  decimal.NewFromInt(1200),
		Contributors: threeWay(1200),
	})
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
	assert.Zero(t, f.store.txCalls)
}

// splitState simulates the rows touched by UpdateContributionStatus.
type splitState struct {
	split         repository.PaymentSplit
	contributions []repository.SplitContribution
	invoicePaid   bool
}

func newSplitState(n int) *splitState {
	splitID := uuid.New()
	contributors, _ := json.Marshal(threeWay(1200))
	st := &splitState{
		split: repository.PaymentSplit{
			ID:           splitID,
			InvoiceID:    uuid.New(),
			TotalAmount:  decimal.NewFromInt(1200),
			Contributors: contributors,
			Status:       "pending",
			ExpiresAt:    time.Now().Add(domain.SplitExpiry),
		},
	}
	for i := 0; i < n; i++ {
		st.contributions = append(st.contributions, repository.SplitContribution{
			ID:      uuid.New(),
			SplitID: splitID,
			Amount:  decimal.NewFromInt(400),
			Status:  "pending",
		})
	}
	return st
}

// expect wires the mock querier to read and write the in-memory state.
func (st *splitState) expect(q *repository.MockQuerier) {
	q.EXPECT().GetSplitContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (repository.SplitContribution, error) {
			for _, c := range st.contributions {
				if c.ID == id {
					return c, nil
				}
			}
			return repository.SplitContribution{}, sql.ErrNoRows
		}).AnyTimes()
	q.EXPECT().UpdateSplitContributionStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdateSplitContributionStatusParams) (repository.SplitContribution, error) {
			for i := range st.contributions {
				if st.contributions[i].ID == arg.ID {
					st.contributions[i].Status = arg.Status
					return st.contributions[i], nil
				}
			}
			return repository.SplitContribution{}, sql.ErrNoRows
		}).AnyTimes()
	q.EXPECT().GetPaymentSplitForUpdate(gomock.Any(), st.split.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (repository.PaymentSplit, error) {
			return st.split, nil
		}).AnyTimes()
	q.EXPECT().CountUnpaidContributions(gomock.Any(), st.split.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (int64, error) {
			var n int64
			for _, c := range st.contributions {
				if c.Status != "paid" {
					n++
				}
			}
			return n, nil
		}).AnyTimes()
	q.EXPECT().UpdatePaymentSplitStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdatePaymentSplitStatusParams) (repository.PaymentSplit, error) {
			st.split.Status = arg.Status
			return st.split, nil
		}).AnyTimes()
	q.EXPECT().UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdateInvoiceStatusParams) (repository.Invoice, error) {
			if arg.ID == st.split.InvoiceID && arg.Status == "paid" {
				st.invoicePaid = true
			}
			return repository.Invoice{ID: arg.ID, Status: arg.Status}, nil
		}).AnyTimes()
	q.EXPECT().ListSplitContributions(gomock.Any(), st.split.ID).
		DoAndReturn(func(context.Context, uuid.UUID) ([]repository.SplitContribution, error) {
			return append([]repository.SplitContribution(nil), st.contributions...), nil
		}).AnyTimes()
}

func TestSplitPaymentService_UpdateContributionStatus_CompletesWhenAllPaid(t *testing.T) {
	f := newSplitFixture(t)
	st := newSplitState(3)
	st.expect(f.store.MockQuerier)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		split, err := f.svc.UpdateContributionStatus(ctx, st.contributions[i].ID, domain.ContributionStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, domain.SplitStatusPending, split.Status, "after %d payments", i+1)
	}
	assert.False(t, st.invoicePaid)
	assert.Equal(t, []string{events.SubjectContributionPaid, events.SubjectContributionPaid}, f.events.Subjects())

	split, err := f.svc.UpdateContributionStatus(ctx, st.contributions[2].ID, domain.ContributionStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.SplitStatusCompleted, split.Status)
	assert.True(t, st.invoicePaid)
	for _, c := range split.Contributions {
		assert.Equal(t, domain.ContributionStatusPaid, c.Status)
	}

	assert.Equal(t, []string{
		events.SubjectContributionPaid,
		events.SubjectContributionPaid,
		events.SubjectContributionPaid,
		events.SubjectSplitCompleted,
		events.SubjectInvoicePaid,
	}, f.events.Subjects())
	assert.Equal(t, 3, f.store.txCalls)
}

func TestSplitPaymentService_UpdateContributionStatus_PartialStaysPending(t *testing.T) {
	f := newSplitFixture(t)
	st := newSplitState(3)
	st.expect(f.store.MockQuerier)

	for i := 0; i < 2; i++ {
		_, err := f.svc.UpdateContributionStatus(context.Background(), st.contributions[i].ID, domain.ContributionStatusPaid)
		require.NoError(t, err)
	}

	assert.Equal(t, "pending", st.split.Status)
	assert.False(t, st.invoicePaid)
	assert.Equal(t, "pending", st.contributions[2].Status)
}

func TestSplitPaymentService_UpdateContributionStatus_CompletedOnce(t *testing.T) {
	f := newSplitFixture(t)
	st := newSplitState(1)
	st.expect(f.store.MockQuerier)

	id := st.contributions[0].ID
	_, err := f.svc.UpdateContributionStatus(context.Background(), id, domain.ContributionStatusPaid)
	require.NoError(t, err)

	// Repeating the update on a completed split is refused and publishes nothing.
	_, err = f.svc.UpdateContributionStatus(context.Background(), id, domain.ContributionStatusPaid)
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))

	var completed int
	for _, s := range f.events.Subjects() {
		if s == events.SubjectSplitCompleted {
			completed++
		}
	}
	assert.Equal(t, 1, completed)
}

func TestSplitPaymentService_UpdateContributionStatus_PaidIsFinal(t *testing.T) {
	t.Run("completed split cannot reopen", func(t *testing.T) {
		f := newSplitFixture(t)
		st := newSplitState(1)
		st.expect(f.store.MockQuerier)

		id := st.contributions[0].ID
		_, err := f.svc.UpdateContributionStatus(context.Background(), id, domain.ContributionStatusPaid)
		require.NoError(t, err)

		_, err = f.svc.UpdateContributionStatus(context.Background(), id, domain.ContributionStatusPending)
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
		assert.Equal(t, domain.ErrSplitCompleted.Message, domain.ErrorMessage(err))

		assert.Equal(t, "paid", st.contributions[0].Status)
		assert.Equal(t, "completed", st.split.Status)
		assert.True(t, st.invoicePaid)
	})

	t.Run("paid share on pending split cannot reopen", func(t *testing.T) {
		f := newSplitFixture(t)
		st := newSplitState(2)
		st.expect(f.store.MockQuerier)

		id := st.contributions[0].ID
		_, err := f.svc.UpdateContributionStatus(context.Background(), id, domain.ContributionStatusPaid)
		require.NoError(t, err)

		_, err = f.svc.UpdateContributionStatus(context.Background(), id, domain.ContributionStatusPending)
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
		assert.Equal(t, domain.ErrContributionReopen.Message, domain.ErrorMessage(err))
		assert.Equal(t, "paid", st.contributions[0].Status)
		assert.Equal(t, "pending", st.split.Status)
	})

	t.Run("pending to pending is a no-op", func(t *testing.T) {
		f := newSplitFixture(t)
		st := newSplitState(2)
		st.expect(f.store.MockQuerier)

		split, err := f.svc.UpdateContributionStatus(context.Background(), st.contributions[0].ID, domain.ContributionStatusPending)
		require.NoError(t, err)
		assert.Equal(t, domain.SplitStatusPending, split.Status)
		assert.Empty(t, f.events.Subjects())
	})
}

func TestSplitPaymentService_UpdateContributionStatus_Errors(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		f := newSplitFixture(t)
		_, err := f.svc.UpdateContributionStatus(context.Background(), uuid.New(), "refunded")
		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		assert.Zero(t, f.store.txCalls)
	})

	t.Run("unknown contribution", func(t *testing.T) {
		f := newSplitFixture(t)
		f.store.EXPECT().GetSplitContribution(gomock.Any(), gomock.Any()).
			Return(repository.SplitContribution{}, sql.ErrNoRows)

		_, err := f.svc.UpdateContributionStatus(context.Background(), uuid.New(), domain.ContributionStatusPaid)
		assert.ErrorIs(t, err, ErrContributionNotFound)
		assert.Empty(t, f.events.Subjects())
	})

	t.Run("lock failure", func(t *testing.T) {
		f := newSplitFixture(t)
		f.store.EXPECT().GetSplitContribution(gomock.Any(), gomock.Any()).
			Return(repository.SplitContribution{ID: uuid.New(), SplitID: uuid.New(), Status: "pending"}, nil)
		f.store.EXPECT().GetPaymentSplitForUpdate(gomock.Any(), gomock.Any()).
			Return(repository.PaymentSplit{}, errors.New("deadlock detected"))

		_, err := f.svc.UpdateContributionStatus(context.Background(), uuid.New(), domain.ContributionStatusPaid)
		assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
		assert.Empty(t, f.events.Subjects())
	})
}

func TestSplitPaymentService_GetContributionByPaymentID(t *testing.T) {
	f := newSplitFixture(t)

	c := repository.SplitContribution{ID: uuid.New(), SplitID: uuid.New(), Status: "pending", PaymentLink: "tok123"}
	f.store.EXPECT().GetSplitContributionByPaymentLink(gomock.Any(), "tok123").Return(c, nil)
	f.store.EXPECT().GetSplitContributionByPaymentLink(gomock.Any(), "nope").
		Return(repository.SplitContribution{}, sql.ErrNoRows)

	got, err := f.svc.GetContributionByPaymentID(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.svc.GetContributionByPaymentID(context.Background(), "nope")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))

	_, err = f.svc.GetContributionByPaymentID(context.Background(), "")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestSplitPaymentService_GetSplitPayment(t *testing.T) {
	f := newSplitFixture(t)
	st := newSplitState(2)

	f.store.EXPECT().GetPaymentSplit(gomock.Any(), st.split.ID).Return(st.split, nil)
	f.store.EXPECT().ListSplitContributions(gomock.Any(), st.split.ID).Return(st.contributions, nil)
	f.store.EXPECT().GetPaymentSplit(gomock.Any(), gomock.Not(st.split.ID)).
		Return(repository.PaymentSplit{}, sql.ErrNoRows)

	split, err := f.svc.GetSplitPayment(context.Background(), st.split.ID)
	require.NoError(t, err)
	assert.Len(t, split.Contributions, 2)
	assert.Len(t, split.Contributors, 3)

	_, err = f.svc.GetSplitPayment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSplitNotFound)
}

func TestSplitPaymentService_HasPaidShares(t *testing.T) {
	f := newSplitFixture(t)
	withShares, untouched, broken := uuid.New(), uuid.New(), uuid.New()

	f.store.EXPECT().CountPaidSharesForInvoice(gomock.Any(), withShares).Return(int64(2), nil)
	f.store.EXPECT().CountPaidSharesForInvoice(gomock.Any(), untouched).Return(int64(0), nil)
	f.store.EXPECT().CountPaidSharesForInvoice(gomock.Any(), broken).Return(int64(0), errors.New("connection reset"))

	ok, err := f.svc.HasPaidShares(context.Background(), withShares)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.HasPaidShares(context.Background(), untouched)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.svc.HasPaidShares(context.Background(), broken)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
}
