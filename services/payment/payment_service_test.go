package payment_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/Upkraft/Upkraft-Backend/db/memstore"
	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/services/fees"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	"github.com/Upkraft/Upkraft-Backend/services/payment"
	user_service "github.com/Upkraft/Upkraft-Backend/services/user"
	"github.com/Upkraft/Upkraft-Backend/services/wallet"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store      *memstore.Store
	payments   *payment.PaymentService
	wallets    *wallet.WalletService
	creator    db.User
	freelancer db.User
	admin      db.User
	outsider   db.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memstore.New()
	logger := &logging.Logger{Logger: logrus.New()}
	users := user_service.NewUserService(store, logger, nil)

	feePolicy, err := fees.NewPolicy(decimal.NewFromFloat(0.30))
	require.NoError(t, err)

	env := &testEnv{
		store:    store,
		payments: payment.NewPaymentService(store, logger, users, feePolicy, nil),
		wallets:  wallet.NewWalletService(store, logger, users, feePolicy, nil, nil),
	}

	ctx := context.Background()
	env.creator, err = store.CreateUser(ctx, db.CreateUserParams{Name: "Ada Creator", Email: "ada@example.com", Role: utils.RoleCreator})
	require.NoError(t, err)
	env.freelancer, err = store.CreateUser(ctx, db.CreateUserParams{Name: "Femi Freelancer", Email: "femi@example.com", Role: utils.RoleFreelancer})
	require.NoError(t, err)
	env.admin, err = store.CreateUser(ctx, db.CreateUserParams{Name: "Ops Admin", Email: "ops@example.com", Role: utils.RoleAdmin})
	require.NoError(t, err)
	env.outsider, err = store.CreateUser(ctx, db.CreateUserParams{Name: "Olu Other", Email: "olu@example.com", Role: utils.RoleFreelancer})
	require.NoError(t, err)

	return env
}

func (e *testEnv) paidProject(t *testing.T, price, ref string) db.Project {
	t.Helper()
	ctx := context.Background()
	project, err := e.store.CreateProject(ctx, db.CreateProjectParams{
		Title:        "Brand Redesign",
		Price:        decimal.RequireFromString(price),
		CreatorID:    e.creator.ID,
		FreelancerID: sql.NullInt64{Int64: e.freelancer.ID, Valid: true},
		Status:       "IN_PROGRESS",
	})
	require.NoError(t, err)
	require.NoError(t, e.wallets.HoldEscrow(ctx, e.admin.Email, project.ID, ref))
	return project
}

func (e *testEnv) balances(t *testing.T) *wallet.BalanceSummary {
	t.Helper()
	balance, err := e.wallets.GetWalletBalance(context.Background(), e.freelancer.Email)
	require.NoError(t, err)
	return balance
}

// Walks a full project through two milestone draws and a withdrawal,
// checking the wallet after every step.
func TestMilestoneFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_flow")

	first, err := env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("400.00"), "Design")
	require.NoError(t, err)
	require.True(t, first.PlatformFee.Equal(decimal.RequireFromString("120.00")))
	require.True(t, first.FreelancerAmount.Equal(decimal.RequireFromString("280.00")))

	balance := env.balances(t)
	require.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("280.00")))
	require.True(t, balance.EscrowBalance.Equal(decimal.RequireFromString("600.00")))

	_, err = env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 1, decimal.RequireFromString("400.00"), "Build")
	require.NoError(t, err)

	balance = env.balances(t)
	require.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("560.00")))
	require.True(t, balance.EscrowBalance.Equal(decimal.RequireFromString("200.00")))

	_, err = env.wallets.RequestWithdrawal(ctx, env.freelancer.Email, decimal.RequireFromString("560.00"), "0123456789", "058")
	require.NoError(t, err)

	balance = env.balances(t)
	require.True(t, balance.AvailableBalance.IsZero())
	require.True(t, balance.EscrowBalance.Equal(decimal.RequireFromString("200.00")))

	milestones, err := env.payments.GetMilestonePayments(ctx, env.freelancer.Email, project.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	require.Equal(t, payment.MilestoneStatusReleased, milestones[0].Status)
	require.Equal(t, int32(0), milestones[0].MilestoneIndex)
	require.Equal(t, int32(1), milestones[1].MilestoneIndex)
}

func TestMilestoneReleasedOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_once")

	_, err := env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("300.00"), "Design")
	require.NoError(t, err)

	_, err = env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("300.00"), "Design")
	require.ErrorIs(t, err, payment.ErrMilestoneAlreadyReleased)

	balance := env.balances(t)
	require.True(t, balance.EscrowBalance.Equal(decimal.RequireFromString("700.00")))
}

func TestMilestoneExceedsEscrow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "500.00", "pay_exceed")

	_, err := env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("500.01"), "")
	require.ErrorIs(t, err, payment.ErrInsufficientEscrow)
}

func TestMilestoneReleaseAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_auth")

	_, err := env.payments.ReleaseMilestonePayment(ctx, env.freelancer.Email, project.ID, 0, decimal.RequireFromString("100.00"), "")
	require.ErrorIs(t, err, payment.ErrNotProjectOwner)

	// Only the creator, not even an admin
	_, err = env.payments.ReleaseMilestonePayment(ctx, env.admin.Email, project.ID, 0, decimal.RequireFromString("100.00"), "")
	require.ErrorIs(t, err, payment.ErrNotProjectOwner)

	_, err = env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("100.00"), "")
	require.NoError(t, err)

	_, err = env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 1, decimal.Zero, "")
	require.ErrorIs(t, err, payment.ErrInvalidAmount)
}

func TestConcurrentMilestoneRelease(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_race")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, errs[slot] = env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("400.00"), "Design")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, payment.ErrMilestoneAlreadyReleased)
		}
	}
	require.Equal(t, 1, succeeded)

	balance := env.balances(t)
	require.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("280.00")))
	require.True(t, balance.EscrowBalance.Equal(decimal.RequireFromString("600.00")))
}

func TestConcurrentMilestoneOverdraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "500.00", "pay_overdraw")

	// Two different milestones whose sum exceeds what escrow holds
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, errs[slot] = env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, int32(slot), decimal.RequireFromString("300.00"), "")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, payment.ErrInsufficientEscrow)
		}
	}
	require.Equal(t, 1, succeeded)

	balance := env.balances(t)
	require.True(t, balance.EscrowBalance.Equal(decimal.RequireFromString("200.00")))
	require.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("210.00")))
	require.False(t, balance.EscrowBalance.IsNegative())
}

func TestGetMilestonePaymentsMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_member")

	_, err := env.payments.GetMilestonePayments(ctx, env.outsider.Email, project.ID)
	require.ErrorIs(t, err, payment.ErrNotProjectMember)

	_, err = env.payments.GetMilestonePayments(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)
}

func TestMilestoneListOrderedByIndex(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_order")

	_, err := env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 2, decimal.RequireFromString("100.00"), "Launch")
	require.NoError(t, err)
	_, err = env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("100.00"), "Design")
	require.NoError(t, err)

	milestones, err := env.payments.GetMilestonePayments(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	require.Equal(t, int32(0), milestones[0].MilestoneIndex)
	require.Equal(t, int32(2), milestones[1].MilestoneIndex)
}

func TestPaymentHistoryCreator(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_hist_c")

	entries, err := env.payments.GetPaymentHistory(ctx, env.creator.Email)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, payment.HistoryPaymentMade, entries[0].Type)
	require.Equal(t, project.ID, *entries[0].ProjectID)
	require.Equal(t, env.freelancer.Name, entries[0].Counterparty)
	require.True(t, entries[0].Amount.Equal(decimal.RequireFromString("1000.00")))

	// The entry carries the project lifecycle status, not the payment status
	require.Equal(t, "IN_PROGRESS", entries[0].Status)
}

func TestPaymentHistoryFreelancer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_hist_f")

	_, err := env.payments.ReleaseMilestonePayment(ctx, env.creator.Email, project.ID, 0, decimal.RequireFromString("400.00"), "Design")
	require.NoError(t, err)
	_, err = env.wallets.RequestWithdrawal(ctx, env.freelancer.Email, decimal.RequireFromString("280.00"), "0123456789", "058")
	require.NoError(t, err)

	entries, err := env.payments.GetPaymentHistory(ctx, env.freelancer.Email)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first: withdrawal, milestone, escrow hold
	require.Equal(t, payment.HistoryWithdrawal, entries[0].Type)
	require.Equal(t, "****6789", entries[0].BankAccount)
	require.Equal(t, payment.HistoryMilestonePayment, entries[1].Type)
	require.True(t, entries[1].Amount.Equal(decimal.RequireFromString("280.00")))
	require.Equal(t, payment.HistoryEscrowHeld, entries[2].Type)
	require.Equal(t, env.creator.Name, entries[2].Counterparty)
}

func TestPaymentHistoryEmpty(t *testing.T) {
	env := newTestEnv(t)

	entries, err := env.payments.GetPaymentHistory(context.Background(), env.freelancer.Email)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestGenerateInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.paidProject(t, "1000.00", "pay_inv")

	invoice, err := env.payments.GenerateInvoice(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, invoice.ProjectID)
	require.Equal(t, env.creator.Name, invoice.CreatorName)
	require.Equal(t, env.freelancer.Name, invoice.FreelancerName)
	require.True(t, invoice.GrossAmount.Equal(decimal.RequireFromString("1000.00")))
	require.True(t, invoice.PlatformFee.Equal(decimal.RequireFromString("300.00")))
	require.True(t, invoice.NetAmount.Equal(decimal.RequireFromString("700.00")))
	require.True(t, invoice.FeeRatePercent.Equal(decimal.RequireFromString("30")))
	require.Equal(t, "pay_inv", invoice.PaymentID)
	require.NotNil(t, invoice.PaymentDate)
}

func TestGenerateInvoiceUnpaid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project, err := env.store.CreateProject(ctx, db.CreateProjectParams{
		Title:        "Unpaid",
		Price:        decimal.RequireFromString("100.00"),
		CreatorID:    env.creator.ID,
		FreelancerID: sql.NullInt64{Int64: env.freelancer.ID, Valid: true},
		Status:       "IN_PROGRESS",
	})
	require.NoError(t, err)

	_, err = env.payments.GenerateInvoice(ctx, env.creator.Email, project.ID)
	require.ErrorIs(t, err, payment.ErrProjectNotPaid)
}
