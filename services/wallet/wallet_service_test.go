package wallet_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Upkraft/Upkraft-Backend/db/memstore"
	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/services/fees"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	user_service "github.com/Upkraft/Upkraft-Backend/services/user"
	"github.com/Upkraft/Upkraft-Backend/services/wallet"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store      *memstore.Store
	service    *wallet.WalletService
	creator    db.User
	freelancer db.User
	admin      db.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memstore.New()
	logger := &logging.Logger{Logger: logrus.New()}
	users := user_service.NewUserService(store, logger, nil)

	feePolicy, err := fees.NewPolicy(decimal.NewFromFloat(0.30))
	require.NoError(t, err)

	env := &testEnv{
		store:   store,
		service: wallet.NewWalletService(store, logger, users, feePolicy, nil, nil),
	}

	ctx := context.Background()
	env.creator, err = store.CreateUser(ctx, db.CreateUserParams{Name: "Ada Creator", Email: "ada@example.com", Role: utils.RoleCreator})
	require.NoError(t, err)
	env.freelancer, err = store.CreateUser(ctx, db.CreateUserParams{Name: "Femi Freelancer", Email: "femi@example.com", Role: utils.RoleFreelancer})
	require.NoError(t, err)
	env.admin, err = store.CreateUser(ctx, db.CreateUserParams{Name: "Ops Admin", Email: "ops@example.com", Role: utils.RoleAdmin})
	require.NoError(t, err)

	return env
}

func (e *testEnv) newProject(t *testing.T, price string) db.Project {
	t.Helper()
	project, err := e.store.CreateProject(context.Background(), db.CreateProjectParams{
		Title:        "Landing Page",
		Price:        decimal.RequireFromString(price),
		CreatorID:    e.creator.ID,
		FreelancerID: sql.NullInt64{Int64: e.freelancer.ID, Valid: true},
		Status:       "IN_PROGRESS",
	})
	require.NoError(t, err)
	return project
}

func (e *testEnv) freelancerWallet(t *testing.T) db.Wallet {
	t.Helper()
	w, err := e.store.GetWalletByUserID(context.Background(), e.freelancer.ID)
	require.NoError(t, err)
	return w
}

func TestHoldEscrow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")

	err := env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_123")
	require.NoError(t, err)

	w := env.freelancerWallet(t)
	require.True(t, w.EscrowBalance.Equal(decimal.RequireFromString("1000.00")))
	require.True(t, w.AvailableBalance.IsZero())

	updated, err := env.store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, "COMPLETED", updated.PaymentStatus)
	require.Equal(t, "HELD", updated.EscrowStatus)
	require.Equal(t, "pay_123", updated.PaymentID.String)

	transactions, err := env.service.GetTransactions(ctx, env.freelancer.Email)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, wallet.TransactionTypeEscrowHold, transactions[0].Type)
	require.Equal(t, wallet.TransactionStatusCompleted, transactions[0].Status)
}

func TestHoldEscrowDuplicateReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "500.00")

	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_dup"))

	err := env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_dup")
	require.ErrorIs(t, err, wallet.ErrDuplicatePaymentRef)

	// The failed replay must not move money
	w := env.freelancerWallet(t)
	require.True(t, w.EscrowBalance.Equal(decimal.RequireFromString("500.00")))
}

func TestHoldEscrowValidations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.service.HoldEscrow(ctx, env.admin.Email, 9999, "pay_none")
	require.ErrorIs(t, err, wallet.ErrProjectNotFound)

	unassigned, err := env.store.CreateProject(ctx, db.CreateProjectParams{
		Title:     "Unassigned",
		Price:     decimal.RequireFromString("100.00"),
		CreatorID: env.creator.ID,
		Status:    "OPEN",
	})
	require.NoError(t, err)

	err = env.service.HoldEscrow(ctx, env.admin.Email, unassigned.ID, "pay_x")
	require.ErrorIs(t, err, wallet.ErrNoFreelancer)
}

func TestReleaseEscrow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")
	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_rel"))

	summary, err := env.service.ReleaseEscrow(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)
	require.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("1000.00")))
	require.True(t, summary.PlatformFee.Equal(decimal.RequireFromString("300.00")))
	require.True(t, summary.FreelancerAmount.Equal(decimal.RequireFromString("700.00")))

	w := env.freelancerWallet(t)
	require.True(t, w.AvailableBalance.Equal(decimal.RequireFromString("700.00")))
	require.True(t, w.EscrowBalance.IsZero())

	updated, err := env.store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, "RELEASED", updated.EscrowStatus)
	require.Equal(t, "COMPLETED", updated.Status)

	// The ledger carries the net amount, not the gross
	transactions, err := env.service.GetTransactions(ctx, env.freelancer.Email)
	require.NoError(t, err)
	require.Equal(t, wallet.TransactionTypeEscrowRelease, transactions[0].Type)
	require.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("700.00")))
}

func TestReleaseEscrowOnlyCreator(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")
	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_own"))

	_, err := env.service.ReleaseEscrow(ctx, env.freelancer.Email, project.ID)
	require.ErrorIs(t, err, wallet.ErrNotProjectOwner)
}

func TestReleaseEscrowRequiresFullPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")
	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_part"))

	// Drain part of the escrow so less than the full price remains
	w := env.freelancerWallet(t)
	err := env.store.ExecTx(ctx, func(q db.Querier) error {
		_, err := q.UpdateWalletBalances(ctx, db.UpdateWalletBalancesParams{
			ID:               w.ID,
			AvailableBalance: w.AvailableBalance,
			EscrowBalance:    decimal.RequireFromString("999.99"),
		})
		return err
	})
	require.NoError(t, err)

	_, err = env.service.ReleaseEscrow(ctx, env.creator.Email, project.ID)
	require.ErrorIs(t, err, wallet.ErrInsufficientFunds)
}

func TestGetWalletBalanceLazyCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	balance, err := env.service.GetWalletBalance(ctx, env.freelancer.Email)
	require.NoError(t, err)
	require.True(t, balance.AvailableBalance.IsZero())
	require.True(t, balance.EscrowBalance.IsZero())
	require.True(t, balance.TotalBalance.IsZero())

	// The wallet now exists
	_, err = env.store.GetWalletByUserID(ctx, env.freelancer.ID)
	require.NoError(t, err)
}

func TestRequestWithdrawal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")
	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_wd"))
	_, err := env.service.ReleaseEscrow(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)

	transaction, err := env.service.RequestWithdrawal(ctx, env.freelancer.Email, decimal.RequireFromString("500.00"), "0123456789", "058")
	require.NoError(t, err)
	require.Equal(t, wallet.TransactionStatusPending, transaction.Status)
	require.Equal(t, wallet.TransactionTypeWithdrawal, transaction.Type)

	w := env.freelancerWallet(t)
	require.True(t, w.AvailableBalance.Equal(decimal.RequireFromString("200.00")))

	_, err = env.service.RequestWithdrawal(ctx, env.freelancer.Email, decimal.RequireFromString("200.01"), "0123456789", "058")
	require.ErrorIs(t, err, wallet.ErrInsufficientFunds)

	_, err = env.service.RequestWithdrawal(ctx, env.freelancer.Email, decimal.Zero, "0123456789", "058")
	require.ErrorIs(t, err, wallet.ErrInvalidAmount)
}

func TestRequestWithdrawalNoWallet(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.RequestWithdrawal(context.Background(), env.freelancer.Email, decimal.RequireFromString("10.00"), "0123456789", "058")
	require.ErrorIs(t, err, wallet.ErrWalletNotFound)
}

func TestFailWithdrawalRefunds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")
	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_fail"))
	_, err := env.service.ReleaseEscrow(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)

	pending, err := env.service.RequestWithdrawal(ctx, env.freelancer.Email, decimal.RequireFromString("700.00"), "0123456789", "058")
	require.NoError(t, err)
	require.True(t, env.freelancerWallet(t).AvailableBalance.IsZero())

	failed, err := env.service.FailWithdrawal(ctx, env.admin.Email, pending.ID)
	require.NoError(t, err)
	require.Equal(t, wallet.TransactionStatusFailed, failed.Status)
	require.True(t, env.freelancerWallet(t).AvailableBalance.Equal(decimal.RequireFromString("700.00")))

	// A settled withdrawal cannot be settled again
	_, err = env.service.ConfirmWithdrawal(ctx, env.admin.Email, pending.ID)
	require.ErrorIs(t, err, wallet.ErrNotPendingWithdrawal)
}

func TestConfirmWithdrawal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")
	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_conf"))
	_, err := env.service.ReleaseEscrow(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)

	pending, err := env.service.RequestWithdrawal(ctx, env.freelancer.Email, decimal.RequireFromString("100.00"), "0123456789", "058")
	require.NoError(t, err)

	confirmed, err := env.service.ConfirmWithdrawal(ctx, env.admin.Email, pending.ID)
	require.NoError(t, err)
	require.Equal(t, wallet.TransactionStatusCompleted, confirmed.Status)

	// The debit stays debited
	require.True(t, env.freelancerWallet(t).AvailableBalance.Equal(decimal.RequireFromString("600.00")))
}

func TestSettleWithdrawalRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.newProject(t, "1000.00")
	require.NoError(t, env.service.HoldEscrow(ctx, env.admin.Email, project.ID, "pay_adm"))
	_, err := env.service.ReleaseEscrow(ctx, env.creator.Email, project.ID)
	require.NoError(t, err)

	pending, err := env.service.RequestWithdrawal(ctx, env.freelancer.Email, decimal.RequireFromString("50.00"), "0123456789", "058")
	require.NoError(t, err)

	_, err = env.service.FailWithdrawal(ctx, env.freelancer.Email, pending.ID)
	require.ErrorIs(t, err, wallet.ErrNotAdmin)
}

func TestGetTransactionsEmptyWithoutWallet(t *testing.T) {
	env := newTestEnv(t)

	transactions, err := env.service.GetTransactions(context.Background(), env.creator.Email)
	require.NoError(t, err)
	require.Empty(t, transactions)
}
