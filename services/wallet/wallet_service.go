package wallet

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/services/fees"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	service "github.com/Upkraft/Upkraft-Backend/services/notification"
	"github.com/Upkraft/Upkraft-Backend/services/redis"
	user_service "github.com/Upkraft/Upkraft-Backend/services/user"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletService is the escrow ledger: it holds confirmed project
// payments in the freelancer's escrow balance, releases them (net of
// the platform fee) and debits withdrawals. Every mutation locks the
// wallet row and writes its audit transaction in the same store
// transaction, so balances can never drift from the record.
type WalletService struct {
	store      db.Store
	logger     *logging.Logger
	userClient *user_service.UserService
	fees       *fees.Policy
	notifyr    *service.Notification
	tracker    *redis.RedisService
}

func NewWalletService(store db.Store, logger *logging.Logger, userClient *user_service.UserService, feePolicy *fees.Policy, notifyr *service.Notification, tracker *redis.RedisService) *WalletService {
	return &WalletService{
		store:      store,
		logger:     logger,
		userClient: userClient,
		fees:       feePolicy,
		notifyr:    notifyr,
		tracker:    tracker,
	}
}

// getOrCreateWalletForUpdate returns the user's wallet locked for the
// remainder of the transaction, creating it on first touch.
func getOrCreateWalletForUpdate(ctx context.Context, q db.Querier, userID int64) (db.Wallet, error) {
	dbWallet, err := q.GetWalletByUserIDForUpdate(ctx, userID)
	if err == sql.ErrNoRows {
		dbWallet, err = q.CreateWallet(ctx, userID)
		if err != nil {
			return db.Wallet{}, NewWalletError(ErrWalletNotPossible, fmt.Sprint(userID), err)
		}
		return dbWallet, nil
	} else if err != nil {
		return db.Wallet{}, err
	}
	return dbWallet, nil
}

// HoldEscrow credits a gateway-confirmed project payment into the
// assigned freelancer's escrow balance. The payment reference is
// unique per wallet, so a replayed gateway callback fails instead of
// double-crediting.
func (w *WalletService) HoldEscrow(ctx context.Context, userEmail string, projectID int64, paymentRef string) error {
	caller, err := w.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return err
	}

	project, err := w.store.GetProject(ctx, projectID)
	if err == sql.ErrNoRows {
		return ErrProjectNotFound
	} else if err != nil {
		return err
	}

	if !project.FreelancerID.Valid {
		return ErrNoFreelancer
	}

	err = w.store.ExecTx(ctx, func(q db.Querier) error {
		dbWallet, err := getOrCreateWalletForUpdate(ctx, q, project.FreelancerID.Int64)
		if err != nil {
			return err
		}

		_, err = q.UpdateWalletBalances(ctx, db.UpdateWalletBalancesParams{
			ID:               dbWallet.ID,
			AvailableBalance: dbWallet.AvailableBalance,
			EscrowBalance:    dbWallet.EscrowBalance.Add(project.Price),
		})
		if err != nil {
			return err
		}

		_, err = q.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
			WalletID:         dbWallet.ID,
			ProjectID:        sql.NullInt64{Int64: project.ID, Valid: true},
			Amount:           project.Price,
			Type:             TransactionTypeEscrowHold,
			Status:           TransactionStatusCompleted,
			PaymentReference: sql.NullString{String: paymentRef, Valid: paymentRef != ""},
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return NewWalletError(ErrDuplicatePaymentRef, dbWallet.ID.String(), err)
			}
			return err
		}

		_, err = q.UpdateProjectPaymentCaptured(ctx, db.UpdateProjectPaymentCapturedParams{
			ID:        project.ID,
			PaymentID: sql.NullString{String: paymentRef, Valid: paymentRef != ""},
		})
		return err
	})
	if err != nil {
		return err
	}

	w.logger.Info(fmt.Sprintf("escrow held for project %d, freelancer %d, captured by %d", project.ID, project.FreelancerID.Int64, caller.ID))
	return nil
}

// ReleaseEscrow pays out the full contract price of a project: escrow
// is debited by the price and the freelancer's available balance is
// credited with the price net of the platform fee. The entire original
// price must still be in escrow, regardless of earlier milestone
// draws.
func (w *WalletService) ReleaseEscrow(ctx context.Context, userEmail string, projectID int64) (*ReleaseSummary, error) {
	user, err := w.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	project, err := w.store.GetProject(ctx, projectID)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	} else if err != nil {
		return nil, err
	}

	if project.CreatorID != user.ID {
		return nil, ErrNotProjectOwner
	}
	if !project.FreelancerID.Valid {
		return nil, ErrNoFreelancer
	}

	platformFee, freelancerAmount := w.fees.Split(project.Price)

	err = w.store.ExecTx(ctx, func(q db.Querier) error {
		dbWallet, err := q.GetWalletByUserIDForUpdate(ctx, project.FreelancerID.Int64)
		if err == sql.ErrNoRows {
			return NewWalletError(ErrWalletNotFound, fmt.Sprint(project.FreelancerID.Int64))
		} else if err != nil {
			return err
		}

		if dbWallet.EscrowBalance.LessThan(project.Price) {
			return NewWalletError(ErrInsufficientFunds, dbWallet.ID.String())
		}

		_, err = q.UpdateWalletBalances(ctx, db.UpdateWalletBalancesParams{
			ID:               dbWallet.ID,
			AvailableBalance: dbWallet.AvailableBalance.Add(freelancerAmount),
			EscrowBalance:    dbWallet.EscrowBalance.Sub(project.Price),
		})
		if err != nil {
			return err
		}

		if _, err := q.UpdateProjectEscrowReleased(ctx, project.ID); err != nil {
			return err
		}

		// The ledger records what the freelancer actually received; the
		// fee only appears in the returned summary.
		_, err = q.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
			WalletID:  dbWallet.ID,
			ProjectID: sql.NullInt64{Int64: project.ID, Valid: true},
			Amount:    freelancerAmount,
			Type:      TransactionTypeEscrowRelease,
			Status:    TransactionStatusCompleted,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	w.logger.Info(fmt.Sprintf("escrow released for project %d: %s to freelancer, %s fee", project.ID, freelancerAmount, platformFee))

	if w.notifyr != nil {
		if freelancer, err := w.userClient.GetUserByID(ctx, project.FreelancerID.Int64); err == nil {
			w.notifyr.PaymentReleased(freelancer.Email, project.Title, freelancerAmount)
		}
	}

	return &ReleaseSummary{
		ProjectID:        project.ID,
		FreelancerID:     project.FreelancerID.Int64,
		TotalAmount:      project.Price,
		FreelancerAmount: freelancerAmount,
		PlatformFee:      platformFee,
	}, nil
}

// GetWalletBalance reports balances, creating the wallet on first
// query.
func (w *WalletService) GetWalletBalance(ctx context.Context, userEmail string) (*BalanceSummary, error) {
	user, err := w.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	dbWallet, err := w.store.GetWalletByUserID(ctx, user.ID)
	if err == sql.ErrNoRows {
		dbWallet, err = w.store.CreateWallet(ctx, user.ID)
	}
	if err != nil {
		return nil, err
	}

	return &BalanceSummary{
		AvailableBalance: dbWallet.AvailableBalance,
		EscrowBalance:    dbWallet.EscrowBalance,
		TotalBalance:     dbWallet.AvailableBalance.Add(dbWallet.EscrowBalance),
	}, nil
}

// RequestWithdrawal debits the available balance immediately and
// records a pending withdrawal carrying the bank details. The debit is
// optimistic; FailWithdrawal is the compensation path if the payout
// bounces.
func (w *WalletService) RequestWithdrawal(ctx context.Context, userEmail string, amount decimal.Decimal, bankAccount, routingCode string) (*db.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	user, err := w.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	var transaction db.WalletTransaction
	err = w.store.ExecTx(ctx, func(q db.Querier) error {
		dbWallet, err := q.GetWalletByUserIDForUpdate(ctx, user.ID)
		if err == sql.ErrNoRows {
			return NewWalletError(ErrWalletNotFound, fmt.Sprint(user.ID))
		} else if err != nil {
			return err
		}

		if dbWallet.AvailableBalance.LessThan(amount) {
			return NewWalletError(ErrInsufficientFunds, dbWallet.ID.String())
		}

		_, err = q.UpdateWalletBalances(ctx, db.UpdateWalletBalancesParams{
			ID:               dbWallet.ID,
			AvailableBalance: dbWallet.AvailableBalance.Sub(amount),
			EscrowBalance:    dbWallet.EscrowBalance,
		})
		if err != nil {
			return err
		}

		transaction, err = q.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
			WalletID:    dbWallet.ID,
			Amount:      amount,
			Type:        TransactionTypeWithdrawal,
			Status:      TransactionStatusPending,
			BankAccount: sql.NullString{String: bankAccount, Valid: bankAccount != ""},
			RoutingCode: sql.NullString{String: routingCode, Valid: routingCode != ""},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	w.logger.Info(fmt.Sprintf("withdrawal %s requested by user %d", transaction.ID, user.ID))

	if w.tracker != nil {
		go func() {
			trackCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := w.tracker.TrackDailyWithdrawal(trackCtx, fmt.Sprint(user.ID), amount); err != nil {
				w.logger.Warn(fmt.Sprintf("could not track withdrawal volume for user %d: %v", user.ID, err))
			}
		}()
	}

	if w.notifyr != nil {
		w.notifyr.WithdrawalRequested(user.Email, amount)
	}
	return &transaction, nil
}

// FailWithdrawal marks a pending withdrawal failed and credits the
// amount back to the wallet's available balance. Admin only.
func (w *WalletService) FailWithdrawal(ctx context.Context, adminEmail string, transactionID uuid.UUID) (*db.WalletTransaction, error) {
	return w.settleWithdrawal(ctx, adminEmail, transactionID, TransactionStatusFailed)
}

// ConfirmWithdrawal marks a pending withdrawal completed once the bank
// payout has settled. No balance change; the debit already happened.
// Admin only.
func (w *WalletService) ConfirmWithdrawal(ctx context.Context, adminEmail string, transactionID uuid.UUID) (*db.WalletTransaction, error) {
	return w.settleWithdrawal(ctx, adminEmail, transactionID, TransactionStatusCompleted)
}

func (w *WalletService) settleWithdrawal(ctx context.Context, adminEmail string, transactionID uuid.UUID, status string) (*db.WalletTransaction, error) {
	admin, err := w.userClient.GetUserByEmail(ctx, adminEmail)
	if err != nil {
		return nil, err
	}
	if admin.Role != utils.RoleAdmin {
		return nil, ErrNotAdmin
	}

	var transaction db.WalletTransaction
	var ownerID int64
	err = w.store.ExecTx(ctx, func(q db.Querier) error {
		existing, err := q.GetWalletTransaction(ctx, transactionID)
		if err == sql.ErrNoRows {
			return ErrTransactionNotFound
		} else if err != nil {
			return err
		}

		if existing.Type != TransactionTypeWithdrawal || existing.Status != TransactionStatusPending {
			return NewWalletError(ErrNotPendingWithdrawal, existing.WalletID.String())
		}

		dbWallet, err := q.GetWalletByIDForUpdate(ctx, existing.WalletID)
		if err != nil {
			return err
		}
		ownerID = dbWallet.UserID

		if status == TransactionStatusFailed {
			_, err = q.UpdateWalletBalances(ctx, db.UpdateWalletBalancesParams{
				ID:               dbWallet.ID,
				AvailableBalance: dbWallet.AvailableBalance.Add(existing.Amount),
				EscrowBalance:    dbWallet.EscrowBalance,
			})
			if err != nil {
				return err
			}
		}

		transaction, err = q.UpdateWalletTransactionStatus(ctx, db.UpdateWalletTransactionStatusParams{
			ID:     existing.ID,
			Status: status,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	w.logger.Info(fmt.Sprintf("withdrawal %s marked %s by admin %d", transaction.ID, status, admin.ID))

	if w.notifyr != nil {
		if owner, err := w.userClient.GetUserByID(ctx, ownerID); err == nil {
			w.notifyr.WithdrawalSettled(owner.Email, transaction.Amount, status == TransactionStatusCompleted)
		}
	}
	return &transaction, nil
}

// GetTransactions lists the user's wallet transactions, newest first.
// A user with no wallet has an empty history, not an error.
func (w *WalletService) GetTransactions(ctx context.Context, userEmail string) ([]db.WalletTransaction, error) {
	user, err := w.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	dbWallet, err := w.store.GetWalletByUserID(ctx, user.ID)
	if err == sql.ErrNoRows {
		return []db.WalletTransaction{}, nil
	} else if err != nil {
		return nil, err
	}

	return w.store.ListWalletTransactionsByWalletID(ctx, dbWallet.ID)
}
