package memstore

import (
	"context"
	"time"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/google/uuid"
)

// Locked single-call delegates; ExecTx closures bypass these and use
// the unlocked queries view directly.

func (s *Store) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).CreateUser(ctx, arg)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetUserByEmail(ctx, email)
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetUserByID(ctx, id)
}

func (s *Store) CreateProject(ctx context.Context, arg db.CreateProjectParams) (db.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).CreateProject(ctx, arg)
}

func (s *Store) GetProject(ctx context.Context, id int64) (db.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetProject(ctx, id)
}

func (s *Store) UpdateProjectPaymentCaptured(ctx context.Context, arg db.UpdateProjectPaymentCapturedParams) (db.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).UpdateProjectPaymentCaptured(ctx, arg)
}

func (s *Store) UpdateProjectEscrowReleased(ctx context.Context, id int64) (db.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).UpdateProjectEscrowReleased(ctx, id)
}

func (s *Store) ListPaidProjectsByCreator(ctx context.Context, creatorID int64) ([]db.ListPaidProjectsByCreatorRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).ListPaidProjectsByCreator(ctx, creatorID)
}

func (s *Store) CreateWallet(ctx context.Context, userID int64) (db.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).CreateWallet(ctx, userID)
}

func (s *Store) GetWalletByUserID(ctx context.Context, userID int64) (db.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetWalletByUserID(ctx, userID)
}

func (s *Store) GetWalletByUserIDForUpdate(ctx context.Context, userID int64) (db.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetWalletByUserIDForUpdate(ctx, userID)
}

func (s *Store) GetWalletByIDForUpdate(ctx context.Context, id uuid.UUID) (db.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetWalletByIDForUpdate(ctx, id)
}

func (s *Store) UpdateWalletBalances(ctx context.Context, arg db.UpdateWalletBalancesParams) (db.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).UpdateWalletBalances(ctx, arg)
}

func (s *Store) CreateWalletTransaction(ctx context.Context, arg db.CreateWalletTransactionParams) (db.WalletTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).CreateWalletTransaction(ctx, arg)
}

func (s *Store) GetWalletTransaction(ctx context.Context, id uuid.UUID) (db.WalletTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetWalletTransaction(ctx, id)
}

func (s *Store) UpdateWalletTransactionStatus(ctx context.Context, arg db.UpdateWalletTransactionStatusParams) (db.WalletTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).UpdateWalletTransactionStatus(ctx, arg)
}

func (s *Store) ListWalletTransactionsByWalletID(ctx context.Context, walletID uuid.UUID) ([]db.WalletTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).ListWalletTransactionsByWalletID(ctx, walletID)
}

func (s *Store) ListWalletTransactionsWithProject(ctx context.Context, walletID uuid.UUID) ([]db.ListWalletTransactionsWithProjectRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).ListWalletTransactionsWithProject(ctx, walletID)
}

func (s *Store) GetMilestonePayment(ctx context.Context, arg db.GetMilestonePaymentParams) (db.MilestonePayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).GetMilestonePayment(ctx, arg)
}

func (s *Store) UpsertMilestonePayment(ctx context.Context, arg db.UpsertMilestonePaymentParams) (db.MilestonePayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).UpsertMilestonePayment(ctx, arg)
}

func (s *Store) ListMilestonePaymentsByProject(ctx context.Context, projectID int64) ([]db.MilestonePayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).ListMilestonePaymentsByProject(ctx, projectID)
}

func (s *Store) CreateActivityLog(ctx context.Context, arg db.CreateActivityLogParams) (db.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).CreateActivityLog(ctx, arg)
}

func (s *Store) DeleteActivityLogsBefore(ctx context.Context, createdAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&queries{st: s.st}).DeleteActivityLogsBefore(ctx, createdAt)
}
