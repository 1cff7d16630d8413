// Package memstore is a map-backed implementation of db.Store used by
// service tests. ExecTx serializes callers on a single mutex and rolls
// the whole state back when the closure fails, which mirrors the
// atomicity and per-wallet serialization the postgres store gets from
// transactions and row locks.
package memstore

import (
	"context"
	"database/sql"
	"sync"
	"time"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type milestoneKey struct {
	ProjectID      int64
	MilestoneIndex int32
}

type state struct {
	users         map[int64]db.User
	projects      map[int64]db.Project
	wallets       map[uuid.UUID]db.Wallet
	walletsByUser map[int64]uuid.UUID
	transactions  []db.WalletTransaction
	milestones    map[milestoneKey]db.MilestonePayment
	activityLogs  []db.ActivityLog

	nextUserID      int64
	nextProjectID   int64
	nextMilestoneID int64
	nextLogID       int64
}

type Store struct {
	mu sync.Mutex
	st *state
}

var _ db.Store = (*Store)(nil)

func New() *Store {
	return &Store{st: &state{
		users:         make(map[int64]db.User),
		projects:      make(map[int64]db.Project),
		wallets:       make(map[uuid.UUID]db.Wallet),
		walletsByUser: make(map[int64]uuid.UUID),
		milestones:    make(map[milestoneKey]db.MilestonePayment),
	}}
}

func (s *Store) ExecTx(ctx context.Context, fq func(q db.Querier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fq(&queries{st: s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (st *state) clone() *state {
	c := &state{
		users:           make(map[int64]db.User, len(st.users)),
		projects:        make(map[int64]db.Project, len(st.projects)),
		wallets:         make(map[uuid.UUID]db.Wallet, len(st.wallets)),
		walletsByUser:   make(map[int64]uuid.UUID, len(st.walletsByUser)),
		milestones:      make(map[milestoneKey]db.MilestonePayment, len(st.milestones)),
		transactions:    append([]db.WalletTransaction(nil), st.transactions...),
		activityLogs:    append([]db.ActivityLog(nil), st.activityLogs...),
		nextUserID:      st.nextUserID,
		nextProjectID:   st.nextProjectID,
		nextMilestoneID: st.nextMilestoneID,
		nextLogID:       st.nextLogID,
	}
	for k, v := range st.users {
		c.users[k] = v
	}
	for k, v := range st.projects {
		c.projects[k] = v
	}
	for k, v := range st.wallets {
		c.wallets[k] = v
	}
	for k, v := range st.walletsByUser {
		c.walletsByUser[k] = v
	}
	for k, v := range st.milestones {
		c.milestones[k] = v
	}
	return c
}

// queries operates on state without locking; Store's exported methods
// take the lock, ExecTx closures already hold it.
type queries struct {
	st *state
}

var errDuplicate = &pq.Error{Code: db.DuplicateEntry}

func (q *queries) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	for _, u := range q.st.users {
		if u.Email == arg.Email {
			return db.User{}, errDuplicate
		}
	}
	q.st.nextUserID++
	now := time.Now()
	u := db.User{
		ID:        q.st.nextUserID,
		Name:      arg.Name,
		Email:     arg.Email,
		Role:      arg.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	q.st.users[u.ID] = u
	return u, nil
}

func (q *queries) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	for _, u := range q.st.users {
		if u.Email == email {
			return u, nil
		}
	}
	return db.User{}, sql.ErrNoRows
}

func (q *queries) GetUserByID(ctx context.Context, id int64) (db.User, error) {
	u, ok := q.st.users[id]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (q *queries) CreateProject(ctx context.Context, arg db.CreateProjectParams) (db.Project, error) {
	q.st.nextProjectID++
	now := time.Now()
	p := db.Project{
		ID:            q.st.nextProjectID,
		Title:         arg.Title,
		Price:         arg.Price,
		CreatorID:     arg.CreatorID,
		FreelancerID:  arg.FreelancerID,
		Status:        arg.Status,
		EscrowStatus:  "NONE",
		PaymentStatus: "PENDING",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	q.st.projects[p.ID] = p
	return p, nil
}

func (q *queries) GetProject(ctx context.Context, id int64) (db.Project, error) {
	p, ok := q.st.projects[id]
	if !ok {
		return db.Project{}, sql.ErrNoRows
	}
	return p, nil
}

func (q *queries) UpdateProjectPaymentCaptured(ctx context.Context, arg db.UpdateProjectPaymentCapturedParams) (db.Project, error) {
	p, ok := q.st.projects[arg.ID]
	if !ok {
		return db.Project{}, sql.ErrNoRows
	}
	p.PaymentStatus = "COMPLETED"
	p.PaymentID = arg.PaymentID
	p.PaymentDate = sql.NullTime{Time: time.Now(), Valid: true}
	p.EscrowStatus = "HELD"
	p.UpdatedAt = time.Now()
	q.st.projects[p.ID] = p
	return p, nil
}

func (q *queries) UpdateProjectEscrowReleased(ctx context.Context, id int64) (db.Project, error) {
	p, ok := q.st.projects[id]
	if !ok {
		return db.Project{}, sql.ErrNoRows
	}
	p.EscrowStatus = "RELEASED"
	p.Status = "COMPLETED"
	p.UpdatedAt = time.Now()
	q.st.projects[p.ID] = p
	return p, nil
}

func (q *queries) ListPaidProjectsByCreator(ctx context.Context, creatorID int64) ([]db.ListPaidProjectsByCreatorRow, error) {
	rows := []db.ListPaidProjectsByCreatorRow{}
	// reverse insertion order approximates payment_date DESC
	for id := q.st.nextProjectID; id >= 1; id-- {
		p, ok := q.st.projects[id]
		if !ok || p.CreatorID != creatorID || p.PaymentStatus != "COMPLETED" {
			continue
		}
		row := db.ListPaidProjectsByCreatorRow{
			ID:            p.ID,
			Title:         p.Title,
			Price:         p.Price,
			CreatorID:     p.CreatorID,
			FreelancerID:  p.FreelancerID,
			Status:        p.Status,
			EscrowStatus:  p.EscrowStatus,
			PaymentStatus: p.PaymentStatus,
			PaymentID:     p.PaymentID,
			PaymentDate:   p.PaymentDate,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		}
		if p.FreelancerID.Valid {
			if u, ok := q.st.users[p.FreelancerID.Int64]; ok {
				row.FreelancerName = sql.NullString{String: u.Name, Valid: true}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (q *queries) CreateWallet(ctx context.Context, userID int64) (db.Wallet, error) {
	if _, ok := q.st.walletsByUser[userID]; ok {
		return db.Wallet{}, errDuplicate
	}
	now := time.Now()
	w := db.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	q.st.wallets[w.ID] = w
	q.st.walletsByUser[userID] = w.ID
	return w, nil
}

func (q *queries) GetWalletByUserID(ctx context.Context, userID int64) (db.Wallet, error) {
	id, ok := q.st.walletsByUser[userID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	return q.st.wallets[id], nil
}

func (q *queries) GetWalletByUserIDForUpdate(ctx context.Context, userID int64) (db.Wallet, error) {
	return q.GetWalletByUserID(ctx, userID)
}

func (q *queries) GetWalletByIDForUpdate(ctx context.Context, id uuid.UUID) (db.Wallet, error) {
	w, ok := q.st.wallets[id]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	return w, nil
}

func (q *queries) UpdateWalletBalances(ctx context.Context, arg db.UpdateWalletBalancesParams) (db.Wallet, error) {
	w, ok := q.st.wallets[arg.ID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	if arg.AvailableBalance.IsNegative() || arg.EscrowBalance.IsNegative() {
		return db.Wallet{}, &pq.Error{Code: db.CheckViolation}
	}
	w.AvailableBalance = arg.AvailableBalance
	w.EscrowBalance = arg.EscrowBalance
	w.UpdatedAt = time.Now()
	q.st.wallets[w.ID] = w
	return w, nil
}

func (q *queries) CreateWalletTransaction(ctx context.Context, arg db.CreateWalletTransactionParams) (db.WalletTransaction, error) {
	if arg.PaymentReference.Valid {
		for _, t := range q.st.transactions {
			if t.WalletID == arg.WalletID && t.PaymentReference.Valid && t.PaymentReference.String == arg.PaymentReference.String {
				return db.WalletTransaction{}, errDuplicate
			}
		}
	}
	t := db.WalletTransaction{
		ID:               uuid.New(),
		WalletID:         arg.WalletID,
		ProjectID:        arg.ProjectID,
		Amount:           arg.Amount,
		Type:             arg.Type,
		Status:           arg.Status,
		PaymentReference: arg.PaymentReference,
		BankAccount:      arg.BankAccount,
		RoutingCode:      arg.RoutingCode,
		CreatedAt:        time.Now(),
	}
	q.st.transactions = append(q.st.transactions, t)
	return t, nil
}

func (q *queries) GetWalletTransaction(ctx context.Context, id uuid.UUID) (db.WalletTransaction, error) {
	for _, t := range q.st.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return db.WalletTransaction{}, sql.ErrNoRows
}

func (q *queries) UpdateWalletTransactionStatus(ctx context.Context, arg db.UpdateWalletTransactionStatusParams) (db.WalletTransaction, error) {
	for i, t := range q.st.transactions {
		if t.ID == arg.ID {
			q.st.transactions[i].Status = arg.Status
			return q.st.transactions[i], nil
		}
	}
	return db.WalletTransaction{}, sql.ErrNoRows
}

func (q *queries) ListWalletTransactionsByWalletID(ctx context.Context, walletID uuid.UUID) ([]db.WalletTransaction, error) {
	items := []db.WalletTransaction{}
	for i := len(q.st.transactions) - 1; i >= 0; i-- {
		if q.st.transactions[i].WalletID == walletID {
			items = append(items, q.st.transactions[i])
		}
	}
	return items, nil
}

func (q *queries) ListWalletTransactionsWithProject(ctx context.Context, walletID uuid.UUID) ([]db.ListWalletTransactionsWithProjectRow, error) {
	items := []db.ListWalletTransactionsWithProjectRow{}
	for i := len(q.st.transactions) - 1; i >= 0; i-- {
		t := q.st.transactions[i]
		if t.WalletID != walletID {
			continue
		}
		row := db.ListWalletTransactionsWithProjectRow{
			ID:               t.ID,
			WalletID:         t.WalletID,
			ProjectID:        t.ProjectID,
			Amount:           t.Amount,
			Type:             t.Type,
			Status:           t.Status,
			PaymentReference: t.PaymentReference,
			BankAccount:      t.BankAccount,
			RoutingCode:      t.RoutingCode,
			CreatedAt:        t.CreatedAt,
		}
		if t.ProjectID.Valid {
			if p, ok := q.st.projects[t.ProjectID.Int64]; ok {
				row.ProjectTitle = sql.NullString{String: p.Title, Valid: true}
				if u, ok := q.st.users[p.CreatorID]; ok {
					row.CreatorName = sql.NullString{String: u.Name, Valid: true}
				}
			}
		}
		items = append(items, row)
	}
	return items, nil
}

func (q *queries) GetMilestonePayment(ctx context.Context, arg db.GetMilestonePaymentParams) (db.MilestonePayment, error) {
	m, ok := q.st.milestones[milestoneKey{arg.ProjectID, arg.MilestoneIndex}]
	if !ok {
		return db.MilestonePayment{}, sql.ErrNoRows
	}
	return m, nil
}

func (q *queries) UpsertMilestonePayment(ctx context.Context, arg db.UpsertMilestonePaymentParams) (db.MilestonePayment, error) {
	key := milestoneKey{arg.ProjectID, arg.MilestoneIndex}
	m, ok := q.st.milestones[key]
	if !ok {
		q.st.nextMilestoneID++
		m = db.MilestonePayment{
			ID:             q.st.nextMilestoneID,
			ProjectID:      arg.ProjectID,
			MilestoneIndex: arg.MilestoneIndex,
			CreatedAt:      time.Now(),
		}
	}
	m.MilestoneTitle = arg.MilestoneTitle
	m.Amount = arg.Amount
	m.Status = arg.Status
	m.ReleasedAt = arg.ReleasedAt
	q.st.milestones[key] = m
	return m, nil
}

func (q *queries) ListMilestonePaymentsByProject(ctx context.Context, projectID int64) ([]db.MilestonePayment, error) {
	items := []db.MilestonePayment{}
	for id := int64(1); id <= q.st.nextMilestoneID; id++ {
		for _, m := range q.st.milestones {
			if m.ID == id && m.ProjectID == projectID {
				items = append(items, m)
			}
		}
	}
	// order by milestone_index
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j-1].MilestoneIndex > items[j].MilestoneIndex; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
	return items, nil
}

func (q *queries) CreateActivityLog(ctx context.Context, arg db.CreateActivityLogParams) (db.ActivityLog, error) {
	q.st.nextLogID++
	l := db.ActivityLog{
		ID:         q.st.nextLogID,
		UserID:     arg.UserID,
		Action:     arg.Action,
		EntityType: arg.EntityType,
		EntityID:   arg.EntityID,
		IpAddress:  arg.IpAddress,
		UserAgent:  arg.UserAgent,
		CreatedAt:  time.Now(),
	}
	q.st.activityLogs = append(q.st.activityLogs, l)
	return l, nil
}

func (q *queries) DeleteActivityLogsBefore(ctx context.Context, createdAt time.Time) error {
	kept := q.st.activityLogs[:0]
	for _, l := range q.st.activityLogs {
		if !l.CreatedAt.Before(createdAt) {
			kept = append(kept, l)
		}
	}
	q.st.activityLogs = kept
	return nil
}
