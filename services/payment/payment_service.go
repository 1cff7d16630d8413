package payment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/services/fees"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	service "github.com/Upkraft/Upkraft-Backend/services/notification"
	user_service "github.com/Upkraft/Upkraft-Backend/services/user"
	"github.com/Upkraft/Upkraft-Backend/services/wallet"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/shopspring/decimal"
)

// PaymentService handles milestone draws against escrowed project
// funds, reconstructs per-user payment history from the ledger, and
// renders invoices. It shares the wallet ledger's transaction rules:
// every milestone release locks the wallet row and writes balances,
// milestone state and the audit transaction atomically.
type PaymentService struct {
	store      db.Store
	logger     *logging.Logger
	userClient *user_service.UserService
	fees       *fees.Policy
	notifyr    *service.Notification
}

func NewPaymentService(store db.Store, logger *logging.Logger, userClient *user_service.UserService, feePolicy *fees.Policy, notifyr *service.Notification) *PaymentService {
	return &PaymentService{
		store:      store,
		logger:     logger,
		userClient: userClient,
		fees:       feePolicy,
		notifyr:    notifyr,
	}
}

// ReleaseMilestonePayment pays out one milestone from escrow: escrow
// is debited by the gross amount and the freelancer's available
// balance is credited net of the platform fee. A milestone index pays
// out at most once per project; the status re-check happens after the
// wallet row is locked, so concurrent releases of the same index
// cannot both succeed.
func (p *PaymentService) ReleaseMilestonePayment(ctx context.Context, userEmail string, projectID int64, index int32, amount decimal.Decimal, title string) (*MilestoneReleaseSummary, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	user, err := p.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	project, err := p.store.GetProject(ctx, projectID)
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

	platformFee, freelancerAmount := p.fees.Split(amount)

	err = p.store.ExecTx(ctx, func(q db.Querier) error {
		dbWallet, err := q.GetWalletByUserIDForUpdate(ctx, project.FreelancerID.Int64)
		if err == sql.ErrNoRows {
			return NewPaymentError(ErrInsufficientEscrow, project.ID)
		} else if err != nil {
			return err
		}

		// Re-checked under the wallet lock: the first of two racing
		// releases flips the status, the second sees RELEASED here.
		existing, err := q.GetMilestonePayment(ctx, db.GetMilestonePaymentParams{
			ProjectID:      project.ID,
			MilestoneIndex: index,
		})
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		if err == nil && existing.Status == MilestoneStatusReleased {
			return NewPaymentError(ErrMilestoneAlreadyReleased, project.ID)
		}

		if dbWallet.EscrowBalance.LessThan(amount) {
			return NewPaymentError(ErrInsufficientEscrow, project.ID)
		}

		_, err = q.UpdateWalletBalances(ctx, db.UpdateWalletBalancesParams{
			ID:               dbWallet.ID,
			AvailableBalance: dbWallet.AvailableBalance.Add(freelancerAmount),
			EscrowBalance:    dbWallet.EscrowBalance.Sub(amount),
		})
		if err != nil {
			return err
		}

		_, err = q.UpsertMilestonePayment(ctx, db.UpsertMilestonePaymentParams{
			ProjectID:      project.ID,
			MilestoneIndex: index,
			MilestoneTitle: sql.NullString{String: title, Valid: title != ""},
			Amount:         amount,
			Status:         MilestoneStatusReleased,
			ReleasedAt:     sql.NullTime{Time: time.Now().UTC(), Valid: true},
		})
		if err != nil {
			return err
		}

		_, err = q.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
			WalletID:  dbWallet.ID,
			ProjectID: sql.NullInt64{Int64: project.ID, Valid: true},
			Amount:    freelancerAmount,
			Type:      wallet.TransactionTypeMilestonePayment,
			Status:    wallet.TransactionStatusCompleted,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info(fmt.Sprintf("milestone %d released for project %d: %s to freelancer, %s fee", index, project.ID, freelancerAmount, platformFee))

	if p.notifyr != nil {
		if freelancer, err := p.userClient.GetUserByID(ctx, project.FreelancerID.Int64); err == nil {
			p.notifyr.MilestoneReleased(freelancer.Email, project.Title, index, freelancerAmount)
		}
	}

	return &MilestoneReleaseSummary{
		ProjectID:        project.ID,
		MilestoneIndex:   index,
		Amount:           amount,
		FreelancerAmount: freelancerAmount,
		PlatformFee:      platformFee,
	}, nil
}

// GetMilestonePayments lists a project's milestones in index order.
// Only the project's creator, its freelancer or an admin may look.
func (p *PaymentService) GetMilestonePayments(ctx context.Context, userEmail string, projectID int64) ([]db.MilestonePayment, error) {
	_, project, err := p.projectForMember(ctx, userEmail, projectID)
	if err != nil {
		return nil, err
	}

	return p.store.ListMilestonePaymentsByProject(ctx, project.ID)
}

// GetPaymentHistory reconstructs the caller's payment feed. Creators
// see the projects they have paid for; everyone else sees their own
// wallet's transactions, with bank accounts reduced to the last four
// digits.
func (p *PaymentService) GetPaymentHistory(ctx context.Context, userEmail string) ([]HistoryEntry, error) {
	user, err := p.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	if user.Role == utils.RoleCreator {
		return p.creatorHistory(ctx, user.ID)
	}
	return p.walletHistory(ctx, user.ID)
}

func (p *PaymentService) creatorHistory(ctx context.Context, creatorID int64) ([]HistoryEntry, error) {
	projects, err := p.store.ListPaidProjectsByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(projects))
	for _, proj := range projects {
		projectID := proj.ID
		entry := HistoryEntry{
			Type:         HistoryPaymentMade,
			ProjectID:    &projectID,
			ProjectTitle: proj.Title,
			Counterparty: proj.FreelancerName.String,
			Amount:       proj.Price,
			Status:       proj.Status,
			Date:         proj.CreatedAt,
		}
		if proj.PaymentDate.Valid {
			entry.Date = proj.PaymentDate.Time
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (p *PaymentService) walletHistory(ctx context.Context, userID int64) ([]HistoryEntry, error) {
	dbWallet, err := p.store.GetWalletByUserID(ctx, userID)
	if err == sql.ErrNoRows {
		return []HistoryEntry{}, nil
	} else if err != nil {
		return nil, err
	}

	transactions, err := p.store.ListWalletTransactionsWithProject(ctx, dbWallet.ID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(transactions))
	for _, tx := range transactions {
		entry := HistoryEntry{
			Type:         historyType(tx.Type),
			ProjectTitle: tx.ProjectTitle.String,
			Counterparty: tx.CreatorName.String,
			Amount:       tx.Amount,
			Status:       tx.Status,
			BankAccount:  maskBankAccount(tx.BankAccount.String),
			Date:         tx.CreatedAt,
		}
		if tx.ProjectID.Valid {
			projectID := tx.ProjectID.Int64
			entry.ProjectID = &projectID
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GenerateInvoice renders the fee breakdown for a paid project. Either
// party to the project (or an admin) may request it.
func (p *PaymentService) GenerateInvoice(ctx context.Context, userEmail string, projectID int64) (*Invoice, error) {
	_, project, err := p.projectForMember(ctx, userEmail, projectID)
	if err != nil {
		return nil, err
	}

	if project.PaymentStatus != "COMPLETED" {
		return nil, NewPaymentError(ErrProjectNotPaid, project.ID)
	}

	creator, err := p.userClient.GetUserByID(ctx, project.CreatorID)
	if err != nil {
		return nil, err
	}

	freelancerName := ""
	if project.FreelancerID.Valid {
		if freelancer, err := p.userClient.GetUserByID(ctx, project.FreelancerID.Int64); err == nil {
			freelancerName = freelancer.Name
		}
	}

	platformFee, netAmount := p.fees.Split(project.Price)

	invoice := &Invoice{
		ProjectID:      project.ID,
		ProjectTitle:   project.Title,
		CreatorName:    creator.Name,
		FreelancerName: freelancerName,
		GrossAmount:    project.Price,
		PlatformFee:    platformFee,
		NetAmount:      netAmount,
		FeeRatePercent: p.fees.RatePercent(),
		PaymentID:      project.PaymentID.String,
		IssuedAt:       time.Now().UTC(),
	}
	if project.PaymentDate.Valid {
		paymentDate := project.PaymentDate.Time
		invoice.PaymentDate = &paymentDate
	}
	return invoice, nil
}

// projectForMember loads the project and enforces that the caller is
// its creator, its freelancer or an admin.
func (p *PaymentService) projectForMember(ctx context.Context, userEmail string, projectID int64) (*db.User, db.Project, error) {
	user, err := p.userClient.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, db.Project{}, err
	}

	project, err := p.store.GetProject(ctx, projectID)
	if err == sql.ErrNoRows {
		return nil, db.Project{}, ErrProjectNotFound
	} else if err != nil {
		return nil, db.Project{}, err
	}

	isMember := project.CreatorID == user.ID ||
		(project.FreelancerID.Valid && project.FreelancerID.Int64 == user.ID) ||
		user.Role == utils.RoleAdmin
	if !isMember {
		return nil, db.Project{}, NewPaymentError(ErrNotProjectMember, project.ID)
	}
	return user, project, nil
}

func historyType(transactionType string) string {
	switch transactionType {
	case wallet.TransactionTypeEscrowHold:
		return HistoryEscrowHeld
	case wallet.TransactionTypeEscrowRelease:
		return HistoryPaymentReceived
	case wallet.TransactionTypeMilestonePayment:
		return HistoryMilestonePayment
	case wallet.TransactionTypeWithdrawal:
		return HistoryWithdrawal
	default:
		return strings.ToUpper(transactionType)
	}
}

// maskBankAccount keeps only the last four digits.
func maskBankAccount(account string) string {
	if account == "" {
		return ""
	}
	if len(account) <= 4 {
		return "****" + account
	}
	return "****" + account[len(account)-4:]
}
