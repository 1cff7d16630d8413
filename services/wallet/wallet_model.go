package wallet

import (
	"github.com/shopspring/decimal"
)

/// Transaction types recorded on the wallet ledger. Amounts are always
/// positive; the type implies direction.
const (
	TransactionTypeEscrowHold       = "escrow_hold"
	TransactionTypeEscrowRelease    = "escrow_release"
	TransactionTypeMilestonePayment = "milestone_payment"
	TransactionTypeWithdrawal       = "withdrawal"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// BalanceSummary is the caller-facing view of a wallet.
type BalanceSummary struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	EscrowBalance    decimal.Decimal `json:"escrow_balance"`
	TotalBalance     decimal.Decimal `json:"total_balance"`
}

// ReleaseSummary reports the fee split of a full escrow release.
type ReleaseSummary struct {
	ProjectID        int64           `json:"project_id"`
	FreelancerID     int64           `json:"freelancer_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	FreelancerAmount decimal.Decimal `json:"freelancer_amount"`
	PlatformFee      decimal.Decimal `json:"platform_fee"`
}
