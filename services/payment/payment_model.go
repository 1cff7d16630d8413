package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MilestoneStatusPending  = "PENDING"
	MilestoneStatusReleased = "RELEASED"
)

// History entry kinds. Creators see money leaving (PAYMENT_MADE);
// freelancers see their wallet's side of the same events.
const (
	HistoryPaymentMade      = "PAYMENT_MADE"
	HistoryEscrowHeld       = "ESCROW_HELD"
	HistoryPaymentReceived  = "PAYMENT_RECEIVED"
	HistoryMilestonePayment = "MILESTONE_PAYMENT"
	HistoryWithdrawal       = "WITHDRAWAL"
)

type HistoryEntry struct {
	Type         string          `json:"type"`
	ProjectID    *int64          `json:"project_id,omitempty"`
	ProjectTitle string          `json:"project_title,omitempty"`
	Counterparty string          `json:"counterparty,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	BankAccount  string          `json:"bank_account,omitempty"`
	Date         time.Time       `json:"date"`
}

type MilestoneReleaseSummary struct {
	ProjectID        int64           `json:"project_id"`
	MilestoneIndex   int32           `json:"milestone_index"`
	Amount           decimal.Decimal `json:"amount"`
	FreelancerAmount decimal.Decimal `json:"freelancer_amount"`
	PlatformFee      decimal.Decimal `json:"platform_fee"`
}

type Invoice struct {
	ProjectID      int64           `json:"project_id"`
	ProjectTitle   string          `json:"project_title"`
	CreatorName    string          `json:"creator_name"`
	FreelancerName string          `json:"freelancer_name"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	FeeRatePercent decimal.Decimal `json:"fee_rate_percent"`
	PaymentID      string          `json:"payment_id,omitempty"`
	PaymentDate    *time.Time      `json:"payment_date,omitempty"`
	IssuedAt       time.Time       `json:"issued_at"`
}
