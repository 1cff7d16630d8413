package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MilestoneResponse struct {
	ProjectID      ID              `json:"project_id"`
	MilestoneIndex int32           `json:"milestone_index"`
	MilestoneTitle string          `json:"milestone_title,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	ReleasedAt     *time.Time      `json:"released_at,omitempty"`
}

type MilestoneReleaseResponse struct {
	ProjectID        ID              `json:"project_id"`
	MilestoneIndex   int32           `json:"milestone_index"`
	Amount           decimal.Decimal `json:"amount"`
	FreelancerAmount decimal.Decimal `json:"freelancer_amount"`
	PlatformFee      decimal.Decimal `json:"platform_fee"`
}

type HistoryEntryResponse struct {
	Type         string          `json:"type"`
	ProjectID    *ID             `json:"project_id,omitempty"`
	ProjectTitle string          `json:"project_title,omitempty"`
	Counterparty string          `json:"counterparty,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	BankAccount  string          `json:"bank_account,omitempty"`
	Date         time.Time       `json:"date"`
}

type InvoiceResponse struct {
	ProjectID      ID              `json:"project_id"`
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
