package models

import (
	"time"

	_ "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type WithdrawalParams struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	BankAccount string          `json:"bank_account" binding:"required" validate:"required,numeric,min=6,max=20"`
	RoutingCode string          `json:"routing_code" validate:"omitempty,alphanum,max=11"`
}

type BalanceResponse struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	EscrowBalance    decimal.Decimal `json:"escrow_balance"`
	TotalBalance     decimal.Decimal `json:"total_balance"`
}

type TransactionResponse struct {
	ID               string          `json:"id"`
	ProjectID        *ID             `json:"project_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	BankAccount      string          `json:"bank_account,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type ReleaseResponse struct {
	ProjectID        ID              `json:"project_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	FreelancerAmount decimal.Decimal `json:"freelancer_amount"`
	PlatformFee      decimal.Decimal `json:"platform_fee"`
}
