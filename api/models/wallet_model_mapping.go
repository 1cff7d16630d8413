package models

import (
	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/services/wallet"
)

func ToBalanceResponse(b *wallet.BalanceSummary) BalanceResponse {
	return BalanceResponse{
		AvailableBalance: b.AvailableBalance,
		EscrowBalance:    b.EscrowBalance,
		TotalBalance:     b.TotalBalance,
	}
}

func ToReleaseResponse(r *wallet.ReleaseSummary) ReleaseResponse {
	return ReleaseResponse{
		ProjectID:        ID(r.ProjectID),
		TotalAmount:      r.TotalAmount,
		FreelancerAmount: r.FreelancerAmount,
		PlatformFee:      r.PlatformFee,
	}
}

func ToTransactionResponse(t *db.WalletTransaction) TransactionResponse {
	response := TransactionResponse{
		ID:               t.ID.String(),
		Amount:           t.Amount,
		Type:             t.Type,
		Status:           t.Status,
		PaymentReference: t.PaymentReference.String,
		BankAccount:      maskAccount(t.BankAccount.String),
		CreatedAt:        t.CreatedAt,
	}
	if t.ProjectID.Valid {
		projectID := ID(t.ProjectID.Int64)
		response.ProjectID = &projectID
	}
	return response
}

func ToTransactionCollectionResponse(transactions []db.WalletTransaction) []TransactionResponse {
	collection := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		collection = append(collection, ToTransactionResponse(&transactions[i]))
	}
	return collection
}

// Bank accounts never leave the API with more than their last four digits.
func maskAccount(account string) string {
	if account == "" {
		return ""
	}
	if len(account) <= 4 {
		return "****" + account
	}
	return "****" + account[len(account)-4:]
}
