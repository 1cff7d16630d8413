package models

import (
	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/services/payment"
)

func ToMilestoneResponse(m *db.MilestonePayment) MilestoneResponse {
	response := MilestoneResponse{
		ProjectID:      ID(m.ProjectID),
		MilestoneIndex: m.MilestoneIndex,
		MilestoneTitle: m.MilestoneTitle.String,
		Amount:         m.Amount,
		Status:         m.Status,
	}
	if m.ReleasedAt.Valid {
		releasedAt := m.ReleasedAt.Time
		response.ReleasedAt = &releasedAt
	}
	return response
}

func ToMilestoneCollectionResponse(milestones []db.MilestonePayment) []MilestoneResponse {
	collection := make([]MilestoneResponse, 0, len(milestones))
	for i := range milestones {
		collection = append(collection, ToMilestoneResponse(&milestones[i]))
	}
	return collection
}

func ToMilestoneReleaseResponse(s *payment.MilestoneReleaseSummary) MilestoneReleaseResponse {
	return MilestoneReleaseResponse{
		ProjectID:        ID(s.ProjectID),
		MilestoneIndex:   s.MilestoneIndex,
		Amount:           s.Amount,
		FreelancerAmount: s.FreelancerAmount,
		PlatformFee:      s.PlatformFee,
	}
}

func ToHistoryEntryResponse(e *payment.HistoryEntry) HistoryEntryResponse {
	response := HistoryEntryResponse{
		Type:         e.Type,
		ProjectTitle: e.ProjectTitle,
		Counterparty: e.Counterparty,
		Amount:       e.Amount,
		Status:       e.Status,
		BankAccount:  e.BankAccount,
		Date:         e.Date,
	}
	if e.ProjectID != nil {
		projectID := ID(*e.ProjectID)
		response.ProjectID = &projectID
	}
	return response
}

func ToHistoryCollectionResponse(entries []payment.HistoryEntry) []HistoryEntryResponse {
	collection := make([]HistoryEntryResponse, 0, len(entries))
	for i := range entries {
		collection = append(collection, ToHistoryEntryResponse(&entries[i]))
	}
	return collection
}

func ToInvoiceResponse(inv *payment.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ProjectID:      ID(inv.ProjectID),
		ProjectTitle:   inv.ProjectTitle,
		CreatorName:    inv.CreatorName,
		FreelancerName: inv.FreelancerName,
		GrossAmount:    inv.GrossAmount,
		PlatformFee:    inv.PlatformFee,
		NetAmount:      inv.NetAmount,
		FeeRatePercent: inv.FeeRatePercent,
		PaymentID:      inv.PaymentID,
		PaymentDate:    inv.PaymentDate,
		IssuedAt:       inv.IssuedAt,
	}
}
