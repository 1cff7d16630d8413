package activitylogs_test

import (
	"context"
	"testing"

	"github.com/Upkraft/Upkraft-Backend/db/memstore"
	activitylogs "github.com/Upkraft/Upkraft-Backend/services/activity_logs"
	"github.com/stretchr/testify/require"
)

func TestCreateMapsFields(t *testing.T) {
	store := memstore.New()
	logs := activitylogs.NewActivityLog(store)
	ctx := context.Background()

	userID := int64(7)
	entityType := "wallet_transaction"
	entityID := "tx-42"
	entry, err := logs.Create(ctx, activitylogs.CreateActivityLogParams{
		UserID:     &userID,
		Action:     "POST /api/v1/wallet/withdraw/request -> 200",
		EntityType: &entityType,
		EntityID:   &entityID,
		IPAddress:  "203.0.113.9",
		UserAgent:  "curl/8.0",
	})
	require.NoError(t, err)
	require.True(t, entry.UserID.Valid)
	require.Equal(t, userID, entry.UserID.Int64)
	require.True(t, entry.EntityType.Valid)
	require.Equal(t, entityType, entry.EntityType.String)
	require.True(t, entry.IpAddress.Valid)
	require.Equal(t, "203.0.113.9", entry.IpAddress.IPNet.IP.String())
	require.True(t, entry.UserAgent.Valid)
}

func TestCreateAnonymous(t *testing.T) {
	store := memstore.New()
	logs := activitylogs.NewActivityLog(store)

	entry, err := logs.Create(context.Background(), activitylogs.CreateActivityLogParams{
		Action:    "POST /api/v1/wallet/escrow/hold -> 401",
		IPAddress: "not-an-ip",
	})
	require.NoError(t, err)
	require.False(t, entry.UserID.Valid)
	require.False(t, entry.EntityType.Valid)
	require.False(t, entry.IpAddress.Valid)
	require.False(t, entry.UserAgent.Valid)
}

func TestCleanupKeepsRecentEntries(t *testing.T) {
	store := memstore.New()
	logs := activitylogs.NewActivityLog(store)
	ctx := context.Background()

	_, err := logs.Create(ctx, activitylogs.CreateActivityLogParams{Action: "POST /api/v1/payments/milestone/release/1 -> 200"})
	require.NoError(t, err)

	// A fresh entry is well inside the retention window
	require.NoError(t, logs.Cleanup(ctx))
}
