package activitylogs

import (
	"context"
	"database/sql"
	"net"
	"time"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/sqlc-dev/pqtype"
)

// Retention is how long audit entries are kept before cleanup.
const Retention = 90 * 24 * time.Hour

// ActivityLog records who touched which ledger entity from where.
type ActivityLog struct {
	store db.Store
}

func NewActivityLog(store db.Store) *ActivityLog {
	return &ActivityLog{
		store: store,
	}
}

type CreateActivityLogParams struct {
	UserID     *int64
	Action     string
	EntityType *string
	EntityID   *string
	IPAddress  string
	UserAgent  string
}

func (a *ActivityLog) Create(ctx context.Context, params CreateActivityLogParams) (db.ActivityLog, error) {
	return a.store.CreateActivityLog(ctx, db.CreateActivityLogParams{
		UserID:     toNullInt64(params.UserID),
		Action:     params.Action,
		EntityType: toNullString(params.EntityType),
		EntityID:   toNullString(params.EntityID),
		IpAddress:  toInet(params.IPAddress),
		UserAgent:  toNullString(&params.UserAgent),
	})
}

// Cleanup drops audit entries older than the retention window.
func (a *ActivityLog) Cleanup(ctx context.Context) error {
	return a.store.DeleteActivityLogsBefore(ctx, time.Now().Add(-Retention))
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func toNullString(v *string) sql.NullString {
	if v == nil || *v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func toInet(addr string) pqtype.Inet {
	ip := net.ParseIP(addr)
	if ip == nil {
		return pqtype.Inet{}
	}
	bits := 32
	if ip.To4() == nil {
		bits = 128
	}
	return pqtype.Inet{
		IPNet: net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)},
		Valid: true,
	}
}
