package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

/// This file tracks each user's withdrawal volume per calendar day

type DailyWithdrawals struct {
	UserID      string
	TotalAmount decimal.Decimal
	Count       int64
	CreatedAt   time.Time
}

// isSameDay checks if two times are on the same calendar day
func isSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (r *RedisService) TrackDailyWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) error {
	key := fmt.Sprintf("daily_withdrawals:%s", userID)

	current, err := r.GetDailyWithdrawals(ctx, userID)
	if err != nil {
		return err
	}

	// A stale entry from a previous day starts over
	if current.CreatedAt.IsZero() || !isSameDay(current.CreatedAt, time.Now()) {
		current = DailyWithdrawals{
			UserID:      userID,
			TotalAmount: amount,
			Count:       1,
			CreatedAt:   time.Now(),
		}
	} else {
		current.TotalAmount = current.TotalAmount.Add(amount)
		current.Count++
	}

	err = r.client.HSet(ctx, key, map[string]interface{}{
		"user_id":      current.UserID,
		"total_amount": current.TotalAmount.String(),
		"count":        current.Count,
		"created_at":   current.CreatedAt.Format(time.RFC3339),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to store daily withdrawals: %w", err)
	}

	// Expire at end of day
	midnight := time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
	err = r.client.ExpireAt(ctx, key, midnight).Err()
	if err != nil {
		return fmt.Errorf("failed to set expiration: %w", err)
	}

	return nil
}

func (r *RedisService) GetDailyWithdrawals(ctx context.Context, userID string) (DailyWithdrawals, error) {
	key := fmt.Sprintf("daily_withdrawals:%s", userID)

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return DailyWithdrawals{}, fmt.Errorf("failed to get daily withdrawals: %w", err)
	}

	if len(fields) == 0 {
		return DailyWithdrawals{
			UserID:      userID,
			TotalAmount: decimal.Zero,
		}, nil
	}

	createdAt, err := time.Parse(time.RFC3339, fields["created_at"])
	if err != nil {
		return DailyWithdrawals{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	amount, err := decimal.NewFromString(fields["total_amount"])
	if err != nil {
		return DailyWithdrawals{}, fmt.Errorf("failed to parse total_amount: %w", err)
	}

	var count int64
	fmt.Sscanf(fields["count"], "%d", &count)

	return DailyWithdrawals{
		UserID:      fields["user_id"],
		TotalAmount: amount,
		Count:       count,
		CreatedAt:   createdAt,
	}, nil
}
