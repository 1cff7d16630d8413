package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	activitylogs "github.com/Upkraft/Upkraft-Backend/services/activity_logs"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/gin-gonic/gin"
)

type ActivityLogMiddleware struct {
	store db.Store
}

func NewActivityLogMiddleware(store db.Store) *ActivityLogMiddleware {
	return &ActivityLogMiddleware{
		store: store,
	}
}

// ActivityLogger records every money-moving call. Reads are skipped;
// the log write happens off the request goroutine so it never delays
// the response.
func (a *ActivityLogMiddleware) ActivityLogger(s *activitylogs.ActivityLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldLog(c.Request.Method) {
			c.Next()
			return
		}

		c.Next()

		var userID *int64
		if user, err := utils.GetActiveUser(c); err == nil {
			uid := user.UserID
			userID = &uid
		}

		action := fmt.Sprintf("%s %s -> %d", c.Request.Method, c.FullPath(), c.Writer.Status())
		entityType, entityID := entityFromPath(c)
		ipAddress := c.ClientIP()
		userAgent := c.Request.UserAgent()

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_, _ = s.Create(ctx, activitylogs.CreateActivityLogParams{
				UserID:     userID,
				Action:     action,
				EntityType: entityType,
				EntityID:   entityID,
				IPAddress:  ipAddress,
				UserAgent:  userAgent,
			})
		}()
	}
}

func shouldLog(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func entityFromPath(c *gin.Context) (entityType *string, entityID *string) {
	if id := c.Param("projectId"); id != "" {
		t := "project"
		return &t, &id
	}
	if id := c.Param("transactionId"); id != "" {
		t := "wallet_transaction"
		return &t, &id
	}
	if strings.Contains(c.FullPath(), "/wallet/") {
		t := "wallet"
		return &t, nil
	}
	return nil, nil
}
