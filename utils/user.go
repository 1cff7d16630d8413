package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

/// Marketplace roles carried in the auth token.
const (
	RoleCreator    = "CREATOR"
	RoleFreelancer = "FREELANCER"
	RoleAdmin      = "ADMIN"
)

func GetActiveUser(ctx *gin.Context) (TokenObject, error) {
	value, exists := ctx.Get("user")
	if !exists {
		return TokenObject{}, fmt.Errorf("error occurred, not authorized to access this resource")
	}

	user, ok := value.(TokenObject)
	if !ok {
		return TokenObject{}, fmt.Errorf("an error occurred")
	}

	return user, nil
}

func (t TokenObject) IsAdmin() bool {
	return t.Role == RoleAdmin
}
