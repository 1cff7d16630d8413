package user_service

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	"github.com/Upkraft/Upkraft-Backend/services/security"
)

// UserService resolves marketplace identities for the ledger. The
// identity provider itself (registration, tokens) lives outside this
// service; here users are only looked up.
type UserService struct {
	store  db.Store
	logger *logging.Logger
	cache  *security.Cache
}

func NewUserService(store db.Store, logger *logging.Logger, cache *security.Cache) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
		cache:  cache,
	}
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	if u.cache != nil {
		if val, err := u.cache.Get(cacheKey(email)); err == nil {
			if cached, ok := val.(db.User); ok {
				return &cached, nil
			}
		}
	}

	dbUser, err := u.store.GetUserByEmail(ctx, email)
	if err == sql.ErrNoRows {
		return nil, NewUserError(ErrUserNotFound, email)
	} else if err != nil {
		return nil, err
	}

	if u.cache != nil {
		u.cache.Insert(cacheKey(email), dbUser)
	}

	return &dbUser, nil
}

func (u *UserService) GetUserByID(ctx context.Context, id int64) (*db.User, error) {
	dbUser, err := u.store.GetUserByID(ctx, id)
	if err == sql.ErrNoRows {
		return nil, NewUserError(ErrUserNotFound, fmt.Sprint(id))
	} else if err != nil {
		return nil, err
	}
	return &dbUser, nil
}

func cacheKey(email string) string {
	return "user:" + email
}
