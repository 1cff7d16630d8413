package user_service

import "fmt"

var (
	ErrUserNotFound = fmt.Errorf("user not found")
)

type UserError struct {
	ErrorObj error
	UserID   string
	Other    []error
}

func (u *UserError) Error() string {
	return u.ErrorObj.Error()
}

func (u *UserError) Unwrap() error {
	return u.ErrorObj
}

func (u *UserError) ErrorOut() string {
	return fmt.Sprintf("%v: %v", u.ErrorObj.Error(), u.UserID)
}

func NewUserError(err error, userID string, e ...error) *UserError {
	return &UserError{
		ErrorObj: err,
		UserID:   userID,
		Other:    e,
	}
}
