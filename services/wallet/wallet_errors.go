package wallet

import "fmt"

var (
	ErrWalletNotFound       = fmt.Errorf("wallet not found")
	ErrWalletNotPossible    = fmt.Errorf("could not create wallet")
	ErrProjectNotFound      = fmt.Errorf("project not found")
	ErrTransactionNotFound  = fmt.Errorf("transaction not found")
	ErrInsufficientFunds    = fmt.Errorf("insufficient funds")
	ErrNoFreelancer         = fmt.Errorf("project has no assigned freelancer")
	ErrNotProjectOwner      = fmt.Errorf("only the project creator can release payment")
	ErrInvalidAmount        = fmt.Errorf("amount must be positive")
	ErrDuplicatePaymentRef  = fmt.Errorf("payment reference already credited")
	ErrNotPendingWithdrawal = fmt.Errorf("transaction is not a pending withdrawal")
	ErrNotAdmin             = fmt.Errorf("admin role required")
)

type WalletError struct {
	ErrorObj error
	WalletID string
	Other    []error
}

func (w *WalletError) Error() string {
	return w.ErrorObj.Error()
}

func (w *WalletError) Unwrap() error {
	return w.ErrorObj
}

func (w *WalletError) ErrorOut() string {
	return fmt.Sprintf("%v: %v", w.ErrorObj.Error(), w.WalletID)
}

func NewWalletError(err error, wallID string, e ...error) *WalletError {
	return &WalletError{
		ErrorObj: err,
		WalletID: wallID,
		Other:    e,
	}
}
