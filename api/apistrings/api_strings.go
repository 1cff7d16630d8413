package apistrings

const (
	/// Basic User Related Strings
	UserNotFound = "user or account does not exist"
	NotAdmin     = "this action requires an admin account"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Wallet Related Strings
	UserNoWallet        = "user does not have a wallet created"
	ProjectNotFound     = "project does not exist"
	NoFreelancer        = "project has no assigned freelancer"
	NotProjectOwner     = "only the project creator can release payment"
	NotProjectMember    = "you are not a party to this project"
	InsufficientFunds   = "insufficient funds for this operation"
	InvalidAmount       = "amount must be a positive number"
	DuplicatePaymentRef = "this payment reference has already been credited"
	InvalidHoldInput    = "check 'project_id' or 'payment_reference' keys, invalid request"
	InvalidWithdrawal   = "check 'amount' or 'bank_account' keys, invalid request"
	TransactionNotFound = "transaction does not exist"
	NotPendingWithdraw  = "transaction is not a pending withdrawal"
	InvalidID           = "entered ID is invalid"

	/// Payment Related Strings
	InvalidMilestone  = "check 'milestone_index' or 'amount' keys, invalid request"
	MilestoneReleased = "milestone has already been released"
	MilestoneNotFound = "milestone does not exist"
	ProjectNotPaid    = "no payment has been captured for this project"
)
