package payment

import "fmt"

var (
	ErrProjectNotFound          = fmt.Errorf("project not found")
	ErrProjectNotPaid           = fmt.Errorf("no payment has been captured for this project")
	ErrMilestoneNotFound        = fmt.Errorf("milestone not found")
	ErrMilestoneAlreadyReleased = fmt.Errorf("milestone has already been released")
	ErrNotProjectOwner          = fmt.Errorf("only the project creator can release milestones")
	ErrNotProjectMember         = fmt.Errorf("you are not a party to this project")
	ErrNoFreelancer             = fmt.Errorf("project has no assigned freelancer")
	ErrInvalidAmount            = fmt.Errorf("amount must be positive")
	ErrInsufficientEscrow       = fmt.Errorf("milestone amount exceeds escrowed funds")
)

type PaymentError struct {
	ErrorObj  error
	ProjectID int64
	Other     []error
}

func (p *PaymentError) Error() string {
	return p.ErrorObj.Error()
}

func (p *PaymentError) Unwrap() error {
	return p.ErrorObj
}

func (p *PaymentError) ErrorOut() string {
	return fmt.Sprintf("%v: project %v", p.ErrorObj.Error(), p.ProjectID)
}

func NewPaymentError(err error, projectID int64, e ...error) *PaymentError {
	return &PaymentError{
		ErrorObj:  err,
		ProjectID: projectID,
		Other:     e,
	}
}
