package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/shopspring/decimal"
)

// Notification sends ledger event emails. Every send runs in its own
// goroutine and failures are only logged; a mail outage must never
// fail a balance mutation.
type Notification struct {
	plunk  *Plunk
	logger *logging.Logger
}

func NewNotificationService(config *utils.Config, logger *logging.Logger) *Notification {
	return &Notification{
		plunk: &Plunk{
			HttpClient: &http.Client{Timeout: 10 * time.Second},
			Config:     config,
		},
		logger: logger,
	}
}

func (n *Notification) send(to, subject, body string) {
	go func() {
		if err := n.plunk.SendEmail(to, subject, body); err != nil {
			n.logger.Error(fmt.Sprintf("failed to send %q to %s: %v", subject, to, err))
		}
	}()
}

func (n *Notification) PaymentReleased(to, projectTitle string, amount decimal.Decimal) {
	n.send(to,
		"Payment released",
		fmt.Sprintf("Your payment of %s for %q has been released to your wallet.", amount.StringFixed(2), projectTitle),
	)
}

func (n *Notification) MilestoneReleased(to, projectTitle string, index int32, amount decimal.Decimal) {
	n.send(to,
		"Milestone payment released",
		fmt.Sprintf("Milestone %d of %q has been released. %s is now available in your wallet.", index, projectTitle, amount.StringFixed(2)),
	)
}

func (n *Notification) WithdrawalRequested(to string, amount decimal.Decimal) {
	n.send(to,
		"Withdrawal requested",
		fmt.Sprintf("Your withdrawal of %s is being processed.", amount.StringFixed(2)),
	)
}

func (n *Notification) WithdrawalSettled(to string, amount decimal.Decimal, succeeded bool) {
	if succeeded {
		n.send(to, "Withdrawal completed", fmt.Sprintf("Your withdrawal of %s has been paid out.", amount.StringFixed(2)))
		return
	}
	n.send(to, "Withdrawal failed", fmt.Sprintf("Your withdrawal of %s could not be processed. The amount has been returned to your wallet.", amount.StringFixed(2)))
}
