package api

import (
	"errors"
	"net/http"

	"github.com/Upkraft/Upkraft-Backend/api/apistrings"
	models "github.com/Upkraft/Upkraft-Backend/api/models"
	basemodels "github.com/Upkraft/Upkraft-Backend/models"
	"github.com/Upkraft/Upkraft-Backend/services/fees"
	"github.com/Upkraft/Upkraft-Backend/services/security"
	user_service "github.com/Upkraft/Upkraft-Backend/services/user"
	"github.com/Upkraft/Upkraft-Backend/services/wallet"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Wallet struct {
	server        *Server
	walletService *wallet.WalletService
	fees          *fees.Policy
}

func (w Wallet) router(server *Server) {
	w.server = server
	userService := user_service.NewUserService(
		w.server.store,
		w.server.logger,
		security.NewCache(),
	)
	w.fees = server.fees
	w.walletService = wallet.NewWalletService(
		w.server.store,
		w.server.logger,
		userService,
		w.fees,
		w.server.notifyr,
		w.server.tracker,
	)

	serverGroupV1 := server.router.Group("/api/v1/wallet")
	serverGroupV1.POST("escrow/hold", AuthenticatedMiddleware(), AdminMiddleware(), w.holdEscrow)
	serverGroupV1.POST("escrow/release/:projectId", AuthenticatedMiddleware(), w.releaseEscrow)
	serverGroupV1.GET("balance", AuthenticatedMiddleware(), w.getBalance)
	serverGroupV1.POST("withdraw/request", AuthenticatedMiddleware(), w.requestWithdrawal)
	serverGroupV1.POST("withdraw/:transactionId/fail", AuthenticatedMiddleware(), AdminMiddleware(), w.failWithdrawal)
	serverGroupV1.POST("withdraw/:transactionId/confirm", AuthenticatedMiddleware(), AdminMiddleware(), w.confirmWithdrawal)
	serverGroupV1.GET("transactions", AuthenticatedMiddleware(), w.getTransactions)
}

func (w *Wallet) holdEscrow(ctx *gin.Context) {
	request := struct {
		ProjectID        models.ID `json:"project_id" binding:"required"`
		PaymentReference string    `json:"payment_reference" binding:"required"`
	}{}

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidHoldInput))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	err = w.walletService.HoldEscrow(ctx, activeUser.Email, int64(request.ProjectID), request.PaymentReference)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Escrow Held Successfully", nil))
}

func (w *Wallet) releaseEscrow(ctx *gin.Context) {
	projectID, err := models.DecodeID(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidID))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	summary, err := w.walletService.ReleaseEscrow(ctx, activeUser.Email, projectID)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Payment Released Successfully", models.ToReleaseResponse(summary)))
}

func (w *Wallet) getBalance(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	balance, err := w.walletService.GetWalletBalance(ctx, activeUser.Email)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Balance Fetched Successfully", models.ToBalanceResponse(balance)))
}

func (w *Wallet) requestWithdrawal(ctx *gin.Context) {
	var request models.WithdrawalParams

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidWithdrawal))
		return
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidWithdrawal))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	transaction, err := w.walletService.RequestWithdrawal(ctx, activeUser.Email, request.Amount, request.BankAccount, request.RoutingCode)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Withdrawal Requested Successfully", models.ToTransactionResponse(transaction)))
}

func (w *Wallet) failWithdrawal(ctx *gin.Context) {
	w.settleWithdrawal(ctx, false)
}

func (w *Wallet) confirmWithdrawal(ctx *gin.Context) {
	w.settleWithdrawal(ctx, true)
}

func (w *Wallet) settleWithdrawal(ctx *gin.Context, confirm bool) {
	transactionID, err := uuid.Parse(ctx.Param("transactionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidID))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	var transaction interface{}
	if confirm {
		tx, err := w.walletService.ConfirmWithdrawal(ctx, activeUser.Email, transactionID)
		if err != nil {
			w.respondWalletError(ctx, err)
			return
		}
		transaction = models.ToTransactionResponse(tx)
	} else {
		tx, err := w.walletService.FailWithdrawal(ctx, activeUser.Email, transactionID)
		if err != nil {
			w.respondWalletError(ctx, err)
			return
		}
		transaction = models.ToTransactionResponse(tx)
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Withdrawal Updated Successfully", transaction))
}

func (w *Wallet) getTransactions(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	transactions, err := w.walletService.GetTransactions(ctx, activeUser.Email)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transactions Fetched Successfully", models.ToTransactionCollectionResponse(transactions)))
}

// respondWalletError maps service sentinels onto HTTP statuses.
func (w *Wallet) respondWalletError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, user_service.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNotFound))
	case errors.Is(err, wallet.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ProjectNotFound))
	case errors.Is(err, wallet.ErrWalletNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
	case errors.Is(err, wallet.ErrTransactionNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.TransactionNotFound))
	case errors.Is(err, wallet.ErrNotProjectOwner):
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.NotProjectOwner))
	case errors.Is(err, wallet.ErrNotAdmin):
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.NotAdmin))
	case errors.Is(err, wallet.ErrNoFreelancer):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoFreelancer))
	case errors.Is(err, wallet.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
	case errors.Is(err, wallet.ErrInsufficientFunds):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientFunds))
	case errors.Is(err, wallet.ErrNotPendingWithdrawal):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.NotPendingWithdraw))
	case errors.Is(err, wallet.ErrDuplicatePaymentRef):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.DuplicatePaymentRef))
	default:
		w.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
