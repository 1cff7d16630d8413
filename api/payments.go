package api

import (
	"errors"
	"net/http"

	"github.com/Upkraft/Upkraft-Backend/api/apistrings"
	models "github.com/Upkraft/Upkraft-Backend/api/models"
	basemodels "github.com/Upkraft/Upkraft-Backend/models"
	"github.com/Upkraft/Upkraft-Backend/services/payment"
	"github.com/Upkraft/Upkraft-Backend/services/security"
	user_service "github.com/Upkraft/Upkraft-Backend/services/user"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Payment struct {
	server         *Server
	paymentService *payment.PaymentService
}

func (p Payment) router(server *Server) {
	p.server = server
	userService := user_service.NewUserService(
		p.server.store,
		p.server.logger,
		security.NewCache(),
	)
	p.paymentService = payment.NewPaymentService(
		p.server.store,
		p.server.logger,
		userService,
		p.server.fees,
		p.server.notifyr,
	)

	serverGroupV1 := server.router.Group("/api/v1/payments")
	serverGroupV1.GET("history", AuthenticatedMiddleware(), p.getHistory)
	serverGroupV1.GET("invoice/:projectId", AuthenticatedMiddleware(), p.getInvoice)
	serverGroupV1.POST("milestone/release/:projectId", AuthenticatedMiddleware(), p.releaseMilestone)
	serverGroupV1.GET("milestone/:projectId", AuthenticatedMiddleware(), p.getMilestones)
}

func (p *Payment) getHistory(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	entries, err := p.paymentService.GetPaymentHistory(ctx, activeUser.Email)
	if err != nil {
		p.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Payment History Fetched Successfully", models.ToHistoryCollectionResponse(entries)))
}

func (p *Payment) getInvoice(ctx *gin.Context) {
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

	invoice, err := p.paymentService.GenerateInvoice(ctx, activeUser.Email, projectID)
	if err != nil {
		p.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Invoice Generated Successfully", models.ToInvoiceResponse(invoice)))
}

func (p *Payment) releaseMilestone(ctx *gin.Context) {
	projectID, err := models.DecodeID(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidID))
		return
	}

	request := struct {
		MilestoneIndex int32           `json:"milestone_index" binding:"min=0"`
		Amount         decimal.Decimal `json:"amount" binding:"required"`
		Title          string          `json:"title"`
	}{}

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidMilestone))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	summary, err := p.paymentService.ReleaseMilestonePayment(ctx, activeUser.Email, projectID, request.MilestoneIndex, request.Amount, request.Title)
	if err != nil {
		p.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Milestone Released Successfully", models.ToMilestoneReleaseResponse(summary)))
}

func (p *Payment) getMilestones(ctx *gin.Context) {
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

	milestones, err := p.paymentService.GetMilestonePayments(ctx, activeUser.Email, projectID)
	if err != nil {
		p.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Milestones Fetched Successfully", models.ToMilestoneCollectionResponse(milestones)))
}

func (p *Payment) respondPaymentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, user_service.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNotFound))
	case errors.Is(err, payment.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ProjectNotFound))
	case errors.Is(err, payment.ErrMilestoneNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.MilestoneNotFound))
	case errors.Is(err, payment.ErrNotProjectOwner):
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.NotProjectOwner))
	case errors.Is(err, payment.ErrNotProjectMember):
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.NotProjectMember))
	case errors.Is(err, payment.ErrNoFreelancer):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoFreelancer))
	case errors.Is(err, payment.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
	case errors.Is(err, payment.ErrProjectNotPaid):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ProjectNotPaid))
	case errors.Is(err, payment.ErrInsufficientEscrow):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientFunds))
	case errors.Is(err, payment.ErrMilestoneAlreadyReleased):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.MilestoneReleased))
	default:
		p.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
