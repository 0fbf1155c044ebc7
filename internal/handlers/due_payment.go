package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

type DuePaymentHandler struct {
	service *services.DuePaymentService
}

func NewDuePaymentHandler(service *services.DuePaymentService) *DuePaymentHandler {
	return &DuePaymentHandler{service: service}
}

type duePaymentRequest struct {
	EmployeeID uint64  `json:"employee_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"gt=0"`
	Status     string  `json:"status" binding:"omitempty,oneof=pending paid"`
	PayDate    string  `json:"pay_date" binding:"required"`
	Notes      string  `json:"notes" binding:"max=1000"`
}

func (r duePaymentRequest) input() services.DuePaymentInput {
	return services.DuePaymentInput{
		EmployeeID: r.EmployeeID,
		Amount:     r.Amount,
		Status:     r.Status,
		PayDate:    r.PayDate,
		Notes:      r.Notes,
	}
}

func (h *DuePaymentHandler) ListDuePayments(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result := h.service.List(listInput(userID, utils.GetListParams(c)))
	c.JSON(http.StatusOK, dto.ToListResponse(result, dto.DuePaymentConverter(h.service.Today())))
}

func (h *DuePaymentHandler) GetDuePayment(c *gin.Context) {
	payment, ok := middleware.GetResource[*models.DuePayment](c)
	if !ok {
		apierrors.InternalError(c, "Due payment not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToDuePaymentDTO(*payment, h.service.Today()))
}

func (h *DuePaymentHandler) CreateDuePayment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req duePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.service.Create(userID, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDuePaymentDTO(*payment, h.service.Today()))
}

func (h *DuePaymentHandler) UpdateDuePayment(c *gin.Context) {
	payment, ok := middleware.GetResource[*models.DuePayment](c)
	if !ok {
		apierrors.InternalError(c, "Due payment not found in context")
		return
	}

	var req duePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(payment, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusOK, dto.ToDuePaymentDTO(*updated, h.service.Today()))
}

// PayDuePayment marks a due payment as paid
func (h *DuePaymentHandler) PayDuePayment(c *gin.Context) {
	payment, ok := middleware.GetResource[*models.DuePayment](c)
	if !ok {
		apierrors.InternalError(c, "Due payment not found in context")
		return
	}

	paid, err := h.service.MarkPaid(payment)
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToDuePaymentDTO(*paid, h.service.Today()))
}

func (h *DuePaymentHandler) DeleteDuePayment(c *gin.Context) {
	payment, ok := middleware.GetResource[*models.DuePayment](c)
	if !ok {
		apierrors.InternalError(c, "Due payment not found in context")
		return
	}

	if err := h.service.Delete(payment.ID); err != nil {
		respondServiceError(c, err, nil)
		return
	}

	deleted(c, "Due payment")
}
