package handlers

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/presenters"
	"Smart-Fridge-Backend/pkg/payment"

	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		MidtransWebhook(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
	}
)

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

func (h *paymentHandler) MidtransWebhook(c *fiber.Ctx) error {
	notification := map[string]interface{}{}

	if err := c.BodyParser(&notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.paymentService.HandleNotification(c.Context(), notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "notification processed")
}
