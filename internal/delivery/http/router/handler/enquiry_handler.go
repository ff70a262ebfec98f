package handler

import (
	"log/slog"
	"net/http"

	"staplewise/internal/delivery/http/response"
	"staplewise/internal/domain/entity"
	"staplewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnquiryHandler holds dependencies for lead management handlers.
type EnquiryHandler struct {
	uc     usecase.EnquiryUsecase
	logger *slog.Logger
}

// NewEnquiryHandler is the constructor for EnquiryHandler, injected by Fx.
func NewEnquiryHandler(uc usecase.EnquiryUsecase, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitEnquiryRequest struct {
	Type        string `json:"type" validate:"required,oneof=BUY SELL"`
	ProductID   string `json:"productId" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	CompanyName string `json:"companyName" validate:"required"`
	Pincode     string `json:"pincode" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	GST         string `json:"gst"`
}

type updateEnquiryRequest struct {
	Status     string `json:"status" validate:"required,oneof=PENDING ASSIGNED COMPLETED REJECTED"`
	AssignedTo string `json:"assignedTo" validate:"omitempty,uuid"`
}

// SubmitEnquiry captures a buy/sell lead. No authentication required; the
// storefront forms are open to anonymous visitors.
func (h *EnquiryHandler) SubmitEnquiry(c echo.Context) error {
	var req submitEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enquiry input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product ID")
	}

	enquiry, err := h.uc.SubmitEnquiry(c.Request().Context(), &usecase.SubmitEnquiryInput{
		Type:        entity.EnquiryType(req.Type),
		ProductID:   productID,
		Quantity:    req.Quantity,
		CompanyName: req.CompanyName,
		Pincode:     req.Pincode,
		Email:       req.Email,
		Phone:       req.Phone,
		GST:         req.GST,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, enquiry, "Enquiry submitted successfully")
}

// ListEnquiries returns every captured lead for the sales dashboard.
func (h *EnquiryHandler) ListEnquiries(c echo.Context) error {
	enquiries, err := h.uc.ListEnquiries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enquiries, "Enquiries retrieved successfully")
}

// UpdateEnquiry moves a lead through the sales workflow.
func (h *EnquiryHandler) UpdateEnquiry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enquiry ID")
	}

	var req updateEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enquiry update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateEnquiryInput{
		ID:     id,
		Status: entity.EnquiryStatus(req.Status),
	}
	if req.AssignedTo != "" {
		assignedTo, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid assignee ID")
		}
		input.AssignedTo = assignedTo
	}

	enquiry, err := h.uc.UpdateEnquiry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enquiry, "Enquiry updated successfully")
}
