package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/dto"
	"github.com/LeandroPanozzo/Spa-produccion/internal/invoice"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service/paymentservice"
	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, appointmentID, paymentTypeID int, discount float64, creditCard, pin string) (*domain.Payment, error)
	List(ctx context.Context, principal pkgauth.Principal, from, to *time.Time) ([]domain.PaymentListItem, error)
	ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error)
	BuildInvoice(ctx context.Context, principal pkgauth.Principal, appointmentID int) (*invoice.Invoice, error)
}

type PaymentHandler struct {
	paymentService Service
	renderer       invoice.Renderer
}

func New(paymentService Service, renderer invoice.Renderer) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		renderer:       renderer,
	}
}

// Create godoc
//
//	@Summary		Pay an appointment
//	@Description	Charge an appointment; the total is derived from its services and the discount
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Payment body"
//	@Success		201		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid discount, card or pin"
//	@Failure		404		{object}	utils.Response	"Appointment or payment type not found"
//	@Failure		409		{object}	utils.Response	"Appointment already paid"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/payments [post]
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.Create(r.Context(), req.AppointmentID, req.PaymentTypeID, req.Discount, req.CreditCard, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrAppointmentNotFound),
			errors.Is(err, paymentservice.ErrPaymentTypeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrAlreadyPaid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, paymentservice.ErrNoServices),
			errors.Is(err, paymentservice.ErrInvalidDiscount),
			errors.Is(err, paymentservice.ErrInvalidCreditCard),
			errors.Is(err, paymentservice.ErrInvalidPIN):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPaymentDTO(payment))
}

// List godoc
//
//	@Summary		List payments
//	@Description	Payments joined with client and payment type names; owner and secretary only. The end date is inclusive.
//	@Tags			Payments
//	@Produce		json
//	@Param			from	query		string	false	"Start date (2006-01-02)"
//	@Param			to		query		string	false	"End date (2006-01-02)"
//	@Success		200		{array}		dto.PaymentListItemDTO
//	@Failure		400		{object}	utils.Response	"Invalid date range"
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Security		BearerAuth
//	@Router			/api/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
			return
		}
		from = &t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
			return
		}
		// inclusive end date: push the half-open bound to the next day
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	items, err := h.paymentService.List(r.Context(), principal, from, to)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPermissionDenied) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PaymentListItemDTO, 0, len(items))
	for i := range items {
		resp = append(resp, dto.PaymentListItemDTO{
			PaymentResponseDTO: toPaymentDTO(&items[i].Payment),
			ClientFirstName:    items[i].ClientFirstName,
			ClientLastName:     items[i].ClientLastName,
			PaymentType:        items[i].PaymentTypeName,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListPaymentTypes godoc
//
//	@Summary	List payment types
//	@Tags		Payments
//	@Produce	json
//	@Success	200	{array}		dto.PaymentTypeResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Security	BearerAuth
//	@Router		/api/payment-types [get]
func (h *PaymentHandler) ListPaymentTypes(w http.ResponseWriter, r *http.Request) {
	paymentTypes, err := h.paymentService.ListPaymentTypes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PaymentTypeResponseDTO, 0, len(paymentTypes))
	for _, paymentType := range paymentTypes {
		resp = append(resp, dto.PaymentTypeResponseDTO{
			ID:   paymentType.ID,
			Name: paymentType.Name,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DownloadInvoice godoc
//
//	@Summary		Download the invoice PDF
//	@Description	Render the invoice of a paid appointment; staff or the booking client
//	@Tags			Payments
//	@Produce		application/pdf
//	@Param			id	path		int	true	"Appointment ID"
//	@Success		200	{file}		file
//	@Failure		403	{object}	utils.Response	"Permission denied"
//	@Failure		404	{object}	utils.Response	"Appointment or payment not found"
//	@Security		BearerAuth
//	@Router			/api/appointments/{id}/invoice [get]
func (h *PaymentHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	appointmentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}
	inv, err := h.paymentService.BuildInvoice(r.Context(), principal, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPermissionDenied):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, paymentservice.ErrAppointmentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	pdf, err := h.renderer.Render(inv)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Can't render invoice")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=factura_%d.pdf", appointmentID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func toPaymentDTO(payment *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:            payment.ID,
		TotalPayment:  payment.TotalPayment,
		Discount:      payment.Discount,
		PaymentTypeID: payment.PaymentTypeID,
		PaymentDate:   payment.PaymentDate,
		AppointmentID: payment.AppointmentID,
	}
}
