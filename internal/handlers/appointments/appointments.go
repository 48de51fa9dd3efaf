package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/dto"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service/appointmentservice"
	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, principal pkgauth.Principal, professionalID int, serviceIDs []int, appointmentDate time.Time) (*domain.Appointment, error)
	List(ctx context.Context, principal pkgauth.Principal) ([]domain.Appointment, error)
	Get(ctx context.Context, principal pkgauth.Principal, id int) (*domain.Appointment, error)
	Update(ctx context.Context, principal pkgauth.Principal, id int, fields appointmentservice.UpdateFields) (*domain.Appointment, error)
	ReplaceServices(ctx context.Context, principal pkgauth.Principal, id int, serviceIDs []int) error
	Delete(ctx context.Context, principal pkgauth.Principal, id int) error
	ServicesFor(ctx context.Context, appointmentID int) ([]domain.Service, error)
	ClientsByProfessional(ctx context.Context, principal pkgauth.Principal, professionalID *int, from, to *time.Time) (map[string][]appointmentservice.Visit, error)
	GroupedByDate(ctx context.Context, principal pkgauth.Principal) (map[string][]appointmentservice.Visit, error)
}

type AppointmentHandler struct {
	appointmentService Service
}

func New(appointmentService Service) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// Create godoc
//
//	@Summary		Book an appointment
//	@Description	Create an appointment for the calling client; near-term bookings get a 30 minute payment deadline
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAppointmentRequestDTO	true	"Appointment body"
//	@Success		201		{object}	dto.AppointmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		404		{object}	utils.Response	"Professional or service not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateAppointmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	appointment, err := h.appointmentService.Create(r.Context(), principal, req.ProfessionalID, req.ServiceIDs, req.AppointmentDate)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondAppointment(w, r, http.StatusCreated, appointment)
}

// List godoc
//
//	@Summary		List appointments
//	@Description	Staff see all appointments, professionals their own schedule, clients their bookings
//	@Tags			Appointments
//	@Produce		json
//	@Success		200	{array}		dto.AppointmentResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	appointments, err := h.appointmentService.List(r.Context(), principal)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.AppointmentResponseDTO, 0, len(appointments))
	for i := range appointments {
		item, err := h.toDTO(r.Context(), &appointments[i])
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		resp = append(resp, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get an appointment
//	@Tags		Appointments
//	@Produce	json
//	@Param		id	path		int	true	"Appointment ID"
//	@Success	200	{object}	dto.AppointmentResponseDTO
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Appointment not found"
//	@Security	BearerAuth
//	@Router		/api/appointments/{id} [get]
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}
	appointment, err := h.appointmentService.Get(r.Context(), principal, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondAppointment(w, r, http.StatusOK, appointment)
}

// Update godoc
//
//	@Summary		Update an appointment
//	@Description	Reschedule or reassign an appointment; staff only
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Appointment ID"
//	@Param			request	body		dto.UpdateAppointmentRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.AppointmentResponseDTO
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		404		{object}	utils.Response	"Appointment not found"
//	@Security		BearerAuth
//	@Router			/api/appointments/{id} [put]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}
	var req dto.UpdateAppointmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	appointment, err := h.appointmentService.Update(r.Context(), principal, id, appointmentservice.UpdateFields{
		ProfessionalID:  req.ProfessionalID,
		AppointmentDate: req.AppointmentDate,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondAppointment(w, r, http.StatusOK, appointment)
}

// ReplaceServices godoc
//
//	@Summary		Replace appointment services
//	@Description	Swap the service set of an unpaid appointment; staff or the booking client
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Appointment ID"
//	@Param			request	body		dto.ReplaceServicesRequestDTO	true	"Service ids"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		404		{object}	utils.Response	"Appointment or service not found"
//	@Failure		409		{object}	utils.Response	"Appointment already paid"
//	@Security		BearerAuth
//	@Router			/api/appointments/{id}/services [put]
func (h *AppointmentHandler) ReplaceServices(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}
	var req dto.ReplaceServicesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.appointmentService.ReplaceServices(r.Context(), principal, id, req.ServiceIDs); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Services updated"})
}

// Delete godoc
//
//	@Summary	Cancel an appointment
//	@Tags		Appointments
//	@Produce	json
//	@Param		id	path		int	true	"Appointment ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Appointment not found"
//	@Security	BearerAuth
//	@Router		/api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}
	if err := h.appointmentService.Delete(r.Context(), principal, id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Appointment deleted"})
}

// ClientsByProfessional godoc
//
//	@Summary		Visits grouped by professional
//	@Description	Owner dashboard; professionals see only their own schedule
//	@Tags			Appointments
//	@Produce		json
//	@Param			professional_id	query		int		false	"Filter by professional"
//	@Param			from			query		string	false	"Start date (RFC 3339)"
//	@Param			to				query		string	false	"End date (RFC 3339)"
//	@Success		200				{object}	map[string][]dto.ClientsByProfessionalItemDTO
//	@Failure		403				{object}	utils.Response	"Permission denied"
//	@Security		BearerAuth
//	@Router			/api/appointments/by-professional [get]
func (h *AppointmentHandler) ClientsByProfessional(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var professionalID *int
	if raw := r.URL.Query().Get("professional_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid professional id")
			return
		}
		professionalID = &id
	}
	from, to, err := parseDateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	grouped, err := h.appointmentService.ClientsByProfessional(r.Context(), principal, professionalID, from, to)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make(map[string][]dto.ClientsByProfessionalItemDTO, len(grouped))
	for professional, visits := range grouped {
		items := make([]dto.ClientsByProfessionalItemDTO, 0, len(visits))
		for _, visit := range visits {
			items = append(items, dto.ClientsByProfessionalItemDTO{
				ClientFirstName: visit.ClientFirstName,
				ClientLastName:  visit.ClientLastName,
				AppointmentDate: visit.AppointmentDate.Format("2006-01-02 15:04"),
				Services:        visit.Services,
			})
		}
		resp[professional] = items
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GroupedByDate godoc
//
//	@Summary		Visits grouped by calendar day
//	@Description	Owner dashboard
//	@Tags			Appointments
//	@Produce		json
//	@Success		200	{object}	map[string][]dto.ClientsByDayItemDTO
//	@Failure		403	{object}	utils.Response	"Permission denied"
//	@Security		BearerAuth
//	@Router			/api/appointments/by-day [get]
func (h *AppointmentHandler) GroupedByDate(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	grouped, err := h.appointmentService.GroupedByDate(r.Context(), principal)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make(map[string][]dto.ClientsByDayItemDTO, len(grouped))
	for day, visits := range grouped {
		items := make([]dto.ClientsByDayItemDTO, 0, len(visits))
		for _, visit := range visits {
			items = append(items, dto.ClientsByDayItemDTO{
				Client:    visit.ClientUsername,
				FirstName: visit.ClientFirstName,
				LastName:  visit.ClientLastName,
				Services:  visit.Services,
			})
		}
		resp[day] = items
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) respondAppointment(w http.ResponseWriter, r *http.Request, status int, appointment *domain.Appointment) {
	resp, err := h.toDTO(r.Context(), appointment)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, status, resp)
}

func (h *AppointmentHandler) toDTO(ctx context.Context, appointment *domain.Appointment) (dto.AppointmentResponseDTO, error) {
	services, err := h.appointmentService.ServicesFor(ctx, appointment.ID)
	if err != nil {
		return dto.AppointmentResponseDTO{}, err
	}
	serviceDTOs := make([]dto.ServiceResponseDTO, 0, len(services))
	for _, service := range services {
		serviceDTOs = append(serviceDTOs, dto.ServiceResponseDTO{
			ID:    service.ID,
			Name:  service.Name,
			Price: service.Price,
		})
	}
	return dto.AppointmentResponseDTO{
		ID:              appointment.ID,
		ClientID:        appointment.ClientID,
		ProfessionalID:  appointment.ProfessionalID,
		AppointmentDate: appointment.AppointmentDate,
		PaymentDeadline: appointment.PaymentDeadline,
		PaymentID:       appointment.PaymentID,
		Services:        serviceDTOs,
	}, nil
}

func (h *AppointmentHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appointmentservice.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, appointmentservice.ErrAppointmentNotFound),
		errors.Is(err, appointmentservice.ErrServiceNotFound),
		errors.Is(err, appointmentservice.ErrProfessionalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, appointmentservice.ErrNoServices),
		errors.Is(err, appointmentservice.ErrNotProfessional):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, appointmentservice.ErrAppointmentHasPayment):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseDateRange(r *http.Request) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
