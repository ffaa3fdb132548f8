package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendame/agenda-api/internal/dto"
	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/httpresp"
	"github.com/agendame/agenda-api/internal/middleware"
	ucAppointment "github.com/agendame/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	cancel *ucAppointment.CancelAppointment
	list   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		cancel: cancel,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_failed", "Validation fails")
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		httperr.BadRequest(c, "validation_failed", "Validation fails")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:   clientID,
		ProviderID: req.ProviderID,
		Date:       date,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httperr.BadRequest(c, "invalid_page", "Page must be a positive integer")
			return
		}
		page = n
	}

	aps, err := h.list.Execute(c.Request.Context(), clientID, page)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Internal server error")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.FromAppointment(ap))
	}

	httpresp.List(c, page, out)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), clientID, uint(id))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// ERROR TRANSLATION
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}

	switch code {
	case "not_a_provider":
		httperr.Unauthorized(c, code, "You can only create appointments with providers")
	case "past_date":
		httperr.BadRequest(c, code, "Past dates are not permitted")
	case "slot_taken":
		httperr.BadRequest(c, code, "Appointment date is not available")
	case "provider_as_client":
		httperr.BadRequest(c, code, "Appointments between providers are not allowed")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found")
	case "not_appointment_owner":
		httperr.BadRequest(c, code, "You can only cancel your own appointments")
	case "too_late_to_cancel":
		httperr.Unauthorized(c, code, "You can only cancel appointments 2 hours in advance")
	default:
		httperr.BadRequest(c, code, "Request could not be processed")
	}
}
