package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-booker/internal/httperr"
	"github.com/BruksfildServices01/appointment-booker/internal/httpresp"
	"github.com/BruksfildServices01/appointment-booker/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	start      *booking.StartSession
	get        *booking.GetSchedule
	end        *booking.EndSession
	selectDate *booking.SelectDate
	bookSlot   *booking.BookSlot
	adminBook  *booking.AdminBook
}

func NewBookingHandler(
	start *booking.StartSession,
	get *booking.GetSchedule,
	end *booking.EndSession,
	selectDate *booking.SelectDate,
	bookSlot *booking.BookSlot,
	adminBook *booking.AdminBook,
) *BookingHandler {
	return &BookingHandler{
		start:      start,
		get:        get,
		end:        end,
		selectDate: selectDate,
		bookSlot:   bookSlot,
		adminBook:  adminBook,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// Time vazio é aceito: a ação vira no-op, igual ao botão desabilitado.
type AdminBookingRequest struct {
	Time string `json:"time"`
}

// ======================================================
// SESSION
// ======================================================

func (h *BookingHandler) StartSession(c *gin.Context) {
	v, err := h.start.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *BookingHandler) GetSchedule(c *gin.Context) {
	v, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *BookingHandler) ListSlots(c *gin.Context) {
	v, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.List(c, v.Slots)
}

func (h *BookingHandler) EndSession(c *gin.Context) {
	if err := h.end.Execute(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// ACTIONS
// ======================================================

func (h *BookingHandler) SelectDate(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	v, err := h.selectDate.Execute(c.Request.Context(), booking.SelectDateInput{
		SessionID: c.Param("id"),
		Date:      req.Date,
	})
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *BookingHandler) BookSlot(c *gin.Context) {
	v, err := h.bookSlot.Execute(c.Request.Context(), booking.BookSlotInput{
		SessionID: c.Param("id"),
		Time:      c.Param("time"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *BookingHandler) AdminBook(c *gin.Context) {
	var req AdminBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	v, err := h.adminBook.Execute(c.Request.Context(), booking.AdminBookInput{
		SessionID: c.Param("id"),
		Time:      req.Time,
	})
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, v)
}
