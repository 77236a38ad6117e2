package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booker/internal/dto"
	"github.com/BruksfildServices01/appointment-booker/internal/httperr"
	"github.com/BruksfildServices01/appointment-booker/internal/usecase/booking"
)

// BookingWebHandler desenha o widget em HTML. Cada GET /web/booker monta
// uma sessão nova, então recarregar a página descarta o estado.
type BookingWebHandler struct {
	start      *booking.StartSession
	get        *booking.GetSchedule
	selectDate *booking.SelectDate
	bookSlot   *booking.BookSlot
	adminBook  *booking.AdminBook
	reject     *booking.RejectInput
}

func NewBookingWebHandler(
	start *booking.StartSession,
	get *booking.GetSchedule,
	selectDate *booking.SelectDate,
	bookSlot *booking.BookSlot,
	adminBook *booking.AdminBook,
	reject *booking.RejectInput,
) *BookingWebHandler {
	return &BookingWebHandler{
		start:      start,
		get:        get,
		selectDate: selectDate,
		bookSlot:   bookSlot,
		adminBook:  adminBook,
		reject:     reject,
	}
}

// render desenha a tela. Erro de negócio numa sessão que existe vira banner
// de erro em cima do estado atual; a tela nunca é trocada por texto puro.
func (h *BookingWebHandler) render(c *gin.Context, v *dto.ScheduleViewDTO, err error) {
	if err == nil {
		c.HTML(http.StatusOK, "booker", v)
		return
	}

	status, code, message := httperr.Status(err)
	if code == "internal_error" {
		getLogger(c).Error("web request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	if code != "internal_error" && code != "session_not_found" {
		v, err = h.reject.Execute(c.Request.Context(), booking.RejectInputInput{
			SessionID: c.Param("id"),
			Text:      message,
		})
		if err == nil {
			c.HTML(http.StatusOK, "booker", v)
			return
		}
		status, _, message = httperr.Status(err)
	}

	c.String(status, message)
}

func (h *BookingWebHandler) Mount(c *gin.Context) {
	v, err := h.start.Execute(c.Request.Context())
	h.render(c, v, err)
}

func (h *BookingWebHandler) Show(c *gin.Context) {
	v, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	h.render(c, v, err)
}

// SelectDate com data vazia (campo limpo no navegador) só redesenha a tela.
func (h *BookingWebHandler) SelectDate(c *gin.Context) {
	date := c.PostForm("date")
	if date == "" {
		h.Show(c)
		return
	}

	v, err := h.selectDate.Execute(c.Request.Context(), booking.SelectDateInput{
		SessionID: c.Param("id"),
		Date:      date,
	})
	h.render(c, v, err)
}

func (h *BookingWebHandler) BookSlot(c *gin.Context) {
	v, err := h.bookSlot.Execute(c.Request.Context(), booking.BookSlotInput{
		SessionID: c.Param("id"),
		Time:      c.PostForm("time"),
	})
	h.render(c, v, err)
}

func (h *BookingWebHandler) AdminBook(c *gin.Context) {
	v, err := h.adminBook.Execute(c.Request.Context(), booking.AdminBookInput{
		SessionID: c.Param("id"),
		Time:      c.PostForm("time"),
	})
	h.render(c, v, err)
}
