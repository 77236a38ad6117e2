package schedule

import "github.com/BruksfildServices01/appointment-booker/internal/httperr"

var (
	ErrSessionNotFound = httperr.ErrBusiness("session_not_found")
	ErrInvalidDate     = httperr.ErrBusiness("invalid_date")
	ErrDateBeforeMin   = httperr.ErrBusiness("date_before_min")
	ErrInvalidSlot     = httperr.ErrBusiness("invalid_slot")
)
