package handlers

import (
	"errors"
	"net/http"

	"github.com/crucial707/weblab/internal/phone"
)

// Phone shows the phone checker form; on POST it validates the submitted
// number and renders either the canonical form or the validation error.
// Validation failures are a normal page, not an error status.
func (h *Handlers) Phone(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title": "Phone number check",
		"Raw":   "",
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		raw := r.FormValue("phone")
		data["Raw"] = raw

		formatted, err := phone.Normalize(raw)
		if err != nil {
			data["Error"] = phoneErrorMessage(err)
		} else {
			data["Formatted"] = formatted
		}
	}

	sess := h.Sessions.Load(r)
	h.render(w, r, sess, "phone.html", data)
}

func phoneErrorMessage(err error) string {
	switch {
	case errors.Is(err, phone.ErrInvalidCharacters):
		return "Invalid input. The phone number contains invalid characters."
	case errors.Is(err, phone.ErrWrongDigitCount):
		return "Invalid input. Wrong number of digits."
	default:
		return "Invalid input."
	}
}
