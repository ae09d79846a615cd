package httputil

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs tagged with `validate`.
var Validator = validator.New(validator.WithRequiredStructEnabled())

// ValidationError writes a 400 naming each field that failed validation.
func ValidationError(log *slog.Logger, w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Fail(log, w, "invalid payload", err, http.StatusBadRequest)
		return
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	log.Warn("validation failed", "err", err)
	WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: strings.Join(msgs, "; ")})
}
