package handler

import (
	"fmt"
	"net/http"
	"strconv"

	internal_errors "github.com/itchan-dev/confluence-bridge/shared/errors"
)

// parseIntParam parses an optional integer query parameter, returning def when absent
func parseIntParam(r *http.Request, paramName string, def int) (int, error) {
	param := r.URL.Query().Get(paramName)
	if param == "" {
		return def, nil
	}
	val, err := strconv.Atoi(param)
	if err != nil {
		return 0, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("invalid %s: must be an integer", paramName),
			StatusCode: http.StatusBadRequest,
		}
	}
	return val, nil
}
