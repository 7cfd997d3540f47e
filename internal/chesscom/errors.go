package chesscom

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError captures a non-2xx response from the published-data API.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chesscom: %s returned status %d", e.Endpoint, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the API, which is how the API
// signals an unknown club, match or player.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
