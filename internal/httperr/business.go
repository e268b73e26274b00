package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BusinessError is a domain outcome the handlers translate to an HTTP
// shape, as opposed to an unexpected failure.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// The business codes the use cases raise and their wire shape. Missing
// and unauthorized both surface as not-found so nothing leaks about
// other users' records.
var businessResponses = map[string]struct {
	status  int
	message string
}{
	"service_not_found":     {http.StatusNotFound, "Service not found."},
	"pet_not_found":         {http.StatusNotFound, "Pet not found"},
	"appointment_not_found": {http.StatusNotFound, "Appointment not found or unauthorized"},
}

// WriteBusiness writes the mapped response for a business error and
// reports whether it handled err. Unknown codes and plain errors are
// left to the caller's failure path.
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	resp, ok := businessResponses[be.Code]
	if !ok {
		return false
	}

	Write(c, resp.status, be.Code, resp.message)
	return true
}
