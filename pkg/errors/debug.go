package errors

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// ErrorDump flattens an error chain for structured logging. Warehouse
// failures surface googleapi errors, so their fields are pulled out when
// present.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	APIStatus  int    `json:"api_status,omitempty"`
	APIMessage string `json:"api_message,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		d.APIStatus = apiErr.Code
		d.APIMessage = apiErr.Message
	}

	return d
}
