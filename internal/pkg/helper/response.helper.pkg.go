package helper

import (
	"net/http"

	types "ashok-storefront/internal/common/type"
	"ashok-storefront/internal/pkg/logger"
)

// ParseResponse fills in the defaults of a response before it is sent
func ParseResponse(r *types.Response) *types.Response {
	if r == nil {
		return &types.Response{
			Code:    http.StatusInternalServerError,
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}

	if r.Code == 0 {
		r.Code = http.StatusOK
	}

	if r.Message == "" {
		r.Message = http.StatusText(r.Code)
	}

	if r.Error != nil && r.Code >= http.StatusInternalServerError {
		logger.Error.Printf("%s: %v", r.Message, r.Error)
	}

	return r
}

// ToResponseAPI converts a response into its wire envelope
func ToResponseAPI(r *types.Response, requestID string) types.ResponseAPI {
	res := types.ResponseAPI{
		Status:    r.Code,
		Message:   r.Message,
		Data:      r.Data,
		RequestID: requestID,
	}
	if r.Error != nil {
		res.Error = r.Error.Error()
	}
	return res
}
