package handler

import (
	"net/http"

	"clinic-portal/pkg/apperror"
	"clinic-portal/pkg/response"
)

// statusOf maps an application error kind to an HTTP status
func statusOf(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindInvalidInput, apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindNameLookupFailed:
		return http.StatusUnprocessableEntity
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindRemote:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	response.Error(w, statusOf(err), apperror.MessageOf(err), string(apperror.KindOf(err)))
}
