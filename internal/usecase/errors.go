package usecase

import (
	"errors"

	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/pkg/apperror"
	"clinic-portal/pkg/monitoring"
)

var (
	ErrNoSession            = apperror.New(apperror.KindForbidden, "You must be signed in.")
	ErrRoleNotAllowed       = apperror.New(apperror.KindForbidden, "Your role cannot perform this action.")
	ErrPatientNameRequired  = apperror.New(apperror.KindValidation, "Patient name is required.")
	ErrPatientIDNotReturned = apperror.New(apperror.KindRemote, "Patient was created but no patient ID was returned.")
	ErrAppointmentNotFound  = apperror.New(apperror.KindNotFound, "Appointment not found among your appointments.")
	ErrPatientNotFound      = apperror.New(apperror.KindNotFound, "Patient record not found.")
)

// remoteFailure folds a store error into an AppError whose message is the
// store's own wording, optionally prefixed
func remoteFailure(metrics *monitoring.MetricsCollector, prefix string, err error) error {
	var remoteErr *repository.RemoteError
	if errors.As(err, &remoteErr) {
		metrics.RecordRemoteError(remoteErr.Table, string(remoteErr.Kind))
		if remoteErr.Kind == repository.RemoteKindConflict {
			return apperror.Wrap(apperror.KindConflict, prefix+remoteErr.Error(), err)
		}
	}
	return apperror.Wrap(apperror.KindRemote, prefix+err.Error(), err)
}

func requireRole(session *entity.Session, roles ...entity.Role) error {
	if session == nil {
		return ErrNoSession
	}
	if !session.HasRole(roles...) {
		return ErrRoleNotAllowed
	}
	return nil
}

// outcome labels a result for metrics
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return string(apperror.KindOf(err))
}
