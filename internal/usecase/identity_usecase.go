package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/internal/service"
	"clinic-portal/pkg/apperror"
	"clinic-portal/pkg/jwt"
	"clinic-portal/pkg/monitoring"

	"github.com/sirupsen/logrus"
)

type IdentityUsecase interface {
	// Resolve matches an identifier against the role's table and fetches the display name
	Resolve(ctx context.Context, identifier string, role entity.Role) (*entity.Identity, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RegisterPatient(ctx context.Context, req *dto.PatientRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, session *entity.Session) error
}

type identityUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DirectoryRepository
	registrar     *patientRegistrar
	jwtService    *jwt.JWTService
	sessionStore  service.SessionStore
	metrics       *monitoring.MetricsCollector
	now           func() time.Time
}

func NewIdentityUsecase(
	log *logrus.Logger,
	directoryRepo repository.DirectoryRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
	metrics *monitoring.MetricsCollector,
) IdentityUsecase {
	return &identityUsecase{
		log:           log,
		directoryRepo: directoryRepo,
		registrar:     &patientRegistrar{log: log, patientRepo: patientRepo, metrics: metrics},
		jwtService:    jwtService,
		sessionStore:  sessionStore,
		metrics:       metrics,
		now:           time.Now,
	}
}

func (u *identityUsecase) Resolve(ctx context.Context, identifier string, role entity.Role) (*entity.Identity, error) {
	identity, err := u.resolve(ctx, identifier, role)
	u.metrics.RecordResolution(role.String(), outcome(err))
	return identity, err
}

func (u *identityUsecase) resolve(ctx context.Context, identifier string, role entity.Role) (*entity.Identity, error) {
	id, err := entity.ParseRecordID(identifier)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidInput,
			fmt.Sprintf("ID must be a number. You entered '%s'.", identifier), err)
	}

	schema, ok := role.Schema()
	if !ok {
		return nil, apperror.New(apperror.KindInvalidInput, fmt.Sprintf("Unknown role '%s'.", role))
	}

	exists, err := u.directoryRepo.Exists(ctx, schema, id)
	if err != nil {
		u.log.Warnf("Failed to look up %s %d: %+v", role, id, err)
		return nil, remoteFailure(u.metrics, "Database connection error: ", err)
	}
	if !exists {
		return nil, apperror.New(apperror.KindNotFound, fmt.Sprintf("No %s found with ID '%d' in column '%s'.",
			strings.ToLower(role.String()), id, schema.IDColumn))
	}

	name, err := u.directoryRepo.FindDisplayName(ctx, schema, id)
	if err != nil {
		u.log.Warnf("Failed to fetch name of %s %d: %+v", role, id, err)
		return nil, remoteFailure(u.metrics, fmt.Sprintf("Error fetching %s name: ", schema.NameTable), err)
	}
	if strings.TrimSpace(name) == "" {
		if role == entity.RolePatient {
			return nil, apperror.New(apperror.KindNameLookupFailed,
				fmt.Sprintf("Patient ID '%d' found, but couldn't fetch name.", id))
		}
		return nil, apperror.New(apperror.KindNameLookupFailed,
			fmt.Sprintf("%s ID '%d' found, but no matching '%s' record exists to get name.", role, id, schema.NameTable))
	}

	return entity.NewIdentity(id, role, name, schema.IDColumn)
}

func (u *identityUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidInput, "Please select Doctor, Nurse or Patient.", err)
	}

	identity, err := u.Resolve(ctx, req.Identifier, role)
	if err != nil {
		return nil, err
	}

	return u.startSession(ctx, identity)
}

// RegisterPatient creates the patient and signs them in as that patient
func (u *identityUsecase) RegisterPatient(ctx context.Context, req *dto.PatientRequest) (*dto.LoginResponse, error) {
	patient, err := u.registrar.register(ctx, req)
	if err != nil {
		u.metrics.RecordTransition("register", outcome(err))
		return nil, err
	}
	u.metrics.RecordTransition("register", outcome(nil))

	identity, err := entity.NewIdentity(patient.PatientID, entity.RolePatient, patient.Name, entity.ColumnPatientID)
	if err != nil {
		return nil, err
	}

	return u.startSession(ctx, identity)
}

func (u *identityUsecase) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return ErrNoSession
	}
	if err := u.sessionStore.Delete(ctx, session.TokenID); err != nil {
		u.log.Warnf("Failed to end session %s: %+v", session.TokenID, err)
		return err
	}

	u.log.Infof("%s %d signed out", session.Identity.Role, session.Identity.UserID)
	return nil
}

func (u *identityUsecase) startSession(ctx context.Context, identity *entity.Identity) (*dto.LoginResponse, error) {
	token, tokenID, err := u.jwtService.GenerateSessionToken(*identity)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	session := entity.NewSession(tokenID, *identity, u.now(), u.jwtService.GetSessionExpiry())
	if err := u.sessionStore.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	u.log.Infof("%s %d signed in as %s", identity.Role, identity.UserID, identity.DisplayName)
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(u.jwtService.GetSessionExpiry().Seconds()),
		Identity:    *converter.IdentityToResponse(identity),
	}, nil
}
