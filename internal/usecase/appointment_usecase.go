package usecase

import (
	"context"
	"errors"
	"time"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentClosed   = errors.New("appointment is no longer scheduled")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrSlotTaken           = errors.New("this time slot is already booked")
	ErrPastDate            = errors.New("cannot book an appointment in the past")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorUnavailable   = errors.New("doctor is not accepting appointments")
	ErrNotAPatient         = errors.New("only patients can book appointments")
	ErrInvalidType         = errors.New("unknown appointment type")
	ErrInvalidStatusFilter = errors.New("unknown status filter")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) error
	MarkNoShow(ctx context.Context, appointmentID uuid.UUID) error
	ListAppointments(ctx context.Context, query *dto.SearchAppointmentsQuery) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	appointmentRepo    repository.AppointmentRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		appointmentRepo:    appointmentRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

// BookAppointment creates a scheduled appointment for the logged-in patient.
//
// Flow:
// 1. Resolve the patient profile (reject non-patients)
// 2. Validate the date is today or later and the doctor takes bookings
// 3. Insert inside the request transaction; the partial unique index on
//    (doctor, date, time) WHERE status = 'scheduled' rejects a taken slot,
//    so there is no check-then-insert race window
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointmentType := entity.AppointmentType(req.AppointmentType)
	if appointmentType == "" {
		appointmentType = entity.AppointmentTypeConsultation
	}
	if !entity.ValidAppointmentType(appointmentType) {
		return nil, ErrInvalidType
	}

	patient, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotAPatient
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Today is the boundary: booking for today is allowed
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if appointmentDate.Before(today) {
		return nil, ErrPastDate
	}

	doctor, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.AcceptsBookings() {
		return nil, ErrDoctorUnavailable
	}

	appointment := &entity.Appointment{
		PatientID:       patient.UserID,
		DoctorID:        doctor.UserID,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.AppointmentTime,
		AppointmentType: appointmentType,
		Reason:          req.Reason,
		Notes:           req.Notes,
		Status:          entity.AppointmentStatusScheduled,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "appointment_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with doctor and patient info for the response
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, slot=%s %s", appointment.ID, doctor.UserID, req.AppointmentDate, req.AppointmentTime)
	return converter.AppointmentToResponse(full), nil
}

// CancelAppointment moves a scheduled appointment to cancelled. Patients may
// cancel their own appointments, admins anyone's. The freed slot becomes
// immediately bookable again.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusCancelled, entity.AuditActionAppointmentCancel, "")
}

// CompleteAppointment marks a scheduled appointment completed, optionally
// attaching visit notes. Doctors may complete their own appointments,
// admins anyone's.
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) error {
	notes := ""
	if req != nil {
		notes = req.Notes
	}
	return u.transition(ctx, appointmentID, entity.AppointmentStatusCompleted, entity.AuditActionAppointmentDone, notes)
}

// MarkNoShow records that the patient did not attend. Same authority as
// completing.
func (u *appointmentUsecase) MarkNoShow(ctx context.Context, appointmentID uuid.UUID) error {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusNoShow, entity.AuditActionAppointmentNoShow, "")
}

// transition applies a status change with role-based authority checks.
// The UPDATE is guarded by "status = scheduled", so a transition from a
// terminal state affects 0 rows and is rejected.
func (u *appointmentUsecase) transition(ctx context.Context, appointmentID uuid.UUID, target entity.AppointmentStatus, auditAction string, notes string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return errors.New("role not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if !u.mayTransition(roleID, userID, appointment, target) {
		return ErrAppointmentNotOwned
	}

	// Early reject on the state we just read. The guarded UPDATE below is
	// still the authority under concurrent transitions.
	if !appointment.CanTransitionTo(target) {
		return ErrAppointmentClosed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, target)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentClosed
	}

	if notes != "" {
		if err := u.appointmentRepo.UpdateNotes(tx, appointmentID, notes); err != nil {
			u.log.Warnf("Failed to update appointment %s notes: %+v", appointmentID, err)
			return err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, auditAction, "appointment", appointmentID.String(), string(appointment.Status), string(target)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment %s: %s -> %s", appointmentID, appointment.Status, target)
	return nil
}

// mayTransition encodes the transition authority: doctors close out their
// own appointments (completed/no_show), patients cancel their own, admins
// may do either.
func (u *appointmentUsecase) mayTransition(roleID int, userID uuid.UUID, appointment *entity.Appointment, target entity.AppointmentStatus) bool {
	switch roleID {
	case entity.RoleIDAdmin:
		return true
	case entity.RoleIDDoctor:
		if appointment.DoctorID != userID {
			return false
		}
		return target == entity.AppointmentStatusCompleted || target == entity.AppointmentStatusNoShow
	case entity.RoleIDPatient:
		if appointment.PatientID != userID {
			return false
		}
		return target == entity.AppointmentStatusCancelled
	}
	return false
}

// ListAppointments returns the appointments visible to the requester:
// patients see their own, doctors theirs, admins everything. A requester
// without a recognized role gets an empty list.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, query *dto.SearchAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	if query != nil && query.Status != "" && !entity.ValidAppointmentStatus(entity.AppointmentStatus(query.Status)) {
		return nil, ErrInvalidStatusFilter
	}

	filter := searchQueryToFilter(query)

	var (
		appointments []entity.Appointment
		err          error
	)
	switch roleID {
	case entity.RoleIDPatient:
		appointments, err = u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), userID, filter)
	case entity.RoleIDDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), userID, filter)
	case entity.RoleIDAdmin:
		appointments, err = u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	default:
		appointments = nil
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetAppointment fetches one appointment under the same scoping rules as
// the listing. Out-of-scope lookups report not found rather than existence.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointmentVisibleTo(roleID, userID, appointment) {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// appointmentVisibleTo checks the role scope for single-entity reads.
func appointmentVisibleTo(roleID int, userID uuid.UUID, appointment *entity.Appointment) bool {
	switch roleID {
	case entity.RoleIDAdmin:
		return true
	case entity.RoleIDDoctor:
		return appointment.DoctorID == userID
	case entity.RoleIDPatient:
		return appointment.PatientID == userID
	}
	return false
}

func searchQueryToFilter(query *dto.SearchAppointmentsQuery) *entity.AppointmentFilter {
	if query == nil {
		return nil
	}
	return &entity.AppointmentFilter{
		DateFrom:    query.DateFrom,
		DateTo:      query.DateTo,
		PatientName: query.PatientName,
		DoctorName:  query.DoctorName,
		Status:      entity.AppointmentStatus(query.Status),
	}
}
