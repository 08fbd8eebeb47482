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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dashboardUpcomingLimit    = 5
	dashboardRecentBillsLimit = 5
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	appointmentRepo    repository.AppointmentRepository
	billRepo           repository.BillRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	billRepo repository.BillRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:                 db,
		log:                log,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		appointmentRepo:    appointmentRepo,
		billRepo:           billRepo,
	}
}

// GetDashboard assembles the landing summary for the requester's role.
func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	response := &dto.DashboardResponse{Role: converter.RoleIDToName(roleID)}

	switch roleID {
	case entity.RoleIDPatient:
		section, err := u.patientDashboard(ctx, userID)
		if err != nil {
			return nil, err
		}
		response.Patient = section
	case entity.RoleIDDoctor:
		section, err := u.doctorDashboard(ctx, userID)
		if err != nil {
			return nil, err
		}
		response.Doctor = section
	case entity.RoleIDAdmin:
		section, err := u.adminDashboard(ctx)
		if err != nil {
			return nil, err
		}
		response.Admin = section
	}

	return response, nil
}

func (u *dashboardUsecase) patientDashboard(ctx context.Context, userID uuid.UUID) (*dto.PatientDashboard, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.patientProfileRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to load patient profile %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	upcoming, err := u.appointmentRepo.FindUpcomingByPatient(db, userID, today, dashboardUpcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to load upcoming appointments for %s: %+v", userID, err)
		return nil, err
	}

	bills, err := u.billRepo.FindRecentByPatient(db, userID, dashboardRecentBillsLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent bills for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PatientDashboard{
		Profile:              converter.PatientProfileToResponse(profile),
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
		RecentBills:          converter.BillsToResponses(bills),
	}, nil
}

func (u *dashboardUsecase) doctorDashboard(ctx context.Context, userID uuid.UUID) (*dto.DoctorDashboard, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.doctorProfileRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to load doctor profile %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	todays, err := u.appointmentRepo.FindByDoctorAndDate(db, userID, today)
	if err != nil {
		u.log.Warnf("Failed to load todays appointments for %s: %+v", userID, err)
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByDoctor(db, userID, today, dashboardUpcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to load upcoming appointments for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DoctorDashboard{
		Profile:              converter.DoctorProfileToResponse(profile),
		TodaysAppointments:   converter.AppointmentsToResponses(todays),
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
	}, nil
}

func (u *dashboardUsecase) adminDashboard(ctx context.Context) (*dto.AdminDashboard, error) {
	db := u.db.WithContext(ctx)

	doctors, err := u.doctorProfileRepo.Count(db)
	if err != nil {
		return nil, err
	}
	patients, err := u.patientProfileRepo.Count(db)
	if err != nil {
		return nil, err
	}
	appointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		return nil, err
	}
	pendingBills, err := u.billRepo.CountByStatus(db, entity.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboard{
		TotalDoctors:      doctors,
		TotalPatients:     patients,
		TotalAppointments: appointments,
		PendingBills:      pendingBills,
	}, nil
}
