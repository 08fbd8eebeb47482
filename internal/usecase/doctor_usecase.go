package usecase

import (
	"context"
	"errors"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrOldPasswordMismatch = errors.New("old password does not match")

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) error
	ListDoctors(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateSelf(ctx context.Context, doctorID uuid.UUID, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if !entity.ValidSpecialization(req.Specialization) {
		return nil, ErrInvalidSpecialization
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	fee, err := parseConsultationFee(req.ConsultationFee)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleID:   entity.RoleIDDoctor,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:          user.ID,
		Specialization:  req.Specialization,
		LicenseNumber:   req.LicenseNumber,
		ExperienceYears: req.ExperienceYears,
		ConsultationFee: fee,
		AvailableFrom:   defaultString(req.AvailableFrom, "09:00"),
		AvailableTo:     defaultString(req.AvailableTo, "17:00"),
		Bio:             req.Bio,
		Qualifications:  req.Qualifications,
	}

	if err := u.doctorProfileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionDoctorCreate, "doctor_profile", user.ID.String(), req.Specialization); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.DoctorProfileToResponse(profile), nil
}

// UpdateDoctor applies the admin-side doctor update. Empty request fields
// leave the stored values unchanged.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldSpecialization := profile.Specialization

	if req.Email != "" {
		profile.User.Email = req.Email
	}
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.User.Phone = req.Phone
	}
	if req.IsActive != nil {
		profile.User.IsActive = req.IsActive
	}
	if req.Specialization != "" {
		if !entity.ValidSpecialization(req.Specialization) {
			return nil, ErrInvalidSpecialization
		}
		profile.Specialization = req.Specialization
	}
	if req.LicenseNumber != "" {
		profile.LicenseNumber = req.LicenseNumber
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.ConsultationFee != "" {
		fee, err := parseConsultationFee(req.ConsultationFee)
		if err != nil {
			return nil, err
		}
		profile.ConsultationFee = fee
	}
	if req.AvailableFrom != "" {
		profile.AvailableFrom = req.AvailableFrom
	}
	if req.AvailableTo != "" {
		profile.AvailableTo = req.AvailableTo
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = req.IsAvailable
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.Qualifications != "" {
		profile.Qualifications = req.Qualifications
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionDoctorUpdate, "doctor_profile", doctorID.String(), oldSpecialization, profile.Specialization); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// DeleteDoctor removes the doctor's account. The profile row follows via
// ON DELETE CASCADE; appointment history is preserved.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) error {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.userRepo.Delete(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", doctorID, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionDoctorDelete, "doctor_profile", doctorID.String(), profile.Specialization); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// ListDoctors is the public doctor directory.
func (u *doctorUsecase) ListDoctors(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// UpdateSelf applies a doctor's own profile changes. Changing the password
// requires the old one.
func (u *doctorUsecase) UpdateSelf(ctx context.Context, doctorID uuid.UUID, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(profile.User.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrOldPasswordMismatch
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		profile.User.Password = string(hashedPassword)
	}
	if req.Phone != "" {
		profile.User.Phone = req.Phone
	}
	if req.ConsultationFee != "" {
		fee, err := parseConsultationFee(req.ConsultationFee)
		if err != nil {
			return nil, err
		}
		profile.ConsultationFee = fee
	}
	if req.AvailableFrom != "" {
		profile.AvailableFrom = req.AvailableFrom
	}
	if req.AvailableTo != "" {
		profile.AvailableTo = req.AvailableTo
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = req.IsAvailable
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.Qualifications != "" {
		profile.Qualifications = req.Qualifications
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionProfileUpdate, "doctor_profile", doctorID.String(), nil, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}
