package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              profile.UserID,
		Username:        profile.User.Username,
		Email:           profile.User.Email,
		FullName:        profile.User.FullName,
		Phone:           profile.User.Phone,
		Specialization:  profile.Specialization,
		LicenseNumber:   profile.LicenseNumber,
		ExperienceYears: profile.ExperienceYears,
		ConsultationFee: profile.ConsultationFee,
		AvailableFrom:   profile.AvailableFrom,
		AvailableTo:     profile.AvailableTo,
		IsAvailable:     profile.IsAvailable,
		Bio:             profile.Bio,
		Qualifications:  profile.Qualifications,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
