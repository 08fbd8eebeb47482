package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:               profile.UserID,
		Username:         profile.User.Username,
		Email:            profile.User.Email,
		FullName:         profile.User.FullName,
		Phone:            profile.User.Phone,
		Address:          profile.User.Address,
		PatientNumber:    profile.PatientNumber,
		BloodGroup:       profile.BloodGroup,
		Gender:           profile.Gender,
		EmergencyContact: profile.EmergencyContact,
		MedicalHistory:   profile.MedicalHistory,
		Allergies:        profile.Allergies,
	}

	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to DTOs
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i, profile := range profiles {
		resp := PatientProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
