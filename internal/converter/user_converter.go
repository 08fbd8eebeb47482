package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO, resolving the
// role name from the fixed role IDs.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		Phone:          user.Phone,
		Address:        user.Address,
		Role:           RoleIDToName(user.RoleID),
		DoctorProfile:  DoctorProfileToResponse(user.DoctorProfile),
		PatientProfile: PatientProfileToResponse(user.PatientProfile),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// RoleIDToName maps the fixed role IDs to their names. Unknown IDs map to
// an empty string so callers fail closed.
func RoleIDToName(roleID int) string {
	switch roleID {
	case entity.RoleIDAdmin:
		return entity.RoleAdmin
	case entity.RoleIDDoctor:
		return entity.RoleDoctor
	case entity.RoleIDPatient:
		return entity.RolePatient
	}
	return ""
}
