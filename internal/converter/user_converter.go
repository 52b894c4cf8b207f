package converter

import (
	"benihealth/internal/delivery/dto"
	"benihealth/internal/domain/entity"
)

// UserToResponse converts a User entity plus its UserProfile to a
// UserResponse DTO. Role-specific profiles are included when loaded.
func UserToResponse(user *entity.User, profile *entity.UserProfile) *dto.UserResponse {
	if user == nil || profile == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Role:      profile.Role,
		Phone:     profile.PhoneOrEmpty(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if profile.EmployerProfile != nil {
		response.EmployerProfile = EmployerProfileToResponse(profile.EmployerProfile)
	}
	if profile.EmployeeProfile != nil {
		response.EmployeeProfile = EmployeeProfileToResponse(profile.EmployeeProfile)
	}
	if profile.ProviderProfile != nil {
		response.ProviderProfile = ProviderProfileToResponse(profile.ProviderProfile)
	}
	if profile.HMOProfile != nil {
		response.HMOProfile = HMOProfileToResponse(profile.HMOProfile)
	}

	return response
}

func EmployerProfileToResponse(p *entity.EmployerProfile) *dto.EmployerProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.EmployerProfileResponse{
		ID:                p.ID,
		CompanyName:       p.CompanyName,
		Industry:          p.Industry,
		NumberOfEmployees: p.NumberOfEmployees,
		CompanyAddress:    p.CompanyAddress,
		CompanyPhone:      p.CompanyPhone,
		CompanyEmail:      p.CompanyEmail,
	}
}

func EmployeeProfileToResponse(p *entity.EmployeeProfile) *dto.EmployeeProfileResponse {
	if p == nil {
		return nil
	}
	response := &dto.EmployeeProfileResponse{
		ID:         p.ID,
		EmployerID: p.EmployerID,
		EmployeeID: p.EmployeeID,
		Department: p.Department,
		JobTitle:   p.JobTitle,
	}
	if p.DateOfBirth != nil {
		response.DateOfBirth = p.DateOfBirth.Format("2006-01-02")
	}
	return response
}

func ProviderProfileToResponse(p *entity.ProviderProfile) *dto.ProviderProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderProfileResponse{
		ID:                  p.ID,
		FacilityName:        p.FacilityName,
		FacilityType:        p.FacilityType,
		LicenseNumber:       p.LicenseNumber,
		AccreditationStatus: p.AccreditationStatus,
		ContactPhone:        p.ContactPhone,
		ContactEmail:        p.ContactEmail,
	}
}

func HMOProfileToResponse(p *entity.HMOProfile) *dto.HMOProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.HMOProfileResponse{
		ID:               p.ID,
		HMOName:          p.HMOName,
		HMOLicenseNumber: p.HMOLicenseNumber,
		ContactEmail:     p.ContactEmail,
		ContactPhone:     p.ContactPhone,
	}
}
