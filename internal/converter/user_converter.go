package converter

import (
	"medreport-assistant/internal/delivery/dto"
	"medreport-assistant/internal/domain/entity"
)

// AccountToResponse converts a UserAccount entity to UserResponse DTO
func AccountToResponse(account *entity.UserAccount) *dto.UserResponse {
	if account == nil {
		return nil
	}

	return &dto.UserResponse{
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
		Age:   account.Age,
		Role:  string(account.Role),
	}
}
