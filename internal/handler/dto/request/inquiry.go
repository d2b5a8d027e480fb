package request

import (
	"guri24/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Name       string    `json:"name" binding:"required,min=2,max=255"`
	Email      string    `json:"email" binding:"required,email"`
	Phone      *string   `json:"phone,omitempty" binding:"omitempty,max=20"`
	Message    string    `json:"message" binding:"required,min=10"`
}

func (r CreateInquiryRequest) ToInput() commands.CreateInquiryInput {
	return commands.CreateInquiryInput{
		PropertyID: r.PropertyID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Message:    r.Message,
	}
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted converted closed"`
}
