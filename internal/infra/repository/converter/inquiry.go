package converter

import (
	"guri24/internal/domain/inquiry"
	"guri24/internal/domain/user"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
)

func InquiryToInfra(i *inquiry.Inquiry) sqlc.CreateInquiryParams {
	c := i.Contact()
	return sqlc.CreateInquiryParams{
		ID:              i.ID(),
		PropertyID:      i.PropertyID(),
		PropertyAgentID: i.PropertyAgentID(),
		UserID:          pgconv.UUIDPtrToPgtype(i.UserID()),
		Name:            c.Name,
		Email:           c.Email.Value(),
		Phone:           pgconv.StringPtrToPgtype(c.Phone),
		Message:         c.Message,
		Status:          i.Status().String(),
		CreatedAt:       pgconv.TimestampToPgtype(i.CreatedAt()),
		UpdatedAt:       pgconv.TimestampToPgtype(i.UpdatedAt()),
	}
}

// InquiryToDomain trusts stored values; the email was validated on the way in.
func InquiryToDomain(row sqlc.Inquiries) *inquiry.Inquiry {
	email, _ := user.NewEmail(row.Email)
	return inquiry.Reconstruct(inquiry.Snapshot{
		ID:              row.ID,
		PropertyID:      row.PropertyID,
		PropertyAgentID: row.PropertyAgentID,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		Contact: inquiry.Contact{
			Name:    row.Name,
			Email:   email,
			Phone:   pgconv.StringPtrFromPgtype(row.Phone),
			Message: row.Message,
		},
		Status:    inquiry.Status(row.Status),
		CreatedAt: pgconv.TimestampFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimestampFromPgtype(row.UpdatedAt),
	})
}
