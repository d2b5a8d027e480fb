package response

import (
	"time"

	"guri24/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

var naiveTime = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).UTC().Format(NaiveLayout), nil
			},
		},
	},
}

// copyView maps a read model onto a response DTO by field name.
func copyView[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, naiveTime); err != nil {
		return nil, err
	}
	return dst, nil
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return copyView[BookingResponse](v)
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	res, err := copyView[AvailabilityResponse](v)
	if err != nil {
		return nil, err
	}
	if res.BookedDates == nil {
		res.BookedDates = []StayIntervalResponse{}
	}
	return res, nil
}

func FromPropertyView(v *queries.PropertyView) (*PropertyResponse, error) {
	return copyView[PropertyResponse](v)
}

func FromPropertyPage(p *queries.PropertyPage) (*PropertyListResponse, error) {
	res, err := copyView[PropertyListResponse](p)
	if err != nil {
		return nil, err
	}
	if res.Properties == nil {
		res.Properties = []*PropertyResponse{}
	}
	return res, nil
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return copyView[UserResponse](v)
}

func FromInquiryView(v *queries.InquiryView) (*InquiryResponse, error) {
	return copyView[InquiryResponse](v)
}

func FromInquiryViews(views []*queries.InquiryView) ([]*InquiryResponse, error) {
	out := make([]*InquiryResponse, 0, len(views))
	for _, v := range views {
		r, err := FromInquiryView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
