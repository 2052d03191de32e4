package site

import "errors"

var (
	ErrSiteNotFound   = errors.New("construction site not found")
	ErrSiteCodeExists = errors.New("site code already exists for this tenant")
	ErrInvalidPeriod  = errors.New("start date must not be after expected end date")
)
