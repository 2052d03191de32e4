package http

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/estruturasvale/sige-backend-go/internal/domain/auth"
	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/domain/user"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/validator"
)

// userContextFromRequest decodes the identity claims of the verified access
// token into the tenant resolver's input.
func userContextFromRequest(r *http.Request) (tenant.UserContext, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return tenant.UserContext{}, auth.ErrInvalidToken
	}

	uc := tenant.UserContext{}
	if v, ok := claims["user_id"].(string); ok {
		uc.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		uc.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		uc.Role = user.Role(v)
	}
	if v, ok := claims["admin_id"].(string); ok && v != "" {
		uc.AdminID = &v
	}
	if uc.UserID == "" || uc.Role == "" {
		return tenant.UserContext{}, auth.ErrInvalidToken
	}
	return uc, nil
}

// resolveAdminID resolves the effective tenant for the request.
func resolveAdminID(r *http.Request, resolver tenant.Resolver) (string, error) {
	uc, err := userContextFromRequest(r)
	if err != nil {
		return "", err
	}
	return resolver.EffectiveAdminID(r.Context(), uc)
}

// parsePeriod reads the start_date/end_date query params. Both default to the
// current calendar month when absent.
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	var errs validator.ValidationErrors
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		} else {
			start = parsed
		}
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		} else {
			end = parsed
		}
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	if end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}
