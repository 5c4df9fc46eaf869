package auth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aspirantsclub/core/core/events"
	"github.com/aspirantsclub/core/core/rest"
)

// Verification is what a successful OTP check yields: the identity the
// rest of the client threads through mutations and queries.
type Verification struct {
	UserId string `json:"userId"`
	Name   string `json:"name"`
}

// SendOtp asks the provider to text a one-time password to the number.
func SendOtp(ctx context.Context, deps Deps, mobile string) error {
	err := deps.Backend().Get(ctx, "/public/sendOtp?number="+url.QueryEscape(mobile), nil)
	if rest.Status(err) == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	return err
}

// VerifyOtp checks the code the user typed. The backend answers 400 for
// a wrong code and 410 once the code has expired.
func VerifyOtp(ctx context.Context, deps Deps, mobile, otp string) (v Verification, err error) {
	params := url.Values{}
	params.Set("number", mobile)
	params.Set("otp", otp)

	err = deps.Backend().Get(ctx, "/public/verifyOtp?"+params.Encode(), &v)
	switch rest.Status(err) {
	case http.StatusBadRequest:
		return v, ErrInvalidOtp
	case http.StatusGone:
		return v, ErrExpiredOtp
	}
	if err != nil {
		return
	}

	events.In <- events.AuthVerified(v.UserId)
	return
}
