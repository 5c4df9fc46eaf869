package auth

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/op/go-logging"

	"github.com/aspirantsclub/core/core/rest"
)

type testDeps struct {
	backend *rest.Client
}

func (d testDeps) Backend() *rest.Client { return d.backend }
func (d testDeps) Log() *logging.Logger {
	return logging.MustGetLogger("test")
}

func newTestDeps() testDeps {
	return testDeps{backend: rest.New("http://club.test", logging.MustGetLogger("test"))}
}

func TestSendOtp(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/public/sendOtp").MatchParam("number", "9876543210").Reply(200)

	if err := SendOtp(context.Background(), newTestDeps(), "9876543210"); err != nil {
		t.Fatal(err)
	}
}

func TestSendOtpRateLimited(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").Get("/public/sendOtp").Reply(429)

	if err := SendOtp(context.Background(), newTestDeps(), "9876543210"); err != ErrRateLimited {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestVerifyOtp(t *testing.T) {
	defer gock.Off()
	gock.New("http://club.test").
		Get("/public/verifyOtp").
		MatchParam("number", "9876543210").
		MatchParam("otp", "123456").
		Reply(200).
		JSON(map[string]string{"userId": "u9", "name": "Asha Mehta"})

	v, err := VerifyOtp(context.Background(), newTestDeps(), "9876543210", "123456")
	if err != nil {
		t.Fatal(err)
	}
	if v.UserId != "u9" || v.Name != "Asha Mehta" {
		t.Errorf("unexpected verification %+v", v)
	}
}

func TestVerifyOtpErrors(t *testing.T) {
	var tests = []struct {
		status int
		out    error
	}{
		{400, ErrInvalidOtp},
		{410, ErrExpiredOtp},
	}

	for _, test := range tests {
		gock.New("http://club.test").Get("/public/verifyOtp").Reply(test.status)
		_, err := VerifyOtp(context.Background(), newTestDeps(), "9876543210", "000000")
		if err != test.out {
			t.Errorf("status %d: expected %v, got %v", test.status, test.out, err)
		}
		gock.Off()
	}
}

func TestRegisterFormValidation(t *testing.T) {
	valid := RegisterForm{
		Name:     "Asha Mehta",
		Username: "asha",
		Mobile:   "9876543210",
		EmailId:  "asha@example.com",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	var tests = []struct {
		mutate func(*RegisterForm)
		field  string
	}{
		{func(f *RegisterForm) { f.Name = "  " }, "name"},
		{func(f *RegisterForm) { f.Username = "" }, "username"},
		{func(f *RegisterForm) { f.Mobile = "12345" }, "mobile"},
		{func(f *RegisterForm) { f.Mobile = "98765432ab" }, "mobile"},
		{func(f *RegisterForm) { f.EmailId = "not-an-email" }, "emailId"},
	}

	for _, test := range tests {
		form := valid
		test.mutate(&form)
		err := form.Validate()
		verr, ok := err.(*ValidationError)
		if !ok {
			t.Errorf("expected a ValidationError, got %v", err)
			continue
		}
		if verr.Field != test.field {
			t.Errorf("expected failure on %s, got %s", test.field, verr.Field)
		}
	}
}
