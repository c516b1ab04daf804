package apperr

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeValidation,
				Message: "Email is required",
			},
			want: "Email is required",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeTransport,
				Message: "Unable to reach the server",
				Cause:   errors.New("connection refused"),
			},
			want: "Unable to reach the server: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Transport(cause, "Unable to reach the server")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(Transport(cause), cause) = false, want true")
	}
}

func TestRequestFailed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorCode
	}{
		{name: "bad request", status: 400, want: ErrCodeRequestFailed},
		{name: "unauthorized", status: 401, want: ErrCodeUnauthorized},
		{name: "forbidden", status: 403, want: ErrCodeUnauthorized},
		{name: "not found", status: 404, want: ErrCodeNotFound},
		{name: "server error", status: 500, want: ErrCodeRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequestFailed(tt.status, "rejected")
			if err.Code != tt.want {
				t.Errorf("RequestFailed(%d).Code = %v, want %v", tt.status, err.Code, tt.want)
			}
			if err.Status != tt.status {
				t.Errorf("RequestFailed(%d).Status = %v, want %v", tt.status, err.Status, tt.status)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	err := Validation("invalid input")
	if err.Code != ErrCodeValidation {
		t.Errorf("Validation().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Message != "invalid input" {
		t.Errorf("Validation().Message = %v, want %v", err.Message, "invalid input")
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "invalid email format")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "email" {
		t.Errorf("ValidationField().Field = %v, want %v", err.Field, "email")
	}
}

func TestInternalf(t *testing.T) {
	err := Internalf("unexpected state %q", "submitting")
	if err.Code != ErrCodeInternal {
		t.Errorf("Internalf().Code = %v, want %v", err.Code, ErrCodeInternal)
	}
	if err.Message != `unexpected state "submitting"` {
		t.Errorf("Internalf().Message = %v", err.Message)
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "wrapped error"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestIsUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "401 response",
			err:  RequestFailed(401, "token invalid or expired"),
			want: true,
		},
		{
			name: "403 response",
			err:  RequestFailed(403, "forbidden"),
			want: true,
		},
		{
			name: "wrapped unauthorized",
			err:  Wrap(RequestFailed(401, "token invalid"), ErrCodeInternal, "dashboard fetch failed"),
			want: false,
		},
		{
			name: "other status",
			err:  RequestFailed(500, "server error"),
			want: false,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnauthorized(tt.err); got != tt.want {
				t.Errorf("IsUnauthorized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "validation error",
			err:  Validation("invalid"),
			want: true,
		},
		{
			name: "validation field error",
			err:  ValidationField("email", "invalid"),
			want: true,
		},
		{
			name: "other error",
			err:  RequestFailed(404, "not found"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTransport(t *testing.T) {
	if !IsTransport(Transport(errors.New("dial tcp: refused"), "Unable to reach the server")) {
		t.Error("IsTransport(Transport(...)) = false, want true")
	}
	if IsTransport(RequestFailed(502, "bad gateway")) {
		t.Error("IsTransport(RequestFailed(502)) = true, want false")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "app error",
			err:  RequestFailed(404, "not found"),
			want: ErrCodeNotFound,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "app error message",
			err:      RequestFailed(400, "facility with this code already exists"),
			fallback: "Unable to create facility",
			want:     "facility with this code already exists",
		},
		{
			name:     "plain error text",
			err:      errors.New("context deadline exceeded"),
			fallback: "Unable to fetch data",
			want:     "context deadline exceeded",
		},
		{
			name:     "empty message falls back",
			err:      errors.New(""),
			fallback: "Unable to fetch data",
			want:     "Unable to fetch data",
		},
		{
			name:     "nil error",
			err:      nil,
			fallback: "Unable to fetch data",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, tt.fallback); got != tt.want {
				t.Errorf("Message() = %v, want %v", got, tt.want)
			}
		})
	}
}
