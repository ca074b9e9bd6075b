package shared

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Age      int    `json:"age"      validate:"required,gt=0,lte=120"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
	CourseID string `json:"courseId" validate:"omitempty,uuid"`
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid payload yields no errors", func(t *testing.T) {
		t.Parallel()
		errs := ValidateRequest(samplePayload{
			Username: "alice",
			Email:    "alice@example.com",
			Age:      20,
		})
		assert.Nil(t, errs)
	})

	t.Run("reports all violations together", func(t *testing.T) {
		t.Parallel()
		errs := ValidateRequest(samplePayload{
			Username: "ab",
			Email:    "not-an-email",
			Age:      0,
		})
		require.Len(t, errs, 3)

		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fe.Field)
		}
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "age")
	})

	t.Run("field paths use json names", func(t *testing.T) {
		t.Parallel()
		errs := ValidateRequest(samplePayload{
			Username: "alice",
			Email:    "alice@example.com",
			Age:      20,
			CourseID: "not-a-uuid",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "courseId", errs[0].Field)
		assert.Equal(t, "courseId must be a valid id", errs[0].Message)
	})

	t.Run("messages name the constraint", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name        string
			payload     samplePayload
			wantField   string
			wantMessage string
		}{
			{
				name:        "required",
				payload:     samplePayload{Username: "alice", Age: 20},
				wantField:   "email",
				wantMessage: "email is required",
			},
			{
				name:        "email format",
				payload:     samplePayload{Username: "alice", Email: "nope", Age: 20},
				wantField:   "email",
				wantMessage: "Please provide a valid email address",
			},
			{
				name:        "min length",
				payload:     samplePayload{Username: "ab", Email: "a@b.com", Age: 20},
				wantField:   "username",
				wantMessage: "username must be at least 3 characters",
			},
			{
				name:        "max length",
				payload:     samplePayload{Username: strings.Repeat("a", 51), Email: "a@b.com", Age: 20},
				wantField:   "username",
				wantMessage: "username must be at most 50 characters",
			},
			{
				name:        "upper bound",
				payload:     samplePayload{Username: "alice", Email: "a@b.com", Age: 150},
				wantField:   "age",
				wantMessage: "age must be at most 120",
			},
			{
				name:        "oneof",
				payload:     samplePayload{Username: "alice", Email: "a@b.com", Age: 20, Role: "root"},
				wantField:   "role",
				wantMessage: "role must be one of: user admin",
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				errs := ValidateRequest(tt.payload)
				require.Len(t, errs, 1)
				assert.Equal(t, tt.wantField, errs[0].Field)
				assert.Equal(t, tt.wantMessage, errs[0].Message)
			})
		}
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes valid body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/",
			strings.NewReader(`{"username":"alice","email":"a@b.com","age":20}`))

		var payload samplePayload
		require.NoError(t, DecodeJSON(req, &payload))
		assert.Equal(t, "alice", payload.Username)
		assert.Equal(t, 20, payload.Age)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":`))

		var payload samplePayload
		assert.Error(t, DecodeJSON(req, &payload))
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/",
			strings.NewReader(`{"username":"alice","isAdmin":true}`))

		var payload samplePayload
		require.NoError(t, DecodeJSON(req, &payload))
		assert.Equal(t, "alice", payload.Username)
	})
}

func TestRespondWithValidationErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/students", nil)
	recorder := httptest.NewRecorder()

	RespondWithValidationErrors(recorder, req, []FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "age", Message: "age must be greater than 0"},
	})

	assert.Equal(t, 400, recorder.Code)
	assert.JSONEq(t, `{
		"message": "Validation Error",
		"errors": [
			{"field": "name", "message": "name is required"},
			{"field": "age", "message": "age must be greater than 0"}
		]
	}`, recorder.Body.String())
}
