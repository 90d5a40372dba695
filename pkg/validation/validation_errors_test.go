package validation_test

import (
	"errors"
	"testing"

	"recruitpro-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type blastPayload struct {
	EmailType string `validate:"required,oneof=invite reject offer"`
}

func TestFormatBindingError(t *testing.T) {
	v := validator.New()

	t.Run("required and email tags", func(t *testing.T) {
		err := v.Struct(loginPayload{Email: "not-an-email"})
		require.Error(t, err)

		msg := validation.FormatBindingError(err)
		assert.Contains(t, msg, "Email must be a valid email address")
		assert.Contains(t, msg, "Password is required")
	})

	t.Run("oneof lists options", func(t *testing.T) {
		err := v.Struct(blastPayload{EmailType: "ping"})
		require.Error(t, err)

		msg := validation.FormatBindingError(err)
		assert.Equal(t, "Email type must be one of: invite, reject, offer", msg)
	})

	t.Run("non-validator errors pass through", func(t *testing.T) {
		err := errors.New("unexpected EOF")
		assert.Equal(t, "unexpected EOF", validation.FormatBindingError(err))
	})

	t.Run("unknown fields get spaced labels", func(t *testing.T) {
		type payload struct {
			ResumeText string `validate:"required"`
		}
		err := v.Struct(payload{})
		require.Error(t, err)

		assert.Equal(t, "Resume Text is required", validation.FormatBindingError(err))
	})
}
