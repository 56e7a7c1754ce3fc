// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "workspace_not_found",
			code:    errors.ErrWorkspaceNotFound,
			message: "workspace \"dev\" not found",
			wantStr: "[WORKSPACE_NOT_FOUND] workspace \"dev\" not found",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "missing command",
			wantStr: "[INVALID_INPUT] missing command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrEnvironmentNotFound, "environment %q not found in %q", "work", "dev")
	assert.Equal(t, `environment "work" not found in "dev"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
	})
}

func TestIO(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.NoError(t, errors.IO(nil, "read", "/tmp/x"))
	})

	t.Run("carries_path_and_cause", func(t *testing.T) {
		err := errors.IO(fs.ErrPermission, "remove", "/home/u/.gitconfig")
		require.Error(t, err)

		assert.True(t, errors.IsErrorCode(err, errors.ErrIOFailure))
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Equal(t, "/home/u/.gitconfig", errors.GetErrorDetails(err)["path"])
		assert.Contains(t, err.Error(), "remove /home/u/.gitconfig")
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrWorkspaceNotFound, "not found").
		WithDetail("workspace", "dev").
		WithDetail("root", "/home/u/workspace")

	assert.Equal(t, "dev", err.Details["workspace"])
	assert.Equal(t, "/home/u/workspace", err.Details["root"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrWorkspaceNotFound, "error 1")
	err2 := errors.New(errors.ErrWorkspaceNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		assert.True(t, err1.Is(err2))
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		assert.False(t, err1.Is(err3))
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		assert.True(t, stderrors.Is(err1, err2))
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrEnvironmentNotFound, "not found"),
			code:     errors.ErrEnvironmentNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrEnvironmentNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrIOFailure, "denied"),
			code:     errors.ErrIOFailure,
			expected: true,
		},
		{
			name:     "non_wsp_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrWorkspaceNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrWorkspaceNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrHomeDirUnavailable,
		errors.GetErrorCode(errors.New(errors.ErrHomeDirUnavailable, "no home")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrIOFailure, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var wspErr *errors.WspError
		require.True(t, stderrors.As(configErr.Unwrap(), &wspErr))
		assert.Equal(t, errors.ErrIOFailure, wspErr.Code)
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		assert.True(t, stderrors.Is(configErr, rootCause))
	})
}
