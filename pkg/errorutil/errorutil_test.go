package errorutil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAppErrorPassesThrough(t *testing.T) {
	original := NewValidationError("bad input", nil)

	converted := ToAppError(original)

	require.NotNil(t, converted)
	assert.Equal(t, "VALIDATION_FAILED", converted.Code)
	assert.Equal(t, http.StatusBadRequest, converted.HTTPStatus)
}

func TestToAppErrorWrapsGenericErrors(t *testing.T) {
	converted := ToAppError(errors.New("boom"))

	require.NotNil(t, converted)
	assert.Equal(t, "INTERNAL_ERROR", converted.Code)
	assert.Equal(t, http.StatusInternalServerError, converted.HTTPStatus)
	assert.Equal(t, "boom", converted.Message)
}

func TestToAppErrorNil(t *testing.T) {
	assert.Nil(t, ToAppError(nil))
}

func TestFriendlyStatusUpdateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unassigned token exact",
			err:  errors.New("Cannot change unassigned complaint"),
			want: "You can't change the status until the case is assigned. Assign it first.",
		},
		{
			name: "unassigned token with extra whitespace and casing",
			err:  errors.New("  CANNOT   Change Unassigned    COMPLAINT  "),
			want: "You can't change the status until the case is assigned. Assign it first.",
		},
		{
			name: "unknown message passes through",
			err:  errors.New("database unavailable"),
			want: "database unavailable",
		},
		{
			name: "app error message used",
			err:  NewForbidden("not allowed"),
			want: "not allowed",
		},
		{
			name: "nil error default",
			err:  nil,
			want: "Failed to update status",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyStatusUpdateError(tt.err))
		})
	}
}

func TestFriendlyAssignmentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "empty date token",
			err:  errors.New("expectedResolutionDate should not be empty"),
			want: "Please set an expected resolution date (it must be in the future).",
		},
		{
			name: "minimal allowed date token",
			err:  errors.New("expectedResolutionDate must be after the minimal allowed date"),
			want: "Please set an expected resolution date (it must be in the future).",
		},
		{
			name: "unrelated date mention passes through",
			err:  errors.New("officer not in district"),
			want: "officer not in district",
		},
		{
			name: "nil error default",
			err:  nil,
			want: "Failed to assign complaint",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyAssignmentError(tt.err))
		})
	}
}
