package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"s3-uploader/core/errs"

	"github.com/stretchr/testify/assert"
)

func TestError_HidesCause(t *testing.T) {
	cause := errors.New("AccessDenied: signature mismatch for AKIA123")
	err := errs.Wrap(errs.KindUpload, "upload failed", cause)

	assert.Equal(t, "upload: upload failed", err.Error())
	assert.NotContains(t, err.Error(), "AKIA123")
	assert.ErrorIs(t, err, cause)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		kind  errs.Kind
		check func(error) bool
	}{
		{"Configuration", errs.KindConfiguration, errs.IsConfiguration},
		{"InvalidArgument", errs.KindInvalidArgument, errs.IsInvalidArgument},
		{"Upload", errs.KindUpload, errs.IsUpload},
		{"List", errs.KindList, errs.IsList},
		{"Deletion", errs.KindDeletion, errs.IsDeletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errs.New(tt.kind, "boom")
			assert.True(t, tt.check(err))

			// Still matches through fmt.Errorf wrapping
			wrapped := fmt.Errorf("command failed: %w", err)
			assert.True(t, tt.check(wrapped))
			assert.Equal(t, tt.kind, errs.KindOf(wrapped))
		})
	}
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, errs.KindUnknown, errs.KindOf(errors.New("plain")))
	assert.Equal(t, errs.KindUnknown, errs.KindOf(nil))
	assert.False(t, errs.IsUpload(errors.New("plain")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "configuration", errs.KindConfiguration.String())
	assert.Equal(t, "invalid_argument", errs.KindInvalidArgument.String())
	assert.Equal(t, "deletion", errs.KindDeletion.String())
	assert.Equal(t, "unknown", errs.Kind(99).String())
}
