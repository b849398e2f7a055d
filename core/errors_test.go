package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestKindOf(t *testing.T) {
	notFound := NewError(KindNotFound, "student not found")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", want: KindUnknown},
		{name: "plain", err: errors.New("boom"), want: KindUnknown},
		{name: "sentinel", err: notFound, want: KindNotFound},
		{name: "wrapped sentinel", err: errors.Wrap(notFound, "getting student"), want: KindNotFound},
		{name: "wrap kind", err: WrapKind(errors.New("disk full"), KindFileSystem, "writing"), want: KindFileSystem},
		{name: "validation", err: NewValidationError(errors.New("name is required")), want: KindInvalidInput},
		{name: "wrapped validation", err: errors.Wrap(NewValidationError(nil, FieldError{"name", "name is required"}), "creating"), want: KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	if err := WrapKind(nil, KindFileSystem, "writing"); err != nil {
		t.Errorf("WrapKind(nil) = %v, want nil", err)
	}

	cause := errors.New("permission denied")
	err := WrapKind(cause, KindFileSystem, "writing result slip")
	if got, want := err.Error(), "writing result slip: permission denied"; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("WrapKind() lost its cause")
	}
	if got, want := (&Error{Err: cause}).Error(), "permission denied"; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
	if got := KindFileSystem.String(); got != "file system" {
		t.Errorf("Kind.String() = %s", got)
	}
	if got := Kind(200).String(); got != "unknown" {
		t.Errorf("Kind.String() = %s", got)
	}

	verr := NewValidationError(nil, FieldError{Field: "unit_code", Error: "unit_code is required"})
	if got, want := verr.Error(), "unit_code: unit_code is required"; got != want {
		t.Errorf("ValidationError.Error() = %s, want %s", got, want)
	}
}
