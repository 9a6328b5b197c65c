package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "sentinel error",
			err:  ErrNotFound,
			want: true,
		},
		{
			name: "wrapped sentinel error",
			err:  fmt.Errorf("failed to fetch issue: %w", ErrNotFound),
			want: true,
		},
		{
			name: "string-based not found error",
			err:  errors.New("issue Does Not Exist: Not Found"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
