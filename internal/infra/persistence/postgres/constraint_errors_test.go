package postgres

import (
	"testing"

	"addressing/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsAddressConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm check violation", err: errors.Wrap(gorm.ErrCheckConstraintViolated, "update"), want: true},
		{name: "not null", err: errors.New(`ERROR: null value in column "house_no" violates not-null constraint (SQLSTATE 23502)`), want: true},
		{name: "check", err: errors.New(`ERROR: new row violates check constraint "direction_chk" (SQLSTATE 23514)`), want: true},
		{name: "connection failure", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), want: false},
		{name: "deadlock", err: errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAddressConstraintViolation(tt.err))
		})
	}
}
