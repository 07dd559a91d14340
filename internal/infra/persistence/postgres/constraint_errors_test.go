package postgres

import (
	"testing"

	"geoalert/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "wrapped pg unique", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), unique: true},
		{name: "gorm foreign key", err: errors.WithStack(gorm.ErrForeignKeyViolated), foreignKey: true},
		{name: "pg foreign key", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "pg not null", err: &pgconn.PgError{Code: "23502"}, notNull: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "unrelated", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
