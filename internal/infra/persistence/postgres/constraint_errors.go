package postgres

import (
	domainerrors "veraz/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The connection runs with TranslateError, so driver-specific constraint
// failures surface as GORM sentinel errors.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// writeErrorMapping names the domain errors reported for constraint failures of a write.
type writeErrorMapping struct {
	unique     *domainerrors.BaseError
	foreignKey *domainerrors.BaseError
	operation  string
}

// translateWriteError converts a failed write into a domain error.
func translateWriteError(err error, mapping writeErrorMapping) error {
	switch {
	case err == nil:
		return nil
	case mapping.unique != nil && isUniqueConstraintViolation(err):
		return mapping.unique.WrapMessage(mapping.operation)
	case mapping.foreignKey != nil && isForeignKeyConstraintViolation(err):
		return mapping.foreignKey.WrapMessage(mapping.operation)
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(mapping.operation)
	default:
		return domainerrors.NewDatabaseExecuteError(err, mapping.operation)
	}
}
