package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// translate makes unique violations recognizable as gorm.ErrDuplicatedKey
// regardless of whether the dialect translated them already.
func translate(err error) error {
	if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "SQLSTATE 23505") {
		return fmt.Errorf("%w: %v", gorm.ErrDuplicatedKey, err)
	}
	return err
}
