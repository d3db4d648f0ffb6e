package repositories

import (
	"errors"

	"foodgram/models"

	"gorm.io/gorm"
)

// translate maps storage errors onto the typed errors of models.
func translate(err error, entity string, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrorNotFound{Entity: entity, ID: id}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrorConflict{Message: entity + " already exists"}
	default:
		return err
	}
}
