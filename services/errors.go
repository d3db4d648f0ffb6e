package services

import (
	"errors"

	"foodgram/models"
)

func isNotFound(err error) bool {
	var nf models.ErrorNotFound
	return errors.As(err, &nf)
}

func isConflict(err error) bool {
	var c models.ErrorConflict
	return errors.As(err, &c)
}
