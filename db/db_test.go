package db

import (
	"errors"
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslateWriteErr(t *testing.T) {
	assert.NoError(t, translateWriteErr(nil))

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	assert.ErrorIs(t, translateWriteErr(dup), models.ErrDuplicateSlug)

	assert.ErrorIs(t, translateWriteErr(errors.New("connection reset")), models.ErrStoreUnavailable)
}
