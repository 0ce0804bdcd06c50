package model_test

import (
	"testing"

	"focustrack/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestValidatePriority(t *testing.T) {
	assert.NoError(t, model.ValidatePriority(model.MinPriority))
	assert.NoError(t, model.ValidatePriority(model.MaxPriority))
	assert.Error(t, model.ValidatePriority(model.MinPriority-1))
	assert.Error(t, model.ValidatePriority(model.MaxPriority+1))
}

func TestValidateProgress(t *testing.T) {
	assert.NoError(t, model.ValidateProgress(0))
	assert.NoError(t, model.ValidateProgress(model.MaxProgress))
	assert.Error(t, model.ValidateProgress(-1))
	assert.Error(t, model.ValidateProgress(model.MaxProgress+1))
}
