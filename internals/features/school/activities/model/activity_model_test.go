package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vedaschool_backend/internals/features/school/activities/model"
)

func TestDeriveActivityStatus(t *testing.T) {
	var none model.ActivityWinners
	withFirst := model.ActivityWinners{
		First: model.ActivityWinnerEntry{Name: "Meera", Class: "VIII", Section: "C"},
	}

	assert.Equal(t, "Upcoming", model.DeriveActivityStatus(none, ""))
	assert.Equal(t, "Upcoming", model.DeriveActivityStatus(none, "Upcoming"))
	assert.Equal(t, "Completed", model.DeriveActivityStatus(none, "Completed"))
	assert.Equal(t, "Completed", model.DeriveActivityStatus(withFirst, ""))
	assert.Equal(t, "Completed", model.DeriveActivityStatus(withFirst, "Upcoming"))

	// whitespace-only winner name does not count
	blank := model.ActivityWinners{First: model.ActivityWinnerEntry{Name: "  "}}
	assert.Equal(t, "Upcoming", model.DeriveActivityStatus(blank, ""))
}
