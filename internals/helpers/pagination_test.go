package helper_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "vedaschool_backend/internals/helpers"
)

func resolveFor(t *testing.T, target string, defPerPage, maxPerPage int) helper.Paging {
	t.Helper()
	var got helper.Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = helper.ResolvePaging(c, defPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveFor(t, "/", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingClampsAndOffsets(t *testing.T) {
	p := resolveFor(t, "/?page=3&per_page=500", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 200, p.Offset)

	p = resolveFor(t, "/?page=-2&per_page=0", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestResolvePagingLegacyLimitAlias(t *testing.T) {
	p := resolveFor(t, "/?limit=5", 20, 100)
	assert.Equal(t, 5, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := helper.BuildPagination(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = helper.BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
