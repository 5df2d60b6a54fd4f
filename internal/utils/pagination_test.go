// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	c := paginationContext(t, "/product/view/")

	params := GetPaginationParams(c, 10, 100)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
}

func TestGetPaginationParamsClampsLimit(t *testing.T) {
	c := paginationContext(t, "/product/view/?limit=1000")

	params := GetPaginationParams(c, 10, 100)
	assert.Equal(t, 100, params.Limit)
}

func TestGetPaginationParamsRejectsNonPositive(t *testing.T) {
	c := paginationContext(t, "/product/view/?page=0&limit=-5")

	params := GetPaginationParams(c, 10, 100)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
}
