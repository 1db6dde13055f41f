package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryGetRejectsNonNumericID(t *testing.T) {
	h := NewCategoryHandler(nil, nil)
	r := testRouter()
	r.GET("/categories/:id", h.Get)

	w := doJSON(t, r, http.MethodGet, "/categories/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_category_id", errCode(t, w))
}
