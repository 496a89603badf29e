package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performJSON(handler gin.HandlerFunc) (*httptest.ResponseRecorder, JSONResponse) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(ctx)

	var body JSONResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestOKEnvelope(t *testing.T) {
	w, body := performJSON(func(ctx *gin.Context) {
		OK(ctx, gin.H{"value": 42})
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Empty(t, body.Error)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 42, data["value"])
}

func TestFailEnvelope(t *testing.T) {
	w, body := performJSON(func(ctx *gin.Context) {
		Fail(ctx, http.StatusConflict, "already exists")
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "already exists", body.Error)
	assert.Nil(t, body.Data)
}

func TestFailOmitsData(t *testing.T) {
	_, _ = performJSON(func(ctx *gin.Context) {
		Fail(ctx, http.StatusBadRequest, "bad input")
	})

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Fail(ctx, http.StatusBadRequest, "bad input")

	assert.NotContains(t, w.Body.String(), `"data"`)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
