package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveWith(handlerFn gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handlerFn)

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRespondSuccess(t *testing.T) {
	t.Run("returns success response with data", func(t *testing.T) {
		w := serveWith(func(c *gin.Context) {
			c.Set("request_id", "test-request-id")
			respondSuccess(c, http.StatusOK, map[string]string{"categoria": "Produtivo"})
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.NotNil(t, response.Data)
		assert.Nil(t, response.Error)
		assert.NotNil(t, response.Meta)
		assert.Equal(t, "test-request-id", response.Meta.RequestID)
	})

	t.Run("passes through non-200 status", func(t *testing.T) {
		w := serveWith(func(c *gin.Context) {
			respondSuccess(c, http.StatusAccepted, map[string]bool{"scheduled": true})
		})

		assert.Equal(t, http.StatusAccepted, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
	})
}

func TestRespondError(t *testing.T) {
	t.Run("returns error response", func(t *testing.T) {
		w := serveWith(func(c *gin.Context) {
			c.Set("request_id", "test-request-id")
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Nenhum texto fornecido")
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Nil(t, response.Data)
		assert.NotNil(t, response.Error)
		assert.Equal(t, "INVALID_REQUEST", response.Error.Code)
		assert.Equal(t, "Nenhum texto fornecido", response.Error.Message)
	})

	t.Run("generates request ID if not set", func(t *testing.T) {
		w := serveWith(func(c *gin.Context) {
			respondError(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "upstream down")
		})

		var response Response
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.NotEmpty(t, response.Meta.RequestID)
		assert.NotEmpty(t, response.Meta.Timestamp)
	})
}
