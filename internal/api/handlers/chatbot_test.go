package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calzatec/calzatec-backend/internal/api/handlers"
	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/calzatec/calzatec-backend/internal/services/mocks"
	"github.com/calzatec/calzatec-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChatbotMessage(t *testing.T) {
	mockChatbotService := new(mocks.ChatbotService)
	chatbotHandler := handlers.NewChatbotHandler(mockChatbotService)

	t.Run("Success - Message Answered", func(t *testing.T) {
		// Arrange
		body := []byte(`{"mensaje": "¿Tienes tenis talla 42?"}`)

		expected := &models.ChatResponse{
			Respuesta:            "Encontré 2 productos para ti:",
			ProductosEncontrados: 2,
			Timestamp:            time.Now().UTC(),
		}

		mockChatbotService.On("HandleMessage", mock.Anything, mock.MatchedBy(func(req *models.ChatRequest) bool {
			return req.Mensaje == "¿Tienes tenis talla 42?"
		})).Return(expected).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/chatbot/mensaje", bytes.NewReader(body), nil)
		req.Header.Set("Content-Type", "application/json")

		// Act
		chatbotHandler.Message().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.ChatResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, expected.Respuesta, resp.Respuesta)
		assert.Equal(t, 2, resp.ProductosEncontrados)
		mockChatbotService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Message", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/chatbot/mensaje", bytes.NewReader([]byte(`{"entities": {}}`)), nil)

		// Act
		chatbotHandler.Message().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp models.FilterErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "Mensaje inválido", errResp.Error)
		mockChatbotService.AssertNotCalled(t, "HandleMessage")
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/chatbot/mensaje", bytes.NewReader(nil), nil)

		// Act
		chatbotHandler.Message().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
