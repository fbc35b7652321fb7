package handlers

import (
	"net/http"

	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	"github.com/calzatec/calzatec-backend/internal/models"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/calzatec/calzatec-backend/internal/utils"
	"github.com/calzatec/calzatec-backend/internal/utils/response"
)

type ChatbotHandler struct {
	chatbotService service.ChatbotService
}

func NewChatbotHandler(chatbotService service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

// Message serves POST /api/chatbot/mensaje. The widget surfaces the Details
// field verbatim, so the envelope stays flat instead of the versioned API one.
func (h *ChatbotHandler) Message() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ChatRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, models.FilterErrorResponse{
				Error:   "Mensaje inválido",
				Details: err.Error(),
			})
			return
		}

		if req.Mensaje == "" {
			response.WriteJson(w, http.StatusBadRequest, models.FilterErrorResponse{
				Error:   "Mensaje inválido",
				Details: "el campo mensaje es obligatorio",
			})
			return
		}

		resp := h.chatbotService.HandleMessage(r.Context(), &req)

		logger.Info("Chatbot message handled", "productos", resp.ProductosEncontrados)
		response.WriteJson(w, http.StatusOK, resp)

	}
}
