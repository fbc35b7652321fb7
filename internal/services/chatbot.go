package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// ChatbotService turns a free-text widget message into a product search and
// narrates the result. Extraction is best-effort: it never fails, it only
// produces weaker criteria.
type ChatbotService interface {
	HandleMessage(ctx context.Context, req *models.ChatRequest) *models.ChatResponse
}

type chatbotService struct {
	products ProductService
	policy   *bluemonday.Policy
}

func NewChatbotService(products ProductService) ChatbotService {
	return &chatbotService{
		products: products,
		policy:   bluemonday.StrictPolicy(),
	}
}

// productKeywords maps intent words to the category constraint they imply.
// An empty value signals product intent without narrowing the category.
var productKeywords = map[string]string{
	"tenis":      "tenis",
	"zapatilla":  "tenis",
	"zapatillas": "tenis",
	"bota":       "botas",
	"botas":      "botas",
	"sandalia":   "sandalias",
	"sandalias":  "sandalias",
	"tacon":      "tacones",
	"tacones":    "tacones",
	"mocasin":    "mocasines",
	"mocasines":  "mocasines",
	"zapato":     "",
	"zapatos":    "",
	"calzado":    "",
	"producto":   "",
	"productos":  "",
}

// colorWords maps surface color forms to the canonical catalog label.
var colorWords = map[string]string{
	"negro":    "negro",
	"negra":    "negro",
	"negros":   "negro",
	"blanco":   "blanco",
	"blanca":   "blanco",
	"blancos":  "blanco",
	"rojo":     "rojo",
	"roja":     "rojo",
	"azul":     "azul",
	"azules":   "azul",
	"verde":    "verde",
	"cafe":     "cafe",
	"marron":   "cafe",
	"gris":     "gris",
	"beige":    "beige",
	"rosa":     "rosa",
	"amarillo": "amarillo",
}

var (
	sizePattern       = regexp.MustCompile(`talla\s*(\d+(?:\.\d+)?)`)
	priceRangePattern = regexp.MustCompile(`entre\s*\$?\s*(\d+(?:\.\d+)?)\s*y\s*\$?\s*(\d+(?:\.\d+)?)`)
	priceMaxPattern   = regexp.MustCompile(`(?:menos de|maximo|hasta|por debajo de)\s*\$?\s*(\d+(?:\.\d+)?)`)
	priceMinPattern   = regexp.MustCompile(`(?:mas de|minimo|desde|a partir de)\s*\$?\s*(\d+(?:\.\d+)?)`)
)

const (
	replyNoIntent     = "Hola, soy el asistente de CalzaTec. Puedo ayudarte a buscar calzado: dime por ejemplo \"tenis talla 26 en color negro\"."
	replyNoResults    = "No encontré productos que coincidan con tu búsqueda. ¿Puedes reformularla? Por ejemplo, prueba con otra talla o color."
	replySearchFailed = "En este momento no puedo consultar el catálogo. Intenta de nuevo en unos minutos."
)

func (s *chatbotService) HandleMessage(ctx context.Context, req *models.ChatRequest) *models.ChatResponse {

	logger := middleware.LoggerFromContext(ctx)

	// The widget relays arbitrary user text; strip any markup before the
	// message is logged or echoed.
	message := s.policy.Sanitize(req.Mensaje)

	criteria, hasIntent := extractCriteria(message, req.Entities)

	if !hasIntent {
		return reply(replyNoIntent, 0)
	}

	// Even when extraction produced no usable constraint, the search still
	// runs: a product-related message always gets a catalog answer.
	products, err := s.products.Search(ctx, criteria)
	if err != nil {
		logger.Error("Chatbot search failed", slog.String("error", err.Error()))
		return reply(replySearchFailed, 0)
	}

	if len(products) == 0 {
		return reply(replyNoResults, 0)
	}

	return reply(renderProducts(products), len(products))
}

func reply(text string, found int) *models.ChatResponse {
	return &models.ChatResponse{
		Respuesta:            text,
		ProductosEncontrados: found,
		Timestamp:            time.Now().UTC(),
	}
}

// extractCriteria scans the lowered message for the fixed keyword tables
// and numeric tokens, then lets widget-extracted entities override whatever
// the heuristics found.
func extractCriteria(message string, entities map[string]string) (*models.SearchCriteria, bool) {

	lowered := strings.ToLower(stripAccents(message))
	criteria := &models.SearchCriteria{Limit: models.DefaultSearchLimit}
	hasIntent := false

	for keyword, category := range productKeywords {
		if containsWord(lowered, keyword) {
			hasIntent = true
			if category != "" && criteria.Category == "" {
				criteria.Category = category
			}
		}
	}

	for word, canonical := range colorWords {
		if containsWord(lowered, word) {
			criteria.ColorLabel = canonical
			hasIntent = true

			break
		}
	}

	if m := sizePattern.FindStringSubmatch(lowered); m != nil {
		criteria.SizeLabel = m[1]
		hasIntent = true
	}

	if m := priceRangePattern.FindStringSubmatch(lowered); m != nil {
		criteria.PriceMin = parsePrice(m[1])
		criteria.PriceMax = parsePrice(m[2])
		hasIntent = true
	} else {
		if m := priceMaxPattern.FindStringSubmatch(lowered); m != nil {
			criteria.PriceMax = parsePrice(m[1])
			hasIntent = true
		}
		if m := priceMinPattern.FindStringSubmatch(lowered); m != nil {
			criteria.PriceMin = parsePrice(m[1])
			hasIntent = true
		}
	}

	if gender := genderFromText(lowered); gender != models.GenderNone {
		criteria.Gender = gender
		hasIntent = true
	}

	hasIntent = applyEntities(criteria, entities) || hasIntent

	return criteria, hasIntent
}

// applyEntities overlays widget-extracted entities; they win over the
// keyword heuristics. Reports whether any entity was usable.
func applyEntities(criteria *models.SearchCriteria, entities map[string]string) bool {
	applied := false

	for key, value := range entities {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch key {
		case "categoria":
			criteria.Category = value
		case "talla":
			criteria.SizeLabel = value
		case "color":
			criteria.ColorLabel = value
		case "nombre":
			criteria.NameQuery = value
		case "genero":
			criteria.Gender = ParseGender(value)
		case "precio_min":
			criteria.PriceMin = parsePrice(value)
		case "precio_max":
			criteria.PriceMax = parsePrice(value)
		default:
			continue
		}

		applied = true
	}

	return applied
}

func genderFromText(lowered string) models.Gender {
	switch {
	case containsWord(lowered, "hombre") || containsWord(lowered, "masculino"):
		return models.GenderMale
	case containsWord(lowered, "mujer") || containsWord(lowered, "femenino"):
		return models.GenderFemale
	case containsWord(lowered, "unisex"):
		return models.GenderUnisex
	default:
		return models.GenderNone
	}
}

var wordSplitter = regexp.MustCompile(`[^a-z0-9ñ]+`)

func containsWord(lowered, word string) bool {
	for _, token := range wordSplitter.Split(lowered, -1) {
		if token == word {
			return true
		}
	}

	return false
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u",
)

func stripAccents(s string) string {
	return accentReplacer.Replace(s)
}

// renderProducts produces the plain-text summary injected back into the
// widget: one line per product with name, SKU, price, sizes and colors.
func renderProducts(products []*models.Product) string {

	var b strings.Builder

	if len(products) == 1 {
		b.WriteString("Encontré 1 producto:\n")
	} else {
		fmt.Fprintf(&b, "Encontré %d productos:\n", len(products))
	}

	for _, p := range products {
		fmt.Fprintf(&b, "• %s (%s) - $%.2f", p.Name, p.SKU, p.Price)

		if len(p.Sizes) > 0 {
			fmt.Fprintf(&b, " | Tallas: %s", strings.Join(p.Sizes, ", "))
		}

		if len(p.Colors) > 0 {
			fmt.Fprintf(&b, " | Colores: %s", strings.Join(p.Colors, ", "))
		}

		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
