package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
)

const (
	descriptionSystemPrompt = `Eres un redactor publicitario para pequeños negocios de Latinoamérica.
Escribe en español una descripción de producto atractiva, breve (máximo 120 palabras) y lista para publicar.
No uses markdown ni listas; devuelve solo el texto de la descripción.`

	categoriesSystemPrompt = `Eres un asistente de catálogo para tiendas en línea.
Devuelve ÚNICAMENTE un objeto JSON (sin markdown) con esta estructura exacta:
{"categories": ["<categoría>", "..."]}
Elige entre 1 y 3 categorías, solo de esta lista: %s.`

	marketingSystemPrompt = `Eres un asistente de marketing digital para pequeños negocios.
Responde en español, con tono cercano y práctico. Puedes proponer textos para redes sociales,
ideas de promociones o correos, según lo que pida el comerciante.`
)

func descriptionUserPrompt(p ports.ProductBrief) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Producto: %s\n", p.Name)
	if p.Category != "" {
		fmt.Fprintf(&b, "Categoría: %s\n", p.Category)
	}
	if p.Price != "" {
		fmt.Fprintf(&b, "Precio: %s\n", p.Price)
	}
	if p.Idea != "" {
		fmt.Fprintf(&b, "Idea del comerciante: %s\n", p.Idea)
	}
	return b.String()
}

func categoriesUserPrompt(name, idea string) string {
	return fmt.Sprintf("Nombre del producto: %s\nIdea: %s", name, idea)
}

type categoriesPayload struct {
	Categories []string `json:"categories"`
}

// parseCategories tolera texto extra alrededor del JSON.
func parseCategories(raw string) ([]string, error) {
	clean := extractJSON(raw)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", raw)
	}
	var out categoriesPayload
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de categorías: %w (JSON extraído: %s)", err, clean)
	}
	return out.Categories, nil
}
