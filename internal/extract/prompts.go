package extract

import (
	"fmt"

	"github.com/oswaldo-hello/capirubot/internal/taxonomy"
)

// buildSystemPrompt renders the extraction instructions, embedding the
// category taxonomy and the current date so the model can resolve
// relative references itself. Output contract: a single JSON object.
func buildSystemPrompt(tax taxonomy.Table, today string) string {
	return fmt.Sprintf(`Eres un asistente que extrae movimientos financieros en formato JSON.

La fecha actual es %s en zona horaria America/Lima.
Interpreta cualquier referencia de fecha relativa a hoy.

Salida esperada:
{
  "date": "YYYY-MM-DD",
  "amount": 123.45,
  "currency": "PEN",
  "category": "INGRESO|INVERSIONES|GASTO",
  "subcategory": "BASICO|COMIDA|COSAS|ENTRETENIMIENTO|ESTUDIOS|OTROS|VIAJES|SALUD|TRANSPORTE",
  "description": "texto original"
}

Definiciones de categorías:
%s
Reglas:
1) Usa las definiciones para clasificar.
2) La categoría y subcategoría deben ir en campos separados.
3) Devuelve SOLO JSON, sin texto adicional, sin bloques de código Markdown.
`, today, tax.Prompt())
}
