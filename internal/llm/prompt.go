package llm

// AnalysisPrompt instructs the model to return the document structure JSON.
const AnalysisPrompt = `Tu es un analyseur de documents expert. Analyse le texte suivant et retourne une structure JSON représentant le document.

**Format de sortie STRICT** :
` + "```json" + `
{
  "metadata": {
    "title": "string",
    "subtitle": "string | null",
    "phase": "string | null",
    "brand": "string | null",
    "tagline": "string | null",
    "date": "string | null"
  },
  "toc": true,
  "sections": [
    {
      "type": "section",
      "title": "string",
      "content": [
        { "type": "paragraph", "text": "string" },
        { "type": "callout", "variant": "note|success|warning|alert|info", "title": "string | null", "content": "string" },
        { "type": "list", "style": "bullet|numbered|checklist", "items": [{ "text": "string", "checked": "true|false|cross" }] },
        { "type": "table", "headers": ["string"], "rows": [["string"]] },
        { "type": "quote", "text": "string" },
        { "type": "timeline", "items": [{ "title": "string", "description": "string" }] },
        { "type": "stats", "items": [{ "value": "string", "label": "string" }] },
        { "type": "cards", "items": [{ "title": "string", "content": "string" }] },
        { "type": "two-col", "left": { "title": "string", "content": [...] }, "right": { "title": "string", "content": [...] } },
        { "type": "heading", "level": 3, "text": "string" }
      ]
    }
  ],
  "conclusion": {
    "title": "string",
    "summary": "string",
    "sections": [
      { "title": "string", "items": ["string"] }
    ]
  },
  "sources": [
    { "title": "string", "url": "string | null", "meta": "string | null" }
  ]
}
` + "```" + `

**Règles d'analyse** :
1. Détecte les métadonnées depuis le début du document (titre principal, sous-titres, dates, auteur/marque)
2. Identifie la hiérarchie : H1 = sections principales, H2 = sous-sections, H3/H4 = sous-sous-sections
3. Détecte les callouts via le contexte sémantique :
   - "Important", "À noter", "Note" → note
   - "Point fort", "Validé", "✓", "Avantage" → success
   - "Attention", "Vigilance", "À surveiller" → warning
   - "Danger", "Critique", "Alerte", "⚠️", "✗" → alert
   - "Info", "Contexte", "Pour information" → info
4. Numérote les sections automatiquement (01, 02, 03...)
5. Préserve le formatage inline avec **gras** et *italique*
6. Détecte les listes à puces vs numérotées vs checklists (✓/✗)
7. Identifie les tableaux et préserve leur structure
8. Repère les citations (guillemets, retrait, style différent)
9. Détecte les chronologies/timelines (étapes séquentielles, phases)
10. Identifie les blocs de statistiques (chiffres clés mis en avant)
11. Regroupe la conclusion (généralement en fin de document)
12. Extrait les sources/références si présentes

Retourne UNIQUEMENT le JSON valide, sans commentaires ni explications.`

// userMessage frames the document text for the model.
func userMessage(text string) string {
	return "Document à analyser :\n---\n" + text + "\n---"
}
