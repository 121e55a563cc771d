package guide

import (
	"strings"
	"text/template"
)

// promptTmpl asks the model for a fixed pipe-delimited layout so the parser
// has something line-oriented to anchor on. The headings themselves are left
// for the model to translate into the target language.
var promptTmpl = template.Must(template.New("guide_prompt").Parse(`Create a concise and exciting travel guide for "{{.City}}".
You MUST respond in this language: {{.LangName}} (language code: {{.LangCode}}).

You MUST provide two pieces of information for each item, separated by a pipe |.
The format MUST be: [Name in Local Language] | [A brief, 3-sentence description in {{.LangName}}]

Example (if user requested 'Paris' and language 'en'):
1. Eiffel Tower | A famous 19th-century iron lattice tower. It is one of the most recognizable structures in the world. Visitors can ride an elevator to the top for breathtaking views of the city.

Here are the headings to use (translated to {{.LangName}}). Please provide 5 items for each category:
### Top 5 Tourist Attractions
1. [Name] | [A brief, 3-sentence description]
2. [Name] | [A brief, 3-sentence description]
3. [Name] | [A brief, 3-sentence description]
4. [Name] | [A brief, 3-sentence description]
5. [Name] | [A brief, 3-sentence description]
### Top 5 Local Dishes to Try
1. [Name] | [A brief, 3-sentence description]
2. [Name] | [A brief, 3-sentence description]
3. [Name] | [A brief, 3-sentence description]
4. [Name] | [A brief, 3-sentence description]
5. [Name] | [A brief, 3-sentence description]
### Top 5 Things to Avoid
1. [Name] | [A brief, 3-sentence description]
2. [Name] | [A brief, 3-sentence description]
3. [Name] | [A brief, 3-sentence description]
4. [Name] | [A brief, 3-sentence description]
5. [Name] | [A brief, 3-sentence description]
`))

// BuildPrompt renders the guide-generation prompt for a city and target
// language.
func BuildPrompt(city, langCode, langName string) string {
	var b strings.Builder
	// The template has no failure modes beyond a bad data type, which the
	// struct literal below rules out.
	_ = promptTmpl.Execute(&b, struct {
		City     string
		LangCode string
		LangName string
	}{City: city, LangCode: langCode, LangName: langName})
	return b.String()
}
