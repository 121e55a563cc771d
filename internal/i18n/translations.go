// Package i18n holds the UI translation table. Four languages are supported;
// unknown codes fall back to English.
package i18n

// Texts holds every user-visible UI string for one language.
type Texts struct {
	Title         string
	Placeholder   string
	Button        string
	Spinner       string
	WeatherHeader string
	FlightsButton string
	SummaryHeader string
	SummaryError  string
	GuideError    string
	FormatError   string
	Success       string
	LangName      string
	LangSelect    string
	Download      string
	Footer        string
}

// Language pairs a code with its self-describing name, for the select box.
type Language struct {
	Code string
	Name string
}

var langOrder = []string{"en", "es", "hi", "fr"}

var translations = map[string]Texts{
	"en": {
		Title:         "Trip Whisperer: Your AI Travel Companion ✈️",
		Placeholder:   "e.g., Paris, Tokyo, New York",
		Button:        "Generate Guide",
		Spinner:       "Conjuring a travel guide for %s... ✨",
		WeatherHeader: "Current Weather in %s:",
		FlightsButton: "Search for Flights to %s",
		SummaryHeader: "A Glimpse into %s",
		SummaryError:  "Could not find a Wikipedia summary for '%s' (language: %s).",
		GuideError:    "Could not generate guide. AI model error: %s",
		FormatError:   "The AI model returned an unusable format. Please try again.",
		Success:       "Your personalized travel guide is ready! Click any item to explore it on Google Maps.",
		LangName:      "English",
		LangSelect:    "Select Language",
		Download:      "Download as Text",
		Footer:        "Created by Sheikh Imran © 2025. All rights reserved.",
	},
	"es": {
		Title:         "Susurrador de Viajes: Tu Compañero de IA ✈️",
		Placeholder:   "ej., París, Tokio, Nueva York",
		Button:        "Generar Guía",
		Spinner:       "Conjurando una guía de viaje para %s... ✨",
		WeatherHeader: "Tiempo actual en %s:",
		FlightsButton: "Buscar Vuelos a %s",
		SummaryHeader: "Un Vistazo a %s",
		SummaryError:  "No se pudo encontrar un resumen de Wikipedia para '%s' (idioma: %s).",
		GuideError:    "No se pudo generar la guía. Error del modelo de IA: %s",
		FormatError:   "El modelo de IA devolvió un formato inutilizable. Inténtalo de nuevo.",
		Success:       "¡Tu guía de viaje personalizada está lista! Haz clic en cualquier elemento para explorarlo en Google Maps.",
		LangName:      "Español",
		LangSelect:    "Seleccionar Idioma",
		Download:      "Descargar como Texto",
		Footer:        "Creado por Sheikh Imran © 2025. Todos los derechos reservados.",
	},
	"hi": {
		Title:         "ट्रिप व्हिस्परर: आपका AI यात्रा साथी ✈️",
		Placeholder:   "जैसे, पेरिस, टोक्यो, न्यूयॉर्क",
		Button:        "गाइड तैयार करें",
		Spinner:       "%s के लिए एक यात्रा गाइड तैयार की जा रही है... ✨",
		WeatherHeader: "%s में वर्तमान मौसम:",
		FlightsButton: "%s के लिए उड़ानें खोजें",
		SummaryHeader: "%s की एक झलक",
		SummaryError:  "'%s' के लिए विकिपीडिया सारांश नहीं मिल सका (भाषा: %s).",
		GuideError:    "गाइड उत्पन्न नहीं हो सका। AI मॉडल त्रुटि: %s",
		FormatError:   "AI मॉडल ने अनुपयोगी प्रारूप लौटाया। कृपया पुनः प्रयास करें।",
		Success:       "आपकी व्यक्तिगत यात्रा गाइड तैयार है! Google मानचित्र पर इसका पता लगाने के लिए किसी भी आइटम पर क्लिक करें।",
		LangName:      "हिंदी",
		LangSelect:    "भाषा चुनें",
		Download:      "टेक्स्ट के रूप में डाउनलोड करें",
		Footer:        "शेख इमरान द्वारा निर्मित © 2025. सर्वाधिकार सुरक्षित।",
	},
	"fr": {
		Title:         "Murmure de Voyage : Votre Compagnon IA ✈️",
		Placeholder:   "ex: Paris, Tokyo, New York",
		Button:        "Générer le Guide",
		Spinner:       "Préparation d'un guide de voyage pour %s... ✨",
		WeatherHeader: "Météo actuelle à %s :",
		FlightsButton: "Rechercher des vols vers %s",
		SummaryHeader: "Un aperçu de %s",
		SummaryError:  "Impossible de trouver un résumé Wikipedia pour '%s' (langue : %s).",
		GuideError:    "Impossible de générer le guide. Erreur du modèle IA : %s",
		FormatError:   "Le modèle IA a renvoyé un format inutilisable. Veuillez réessayer.",
		Success:       "Votre guide de voyage personnalisé est prêt ! Cliquez sur un élément pour l'explorer sur Google Maps.",
		LangName:      "Français",
		LangSelect:    "Choisir la langue",
		Download:      "Télécharger en texte",
		Footer:        "Créé par Sheikh Imran © 2025. Tous droits réservés.",
	},
}

// Get returns the UI texts for a language code, falling back to English for
// unknown codes.
func Get(code string) Texts {
	if t, ok := translations[code]; ok {
		return t
	}
	return translations["en"]
}

// Supported reports whether code has its own translation.
func Supported(code string) bool {
	_, ok := translations[code]
	return ok
}

// LangName returns the self-describing name of a language code ("Español" for
// "es"); unknown codes report as English.
func LangName(code string) string {
	return Get(code).LangName
}

// Languages returns the supported languages in stable display order.
func Languages() []Language {
	out := make([]Language, 0, len(langOrder))
	for _, code := range langOrder {
		out = append(out, Language{Code: code, Name: translations[code].LangName})
	}
	return out
}
