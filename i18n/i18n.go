// Package i18n is the static de/en text layer of the site. Lookups that
// miss the table return the key itself so an untranslated string shows
// up verbatim instead of breaking the page.
package i18n

// Default is the language the site ships in.
const Default = "de"

var translations = map[string]map[string]string{
	"de": {
		"nav.gallery": "Galerie",
		"nav.about":   "Über mich",
		"nav.contact": "Kontakt",

		"hero.title":    "Till Grassmann",
		"hero.subtitle": "Landschaftsmalerei, die die emotionale Essenz der Natur durch neo-impressionistische Pinselführung und lebendige Farben einfängt",
		"hero.cta":      "Zur Galerie",

		"gallery.title":      "Galerie",
		"gallery.subtitle":   "Navigieren Sie durch die Galerie mit den Pfeilen, um jedes Gemälde zu erleben, als würden Sie durch einen zeitgenössischen Kunstraum gehen",
		"gallery.available":  "Verfügbar",
		"gallery.sold":       "Verkauft",
		"gallery.notForSale": "Nicht verkäuflich",
		"gallery.noArtworks": "Momentan sind keine Kunstwerke verfügbar.",

		"modal.year":            "Jahr:",
		"modal.medium":          "Medium:",
		"modal.dimensions":      "Abmessungen:",
		"modal.status":          "Status:",
		"modal.tags":            "Tags:",
		"modal.interested":      "Interesse an diesem Werk?",
		"modal.availableText":   "Dieses Kunstwerk ist zum Kauf verfügbar. Kontaktieren Sie mich, um Preise, Versandoptionen und Zahlungsmodalitäten zu besprechen.",
		"modal.soldText":        "Dieses Werk wurde an einen privaten Sammler verkauft. Jedoch habe ich möglicherweise ähnliche Werke verfügbar oder kann ein Auftragswerk erstellen.",
		"modal.inquirePurchase": "Kaufanfrage stellen",
		"modal.inquireSimilar":  "Ähnliche Werke anfragen",
		"modal.notForSaleText":  "Dieses Werk ist nicht verkäuflich",
		"modal.share":           "Dieses Kunstwerk teilen:",

		"about.title":    "Über den Künstler",
		"about.subtitle": "Eine Leidenschaft für Landschaften und den Ausdruck von Emotionen durch Farbe",
		"about.bio1":     "Als Landschaftsmaler widme ich mich der Darstellung der emotionalen Tiefe und Schönheit der Natur. Meine Arbeiten entstehen durch eine Kombination aus direkter Beobachtung und emotionaler Interpretation, wobei ich neo-impressionistische Techniken verwende, um die Essenz jeder Landschaft einzufangen.",
		"about.bio2":     "Jedes Gemälde erzählt eine Geschichte – von den ruhigen Momenten eines Sonnenuntergangs bis hin zur dramatischen Kraft eines Sturms über den Bergen. Ich arbeite hauptsächlich mit Acrylfarben auf Papier und Leinwand und lasse mich von den sich ständig verändernden Stimmungen der Natur inspirieren.",
		"about.bio3":     "Meine Kunst lädt den Betrachter ein, einen Moment der Ruhe zu finden und sich mit den emotionalen Landschaften zu verbinden, die uns alle umgeben.",
		"about.country":  "Kiel, Deutschland",
		"about.genre":    "Landschaften & Neo-Impressionismus",
		"about.since":    "Aktiv seit 2023",

		"contact.title":          "Kontakt aufnehmen",
		"contact.subtitle":       "Interesse an einem Werk oder einer Auftragsarbeit? Ich würde mich freuen, von Ihnen zu hören und zu besprechen, wie meine Kunst einen Platz in Ihrem Raum finden kann.",
		"contact.comingSoon":     "Kontaktformular in Vorbereitung",
		"contact.comingSoonText": "Die Kontaktfunktion wird derzeit entwickelt. Bitte schauen Sie später wieder vorbei oder kontaktieren Sie mich über die sozialen Medien.",
		"contact.info":           "Kontaktinformationen",
		"contact.followWork":     "Meiner Arbeit folgen",

		"footer.description": "Landschaftsmaler, der die emotionale Essenz der Natur durch neo-impressionistische Pinselführung und lebendige Farben einfängt.",
		"footer.quickLinks":  "Schnellzugriff",
		"footer.connect":     "Vernetzen",
		"footer.rights":      "© 2025 Till Graßmann. Alle Rechte vorbehalten.",
	},
	"en": {
		"nav.gallery": "Gallery",
		"nav.about":   "About",
		"nav.contact": "Contact",

		"hero.title":    "Till Grassmann",
		"hero.subtitle": "Landscape paintings that capture the emotional essence of nature through neo-impressionist brushwork and vibrant colors",
		"hero.cta":      "View Gallery",

		"gallery.title":      "Gallery",
		"gallery.subtitle":   "Navigate through the gallery using the arrows to experience each painting as if walking through a contemporary art space",
		"gallery.available":  "Available",
		"gallery.sold":       "Sold",
		"gallery.notForSale": "Not for Sale",
		"gallery.noArtworks": "No artworks available at the moment.",

		"modal.year":            "Year:",
		"modal.medium":          "Medium:",
		"modal.dimensions":      "Dimensions:",
		"modal.status":          "Status:",
		"modal.tags":            "Tags:",
		"modal.interested":      "Interested in this piece?",
		"modal.availableText":   "This artwork is available for purchase. Get in touch to discuss pricing, shipping options, and payment arrangements.",
		"modal.soldText":        "This piece has been sold to a private collector. However, I may have similar works available or can create a commission piece.",
		"modal.inquirePurchase": "Inquire About Purchase",
		"modal.inquireSimilar":  "Inquire About Similar Works",
		"modal.notForSaleText":  "This piece is not for sale",
		"modal.share":           "Share this artwork:",

		"about.title":    "About the Artist",
		"about.subtitle": "A passion for landscapes and expressing emotion through color",
		"about.bio1":     "As a landscape painter, I am dedicated to capturing the emotional depth and beauty of nature. My work emerges through a combination of direct observation and emotional interpretation, using neo-impressionist techniques to capture the essence of each landscape.",
		"about.bio2":     "Each painting tells a story – from the quiet moments of a sunset to the dramatic power of a storm over the mountains. I work primarily with acrylics on paper and canvas, drawing inspiration from the ever-changing moods of nature.",
		"about.bio3":     "My art invites the viewer to find a moment of peace and connect with the emotional landscapes that surround us all.",
		"about.country":  "Kiel, Germany",
		"about.genre":    "Landscape & Neo-Impressionism",
		"about.since":    "Active since 2023",

		"contact.title":          "Get in Touch",
		"contact.subtitle":       "Interested in purchasing a piece or commissioning custom work? I'd love to hear from you and discuss how my art can find a place in your space.",
		"contact.comingSoon":     "Contact Form Coming Soon",
		"contact.comingSoonText": "The contact functionality is currently being developed. Please check back later or reach out through social media.",
		"contact.info":           "Contact Information",
		"contact.followWork":     "Follow My Work",

		"footer.description": "Landscape painter capturing the emotional essence of nature through neo-impressionist brushwork and vibrant colors.",
		"footer.quickLinks":  "Quick Links",
		"footer.connect":     "Connect",
		"footer.rights":      "© 2025 Till Graßmann. All rights reserved.",
	},
}

// T resolves key in lang. Unknown languages and unknown keys fall back
// to returning the key itself.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	return key
}

// Languages lists the supported language tags.
func Languages() []string {
	return []string{"de", "en"}
}

// Translator binds a language tag for template use.
type Translator struct {
	lang string
}

// New returns a translator for lang, falling back to the default
// language for unknown tags.
func New(lang string) Translator {
	if _, ok := translations[lang]; !ok {
		lang = Default
	}
	return Translator{lang: lang}
}

func (t Translator) Lang() string { return t.lang }

func (t Translator) T(key string) string { return T(t.lang, key) }
