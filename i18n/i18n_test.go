package i18n

import "testing"

func TestLookup(t *testing.T) {
	if got := T("de", "nav.gallery"); got != "Galerie" {
		t.Errorf(`T("de", "nav.gallery") = %q`, got)
	}
	if got := T("en", "nav.gallery"); got != "Gallery" {
		t.Errorf(`T("en", "nav.gallery") = %q`, got)
	}
	if got := T("en", "gallery.notForSale"); got != "Not for Sale" {
		t.Errorf(`T("en", "gallery.notForSale") = %q`, got)
	}
}

func TestUnresolvedKeyFallsBackToKey(t *testing.T) {
	if got := T("de", "nav.doesNotExist"); got != "nav.doesNotExist" {
		t.Errorf("unknown key: got %q", got)
	}
	if got := T("fr", "nav.gallery"); got != "nav.gallery" {
		t.Errorf("unknown language: got %q", got)
	}
}

func TestTranslatorNormalizesLanguage(t *testing.T) {
	if lang := New("fr").Lang(); lang != Default {
		t.Errorf("unknown tag resolved to %q", lang)
	}
	if lang := New("en").Lang(); lang != "en" {
		t.Errorf("known tag resolved to %q", lang)
	}

	tr := New("en")
	if got := tr.T("gallery.sold"); got != "Sold" {
		t.Errorf("bound lookup = %q", got)
	}
}

func TestBothLanguagesCoverTheSameKeys(t *testing.T) {
	de, en := translations["de"], translations["en"]
	for key := range de {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing in en", key)
		}
	}
	for key := range en {
		if _, ok := de[key]; !ok {
			t.Errorf("key %q missing in de", key)
		}
	}
}
