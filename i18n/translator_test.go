package i18n

import "testing"

const catalogYAML = `
en:
  status.active: Active
  status.disabled: Disabled
zh-CN:
  status.active: 启用
`

func TestCatalog_NegotiatesAndFallsBack(t *testing.T) {
	c, err := LoadCatalogYAML([]byte(catalogYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.Translate("status.active"); got != "Active" {
		t.Fatalf("default language should be the first one, got %q", got)
	}

	if tag := c.SetLanguage("zh-Hans-CN"); tag != "zh-CN" {
		t.Fatalf("expected zh-CN to be selected, got %q", tag)
	}
	if got := c.Translate("status.active"); got != "启用" {
		t.Fatalf("expected chinese message, got %q", got)
	}
	// missing in zh-CN: key comes back
	if got := c.Translate("status.disabled"); got != "status.disabled" {
		t.Fatalf("expected key fallback, got %q", got)
	}

	if tag := c.SetLanguage("fr"); tag != "en" {
		t.Fatalf("unsupported language should fall back to en, got %q", tag)
	}
}

func TestCatalog_AcceptLanguageList(t *testing.T) {
	c, err := LoadCatalogYAML([]byte(catalogYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tag := c.SetLanguage("fr-FR, zh-CN;q=0.8, en;q=0.5"); tag != "zh-CN" {
		t.Fatalf("got %q", tag)
	}
}

func TestLoadCatalogYAML_Invalid(t *testing.T) {
	if _, err := LoadCatalogYAML([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected error for a sequence document")
	}
}

func TestCurrentTranslator(t *testing.T) {
	if got := T("x"); got != "x" {
		t.Fatalf("identity expected, got %q", got)
	}
	if SetLanguage("en") {
		t.Fatalf("identity translator has no languages")
	}

	c, err := LoadCatalogYAML([]byte(catalogYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	SetTranslator(c)
	defer SetTranslator(nil)

	if !SetLanguage("zh-CN") {
		t.Fatalf("catalog should accept SetLanguage")
	}
	if got := T("status.active"); got != "启用" {
		t.Fatalf("got %q", got)
	}
}
