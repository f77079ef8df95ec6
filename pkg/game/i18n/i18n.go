// Package i18n loads the message catalogs used for every player-facing string.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

const (
	DefaultLanguage = "en"
	domain          = "default"
)

// T looks up a catalog key and formats it with args.
// It is a variable so vet does not treat callers as printf wrappers: keys
// are not format strings.
var T = gotext.Get

func init() {
	if err := Load(DefaultLanguage); err != nil {
		panic(err)
	}
}

// Load makes the embedded catalog for lang the active one
func Load(lang string) error {
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return fmt.Errorf("load locale %q: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	locale := gotext.NewLocale("", lang)
	locale.AddTranslator(domain, po)
	gotext.SetStorage(locale)
	return nil
}

// Languages returns the embedded catalogs
func Languages() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	return langs
}
