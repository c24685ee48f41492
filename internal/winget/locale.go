// ABOUTME: Locale translation tables mapping localized tokens to canonical fields
// ABOUTME: Data-driven so adding a language is purely additive; extendable via config

package winget

import "strings"

// Field identifies a canonical table column.
type Field int

const (
	FieldName Field = iota
	FieldID
	FieldVersion
	FieldAvailable
	FieldSource
)

// columnAliases maps lowercased localized header tokens to canonical fields.
// winget renders headers in the host's display language; matching is
// case-insensitive over this table rather than per-language branching.
var columnAliases = map[string]Field{
	// Name
	"name":   FieldName,
	"nom":    FieldName,
	"nombre": FieldName,
	"nome":   FieldName,
	// Id
	"id":  FieldID,
	"id.": FieldID,
	// Version
	"version":  FieldVersion,
	"versión":  FieldVersion,
	"versão":   FieldVersion,
	"versione": FieldVersion,
	// Available
	"available":   FieldAvailable,
	"verfügbar":   FieldAvailable,
	"disponible":  FieldAvailable,
	"disponível":  FieldAvailable,
	"disponibile": FieldAvailable,
	// Source
	"source":  FieldSource,
	"quelle":  FieldSource,
	"origen":  FieldSource,
	"fonte":   FieldSource,
	"origine": FieldSource,
}

// Canonical detail keys produced by detailAliases.
const (
	keyVersion      = "version"
	keyPublisher    = "publisher"
	keyDescription  = "description"
	keyHomepage     = "homepage"
	keyPublisherURL = "publisher_url"
	keyLicense      = "license"
	keySource       = "source"
)

// detailAliases maps lowercased localized "Key:" labels from `winget show`
// to canonical detail fields. Unrecognized keys are ignored by the parser.
var detailAliases = map[string]string{
	"version":        keyVersion,
	"packageversion": keyVersion,

	"publisher":   keyPublisher,
	"herausgeber": keyPublisher,
	"editor":      keyPublisher,
	"éditeur":     keyPublisher,
	"editore":     keyPublisher,

	"description":  keyDescription,
	"beschreibung": keyDescription,
	"descripción":  keyDescription,
	"descrição":    keyDescription,
	"descrizione":  keyDescription,

	"homepage":       keyHomepage,
	"startseite":     keyHomepage,
	"página web":     keyHomepage,
	"page d'accueil": keyHomepage,

	"publisher url":   keyPublisherURL,
	"herausgeber-url": keyPublisherURL,

	"license":  keyLicense,
	"lizenz":   keyLicense,
	"licencia": keyLicense,
	"licence":  keyLicense,
	"licenza":  keyLicense,

	"source":  keySource,
	"quelle":  keySource,
	"origen":  keySource,
	"fonte":   keySource,
	"origine": keySource,
}

// columnField resolves a header token to its canonical field.
func columnField(name string) (Field, bool) {
	f, ok := columnAliases[strings.ToLower(name)]
	return f, ok
}

// detailKey resolves a localized detail label to its canonical key.
func detailKey(label string) (string, bool) {
	k, ok := detailAliases[strings.ToLower(strings.TrimSpace(label))]
	return k, ok
}

// ExtendColumnAliases registers additional header-token translations, e.g.
// from user config for a locale the built-in tables do not cover.
func ExtendColumnAliases(aliases map[string]string) {
	for token, field := range aliases {
		switch strings.ToLower(field) {
		case "name":
			columnAliases[strings.ToLower(token)] = FieldName
		case "id":
			columnAliases[strings.ToLower(token)] = FieldID
		case "version":
			columnAliases[strings.ToLower(token)] = FieldVersion
		case "available":
			columnAliases[strings.ToLower(token)] = FieldAvailable
		case "source":
			columnAliases[strings.ToLower(token)] = FieldSource
		}
	}
}

// ExtendDetailAliases registers additional detail-label translations.
// Values must be canonical keys; unknown canonicals are dropped.
func ExtendDetailAliases(aliases map[string]string) {
	known := map[string]bool{
		keyVersion: true, keyPublisher: true, keyDescription: true,
		keyHomepage: true, keyPublisherURL: true, keyLicense: true, keySource: true,
	}
	for label, canonical := range aliases {
		c := strings.ToLower(canonical)
		if known[c] {
			detailAliases[strings.ToLower(label)] = c
		}
	}
}
