package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var catalogue []byte

var lang string

// translations maps an English key to its per-language text.
var translations map[string]map[string]string

func init() {
	var err error
	if translations, err = parseCatalogue(catalogue); err != nil {
		log.Printf("Failed to load translations, using english keys: %v", err)
	}

	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("POMODORO_LANG")); forcedLang != "" {
		log.Printf("POMODORO_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	log.Debug("POMODORO_LANG is not set, detecting from system locale.")
	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	log.Printf("Detected user locale: %s", userLocales[0])
	lang = matchLang(userLocales[0])
	log.Printf("Language set to: %s", lang)
}

func parseCatalogue(data []byte) (map[string]map[string]string, error) {
	var out map[string]map[string]string
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse translations yaml: %w", err)
	}
	return out, nil
}

func matchLang(userLocale string) string {
	for _, l := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(userLocale, l) {
			return l
		}
	}
	return "en"
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang overrides the detected language.
func SetLang(l string) {
	lang = l
}
