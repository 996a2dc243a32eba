package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var i18nBundle *i18n.Bundle

// InitI18NBundle loads every message file under the configured i18n
// directory. It must run before any call to NewLocalizer.
func InitI18NBundle() error {
	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return err
		}
	}

	i18nBundle = bundle
	return nil
}

// NewLocalizer returns a localizer for the given language preferences,
// falling back to English. Before InitI18NBundle runs the localizer resolves
// nothing, so callers fall back to their canned messages.
func NewLocalizer(langs ...string) *i18n.Localizer {
	if i18nBundle == nil {
		i18nBundle = i18n.NewBundle(language.English)
	}

	return i18n.NewLocalizer(i18nBundle, append(langs, language.English.String())...)
}
