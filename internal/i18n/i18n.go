package i18n

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	if defaultLang == "" {
		return nil, errors.New("default language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Export tickets from your ticketing service into a spreadsheet"

	[app_description]
	other = "Reads a list of 8-digit ticket IDs, fetches each ticket through a rate-limited API client and writes one spreadsheet row per ticket"

	[export_command_usage]
	other = "Fetch every ticket in the ID file and write the output spreadsheet"

	[export_ids_flag]
	other = "Path to the file with one 8-digit ticket ID per line"

	[export_out_flag]
	other = "Path of the spreadsheet to write"

	[export_reading_ids]
	other = "Reading ticket IDs from {{.Path}}"

	[export_done]
	other = "Exported {{.Count}} tickets to {{.Path}}"

	[export_progress]
	other = "Processed {{.Processed}}/{{.Total}} | tokens {{.Tokens}} | refill in {{.Seconds}}s"

	[output_file_busy]
	other = "The output file is open in another program. Close it to continue..."

	[config_command_usage]
	other = "Show and edit the saved configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_url_usage]
	other = "Set the ticket service base URL"

	[config_set_lang_usage]
	other = "Set the interface language (en, es)"

	[config_set_output_usage]
	other = "Set the default output spreadsheet path"

	[config_updated]
	other = "Configuration updated"

	[config_invalid_lang]
	other = "Unsupported language: {{.Lang}}. Use en or es"

	[current_config]
	other = "Current configuration"

	[help_command_usage]
	other = "Show help"

	[factory_already_registered]
	other = "Factory '{{.FactoryName}}' is already registered"

	[ui_error.try_suggestion]
	other = "💡 Try: "
`
