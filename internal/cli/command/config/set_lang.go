package config

import (
	"context"
	"errors"
	"fmt"

	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/Tomas-vilte/MateTickets/internal/i18n"
	"github.com/Tomas-vilte/MateTickets/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config_set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if lang != "en" && lang != "es" {
				return errors.New(t.GetMessage("config_invalid_lang", 0, map[string]interface{}{
					"Lang": lang,
				}))
			}

			config.Language = lang
			if err := cfg.SaveConfig(config); err != nil {
				return fmt.Errorf("error al guardar la configuración: %w", err)
			}

			if err := t.SetLanguage(lang); err != nil {
				return fmt.Errorf("error al cambiar el idioma: %w", err)
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			ui.PrintKeyValue("language", config.Language)
			return nil
		},
	}
}
