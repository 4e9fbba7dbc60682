package config

import (
	"context"
	"fmt"
	"strings"

	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/Tomas-vilte/MateTickets/internal/i18n"
	"github.com/Tomas-vilte/MateTickets/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetURLCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-url",
		Usage: t.GetMessage("config_set_url_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			config.BaseURL = strings.TrimRight(command.String("url"), "/")
			if err := cfg.SaveConfig(config); err != nil {
				return fmt.Errorf("error al guardar la configuración: %w", err)
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			ui.PrintKeyValue("base_url", config.BaseURL)
			return nil
		},
	}
}
