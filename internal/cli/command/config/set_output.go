package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/Tomas-vilte/MateTickets/internal/i18n"
	"github.com/Tomas-vilte/MateTickets/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetOutputCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-output",
		Usage: t.GetMessage("config_set_output_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "path",
				Aliases:  []string{"p"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			config.OutputPath = command.String("path")
			if err := cfg.SaveConfig(config); err != nil {
				return fmt.Errorf("error al guardar la configuración: %w", err)
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			ui.PrintKeyValue("output_path", config.OutputPath)
			return nil
		},
	}
}
