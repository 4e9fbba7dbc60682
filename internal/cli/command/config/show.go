package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/Tomas-vilte/MateTickets/internal/i18n"
	"github.com/Tomas-vilte/MateTickets/internal/infrastructure/tickets/tdx"
	"github.com/Tomas-vilte/MateTickets/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			ui.PrintKeyValue("base_url", config.BaseURL)
			ui.PrintKeyValue("language", config.Language)
			ui.PrintKeyValue("output_path", config.OutputPath)
			ui.PrintKeyValue("rate_capacity", strconv.Itoa(config.RateCapacity))
			ui.PrintKeyValue("rate_window_seconds", strconv.Itoa(config.RateWindowSeconds))

			// el token nunca se persiste ni se muestra, solo si está presente
			if os.Getenv(tdx.TokenEnvVar) == "" {
				ui.PrintKeyValue(tdx.TokenEnvVar, "(not set)")
			} else {
				ui.PrintKeyValue(tdx.TokenEnvVar, "(set)")
			}

			return nil
		},
	}
}
