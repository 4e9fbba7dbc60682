package config

import (
	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/Tomas-vilte/MateTickets/internal/i18n"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory arma el comando config y sus subcomandos
type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, config),
			c.newSetURLCommand(t, config),
			c.newSetLangCommand(t, config),
			c.newSetOutputCommand(t, config),
		},
	}
}
