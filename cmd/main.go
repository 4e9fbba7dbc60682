package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/MateTickets/internal/cli/command/config"
	"github.com/Tomas-vilte/MateTickets/internal/cli/command/export"
	"github.com/Tomas-vilte/MateTickets/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/Tomas-vilte/MateTickets/internal/i18n"
	"github.com/Tomas-vilte/MateTickets/internal/ui"
	"github.com/Tomas-vilte/MateTickets/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, nil, err
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("export", export.NewCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'export': %v", err)
	}

	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "mate-tickets",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
