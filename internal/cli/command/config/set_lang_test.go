package config

import (
	"context"
	"os"
	"testing"

	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestSetLangCommand(t *testing.T) {
	t.Run("debería cambiar el idioma a inglés y persistirlo", func(t *testing.T) {
		// Arrange
		config, translations, tmpConfigPath, cleanup := setupConfigTest(t)
		defer cleanup()

		config.Language = "es"
		assert.NoError(t, cfg.SaveConfig(config))

		factory := NewConfigCommandFactory()
		cmd := factory.newSetLangCommand(translations, config)

		app := &cli.Command{Commands: []*cli.Command{cmd}}
		ctx := context.Background()

		// Act
		err := app.Run(ctx, []string{"config", "set-lang", "--lang", "en"})

		// Assert
		assert.NoError(t, err)
		loadedCfg, err := cfg.LoadConfig(tmpConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, "en", loadedCfg.Language)
	})

	t.Run("debería fallar con un idioma no soportado", func(t *testing.T) {
		// Arrange
		config, translations, tmpConfigPath, cleanup := setupConfigTest(t)
		defer cleanup()
		assert.NoError(t, cfg.SaveConfig(config))

		factory := NewConfigCommandFactory()
		cmd := factory.newSetLangCommand(translations, config)

		app := &cli.Command{Commands: []*cli.Command{cmd}}
		ctx := context.Background()

		// Act
		err := app.Run(ctx, []string{"config", "set-lang", "--lang", "fr"})

		// Assert
		assert.Error(t, err)
		loadedCfg, err := cfg.LoadConfig(tmpConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, "es", loadedCfg.Language)
	})

	t.Run("debería fallar cuando no se puede guardar la configuración", func(t *testing.T) {
		// Arrange
		config, translations, tmpConfigPath, cleanup := setupConfigTest(t)
		defer cleanup()

		err := os.Mkdir(tmpConfigPath, 0755)
		assert.NoError(t, err)

		factory := NewConfigCommandFactory()
		cmd := factory.newSetLangCommand(translations, config)

		app := &cli.Command{Commands: []*cli.Command{cmd}}
		ctx := context.Background()

		// Act
		err = app.Run(ctx, []string{"config", "set-lang", "--lang", "en"})

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error al guardar la configuración")
	})
}
