package config

import (
	"context"
	"testing"

	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestSetURLCommand(t *testing.T) {
	t.Run("debería guardar la URL base sin la barra final", func(t *testing.T) {
		// Arrange
		config, translations, tmpConfigPath, cleanup := setupConfigTest(t)
		defer cleanup()

		factory := NewConfigCommandFactory()
		cmd := factory.newSetURLCommand(translations, config)

		app := &cli.Command{Commands: []*cli.Command{cmd}}
		ctx := context.Background()

		// Act
		err := app.Run(ctx, []string{"config", "set-url", "--url", "https://tdx.example.edu/api/"})

		// Assert
		assert.NoError(t, err)
		loadedCfg, err := cfg.LoadConfig(tmpConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, "https://tdx.example.edu/api", loadedCfg.BaseURL)
	})

	t.Run("debería fallar sin el flag url", func(t *testing.T) {
		// Arrange
		config, translations, _, cleanup := setupConfigTest(t)
		defer cleanup()

		factory := NewConfigCommandFactory()
		cmd := factory.newSetURLCommand(translations, config)

		app := &cli.Command{Commands: []*cli.Command{cmd}}
		ctx := context.Background()

		// Act
		err := app.Run(ctx, []string{"config", "set-url"})

		// Assert
		assert.Error(t, err)
	})
}
