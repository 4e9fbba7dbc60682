package export

import (
	"context"
	"net/http"
	"os"
	"time"

	cfg "github.com/Tomas-vilte/MateTickets/internal/config"
	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
	"github.com/Tomas-vilte/MateTickets/internal/i18n"
	"github.com/Tomas-vilte/MateTickets/internal/infrastructure/input"
	"github.com/Tomas-vilte/MateTickets/internal/infrastructure/ratelimit"
	"github.com/Tomas-vilte/MateTickets/internal/infrastructure/sheet"
	"github.com/Tomas-vilte/MateTickets/internal/infrastructure/tickets/tdx"
	"github.com/Tomas-vilte/MateTickets/internal/logger"
	"github.com/Tomas-vilte/MateTickets/internal/services"
	"github.com/Tomas-vilte/MateTickets/internal/ui"
	"github.com/urfave/cli/v3"
)

// Command es la factory del comando export
type Command struct{}

func NewCommandFactory() *Command {
	return &Command{}
}

func (c *Command) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   t.GetMessage("export_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ids",
				Aliases:  []string{"i"},
				Usage:    t.GetMessage("export_ids_flag", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("export_out_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
			},
			&cli.BoolFlag{
				Name: "debug",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

			outputPath := cmd.String("out")
			if outputPath == "" {
				outputPath = config.OutputPath
			}

			idsPath := cmd.String("ids")
			ui.PrintInfo(t.GetMessage("export_reading_ids", 0, map[string]interface{}{
				"Path": idsPath,
			}))

			ids, err := input.ReadTicketIDs(idsPath)
			if err != nil {
				return err
			}

			bucket := ratelimit.NewTokenBucket(
				config.RateCapacity,
				time.Duration(config.RateWindowSeconds)*time.Second,
			)

			client, err := tdx.NewClient(config.BaseURL, os.Getenv(tdx.TokenEnvVar), bucket, &http.Client{})
			if err != nil {
				return err
			}

			writer := sheet.NewXLSXWriter()
			service := services.NewExportService(client, writer)

			rows, err := runExport(ctx, t, service, bucket, writer, ids, outputPath)
			if err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("export_done", 0, map[string]interface{}{
				"Count": len(rows),
				"Path":  outputPath,
			}))
			return nil
		},
	}
}

// runExport conecta el avance del lote y los chequeos de refill con la
// línea de progreso, y muestra el aviso de archivo ocupado mientras el
// escritor espera que el operador cierre la planilla.
func runExport(
	ctx context.Context,
	t *i18n.Translations,
	service *services.ExportService,
	bucket *ratelimit.TokenBucket,
	writer *sheet.XLSXWriter,
	ids []string,
	outputPath string,
) ([]models.NormalizedRow, error) {
	progress := ui.NewProgressLine(os.Stdout)
	defer progress.Done()

	processed := 0
	update := func() {
		progress.Update(t.GetMessage("export_progress", 0, map[string]interface{}{
			"Processed": processed,
			"Total":     len(ids),
			"Tokens":    bucket.Tokens(),
			"Seconds":   int(bucket.UntilRefill().Seconds()),
		}))
	}

	service.SetProgress(func(done, total int) {
		processed = done
		update()
	})
	bucket.SetRefillHook(func(tokens int, untilRefill time.Duration) {
		update()
	})

	var busySpinner *ui.SmartSpinner
	writer.SetBusyHook(func() {
		if busySpinner == nil {
			progress.Done()
			busySpinner = ui.NewSmartSpinner(t.GetMessage("output_file_busy", 0, nil))
			busySpinner.Start()
		}
	})
	defer func() {
		if busySpinner != nil {
			busySpinner.Stop()
		}
	}()

	return service.Export(ctx, ids, outputPath)
}
