package input

import (
	"bufio"
	"os"
	"strings"

	apperrors "github.com/Tomas-vilte/MateTickets/internal/errors"
	"github.com/Tomas-vilte/MateTickets/internal/regex"
)

// ReadTicketIDs lee el archivo de IDs: un ID de 8 dígitos por línea,
// tolerante a CRLF, con líneas en blanco ignoradas. Una línea que no
// cumple el formato es un error fatal que nombra el número de línea.
func ReadTicketIDs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.ErrReadIDFile.WithError(err).WithContext("path", path)
	}
	defer func() {
		_ = file.Close()
	}()

	var ids []string
	scanner := bufio.NewScanner(file)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !regex.TicketID.MatchString(line) {
			return nil, apperrors.NewMalformedIDError(lineNumber, line)
		}
		ids = append(ids, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.ErrReadIDFile.WithError(err).WithContext("path", path)
	}

	if len(ids) == 0 {
		return nil, apperrors.ErrNoTicketIDs.WithContext("path", path)
	}

	return ids, nil
}
