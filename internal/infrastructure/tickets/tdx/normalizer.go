package tdx

import (
	"strconv"
	"strings"

	"github.com/Tomas-vilte/MateTickets/internal/domain/models"
	"github.com/Tomas-vilte/MateTickets/internal/regex"
)

// Nombres de los atributos de negocio en el payload del ticket
const (
	attrVendor          = "Vendor"
	attrRenewal         = "Renewal"
	attrSoftwareType    = "Software Type"
	attrInfoClass       = "Information Classification Standard"
	attrTechCoordinator = "Technology Coordinator"
	attrSecurityClass   = "DoIT Security Classification"
	attrSMESummary      = "DoIT Security SME Summary"

	attrStudentCount = "Number of Student Users"
	attrStaffCount   = "Number of Staff Users"
	attrPublicCount  = "Number of Public Users"
	attrOtherCount   = "Number of Other Users"
)

// Marcadores del texto libre del resumen de seguridad
const (
	reviewedByMarker = "Reviewed by:"
	reviewedByPrefix = "Reviewed by:  "
)

// Normalize deriva la fila de planilla de un ticket crudo. Toda la
// extracción es de solo lectura; un atributo ausente produce un campo
// vacío, nunca aborta el lote.
func Normalize(t *models.RawTicket) *models.NormalizedRow {
	vendor, _ := t.Attribute(attrVendor)
	swType, _ := t.Attribute(attrSoftwareType)
	infoClass, _ := t.Attribute(attrInfoClass)
	coordinator, _ := t.Attribute(attrTechCoordinator)
	securityClass, _ := t.Attribute(attrSecurityClass)
	summary, _ := t.Attribute(attrSMESummary)

	return &models.NormalizedRow{
		Date:            t.CreatedDate,
		Rush:            "",
		ID:              strconv.Itoa(t.ID),
		Vendor:          vendor,
		Status:          t.StatusName,
		Product:         t.Title,
		Description:     "",
		IsRenewal:       mapRenewal(t),
		SWType:          mapSoftwareType(swType),
		InfoClass:       mapInfoClass(infoClass),
		Quantity:        sumQuantities(t),
		TechCoordinator: extractCoordinator(coordinator),
		Requestor:       t.RequestorName,
		Risk:            firstRune(securityClass),
		Summary:         parseSummary(summary),
	}
}

func mapRenewal(t *models.RawTicket) string {
	if v, ok := t.Attribute(attrRenewal); ok && v == "Yes" {
		return "Renewal"
	}
	return "New"
}

// mapSoftwareType reagrupa el tipo de software por subcadena, sin
// distinguir mayúsculas. El texto no reconocido pasa sin cambios.
func mapSoftwareType(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "web application"):
		return "SaaS"
	case strings.Contains(lower, "desktop application"):
		return "App"
	case strings.Contains(lower, "mobile device application"):
		return "App"
	case strings.Contains(lower, "system software"):
		return "SaaS"
	default:
		return v
	}
}

// mapInfoClass compacta el estándar de clasificación de información.
// El texto "Level X - ..." trae el nivel en el offset 6; si el texto es
// más corto que eso se retorna tal cual en vez de recortar a ciegas.
func mapInfoClass(v string) string {
	switch {
	case strings.HasPrefix(v, "No"):
		return "No Level 1,2,3"
	case strings.HasPrefix(v, "Level"):
		runes := []rune(v)
		if len(runes) > 6 {
			return "Level " + string(runes[6])
		}
		return v
	default:
		return v
	}
}

// sumQuantities suma los cuatro contadores de usuarios. Un contador
// ausente o no numérico cuenta como 0.
func sumQuantities(t *models.RawTicket) int {
	total := 0
	for _, name := range []string{attrStudentCount, attrStaffCount, attrPublicCount, attrOtherCount} {
		v, ok := t.Attribute(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		total += n
	}
	return total
}

// extractCoordinator toma el texto entre el primer par de paréntesis,
// donde el atributo trae "Nombre Apellido (identificador)"
func extractCoordinator(v string) string {
	if match := regex.ParenContent.FindStringSubmatch(v); match != nil {
		return match[1]
	}
	return ""
}

func firstRune(v string) string {
	for _, r := range v {
		return string(r)
	}
	return ""
}

// parseSummary separa el texto libre del resumen de seguridad en notas,
// revisor y fecha. Cada regla se aplica de forma independiente y es
// best-effort: el texto no sigue una gramática estricta.
func parseSummary(v string) models.SummaryFields {
	var fields models.SummaryFields

	if idx := strings.Index(v, reviewedByMarker); idx >= 0 {
		fields.Notes = strings.TrimRight(v[:idx], "\r\n")
	}

	if idx := strings.Index(v, reviewedByPrefix); idx >= 0 {
		rest := v[idx+len(reviewedByPrefix):]
		if end := strings.IndexAny(rest, "\r\n"); end >= 0 {
			rest = rest[:end]
		}
		fields.ReviewedBy = compressReviewer(rest)
	}

	if match := regex.DateCompleted.FindStringSubmatch(v); match != nil {
		fields.DateCompleted = match[1]
	}

	return fields
}

// compressReviewer reduce una firma verbosa ("John Smith/IT-SA") a una
// forma con iniciales: los tramos que arrancan en minúscula se
// reemplazan por ".", se quita el sufijo literal "-SA" y las colas
// "X/departamento" quedan como "X."
func compressReviewer(v string) string {
	v = regex.LowercaseRun.ReplaceAllString(v, ".")
	v = strings.ReplaceAll(v, "-SA", "")
	v = regex.InitialSlash.ReplaceAllString(v, "$1.")
	return v
}
