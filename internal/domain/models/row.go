package models

import "time"

type (
	// NormalizedRow es la representación de ancho fijo de un ticket para la
	// planilla de salida. El orden de columnas lo define el sheet writer.
	NormalizedRow struct {
		Date            time.Time `json:"date"`
		Rush            string    `json:"rush"`
		ID              string    `json:"id"`
		Vendor          string    `json:"vendor"`
		Status          string    `json:"status"`
		Product         string    `json:"product"`
		Description     string    `json:"description"`
		IsRenewal       string    `json:"is_renewal"`
		SWType          string    `json:"sw_type"`
		InfoClass       string    `json:"info_class"`
		Quantity        int       `json:"quantity"`
		TechCoordinator string    `json:"tech_coordinator"`
		Requestor       string    `json:"requestor"`
		Risk            string    `json:"risk"`
		Summary         SummaryFields
	}

	// SummaryFields son los campos derivados del texto libre
	// "DoIT Security SME Summary"
	SummaryFields struct {
		DateCompleted string `json:"date_completed"`
		ReviewedBy    string `json:"reviewed_by"`
		Notes         string `json:"notes"`
	}
)
