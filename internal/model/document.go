package model

import (
	"time"

	"github.com/google/uuid"
)

type FillOrderParams struct {
	// Trimmed and written into the name_tech field.
	TechnicianName string
	// Quantity per product code; absent codes count as 0.
	Quantities map[string]int
	// Upper bound per product code; absent codes fall back to SentinelMax.
	Maxima map[string]int
}

// GeneratedOrderDocument describes one immutable output file. A new one is
// produced per generation; none is ever rewritten.
type GeneratedOrderDocument struct {
	ID            uuid.UUID
	Path          string
	Language      string
	MissingFields []string
	GeneratedAt   time.Time
}

// TemplateReport is the outcome of auditing one bundled template.
type TemplateReport struct {
	Template string
	Present  []string
	Missing  []string
	Err      error
}

func (r TemplateReport) OK() bool { return r.Err == nil && len(r.Missing) == 0 }
