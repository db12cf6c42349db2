package domain

import (
	"time"
)

// ExportFormat selects the document type an export produces.
type ExportFormat string

const (
	FormatTabular ExportFormat = "tabular"
	FormatReport  ExportFormat = "report"
)

// Valid reports whether f is a supported export format.
func (f ExportFormat) Valid() bool {
	return f == FormatTabular || f == FormatReport
}

// Media types of the documents the export engine can produce.
const (
	MediaTypeCSV  = "text/csv; charset=utf-8"
	MediaTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// UnknownLabel is the placeholder rendered for dangling references and
// unrecognized enum values.
const UnknownLabel = "Unknown"

// DateRange is an inclusive calendar-date interval. A range whose From
// lies after To is empty, not invalid: filtering with it yields no
// records instead of an error.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether ts falls inside the range. Both bounds are
// inclusive and the comparison is date-only: time-of-day is normalized
// away on the value and on both bounds.
func (r DateRange) Contains(ts time.Time) bool {
	day := toDate(ts)
	return !day.Before(toDate(r.From)) && !day.After(toDate(r.To))
}

// Empty reports whether the range can contain no dates at all.
func (r DateRange) Empty() bool {
	return toDate(r.From).After(toDate(r.To))
}

func toDate(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ExportRequest describes one export invocation. It is constructed per
// call and discarded once rendering completes or fails; nothing about
// it is persisted.
type ExportRequest struct {
	Format ExportFormat `json:"format" validate:"required,oneof=tabular report"`
	Range  DateRange    `json:"range"`
}

// Document is the output boundary value: the rendered bytes plus the
// media type and suggested file name the caller should use when saving
// or serving them. Writing the document anywhere is the caller's job.
type Document struct {
	Data      []byte
	MediaType string
	Filename  string
}
