// Package exporter renders a time-bounded slice of transactions, with
// their related accounts and categories, into one of two documents: a
// delimited-text tabular file or a paginated report workbook.
//
// The pipeline is filter -> resolve -> format -> render, executed
// synchronously per call. A Service holds no mutable state between
// calls, so concurrent exports are independent and need no locking.
// The engine performs no file, network or store writes; the rendered
// bytes are handed back to the caller as a domain.Document.
//
// Example usage:
//
//	svc := exporter.NewService(logger, exporter.Options{})
//	doc, err := svc.Export(ctx, domain.ExportRequest{
//		Format: domain.FormatTabular,
//		Range:  domain.DateRange{From: from, To: to},
//	}, transactions, accounts, categories)
package exporter
