// Package playground implements the playground state container.
//
// The container owns the input files (OpenAPI documents, templates, prettier
// configurations), the generated output files, the active tabs, the file
// form and the options drawer. Callers read an immutable [Snapshot] and
// change state only by sending one of the closed set of [Event] values:
//
//	m := playground.New()
//	if err := m.Send(ctx, playground.AddFile{}); err != nil {
//		return err
//	}
//	err := m.Send(ctx, playground.SubmitFileForm{File: playground.File{Name: "orders.yaml"}})
//
// Code generation is not part of this package; [Machine] hands the selected
// inputs to a [Generator] on [Save].
package playground
