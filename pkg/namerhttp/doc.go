// Package namerhttp exposes a namer.Namer as a small JSON HTTP API built on
// go-chi. It only computes names: uploaded files are inspected for their
// filename and discarded.
//
//	n := namer.New(namer.DefaultConfig())
//	http.ListenAndServe(":8080", namerhttp.Router(n, log))
//
//	POST /filenames {"name":"Report 2024","extension":"pdf","strategy":"slug"}
//	-> 200 {"filename":"report-2024.pdf"}
//
// ErrInvalidOption maps to 422 Unprocessable Entity, malformed bodies to 400.
package namerhttp
