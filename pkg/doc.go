// Package pkg provides the core libraries for Wireform wireframe layout.
//
// # Overview
//
// Wireform turns declarative wireframe documents into absolute geometry: it
// sizes a canvas for a set of screens and computes pixel bounds for every
// component using flexbox-style distribution. The pkg directory is organized
// into four main areas:
//
//  1. [wireframe] - Domain logic (component trees, flex distribution, viewport sizing)
//  2. [diagram] - Serialization types for documents and layout results
//  3. [pipeline] - Orchestration (decode → layout) with caching
//  4. [cache], [config], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through Wireform:
//
//	Document JSON
//	     |
//	diagram.Document (validate, normalize)
//	     |
//	wireframe.Frame (canvas dimensions, per-screen content areas)
//	     |
//	wireframe.Distribute (two-pass flex distribution, recursive)
//	     |
//	diagram.Result (node ID -> canvas rectangle)
//
// Both the CLI and the HTTP server drive this flow through [pipeline.Runner],
// which adds result caching keyed on a content hash of the normalized
// document.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/wireframe/...  # Specific package
//
// [wireframe]: https://pkg.go.dev/github.com/ben-mad-jlp/wireform/pkg/wireframe
// [diagram]: https://pkg.go.dev/github.com/ben-mad-jlp/wireform/pkg/diagram
// [pipeline]: https://pkg.go.dev/github.com/ben-mad-jlp/wireform/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/ben-mad-jlp/wireform/pkg/cache
// [config]: https://pkg.go.dev/github.com/ben-mad-jlp/wireform/pkg/config
// [errors]: https://pkg.go.dev/github.com/ben-mad-jlp/wireform/pkg/errors
// [observability]: https://pkg.go.dev/github.com/ben-mad-jlp/wireform/pkg/observability
package pkg
