// Package pkg provides the core libraries for LayoutLens room-layout validation.
//
// # Overview
//
// LayoutLens checks machine-generated room layouts before they are accepted.
// A room plan is an envelope (the walls of one room plus its doors and
// windows) and a list of placed elements. Each check produces a report of
// human-readable issues with numeric fix suggestions, meant to be handed back
// to whatever produced the plan so it can retry. The pkg directory is
// organized into three main areas:
//
//  1. [layout] and [geometry] - Input model and planar geometry
//  2. [validate] and [repair] - Envelope and plan rules, fix heuristics
//  3. [pipeline], [cache] and [store] - Orchestration and persistence
//
// # Architecture
//
// The typical data flow through LayoutLens:
//
//	RoomPlan JSON
//	     ↓
//	[layout] package (decode + structural checks)
//	     ↓
//	[validate] package (envelope rules, then element rules)
//	     ↓
//	[repair] package (push-into-room and separation suggestions)
//	     ↓
//	Report (text for the plan producer, JSON for machines)
//
// # Quick Start
//
// Validate a plan read from disk:
//
//	import (
//	    "github.com/AndySiamas/LayoutLens/pkg/layout"
//	    "github.com/AndySiamas/LayoutLens/pkg/validate"
//	)
//
//	plan, _ := layout.ReadPlanFile("plan.json")
//	report, err := validate.ValidatePlan(plan)
//	if err != nil {
//	    // structurally invalid input
//	}
//	if !report.OK() {
//	    fmt.Print(report.String())
//	}
//
// # Main Packages
//
// [layout] - RoomPlan, Envelope, Element and Footprint types, JSON reading and
// the structural checks that run before any geometry.
//
// [geometry] - Polygons, containment, intersection areas, inward offsets and
// the projection of an opening onto a wall.
//
// [validate] - The rule engine. [validate.Validator] is safe for concurrent
// use; tolerances live in [validate.Options].
//
// [repair] - Fix heuristics: the smallest move that brings an element inside
// the room, and the move that separates two overlapping elements.
//
// ## Infrastructure
//
// [pipeline] - Validation runs used by the CLI and the HTTP API. Adds report
// caching, run ids and persistence of rejected runs.
//
// [cache] - Report cache backends (file, Redis, null) with scoped keys.
//
// [store] - Rejected-run storage (directory per run, MongoDB, null).
//
// [observability] - Hooks for validation, repair, cache and HTTP events.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/validate/...        # Specific package
//	go test -run Example ./pkg/...    # Examples only
//
// Redis and MongoDB tests run only when LAYOUTLENS_TEST_REDIS_URL and
// LAYOUTLENS_TEST_MONGO_URI are set.
//
// [layout]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/layout
// [geometry]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/geometry
// [validate]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/validate
// [repair]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/repair
// [pipeline]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/cache
// [store]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/store
// [observability]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/observability
// [errors]: https://pkg.go.dev/github.com/AndySiamas/LayoutLens/pkg/errors
package pkg
