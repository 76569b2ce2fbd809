package validate_test

import (
	"fmt"

	"github.com/AndySiamas/LayoutLens/pkg/layout"
	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

func ExampleValidateEnvelope() {
	env := &layout.Envelope{
		Boundary: []layout.Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}},
		Height:   2.7,
		Openings: []layout.Opening{
			{Kind: layout.OpeningDoor, EdgeIndex: 0, Center: 0.5, Width: 4.0},
		},
	}

	report, err := validate.ValidateEnvelope(env)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(report)
	// Output:
	// Space validation failed. Fix ALL issues below and retry.
	// 1) Opening #1 (door) width=4.00 is too large for edge_index=0 (edge length ≈ 4.00). Reduce width or choose a longer edge.
}

func ExampleValidator_ValidatePlan() {
	plan := &layout.Plan{
		Space: layout.Envelope{
			Boundary: []layout.Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}},
			Height:   2.7,
		},
		Elements: []layout.Element{
			{ID: "chair_01", Label: "Chair", Transform: layout.Transform{X: 1, Y: 1}, Footprint: layout.Rect{Width: 1, Depth: 1}},
			{ID: "table_01", Label: "Table", Transform: layout.Transform{X: 1.5, Y: 1}, Footprint: layout.Rect{Width: 1, Depth: 1}},
		},
	}

	v := validate.New(validate.DefaultOptions())
	report, err := v.ValidatePlan(plan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, is := range report.Issues {
		fmt.Println(is.Code, is.Suggestion.ElementID, fmt.Sprintf("%.2f", is.Suggestion.DX))
	}
	// Output:
	// floor_overlap table_01 0.60
}
