package validate

import (
	"fmt"
	"strings"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
)

// Kind names what a report was produced for.
type Kind string

const (
	KindEnvelope Kind = "envelope"
	KindPlan     Kind = "plan"
)

// IssueCode classifies an issue for machine consumers. The message text is
// what gets replayed to the plan producer.
type IssueCode string

const (
	IssueInvalidBoundary   IssueCode = "invalid_boundary"
	IssueNonPositiveArea   IssueCode = "non_positive_area"
	IssueOpeningEdgeRange  IssueCode = "opening_edge_out_of_range"
	IssueOpeningZeroEdge   IssueCode = "opening_zero_length_edge"
	IssueOpeningTooWide    IssueCode = "opening_too_wide"
	IssueOpeningNearCorner IssueCode = "opening_near_corner"
	IssueDuplicateIDs      IssueCode = "duplicate_ids"
	IssueWallOutside       IssueCode = "wall_outside"
	IssueWallTooFar        IssueCode = "wall_too_far"
	IssueOnOutside         IssueCode = "on_outside"
	IssueFloorOutside      IssueCode = "floor_outside"
	IssueFloorCannotFit    IssueCode = "floor_cannot_fit"
	IssueFloorOverlap      IssueCode = "floor_overlap"
	IssueOverlapLimit      IssueCode = "overlap_limit"
	IssueNearDuplicate     IssueCode = "near_duplicate"
)

// Suggestion is a numeric fix: move ElementID by (DX, DY) so its center
// lands on (NewX, NewY).
type Suggestion struct {
	ElementID string  `json:"element_id"`
	DX        float64 `json:"dx"`
	DY        float64 `json:"dy"`
	NewX      float64 `json:"new_x"`
	NewY      float64 `json:"new_y"`
}

// Issue is one rule violation.
type Issue struct {
	Code       IssueCode   `json:"code"`
	Elements   []string    `json:"elements,omitempty"`
	Message    string      `json:"message"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

// Report is the ordered outcome of one validation call. An empty report means
// the input was accepted.
type Report struct {
	Kind   Kind    `json:"kind"`
	Issues []Issue `json:"issues"`
}

// Report headers.
const (
	planHeader     = "RoomPlan validation failed. Fix ALL issues below and retry.\nReminder: keep RoomPlan.space unchanged\n"
	envelopeHeader = "Space validation failed. Fix ALL issues below and retry.\n"
)

// OK reports whether the input was accepted.
func (r *Report) OK() bool { return r == nil || len(r.Issues) == 0 }

// Len returns the number of issues.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Issues)
}

// Messages returns the issue texts in order.
func (r *Report) Messages() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.Issues))
	for i, is := range r.Issues {
		out[i] = is.Message
	}
	return out
}

// String renders the numbered report. It is empty for an accepted input.
func (r *Report) String() string {
	if r.OK() {
		return ""
	}
	var b strings.Builder
	if r.Kind == KindPlan {
		b.WriteString(planHeader)
	} else {
		b.WriteString(envelopeHeader)
	}
	for i, is := range r.Issues {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d) %s", i+1, is.Message)
	}
	return b.String()
}

// Err returns nil for an accepted input and otherwise an error carrying
// [errors.ErrCodeValidationFailed] whose message is the full report.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return errors.New(errors.ErrCodeValidationFailed, "%s", r.String())
}

func (r *Report) add(is Issue) {
	r.Issues = append(r.Issues, is)
}
