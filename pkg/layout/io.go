package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
)

// =============================================================================
// Plan Serialization API
// =============================================================================

// MarshalPlan converts a plan to indented JSON bytes.
func MarshalPlan(p *Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlanFile writes a plan to a JSON file.
// The file is created with 0644 permissions.
func WritePlanFile(p *Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(p, f)
}

// WritePlan writes a plan as JSON to an io.Writer.
func WritePlan(p *Plan, w io.Writer) error {
	return writeJSON(p, w)
}

// ReadPlanFile reads a JSON file and returns the decoded plan.
func ReadPlanFile(path string) (*Plan, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPlan(f)
}

// ReadPlan decodes a JSON plan from an io.Reader.
// Decoding failures are reported with [errors.ErrCodeInvalidPlan].
func ReadPlan(r io.Reader) (*Plan, error) {
	var p Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, err, "decode plan")
	}
	return &p, nil
}

// =============================================================================
// Envelope Serialization API
// =============================================================================

// MarshalEnvelope converts an envelope to indented JSON bytes.
func MarshalEnvelope(e *Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(e, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteEnvelope writes an envelope as JSON to an io.Writer.
func WriteEnvelope(e *Envelope, w io.Writer) error {
	return writeJSON(e, w)
}

// ReadEnvelopeFile reads a JSON file and returns the decoded envelope.
func ReadEnvelopeFile(path string) (*Envelope, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEnvelope(f)
}

// ReadEnvelope decodes a JSON envelope from an io.Reader.
// Decoding failures are reported with [errors.ErrCodeInvalidEnvelope].
func ReadEnvelope(r io.Reader) (*Envelope, error) {
	var e Envelope
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEnvelope, err, "decode envelope")
	}
	return &e, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
