// Package trace reads and writes recorded pointer sessions as CSV and
// replays them through a polymouse pipeline.
//
// Input rows hold one frame each:
//
//	dt,gaze_x,gaze_y,mouse_x,mouse_y,head_dx,head_dy
//
// A leading header row is optional. Blank lines and lines starting with '#'
// are skipped.
package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	polymouse "github.com/tphakala/go-polymouse"
)

// Column layout
const (
	inputColumns  = 7
	outputColumns = 9

	// Cursor columns are integers
	mouseXColumn = 3
	mouseYColumn = 4
)

// ErrMalformedRow indicates a trace row that cannot be parsed.
var ErrMalformedRow = errors.New("malformed trace row")

// InputHeader is the header row written and accepted for input traces.
var InputHeader = []string{"dt", "gaze_x", "gaze_y", "mouse_x", "mouse_y", "head_dx", "head_dy"}

// OutputHeader is the header row of replay results.
var OutputHeader = []string{"frame", "dt", "out_x", "out_y", "state", "gaze_fx", "gaze_fy", "fix_x", "fix_y"}

// Reader decodes frames from a CSV trace.
type Reader struct {
	csv  *csv.Reader
	line int
}

// NewReader creates a trace reader.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{csv: cr}
}

// Read returns the next frame, or io.EOF at the end of the trace.
func (r *Reader) Read() (polymouse.Frame, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return polymouse.Frame{}, io.EOF
			}
			return polymouse.Frame{}, fmt.Errorf("failed to read trace: %w", err)
		}
		r.line, _ = r.csv.FieldPos(0)

		if isHeader(record) {
			continue
		}
		return parseFrame(record, r.line)
	}
}

// ReadAll decodes every remaining frame.
func ReadAll(r io.Reader) ([]polymouse.Frame, error) {
	tr := NewReader(r)
	var frames []polymouse.Frame
	for {
		f, err := tr.Read()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), InputHeader[0])
}

func parseFrame(record []string, line int) (polymouse.Frame, error) {
	if len(record) != inputColumns {
		return polymouse.Frame{}, fmt.Errorf("%w: line %d: expected %d fields, got %d",
			ErrMalformedRow, line, inputColumns, len(record))
	}

	var vals [inputColumns]float64
	var mouse [2]int32
	for i, field := range record {
		field = strings.TrimSpace(field)
		if i == mouseXColumn || i == mouseYColumn {
			v, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				return polymouse.Frame{}, fmt.Errorf("%w: line %d: field %s: %v",
					ErrMalformedRow, line, InputHeader[i], err)
			}
			mouse[i-mouseXColumn] = int32(v)
			continue
		}
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return polymouse.Frame{}, fmt.Errorf("%w: line %d: field %s: %v",
				ErrMalformedRow, line, InputHeader[i], err)
		}
		vals[i] = v
	}

	return polymouse.Frame{
		DT:        float32(vals[0]),
		Gaze:      polymouse.V2(float32(vals[1]), float32(vals[2])),
		Mouse:     polymouse.IntVec2{X: mouse[0], Y: mouse[1]},
		HeadDelta: polymouse.V2(float32(vals[5]), float32(vals[6])),
	}, nil
}

// Writer encodes replay results as CSV.
type Writer struct {
	csv    *csv.Writer
	header bool
	row    []string
}

// NewWriter creates a result writer. The header row is written with the
// first record.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		csv: csv.NewWriter(w),
		row: make([]string, outputColumns),
	}
}

// Write encodes one replayed frame.
func (w *Writer) Write(rec Record) error {
	if !w.header {
		if err := w.csv.Write(OutputHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		w.header = true
	}

	out := rec.Output
	w.row[0] = strconv.Itoa(rec.Index)
	w.row[1] = formatFloat(rec.Frame.DT)
	w.row[2] = strconv.FormatInt(int64(out.Mouse.X), 10)
	w.row[3] = strconv.FormatInt(int64(out.Mouse.Y), 10)
	w.row[4] = out.State.String()
	w.row[5] = formatFloat(out.FilteredGaze.X)
	w.row[6] = formatFloat(out.FilteredGaze.Y)
	w.row[7] = formatFloat(out.FixationPoint.X)
	w.row[8] = formatFloat(out.FixationPoint.Y)

	if err := w.csv.Write(w.row); err != nil {
		return fmt.Errorf("failed to write frame %d: %w", rec.Index, err)
	}
	return nil
}

// Flush writes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// WriteFrames encodes frames as an input trace.
func WriteFrames(w io.Writer, frames []polymouse.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(InputHeader); err != nil {
		return err
	}
	row := make([]string, inputColumns)
	for _, f := range frames {
		row[0] = formatFloat(f.DT)
		row[1] = formatFloat(f.Gaze.X)
		row[2] = formatFloat(f.Gaze.Y)
		row[3] = strconv.FormatInt(int64(f.Mouse.X), 10)
		row[4] = strconv.FormatInt(int64(f.Mouse.Y), 10)
		row[5] = formatFloat(f.HeadDelta.X)
		row[6] = formatFloat(f.HeadDelta.Y)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
