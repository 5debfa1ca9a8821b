// Package batch evaluates CSV files of allometric predictions and inversions
// against a frozen registry.
//
// Input columns: species,independent,dependent,value,direction where
// direction is "forward" (predict) or "inverse" (invert). The output echoes
// every input column and appends result,error. Row order is preserved and a
// failing row never aborts the run.
package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/njchilds90/allometry"
)

// Header is the required input header.
var Header = []string{"species", "independent", "dependent", "value", "direction"}

// Direction selects predict or invert for a row.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// ParseDirection accepts "forward" and "inverse"; empty means forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward":
		return Forward, nil
	case "inverse":
		return Inverse, nil
	}
	return Forward, fmt.Errorf("unknown direction %q (want forward or inverse)", s)
}

// Row is one parsed input line. ParseErr is set when the line itself is
// unusable; such rows are reported but not evaluated.
type Row struct {
	Line        int
	Species     string
	Independent string
	Dependent   string
	Value       float64
	Direction   Direction
	Fields      []string
	ParseErr    error
}

// Result pairs a row with its outcome.
type Result struct {
	Row
	Output float64
	Err    error
}

// Summary counts rows processed by Run.
type Summary struct {
	Rows   int
	Failed int
}

// Runner evaluates rows concurrently.
type Runner struct {
	registry *allometry.Registry
	workers  int
	logger   *zap.Logger
}

// NewRunner builds a runner over a frozen registry. workers <= 0 means 1.
func NewRunner(reg *allometry.Registry, workers int, logger *zap.Logger) (*Runner, error) {
	if !reg.Frozen() {
		return nil, errors.New("batch: registry must be frozen")
	}
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: reg, workers: workers, logger: logger}, nil
}

// Run reads rows from in, evaluates them and writes the annotated CSV to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	rows, err := ReadRows(in)
	if err != nil {
		return Summary{}, err
	}
	results, err := r.Evaluate(ctx, rows)
	if err != nil {
		return Summary{}, err
	}
	if err := WriteResults(out, results); err != nil {
		return Summary{}, err
	}

	s := Summary{Rows: len(results)}
	for _, res := range results {
		if res.Err != nil {
			s.Failed++
		}
	}
	r.logger.Info("batch complete",
		zap.Int("rows", s.Rows),
		zap.Int("failed", s.Failed),
		zap.Int("workers", r.workers))
	return s, nil
}

// ReadRows parses the input CSV. A missing or wrong header is fatal;
// malformed values are recorded on the row.
func ReadRows(in io.Reader) ([]Row, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = len(Header)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("batch: empty input, expected header")
	}
	if err != nil {
		return nil, fmt.Errorf("batch: reading header: %w", err)
	}
	for i, name := range Header {
		if strings.ToLower(strings.TrimSpace(head[i])) != name {
			return nil, fmt.Errorf("batch: header column %d is %q, want %q", i+1, head[i], name)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("batch: line %d: %w", line, err)
		}
		rows = append(rows, parseRow(line, rec))
	}
}

func parseRow(line int, rec []string) Row {
	row := Row{
		Line:        line,
		Species:     strings.TrimSpace(rec[0]),
		Independent: strings.TrimSpace(rec[1]),
		Dependent:   strings.TrimSpace(rec[2]),
		Fields:      rec,
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		row.ParseErr = fmt.Errorf("invalid value %q", rec[3])
		return row
	}
	row.Value = v
	row.Direction, row.ParseErr = ParseDirection(rec[4])
	return row
}

// Evaluate runs every row, at most r.workers at a time. Results are indexed
// like rows. Only context cancellation stops the run early.
func (r *Runner) Evaluate(ctx context.Context, rows []Row) ([]Result, error) {
	results := make([]Result, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range rows {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.evaluate(rows[i])
			if results[i].Err != nil {
				r.logger.Debug("batch row failed",
					zap.Int("line", rows[i].Line),
					zap.String("species", rows[i].Species),
					zap.Error(results[i].Err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	return results, nil
}

func (r *Runner) evaluate(row Row) Result {
	res := Result{Row: row}
	if row.ParseErr != nil {
		res.Err = row.ParseErr
		return res
	}
	if row.Direction == Inverse {
		res.Output, res.Err = r.registry.Invert(row.Species, row.Independent, row.Dependent, row.Value)
	} else {
		res.Output, res.Err = r.registry.Predict(row.Species, row.Independent, row.Dependent, row.Value)
	}
	return res
}

// WriteResults writes the header plus result,error and one line per result.
func WriteResults(out io.Writer, results []Result) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(append(append([]string{}, Header...), "result", "error")); err != nil {
		return fmt.Errorf("batch: writing header: %w", err)
	}
	for _, res := range results {
		rec := make([]string, 0, len(Header)+2)
		rec = append(rec, res.Fields...)
		if res.Err != nil {
			rec = append(rec, "", res.Err.Error())
		} else {
			rec = append(rec, strconv.FormatFloat(res.Output, 'g', -1, 64), "")
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("batch: writing line %d: %w", res.Line, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
