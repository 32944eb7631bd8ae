package report

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/rs/zerolog"
)

const bytesPerGB = 1 << 30

// NewProjector returns a cost projector. delay is waited before the usage
// report is read; zero or less skips the wait.
func NewProjector(delay time.Duration, pricing Pricing, logger zerolog.Logger) *projector {
	return &projector{
		delay:   delay,
		pricing: pricing,
		logger:  logger.With().Str("service", "projector").Logger(),
	}
}

// Project reads the usage report at usage.Path, prices every row under both
// log classes and writes the result to outputPath. The input file is only read.
func (p *projector) Project(ctx context.Context, usage model.UsageReport, outputPath string) (*model.CostReport, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	header, rows, err := readCSV(usage.Path)
	if err != nil {
		return nil, err
	}

	index, err := columnIndex(header, ColumnIncomingBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", usage.Path, err)
	}
	nameColumn, hasName := index[ColumnLogGroupName]

	columns := make([]string, 0, len(header)+len(CostColumns))
	columns = append(columns, header...)
	columns = append(columns, CostColumns...)

	report := &model.CostReport{
		Path:    outputPath,
		Columns: columns,
		Records: make([]model.CostRecord, 0, len(rows)),
	}
	out := make([][]string, 0, len(rows))

	for line, row := range rows {
		incoming, err := parseIncomingBytes(row[index[ColumnIncomingBytes]])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: parsing %s: %w", usage.Path, line+2, ColumnIncomingBytes, err)
		}

		record := p.price(incoming)
		record.Values = make(map[string]string, len(header))
		for i, column := range header {
			if _, ok := record.Values[column]; !ok {
				record.Values[column] = row[i]
			}
		}
		if hasName {
			record.LogGroupName = row[nameColumn]
		}
		report.Records = append(report.Records, record)

		cells := make([]string, 0, len(columns))
		cells = append(cells, row...)
		cells = append(cells,
			formatFloat(record.StandardCost),
			formatFloat(record.ReducedCost),
			formatFloat(record.ReductionPercent),
		)
		out = append(out, cells)
	}

	if err := writeCSV(outputPath, columns, out); err != nil {
		return nil, err
	}

	p.logger.Info().Str("file", outputPath).Int("rows", len(out)).Msg("wrote cost analysis")

	return report, nil
}

// parseIncomingBytes accepts any finite, non-negative decimal
func parseIncomingBytes(cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("invalid byte count %q", cell)
	}
	return v, nil
}

// price computes both log class costs for incoming bytes. The reduction is 0
// when there is nothing to reduce.
func (p *projector) price(incoming float64) model.CostRecord {
	gb := incoming / bytesPerGB
	standard := gb * p.pricing.StandardPerGB
	reduced := gb * p.pricing.ReducedPerGB

	var reduction float64
	if standard != 0 {
		reduction = (standard - reduced) / standard * 100
	}

	return model.CostRecord{
		TotalIncomingBytes: incoming,
		StandardCost:       standard,
		ReducedCost:        reduced,
		ReductionPercent:   reduction,
	}
}

func (p *projector) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
