package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/elC0mpa/aws-logclass-doctor/model"
)

// WriteUsageCSV writes records to path, replacing any existing file
func WriteUsageCSV(path string, records []model.UsageRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, usageRow(r))
	}

	return writeCSV(path, UsageColumns, rows)
}

func usageRow(r model.UsageRecord) []string {
	return []string{
		r.LogGroupName,
		strconv.Itoa(r.GetEventsCount),
		strconv.Itoa(r.FilterEventsCount),
		strconv.FormatBool(r.HasSubscriptionFilter),
		strconv.FormatBool(r.HasMetricFilter),
		formatFloat(r.TotalIncomingBytes),
	}
}

// ReadUsageCSV reads a usage report written by WriteUsageCSV
func ReadUsageCSV(path string) ([]model.UsageRecord, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	index, err := columnIndex(header, UsageColumns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([]model.UsageRecord, 0, len(rows))
	for line, row := range rows {
		record, err := parseUsageRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line+2, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseUsageRow(row []string, index map[string]int) (model.UsageRecord, error) {
	getEvents, err := strconv.Atoi(row[index[ColumnGetLogEventsCount]])
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("parsing %s: %w", ColumnGetLogEventsCount, err)
	}

	filterEvents, err := strconv.Atoi(row[index[ColumnFilterLogEventsCnt]])
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("parsing %s: %w", ColumnFilterLogEventsCnt, err)
	}

	subscription, err := strconv.ParseBool(row[index[ColumnSubscriptionFilters]])
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("parsing %s: %w", ColumnSubscriptionFilters, err)
	}

	metric, err := strconv.ParseBool(row[index[ColumnMetricFilters]])
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("parsing %s: %w", ColumnMetricFilters, err)
	}

	incoming, err := parseIncomingBytes(row[index[ColumnIncomingBytes]])
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("parsing %s: %w", ColumnIncomingBytes, err)
	}

	return model.UsageRecord{
		LogGroupName:          row[index[ColumnLogGroupName]],
		GetEventsCount:        getEvents,
		FilterEventsCount:     filterEvents,
		HasSubscriptionFilter: subscription,
		HasMetricFilter:       metric,
		TotalIncomingBytes:    incoming,
	}, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

func readCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("reading %s: missing header row", path)
	}

	return records[0], records[1:], nil
}

func columnIndex(header []string, required ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, column := range header {
		if _, ok := index[column]; !ok {
			index[column] = i
		}
	}

	for _, column := range required {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}

	return index, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
