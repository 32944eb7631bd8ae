package model

// DateInterval represents a time period for cost analysis
type DateInterval struct {
	Start *string
	End   *string
}

// ServiceCost represents the actual billed cost of a single AWS service
type ServiceCost struct {
	Name   string
	Amount float64
	Unit   string
	DateInterval
}

// CostRecord is one row of the cost analysis. Values keeps every cell of the
// usage report exactly as it was read.
type CostRecord struct {
	LogGroupName       string
	Values             map[string]string
	TotalIncomingBytes float64
	StandardCost       float64
	ReducedCost        float64
	ReductionPercent   float64
}

// Value returns the original cell for column, or "" when absent
func (r CostRecord) Value(column string) string {
	return r.Values[column]
}

// Savings is the monthly difference between both log classes
func (r CostRecord) Savings() float64 {
	return r.StandardCost - r.ReducedCost
}

// CostReport is the output of the cost stage
type CostReport struct {
	Path    string
	Columns []string
	Records []CostRecord
}

// TotalStandardCost sums the Standard log class cost of every record
func (c *CostReport) TotalStandardCost() float64 {
	var total float64
	for _, r := range c.Records {
		total += r.StandardCost
	}
	return total
}

// TotalReducedCost sums the Infrequent Access log class cost of every record
func (c *CostReport) TotalReducedCost() float64 {
	var total float64
	for _, r := range c.Records {
		total += r.ReducedCost
	}
	return total
}

// TotalIncomingBytes sums the ingested bytes of every record
func (c *CostReport) TotalIncomingBytes() float64 {
	var total float64
	for _, r := range c.Records {
		total += r.TotalIncomingBytes
	}
	return total
}
