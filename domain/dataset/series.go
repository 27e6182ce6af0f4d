package dataset

// Point is one bar/slice of a chart
type Point struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// AggregationResult is a chart-ready series, in first-seen category order
type AggregationResult struct {
	CategoryColumn string  `json:"category_column"`
	ValueColumn    string  `json:"value_column"`
	Series         []Point `json:"series"`
}
