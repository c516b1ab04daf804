//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strconv"

// StockSnapshot is a point-in-time record of stock on hand at a facility.
type StockSnapshot struct {
	ID          int64  `json:"id"`
	Facility    int64  `json:"facility"`
	Medicine    int64  `json:"medicine"`
	StockOnHand string `json:"stock_on_hand"`
	DaysOfStock int    `json:"days_of_stock"`
	RecordedAt  string `json:"recorded_at"`
}

// Quantity parses the decimal stock figure, treating malformed values as zero
// so a single bad row cannot poison a dashboard total.
func (s StockSnapshot) Quantity() float64 {
	v, err := strconv.ParseFloat(s.StockOnHand, 64)
	if err != nil {
		return 0
	}
	return v
}

// Forecast is a predicted demand figure for a facility/medicine pair.
type Forecast struct {
	ID                      int64  `json:"id"`
	Facility                int64  `json:"facility"`
	Medicine                int64  `json:"medicine"`
	ForecastDate            string `json:"forecast_date"`
	PredictedDemand         string `json:"predicted_demand"`
	ConfidenceIntervalLower string `json:"confidence_interval_lower"`
	ConfidenceIntervalUpper string `json:"confidence_interval_upper"`
}
