//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// AlertStatus represents the lifecycle state of a supply alert.
type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "open"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// Alert is a supply-chain warning raised server-side for a facility/medicine
// pair (stock-outs, expiries). Read-only in this client.
type Alert struct {
	ID          int64  `json:"id"`
	Facility    int64  `json:"facility"`
	Medicine    int64  `json:"medicine"`
	AlertType   string `json:"alert_type"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	TriggeredAt string `json:"triggered_at"`
}

// IsOpen reports whether the alert still needs attention.
func (a Alert) IsOpen() bool {
	return a.Status == string(AlertStatusOpen)
}
