package responses

type DayCheck struct {
	Date      string `json:"date"`
	Blockable bool   `json:"blockable"`
	Reason    string `json:"reason,omitempty"`
}
