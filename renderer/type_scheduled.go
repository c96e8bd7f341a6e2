package renderer

import "github.com/SA-Nathan-SOLVY/taxlot"

// ScheduleD is a struct to represent the Schedule D data in json.
type ScheduleD struct {
	// Year is the tax year, zero when unknown.
	Year      int                  `json:"year,omitempty"`
	ShortTerm taxlot.ScheduleDLine `json:"shortTerm"`
	LongTerm  taxlot.ScheduleDLine `json:"longTerm"`
	Net       taxlot.Money         `json:"net"`
}

// NewScheduleD creates a new ScheduleD for the given tax year.
func NewScheduleD(year int, d taxlot.ScheduleD) *ScheduleD {
	return &ScheduleD{
		Year:      year,
		ShortTerm: d.ShortTerm,
		LongTerm:  d.LongTerm,
		Net:       d.NetGainLoss,
	}
}
