package models

// Session type values offered by the app. The store accepts any text here;
// the enumeration is a UI convention, not a constraint.
const (
	SessionTypeDaily   = "DAILY"
	SessionTypeWeekend = "WEEKEND"
	SessionTypeFasting = "FASTING"
	SessionTypeOther   = "OTHER"
)

// Session is one timed prayer record. End_Time and Duration are nil while
// the session is still running; Duration is always End_Time - Start_Time in
// milliseconds once the session has ended.
type Session struct {
	Session_ID   int64  `json:"id" db:"id" goqu:"skipinsert"`
	Title        string `json:"title" db:"title"`
	Session_Type string `json:"type" db:"type"`
	Start_Time   int64  `json:"startTime" db:"startTime"`
	End_Time     *int64 `json:"endTime" db:"endTime"`
	Duration     *int64 `json:"duration" db:"duration"`
	Notes        string `json:"notes" db:"notes"`
}

// Active reports whether the session has no recorded end time.
func (s Session) Active() bool {
	return s.End_Time == nil
}

type SessionCreate struct {
	Title        string `json:"title"`
	Session_Type string `json:"type"`
	Start_Time   int64  `json:"startTime"`
	Notes        string `json:"notes"`
}
