package models

const (
	RequestStatusActive   = "active"
	RequestStatusAnswered = "answered"
	RequestStatusArchived = "archived"
)

// IntercessionRequest is an untimed standing prayer item with a status
// lifecycle (active -> answered/archived). All timestamps are ISO-8601 text,
// matching the on-disk columns.
type IntercessionRequest struct {
	Request_ID    int64   `json:"id" db:"id" goqu:"skipinsert"`
	Title         string  `json:"title" db:"title"`
	Description   string  `json:"description" db:"description"`
	Request_Date  string  `json:"requestDate" db:"request_date"`
	Status        string  `json:"status" db:"status"`
	Answered_Date *string `json:"answeredDate" db:"answered_date"`
	Answer_Notes  *string `json:"answerNotes" db:"answer_notes"`
	Created_At    string  `json:"createdAt" db:"created_at"`
	Updated_At    string  `json:"updatedAt" db:"updated_at"`
}

type RequestCreate struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Request_Date  string  `json:"requestDate"` // empty means now
	Status        string  `json:"status"`      // empty means active
	Answered_Date *string `json:"answeredDate"`
	Answer_Notes  *string `json:"answerNotes"`
}

// RequestUpdate is a partial update: nil fields are left untouched. The
// store refreshes updated_at whenever at least one field is set.
type RequestUpdate struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Request_Date  *string `json:"requestDate"`
	Status        *string `json:"status"`
	Answered_Date *string `json:"answeredDate"`
	Answer_Notes  *string `json:"answerNotes"`
}
