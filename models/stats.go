package models

type SessionStats struct {
	Session_Count int64 `json:"count" db:"count"`
	Total_Minutes int64 `json:"totalMinutes" db:"total_minutes"`
}

type TypeStats struct {
	Session_Type  string `json:"type" db:"type"`
	Session_Count int64  `json:"count" db:"count"`
	Total_Minutes int64  `json:"totalMinutes" db:"total_minutes"`
}

type MonthlyStats struct {
	Month         string `json:"month" db:"month"`
	Total_Minutes int64  `json:"totalMinutes" db:"total_minutes"`
}

type DailyStats struct {
	Date    string `json:"date"`
	Minutes int64  `json:"minutes"`
}
