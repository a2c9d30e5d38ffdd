package dto

type GlobalStatsResponse struct {
	TotalRead          int64 `json:"total_read"`
	TotalReadLast7Days int64 `json:"total_read_last_7_days"`
}

type PersonalStatsResponse struct {
	UserRead      int64 `json:"user_read"`
	UserReadToday int64 `json:"user_read_today"`
	UserReadYear  int64 `json:"user_read_year"`
}
