package dto

type MatchResponse struct {
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	JobTitle  string   `json:"job_title"`
	Company   string   `json:"company"`
	Score     float64  `json:"score"`
	Interests []string `json:"interests"`
}

type TopMatchesResponse struct {
	UserID     string          `json:"user_id"`
	TopMatches []MatchResponse `json:"top_matches"`
}
