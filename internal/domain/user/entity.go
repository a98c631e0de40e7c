package user

type User struct {
	ID        string   `json:"id"`
	FullName  string   `json:"full_name"`
	Email     string   `json:"email,omitempty"`
	JobTitle  string   `json:"job_title,omitempty"`
	Company   string   `json:"company,omitempty"`
	Interests []string `json:"interests"`
}
