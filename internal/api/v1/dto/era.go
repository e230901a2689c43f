package dto

// EraResponseDTO is one catalog entry returned by the era endpoints.
type EraResponseDTO struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartYear   int      `json:"start_year"`
	EndYear     int      `json:"end_year"`
	Celebrities []string `json:"celebrities"`
}
