package dtos

type JobRequest struct {
	Title        string `json:"title" binding:"required"`
	Department   string `json:"department"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"`
	SalaryRange  string `json:"salary_range"`
	Location     string `json:"location"`
}
