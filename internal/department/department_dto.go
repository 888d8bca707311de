package department

type DepartmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
