package role

type RoleResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
