package domain

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Level    int    `json:"level"`
	ParentID *int   `json:"parentId,omitempty"`
}
