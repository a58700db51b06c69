package dto

// CreateAreaRequest carries a new organizational area.
type CreateAreaRequest struct {
	Code string `json:"codigo" binding:"required,areacode"`
	Name string `json:"nombre" binding:"required,max=255"`
}
