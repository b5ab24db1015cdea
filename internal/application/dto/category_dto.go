package dto

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// RenameCategoryRequest body para PUT /api/categories/rename.
type RenameCategoryRequest struct {
	OldName string `json:"old_name" validate:"required"`
	NewName string `json:"new_name" validate:"required,min=1,max=100"`
}

// CategoryListResponse lista ordenada de categorías.
type CategoryListResponse struct {
	Items []string `json:"items"`
}
