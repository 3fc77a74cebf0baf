package dto

// PageRequest paginación 1-based para listados.
type PageRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/PageSize no vienen.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
}

// Offset traduce la página 1-based al offset del almacén.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageMeta metadatos de página en respuestas.
type PageMeta struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPageMeta calcula totalPages = ceil(total/pageSize) y los flags de navegación.
func NewPageMeta(total, page, pageSize int) PageMeta {
	totalPages := (total + pageSize - 1) / pageSize
	return PageMeta{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// InventoryID acompaña los conflictos de inventario duplicado con el ID
	// de la fila ya existente.
	InventoryID string `json:"inventory_id,omitempty"`
}
