package domain

// Curso represents a course record.
type Curso struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome" validate:"required,max=150"`
	Descricao      string `json:"descricao" validate:"max=500"`
	URL            string `json:"url" validate:"required,url"`
	Canal          string `json:"canal" validate:"required,max=100"`
	CargaHoraria   int    `json:"cargaHoraria" validate:"min=1"`
	DataPublicacao Date   `json:"dataPublicacao" validate:"required"`
}
