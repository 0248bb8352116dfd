package models

// Caracteristica es una entrada de la ficha técnica del equipo.
type Caracteristica struct {
	Nombre string `json:"nombre"`
	Valor  string `json:"valor"`
}

// PlanItem es una actividad de un plan de mantenimiento (preventivo o
// correctivo) asociado al equipo.
type PlanItem struct {
	Actividad  string `json:"actividad"`
	Frecuencia string `json:"frecuencia,omitempty"`
	Fecha      string `json:"fecha,omitempty"`
}

type Equipo struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	Nombre             string `json:"nombre"`
	Descripcion        string `json:"descripcion"`
	TipoDispositivo    string `json:"tipoDispositivo"`
	ActivoEnInventario bool   `json:"activoEnInventario"`
	Ubicacion          string `json:"ubicacion"`
	NumInventario      string `json:"numInventario" gorm:"index"`
	NumSerieEquipo     string `json:"numSerieEquipo"`
	NivelRiesgo        string `json:"nivelRiesgo"`
	NomAplicada        string `json:"nomAplicada"`
	Img                string `json:"img"`

	// Atributos estructurados; se guardan serializados como JSON en una
	// sola columna cada uno.
	Caracteristicas []Caracteristica `json:"caracteristicas" gorm:"serializer:json"`
	MantPreventivo  []PlanItem       `json:"mantPreventivo" gorm:"serializer:json"`
	MantCorrectivo  []PlanItem       `json:"mantCorrectivo" gorm:"serializer:json"`

	// Procedencia: quién lo agregó y quién lo editó por última vez.
	UsuarioID         *uint  `json:"usuario_id"`
	AgregadoPor       string `json:"agregadoPor"`
	FechaAgregado     string `json:"fechaAgregado"`
	EditadoPor        string `json:"editadoPor"`
	FechaModificacion string `json:"fechaModificacion"`
}

func (Equipo) TableName() string { return "equipos_biomedicos" }

// Normalizar garantiza que los atributos estructurados nunca sean nil:
// una columna NULL se lee como lista vacía.
func (e *Equipo) Normalizar() {
	if e.Caracteristicas == nil {
		e.Caracteristicas = []Caracteristica{}
	}
	if e.MantPreventivo == nil {
		e.MantPreventivo = []PlanItem{}
	}
	if e.MantCorrectivo == nil {
		e.MantCorrectivo = []PlanItem{}
	}
}
