package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	TipoPreventivo = "PREVENTIVO"
	TipoCorrectivo = "CORRECTIVO"
	TipoPredictivo = "PREDICTIVO"

	EstadoProgramado = "PROGRAMADO"
	EstadoFinalizado = "FINALIZADO"
)

// FormatoFecha es la forma canónica de almacenamiento de fechas.
const FormatoFecha = "2006-01-02 15:04:05"

var TiposValidos = map[string]bool{
	TipoPreventivo: true,
	TipoCorrectivo: true,
	TipoPredictivo: true,
}

var EstadosValidos = map[string]bool{
	EstadoProgramado: true,
	EstadoFinalizado: true,
}

type Mantenimiento struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	EquipoID uint `json:"equipo_id" gorm:"index"`

	// Llave de idempotencia generada por el cliente; un reintento del
	// front con el mismo uid choca con el índice único.
	ClientUID *string `json:"client_uid" gorm:"uniqueIndex:uq_mantenimientos_client_uid;size:64"`

	Tipo            string  `json:"tipo" gorm:"size:16"`
	Estado          string  `json:"estado" gorm:"size:16;default:'PROGRAMADO'"`
	FechaProgramada string  `json:"fecha_programada" gorm:"size:19"`
	Descripcion     string  `json:"descripcion"`
	RealizadoPor    string  `json:"realizado_por"`
	UsuarioID       *uint   `json:"usuario_id"`
	FechaFinalizado *string `json:"fecha_finalizado" gorm:"size:19"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Mantenimiento) TableName() string { return "mantenimientos_equipo" }

// NormalizarFechaISO convierte "2026-02-16T06:04:00[.sss][Z]" en
// "2026-02-16 06:04:00". La sustitución es puramente sintáctica, sin
// conversión de zona horaria.
func NormalizarFechaISO(iso string) (string, bool) {
	if iso == "" {
		return "", false
	}
	s := strings.Replace(iso, "T", " ", 1)
	if len(s) > 19 {
		s = s[:19]
	}
	if len(s) != 19 {
		return "", false
	}
	return s, true
}

// MantenimientoInput es un elemento del lote que manda el front.
type MantenimientoInput struct {
	Tipo            string  `json:"tipo"`
	Estado          string  `json:"estado"`
	FechaProgramada string  `json:"fechaProgramada"`
	Descripcion     string  `json:"descripcion"`
	RealizadoPor    string  `json:"realizadoPor"`
	UsuarioID       *uint   `json:"usuario_id"`
	ClientUID       *string `json:"client_uid"`
	ID              *string `json:"id"` // el front puede mandar su id como llave de idempotencia
}

// Registro valida el elemento y lo convierte en la fila a insertar para
// el equipo dado. Devuelve el primer error de validación encontrado.
func (in MantenimientoInput) Registro(equipoID uint) (Mantenimiento, error) {
	tipo := strings.TrimSpace(in.Tipo)
	if !TiposValidos[tipo] {
		return Mantenimiento{}, fmt.Errorf("tipo inválido: %s", tipo)
	}

	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		estado = EstadoProgramado
	}
	if !EstadosValidos[estado] {
		return Mantenimiento{}, fmt.Errorf("estado inválido: %s", estado)
	}

	fecha, ok := NormalizarFechaISO(in.FechaProgramada)
	if !ok {
		return Mantenimiento{}, fmt.Errorf("fechaProgramada inválida (usa YYYY-MM-DDTHH:mm:ss)")
	}

	descripcion := strings.TrimSpace(in.Descripcion)
	if descripcion == "" {
		return Mantenimiento{}, fmt.Errorf("descripcion requerida")
	}

	realizadoPor := strings.TrimSpace(in.RealizadoPor)
	if realizadoPor == "" {
		realizadoPor = "Anonimo"
	}

	clientUID := in.ClientUID
	if clientUID == nil {
		clientUID = in.ID
	}

	return Mantenimiento{
		EquipoID:        equipoID,
		ClientUID:       clientUID,
		Tipo:            tipo,
		Estado:          estado,
		FechaProgramada: fecha,
		Descripcion:     descripcion,
		RealizadoPor:    realizadoPor,
		UsuarioID:       in.UsuarioID,
	}, nil
}
