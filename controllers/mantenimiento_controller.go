package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciortega07/backend-proyecto-biomedica/models"
)

// GET /equipos_biomedicos/:id/mantenimientos
//
// No verifica que el equipo exista: un id sin filas (o de un equipo ya
// borrado) devuelve lista vacía.
func (a *API) ListMantenimientos(c *gin.Context) {
	equipoID, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "equipoId inválido"})
		return
	}

	var rows []models.Mantenimiento
	err := a.db.Where("equipo_id = ?", equipoID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		a.serverError(c, "Error al obtener mantenimientos", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /equipos_biomedicos/:id/mantenimientos
//
// Lote todo-o-nada: se valida cada elemento en orden y se inserta todo
// en una sola sentencia. Un client_uid repetido rechaza el lote completo.
func (a *API) CreateMantenimientos(c *gin.Context) {
	equipoID, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "equipoId inválido"})
		return
	}

	var body struct {
		Items []models.MantenimientoInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body.items debe ser un arreglo con al menos 1 elemento"})
		return
	}

	rows := make([]models.Mantenimiento, 0, len(body.Items))
	for _, it := range body.Items {
		reg, err := it.Registro(equipoID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rows = append(rows, reg)
	}

	if err := a.db.Create(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Duplicado: client_uid ya existe (reintento del front)"})
			return
		}
		a.serverError(c, "Error al insertar mantenimientos", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Mantenimientos guardados",
		"insertedCount": len(rows),
		"firstInsertId": rows[0].ID,
	})
}

// PATCH /mantenimientos/:id
//
// Edita sólo mientras el registro siga PROGRAMADO; la condición va en el
// WHERE, así que cero filas afectadas cubre tanto "no existe" como "ya
// está FINALIZADO" y ambos responden 409.
func (a *API) UpdateMantenimiento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	var body struct {
		FechaProgramada string `json:"fechaProgramada"`
		Descripcion     string `json:"descripcion"`
		RealizadoPor    string `json:"realizadoPor"`
		UsuarioID       *uint  `json:"usuario_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fecha, ok := models.NormalizarFechaISO(body.FechaProgramada)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fechaProgramada inválida"})
		return
	}
	descripcion := trim(body.Descripcion)
	if descripcion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "descripcion requerida"})
		return
	}

	updates := map[string]any{
		"fecha_programada": fecha,
		"descripcion":      descripcion,
		"usuario_id":       body.UsuarioID,
	}
	// realizado_por conserva el valor anterior salvo reemplazo no vacío.
	if realizadoPor := trim(body.RealizadoPor); realizadoPor != "" {
		updates["realizado_por"] = realizadoPor
	}

	res := a.db.Model(&models.Mantenimiento{}).
		Where("id = ? AND estado = ?", id, models.EstadoProgramado).
		Updates(updates)
	if res.Error != nil {
		a.serverError(c, "Error al editar mantenimiento", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "No se pudo editar (no existe o ya está FINALIZADO)"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mantenimiento actualizado"})
}

// PATCH /mantenimientos/:id/finalizar
func (a *API) FinalizarMantenimiento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	res := a.db.Model(&models.Mantenimiento{}).
		Where("id = ? AND estado = ?", id, models.EstadoProgramado).
		Updates(finalizacion(time.Now()))
	if res.Error != nil {
		a.serverError(c, "Error al finalizar mantenimiento", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "No se pudo finalizar (no existe o ya está FINALIZADO)"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mantenimiento finalizado"})
}

// PATCH /equipos_biomedicos/:id/mantenimientos/finalizar_todos
//
// Finaliza todo lo programado del equipo con una misma marca de tiempo.
// Afectar cero filas no es error: un equipo sin pendientes es válido.
func (a *API) FinalizarTodos(c *gin.Context) {
	equipoID, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "equipoId inválido"})
		return
	}

	res := a.db.Model(&models.Mantenimiento{}).
		Where("equipo_id = ? AND estado = ?", equipoID, models.EstadoProgramado).
		Updates(finalizacion(time.Now()))
	if res.Error != nil {
		a.serverError(c, "Error al finalizar todos", res.Error)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "OK",
		"afectados": res.RowsAffected,
	})
}

func finalizacion(t time.Time) map[string]any {
	return map[string]any{
		"estado":           models.EstadoFinalizado,
		"fecha_finalizado": t.Format(models.FormatoFecha),
	}
}
