package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mauriciortega07/backend-proyecto-biomedica/models"
)

// GET /equipos_biomedicos
func (a *API) ListEquipos(c *gin.Context) {
	var items []models.Equipo
	if err := a.db.Find(&items).Error; err != nil {
		a.serverError(c, "Error al obtener equipos", err)
		return
	}
	for i := range items {
		items[i].Normalizar()
	}
	c.JSON(http.StatusOK, items)
}

// POST /equipos_biomedicos
func (a *API) CreateEquipo(c *gin.Context) {
	var body models.Equipo
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.ID = 0
	body.Normalizar()

	if err := a.db.Create(&body).Error; err != nil {
		a.serverError(c, "Error al guardar el equipo", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Equipo guardado exitosamente",
		"equipo":  body,
	})
}

// PUT /equipos_biomedicos/:id
//
// Actualización de registro completo: el body trae todos los atributos y
// todos se escriben, incluidos los que vienen en cero.
func (a *API) UpdateEquipo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID del equipo es requerido"})
		return
	}

	var body models.Equipo
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Normalizar()

	res := a.db.Model(&models.Equipo{}).
		Where("id = ?", id).
		Select("*").Omit("id").
		Updates(&body)
	if res.Error != nil {
		a.serverError(c, "Error al actualizar el equipo", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipo no encontrado"})
		return
	}

	body.ID = id
	c.JSON(http.StatusOK, gin.H{
		"message": "Equipo actualizado exitosamente",
		"equipo":  body,
	})
}

// DELETE /equipos_biomedicos/:id
//
// Borrado incondicional; los mantenimientos del equipo no se tocan.
func (a *API) DeleteEquipo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID del equipo es requerido"})
		return
	}

	res := a.db.Delete(&models.Equipo{}, "id = ?", id)
	if res.Error != nil {
		a.serverError(c, "Error al eliminar el equipo", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
