package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciortega07/backend-proyecto-biomedica/models"
)

// POST /register
func (a *API) Register(c *gin.Context) {
	var body struct {
		Name        string `json:"name"`
		IDEmpleado  string `json:"idempleado"`
		RolEmpleado string `json:"rolempleado"`
		Password    string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existentes int64
	err := a.db.Model(&models.Usuario{}).
		Where("idempleado = ?", body.IDEmpleado).
		Count(&existentes).Error
	if err != nil {
		a.serverError(c, "Error al registrar el usuario", err)
		return
	}
	if existentes > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El usuario ya existe"})
		return
	}

	hash, err := a.creds.Hash(body.Password)
	if err != nil {
		a.serverError(c, "Error al registrar el usuario", err)
		return
	}

	usuario := models.Usuario{
		Name:        body.Name,
		IDEmpleado:  body.IDEmpleado,
		RolEmpleado: body.RolEmpleado,
		Password:    hash,
	}
	if err := a.db.Create(&usuario).Error; err != nil {
		// Registro concurrente con el mismo idempleado.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "El usuario ya existe"})
			return
		}
		a.serverError(c, "Error al registrar el usuario", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registro exitoso",
		"user":    usuario.Publico(),
	})
}

// POST /login
func (a *API) Login(c *gin.Context) {
	var body struct {
		IDEmpleado string `json:"idempleado"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	err := a.db.Where("idempleado = ?", body.IDEmpleado).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales incorrectas"})
		return
	}
	if err != nil {
		a.serverError(c, "Error al verificar el login", err)
		return
	}

	if !a.creds.Verify(usuario.Password, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales incorrectas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso",
		"user":    usuario.Publico(),
	})
}
