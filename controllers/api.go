package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mauriciortega07/backend-proyecto-biomedica/auth"
)

// API agrupa los handlers; recibe sus dependencias al construirse en
// lugar de leer globales.
type API struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	creds  auth.CredentialScheme
}

func NewAPI(db *gorm.DB, logger *zap.SugaredLogger, creds auth.CredentialScheme) *API {
	return &API{db: db, logger: logger, creds: creds}
}

// GET /
func (a *API) Root(c *gin.Context) {
	c.String(http.StatusOK, "API funcionando")
}

// GET /healthz
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serverError loguea el detalle y responde 500 con un mensaje genérico.
func (a *API) serverError(c *gin.Context, msg string, err error) {
	a.logger.Errorw(msg, "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// paramID interpreta un parámetro de ruta como id numérico positivo.
func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func trim(s string) string { return strings.TrimSpace(s) }
