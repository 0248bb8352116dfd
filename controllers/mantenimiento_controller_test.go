package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mauriciortega07/backend-proyecto-biomedica/models"
)

func itemDePrueba() gin.H {
	return gin.H{
		"tipo":            "PREVENTIVO",
		"fechaProgramada": "2026-02-16T06:04:00",
		"descripcion":     "Revisión",
	}
}

func (suite *ControllerTestSuite) contarMantenimientos(equipoID uint) int64 {
	var n int64
	suite.Require().NoError(
		suite.db.Model(&models.Mantenimiento{}).
			Where("equipo_id = ?", equipoID).
			Count(&n).Error,
	)
	return n
}

func (suite *ControllerTestSuite) TestCrearLoteYListar() {
	res := suite.crearLote(7, []gin.H{itemDePrueba()})
	suite.Require().Equal(http.StatusCreated, res.Code, res.Body.String())

	var out struct {
		Message       string `json:"message"`
		InsertedCount int    `json:"insertedCount"`
		FirstInsertID uint   `json:"firstInsertId"`
	}
	suite.decode(res, &out)
	suite.Equal("Mantenimientos guardados", out.Message)
	suite.Equal(1, out.InsertedCount)
	suite.NotZero(out.FirstInsertID)

	res = suite.serve(http.MethodGet, "/equipos_biomedicos/7/mantenimientos", nil)
	suite.Require().Equal(http.StatusOK, res.Code)

	var rows []models.Mantenimiento
	suite.decode(res, &rows)
	suite.Require().Len(rows, 1)
	suite.Equal(models.EstadoProgramado, rows[0].Estado)
	suite.Equal("2026-02-16 06:04:00", rows[0].FechaProgramada)
	suite.Equal("Anonimo", rows[0].RealizadoPor)
	suite.Nil(rows[0].FechaFinalizado)
}

func (suite *ControllerTestSuite) TestCrearLoteValidacion() {
	// Lote vacío.
	res := suite.crearLote(7, []gin.H{})
	suite.Equal(http.StatusBadRequest, res.Code)

	// equipoId no numérico.
	res = suite.serve(http.MethodPost, "/equipos_biomedicos/cero/mantenimientos", gin.H{"items": []gin.H{itemDePrueba()}})
	suite.Equal(http.StatusBadRequest, res.Code)

	// Primer elemento inválido aborta el lote completo.
	malo := itemDePrueba()
	malo["tipo"] = "URGENTE"
	res = suite.crearLote(7, []gin.H{malo, itemDePrueba()})
	suite.Require().Equal(http.StatusBadRequest, res.Code)

	var out map[string]any
	suite.decode(res, &out)
	suite.Equal("tipo inválido: URGENTE", out["error"])
	suite.EqualValues(0, suite.contarMantenimientos(7))
}

func (suite *ControllerTestSuite) TestLoteIdempotente() {
	items := []gin.H{
		{"tipo": "PREVENTIVO", "fechaProgramada": "2026-02-16T06:04:00", "descripcion": "Revisión", "client_uid": "u-1"},
		{"tipo": "CORRECTIVO", "fechaProgramada": "2026-03-01T10:00:00", "descripcion": "Reparación", "client_uid": "u-2"},
	}

	res := suite.crearLote(7, items)
	suite.Require().Equal(http.StatusCreated, res.Code, res.Body.String())
	suite.EqualValues(2, suite.contarMantenimientos(7))

	// Reintento del front con los mismos client_uid: conflicto, sin
	// aplicar nada parcialmente.
	res = suite.crearLote(7, items)
	suite.Require().Equal(http.StatusConflict, res.Code, res.Body.String())
	suite.EqualValues(2, suite.contarMantenimientos(7))
}

func (suite *ControllerTestSuite) TestEditarYFinalizar() {
	res := suite.crearLote(7, []gin.H{itemDePrueba()})
	suite.Require().Equal(http.StatusCreated, res.Code)
	var created struct {
		FirstInsertID uint `json:"firstInsertId"`
	}
	suite.decode(res, &created)
	id := created.FirstInsertID

	// Edición mientras está PROGRAMADO; realizadoPor vacío conserva el
	// valor previo.
	res = suite.serve(http.MethodPatch, fmt.Sprintf("/mantenimientos/%d", id), gin.H{
		"fechaProgramada": "2026-02-20T08:00:00",
		"descripcion":     "Revisión ajustada",
	})
	suite.Require().Equal(http.StatusOK, res.Code, res.Body.String())

	var row models.Mantenimiento
	suite.Require().NoError(suite.db.First(&row, id).Error)
	suite.Equal("2026-02-20 08:00:00", row.FechaProgramada)
	suite.Equal("Revisión ajustada", row.Descripcion)
	suite.Equal("Anonimo", row.RealizadoPor)

	// Reemplazo no vacío sí se escribe.
	res = suite.serve(http.MethodPatch, fmt.Sprintf("/mantenimientos/%d", id), gin.H{
		"fechaProgramada": "2026-02-20T08:00:00",
		"descripcion":     "Revisión ajustada",
		"realizadoPor":    "Carlos",
	})
	suite.Require().Equal(http.StatusOK, res.Code)
	suite.Require().NoError(suite.db.First(&row, id).Error)
	suite.Equal("Carlos", row.RealizadoPor)

	// Finaliza una sola vez.
	res = suite.serve(http.MethodPatch, fmt.Sprintf("/mantenimientos/%d/finalizar", id), nil)
	suite.Require().Equal(http.StatusOK, res.Code)

	suite.Require().NoError(suite.db.First(&row, id).Error)
	suite.Equal(models.EstadoFinalizado, row.Estado)
	suite.Require().NotNil(row.FechaFinalizado)
	fechaFinalizado := *row.FechaFinalizado

	// FINALIZADO es terminal: repetir finaliza y editar responden 409 y
	// nada cambia.
	res = suite.serve(http.MethodPatch, fmt.Sprintf("/mantenimientos/%d/finalizar", id), nil)
	suite.Equal(http.StatusConflict, res.Code)

	res = suite.serve(http.MethodPatch, fmt.Sprintf("/mantenimientos/%d", id), gin.H{
		"fechaProgramada": "2027-01-01T00:00:00",
		"descripcion":     "no debería aplicar",
	})
	suite.Equal(http.StatusConflict, res.Code)

	suite.Require().NoError(suite.db.First(&row, id).Error)
	suite.Equal("2026-02-20 08:00:00", row.FechaProgramada)
	suite.Equal("Revisión ajustada", row.Descripcion)
	suite.Equal(fechaFinalizado, *row.FechaFinalizado)
}

func (suite *ControllerTestSuite) TestEditarInexistente() {
	res := suite.serve(http.MethodPatch, "/mantenimientos/9999", gin.H{
		"fechaProgramada": "2026-02-20T08:00:00",
		"descripcion":     "Revisión",
	})
	// Inexistente y FINALIZADO son indistinguibles para el cliente.
	suite.Equal(http.StatusConflict, res.Code)
}

func (suite *ControllerTestSuite) TestFinalizarTodos() {
	res := suite.crearLote(7, []gin.H{
		{"tipo": "PREVENTIVO", "fechaProgramada": "2026-02-16T06:04:00", "descripcion": "Revisión"},
		{"tipo": "PREDICTIVO", "fechaProgramada": "2026-02-17T06:04:00", "descripcion": "Análisis"},
	})
	suite.Require().Equal(http.StatusCreated, res.Code)

	// Un equipo distinto no se ve afectado.
	res = suite.crearLote(8, []gin.H{itemDePrueba()})
	suite.Require().Equal(http.StatusCreated, res.Code)

	res = suite.serve(http.MethodPatch, "/equipos_biomedicos/7/mantenimientos/finalizar_todos", nil)
	suite.Require().Equal(http.StatusOK, res.Code, res.Body.String())

	var out struct {
		Message   string `json:"message"`
		Afectados int64  `json:"afectados"`
	}
	suite.decode(res, &out)
	suite.Equal("OK", out.Message)
	suite.EqualValues(2, out.Afectados)

	// Ambos comparten la misma marca de finalización.
	var rows []models.Mantenimiento
	suite.Require().NoError(suite.db.Where("equipo_id = ?", 7).Find(&rows).Error)
	suite.Require().Len(rows, 2)
	for _, r := range rows {
		suite.Equal(models.EstadoFinalizado, r.Estado)
		suite.Require().NotNil(r.FechaFinalizado)
	}
	suite.Equal(*rows[0].FechaFinalizado, *rows[1].FechaFinalizado)

	// Idempotente: la segunda pasada afecta 0 y sigue siendo 200.
	res = suite.serve(http.MethodPatch, "/equipos_biomedicos/7/mantenimientos/finalizar_todos", nil)
	suite.Require().Equal(http.StatusOK, res.Code)
	suite.decode(res, &out)
	suite.EqualValues(0, out.Afectados)

	// El otro equipo sigue programado.
	var pendientes int64
	suite.db.Model(&models.Mantenimiento{}).
		Where("equipo_id = ? AND estado = ?", 8, models.EstadoProgramado).
		Count(&pendientes)
	suite.EqualValues(1, pendientes)
}
