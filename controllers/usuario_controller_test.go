package controllers_test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mauriciortega07/backend-proyecto-biomedica/models"
)

func (suite *ControllerTestSuite) TestRegisterYLogin() {
	registro := gin.H{
		"name":        "Mauricio",
		"idempleado":  "EMP-001",
		"rolempleado": "ingeniero",
		"password":    "secreta",
	}

	res := suite.serve(http.MethodPost, "/register", registro)
	suite.Require().Equal(http.StatusCreated, res.Code, res.Body.String())

	var out struct {
		Message string                `json:"message"`
		User    models.UsuarioPublico `json:"user"`
	}
	suite.decode(res, &out)
	suite.Equal("Registro exitoso", out.Message)
	suite.NotZero(out.User.ID)
	suite.Equal("EMP-001", out.User.IDEmpleado)

	// La respuesta nunca incluye la credencial.
	suite.NotContains(res.Body.String(), "secreta")

	res = suite.serve(http.MethodPost, "/login", gin.H{
		"idempleado": "EMP-001",
		"password":   "secreta",
	})
	suite.Require().Equal(http.StatusOK, res.Code)
	suite.decode(res, &out)
	suite.Equal("Login exitoso", out.Message)
	suite.Equal("Mauricio", out.User.Name)
}

func (suite *ControllerTestSuite) TestRegisterDuplicado() {
	registro := gin.H{
		"name":       "Mauricio",
		"idempleado": "EMP-001",
		"password":   "secreta",
	}

	res := suite.serve(http.MethodPost, "/register", registro)
	suite.Require().Equal(http.StatusCreated, res.Code)

	res = suite.serve(http.MethodPost, "/register", registro)
	suite.Require().Equal(http.StatusBadRequest, res.Code)

	var out map[string]any
	suite.decode(res, &out)
	suite.Equal("El usuario ya existe", out["message"])

	var n int64
	suite.db.Model(&models.Usuario{}).Count(&n)
	suite.EqualValues(1, n)
}

func (suite *ControllerTestSuite) TestLoginCredencialesIncorrectas() {
	res := suite.serve(http.MethodPost, "/register", gin.H{
		"name":       "Mauricio",
		"idempleado": "EMP-001",
		"password":   "secreta",
	})
	suite.Require().Equal(http.StatusCreated, res.Code)

	res = suite.serve(http.MethodPost, "/login", gin.H{
		"idempleado": "EMP-001",
		"password":   "otra",
	})
	suite.Equal(http.StatusUnauthorized, res.Code)

	res = suite.serve(http.MethodPost, "/login", gin.H{
		"idempleado": "EMP-999",
		"password":   "secreta",
	})
	suite.Equal(http.StatusUnauthorized, res.Code)
}
