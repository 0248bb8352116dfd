package models

type Usuario struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	IDEmpleado  string `json:"idempleado" gorm:"column:idempleado;uniqueIndex;size:64"`
	RolEmpleado string `json:"rolempleado" gorm:"column:rolempleado"`
	Password    string `json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }

// UsuarioPublico son los campos que se devuelven al front; nunca la
// credencial.
type UsuarioPublico struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	IDEmpleado  string `json:"idempleado"`
	RolEmpleado string `json:"rolempleado"`
}

func (u Usuario) Publico() UsuarioPublico {
	return UsuarioPublico{
		ID:          u.ID,
		Name:        u.Name,
		IDEmpleado:  u.IDEmpleado,
		RolEmpleado: u.RolEmpleado,
	}
}
