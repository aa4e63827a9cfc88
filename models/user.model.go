package models

// User mirrors an identity issued by the upstream provider. The row exists
// so the authorization gate can resolve a userId claim to a role; the API
// never stores credentials.
type User struct {
	Base
	Email string `json:"email" gorm:"uniqueIndex"`
	Name  string `json:"name"`
	Role  string `json:"role" gorm:"default:'user'"` // admin gates on 'admin'
}
