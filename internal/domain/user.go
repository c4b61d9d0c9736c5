package domain

type User struct {
	ID        string `json:"id" db:"id"`
	Email     string `json:"email" db:"email"`
	Username  string `json:"username" db:"username"`
	Hash      string `json:"-" db:"password_hash"`
	FullName  string `json:"full_name" db:"full_name"`
	Phone     string `json:"phone" db:"phone"`
	IsAdmin   bool   `json:"is_admin" db:"is_admin"`
	CreatedAt string `json:"created_at" db:"created_at"`
}
