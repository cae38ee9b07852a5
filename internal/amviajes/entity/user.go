package entity

// UserRecord is stored as-is; the password is plaintext on purpose, this is a
// demo credential list.
type UserRecord struct {
	Username string `json:"usuario"`
	Password string `json:"clave"`
}
