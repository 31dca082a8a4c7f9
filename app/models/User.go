package models

// User is the persisted account row. Password holds the bcrypt hash.
type User struct {
	Id       string
	Email    string
	Password string
}

// UserDto is the register/login request body.
type UserDto struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}
