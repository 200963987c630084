package model

import "time"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf,omitempty"`
	// legacy plaintext or bcrypt digest, never serialized
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Schedule struct {
	ID int64 `json:"id"`
	// display string, not a reference to users.id
	Lawyer        string    `json:"lawyer"`
	Client        string    `json:"client"`
	ProcessNumber string    `json:"process_number,omitempty"`
	Online        bool      `json:"online"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Time          string    `json:"time"` // HH:MM
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
