package domain

import "time"

// Admin is a back-office account. There is no self-service registration;
// rows are created by the seed command.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
