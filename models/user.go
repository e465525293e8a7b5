// models/user.go
package models

// UserProfile mirrors the upstream profile record cached locally after login.
type UserProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender,omitempty"`
	ImagePath   string `json:"imagePath,omitempty"`
}

// AuthResult is the upstream response to a successful OTP verification.
type AuthResult struct {
	Token   string      `json:"token"`
	Profile UserProfile `json:"profile"`
}
