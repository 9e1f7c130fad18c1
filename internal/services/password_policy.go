package services

// MinPasswordLength is the only strength rule the setup flow enforces; the
// gate protects a single local account, not a public service.
const MinPasswordLength = 8

func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
