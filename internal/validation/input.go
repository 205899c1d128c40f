package validation

import (
	"fmt"
	"net/mail"
	"regexp"
)

// PseudoPattern определяет допустимый формат псевдонима
// Латинские буквы, цифры, нижнее подчеркивание, точка и дефис
// Длина: 3-32 символа
var PseudoPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

const (
	// MinPseudoLen минимальная длина псевдонима
	MinPseudoLen = 3
	// MaxPseudoLen максимальная длина псевдонима
	MaxPseudoLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
)

// ValidateEmail проверяет, что строка — синтаксически корректный
// email адрес. Доступность адреса проверяет сервер (check-email).
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}

	return nil
}

// ValidatePseudo проверяет формат псевдонима перед регистрацией.
// Уникальность проверяет сервер (check-pseudo).
func ValidatePseudo(pseudo string) error {
	if pseudo == "" {
		return fmt.Errorf("pseudo cannot be empty")
	}

	if len(pseudo) < MinPseudoLen {
		return fmt.Errorf("pseudo must be at least %d characters long", MinPseudoLen)
	}

	if len(pseudo) > MaxPseudoLen {
		return fmt.Errorf("pseudo must not exceed %d characters", MaxPseudoLen)
	}

	if !PseudoPattern.MatchString(pseudo) {
		return fmt.Errorf("pseudo can only contain letters, numbers, underscores, dots and dashes")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}
