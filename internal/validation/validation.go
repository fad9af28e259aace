// Package validation holds the pure field validators used by every form in
// the application. Each validator takes the raw input text and returns nil
// when the value is acceptable, or an error carrying the exact message shown
// inline next to the field.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrEmailObrigatorio = errors.New("Email é obrigatório")
	ErrEmailInvalido    = errors.New("Email inválido")

	ErrUsuarioObrigatorio = errors.New("Usuário é obrigatório")
	ErrUsuarioMinimo      = errors.New("Usuário deve ter pelo menos 3 caracteres")
	ErrUsuarioMaximo      = errors.New("Usuário deve ter no máximo 50 caracteres")
	ErrUsuarioCaracteres  = errors.New("Usuário deve conter apenas letras, números e underscore")

	ErrSenhaObrigatoria = errors.New("Senha é obrigatória")
	ErrSenhaMinima      = errors.New("Senha deve ter pelo menos 6 caracteres")
	ErrSenhaMaxima      = errors.New("Senha deve ter no máximo 100 caracteres")

	ErrNomeObrigatorio = errors.New("Nome é obrigatório")
	ErrNomeMinimo      = errors.New("Nome deve ter pelo menos 2 caracteres")
	ErrNomeMaximo      = errors.New("Nome deve ter no máximo 100 caracteres")
	ErrNomeCaracteres  = errors.New("Nome deve conter apenas letras")

	ErrDataObrigatoria = errors.New("Data é obrigatória")
	ErrDataFormato     = errors.New("Data deve estar no formato DD/MM/AAAA")
	ErrDataNumeros     = errors.New("Data deve conter apenas números")
	ErrDataDia         = errors.New("Dia deve estar entre 1 e 31")
	ErrDataMes         = errors.New("Mês deve estar entre 1 e 12")
	ErrDataAno         = errors.New("Ano deve estar entre 1900 e o ano atual")
	ErrDataInvalida    = errors.New("Data inválida")
	ErrDataFutura      = errors.New("Data não pode ser no futuro")

	ErrValorObrigatorio = errors.New("Valor é obrigatório")
	ErrValorNumero      = errors.New("Valor deve ser um número")
	ErrValorMinimo      = errors.New("Valor deve ser maior que zero")
	ErrValorMaximo      = errors.New("Valor deve ser menor que R$ 1.000.000")
)

// ValidateEmail checks for the local@domain.tld shape: no whitespace,
// exactly one @ and at least one dot after it.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailObrigatorio
	}
	if strings.ContainsFunc(email, unicode.IsSpace) {
		return ErrEmailInvalido
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return ErrEmailInvalido
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return ErrEmailInvalido
	}
	return nil
}

// ValidateUsername accepts 3-50 ASCII letters, digits or underscores.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsuarioObrigatorio
	}
	if len(username) < 3 {
		return ErrUsuarioMinimo
	}
	if len(username) > 50 {
		return ErrUsuarioMaximo
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return ErrUsuarioCaracteres
		}
	}
	return nil
}

// ValidatePassword accepts any 6-100 character string.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrSenhaObrigatoria
	}
	if len(password) < 6 {
		return ErrSenhaMinima
	}
	if len(password) > 100 {
		return ErrSenhaMaxima
	}
	return nil
}

// ValidateName accepts 2-100 characters, letters (accented Latin included)
// and spaces only.
func ValidateName(name string) error {
	if name == "" {
		return ErrNomeObrigatorio
	}
	runes := []rune(name)
	if len(runes) < 2 {
		return ErrNomeMinimo
	}
	if len(runes) > 100 {
		return ErrNomeMaximo
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && r != ' ' {
			return ErrNomeCaracteres
		}
	}
	return nil
}

// ValidateDate checks a DD/MM/YYYY string: real calendar date, year between
// 1900 and the current year, not after today. Same-day is accepted.
func ValidateDate(date string) error {
	if date == "" {
		return ErrDataObrigatoria
	}
	if !strings.Contains(date, "/") {
		return ErrDataFormato
	}

	parts := strings.Split(date, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ErrDataFormato
	}

	day, errDay := strconv.Atoi(parts[0])
	month, errMonth := strconv.Atoi(parts[1])
	year, errYear := strconv.Atoi(parts[2])
	if errDay != nil || errMonth != nil || errYear != nil {
		return ErrDataNumeros
	}

	now := time.Now()
	if day < 1 || day > 31 {
		return ErrDataDia
	}
	if month < 1 || month > 12 {
		return ErrDataMes
	}
	if year < 1900 || year > now.Year() {
		return ErrDataAno
	}

	// time.Date normalizes overflows (31/02 becomes 02/03 or 03/03), so a
	// round-trip mismatch means the triple is not a real calendar date.
	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if parsed.Day() != day || parsed.Month() != time.Month(month) || parsed.Year() != year {
		return ErrDataInvalida
	}

	if parsed.After(now) {
		return ErrDataFutura
	}
	return nil
}

// ValidateValue checks a monetary amount in text form: a real number
// strictly greater than zero and at most 1,000,000.
func ValidateValue(value string) error {
	if value == "" {
		return ErrValorObrigatorio
	}
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ErrValorNumero
	}
	if num <= 0 {
		return ErrValorMinimo
	}
	if num > 1000000 {
		return ErrValorMaximo
	}
	return nil
}

// FormatDateForBackend converts DD/MM/YYYY into the backend's YYYY-MM-DD
// form, zero-padding day and month. Strings without a slash pass through
// unchanged, which makes the conversion idempotent on already-converted or
// malformed input.
func FormatDateForBackend(date string) string {
	if !strings.Contains(date, "/") {
		return date
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0]))
}

// FormatDateForFrontend is the inverse of FormatDateForBackend: YYYY-MM-DD
// becomes DD/MM/YYYY, and strings without a dash pass through unchanged.
func FormatDateForFrontend(date string) string {
	if !strings.Contains(date, "-") {
		return date
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
