package apierror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error transporta uma falha de negócio com status HTTP definido.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// New cria um erro classificado.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

// Mensagens fixas expostas ao cliente.
const (
	MsgInternal          = "Internal Server Error"
	MsgInvalidTechnology = "Invalid technology ID provided."
)

// Códigos de erro do Postgres reconhecidos pelo classificador.
const (
	pgInvalidTextRepresentation = "22P02"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

type techRefError struct {
	err error
}

func (e *techRefError) Error() string { return e.err.Error() }
func (e *techRefError) Unwrap() error { return e.err }

// MarkTechnologyRef anota uma falha originada na gravação de referências de
// tecnologia, para que o classificador a reconheça mesmo quando o erro do
// Postgres não menciona a tabela (ex.: cast ::uuid de um id malformado).
func MarkTechnologyRef(err error) error {
	if err == nil {
		return nil
	}
	return &techRefError{err: err}
}

// Classify normaliza qualquer falha em (mensagem, status) estáveis.
// Erros de negócio passam intactos; falhas do Postgres sobre referências
// de tecnologia viram validação com mensagem fixa; o resto vira 500
// genérico sem vazar detalhe interno.
func Classify(err error) (string, int) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message, apiErr.Status
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		var techRef *techRefError
		marked := errors.As(err, &techRef)

		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgForeignKeyViolation:
			if marked || referencesTechnology(pgErr) {
				return MsgInvalidTechnology, http.StatusBadRequest
			}
		case pgUniqueViolation:
			return "Resource already exists", http.StatusConflict
		}
	}

	return MsgInternal, http.StatusInternalServerError
}

// CodeForStatus devolve o código usado no envelope de erro HTTP.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION"
	case http.StatusUnauthorized:
		return "AUTH"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

func referencesTechnology(pgErr *pgconn.PgError) bool {
	for _, s := range []string{pgErr.ConstraintName, pgErr.TableName, pgErr.Message, pgErr.Where} {
		if strings.Contains(strings.ToLower(s), "technolog") {
			return true
		}
	}
	return false
}
