package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyErroDeNegocioPassaIntacto(t *testing.T) {
	err := New("Title is required", http.StatusBadRequest)

	msg, status := Classify(fmt.Errorf("create project: %w", err))
	if msg != "Title is required" || status != http.StatusBadRequest {
		t.Fatalf("Classify = (%q, %d)", msg, status)
	}
}

func TestClassifyCastInvalidoMarcadoViraValidacao(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}
	err := MarkTechnologyRef(pgErr)

	msg, status := Classify(err)
	if msg != MsgInvalidTechnology || status != http.StatusBadRequest {
		t.Fatalf("Classify = (%q, %d)", msg, status)
	}
}

func TestClassifyFKDeTecnologiaViraValidacao(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "project_technologies_technology_id_fkey",
	}

	msg, status := Classify(pgErr)
	if msg != MsgInvalidTechnology || status != http.StatusBadRequest {
		t.Fatalf("Classify = (%q, %d)", msg, status)
	}
}

func TestClassifyUniqueViolationViraConflito(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "technologies_name_key"}

	msg, status := Classify(pgErr)
	if status != http.StatusConflict {
		t.Fatalf("Classify = (%q, %d)", msg, status)
	}
}

func TestClassifyFalhaDesconhecidaNaoVazaDetalhe(t *testing.T) {
	msg, status := Classify(errors.New("pq: connection refused on 10.0.0.3"))
	if msg != MsgInternal || status != http.StatusInternalServerError {
		t.Fatalf("Classify = (%q, %d)", msg, status)
	}
}

func TestClassifyFKNaoRelacionadaViraInterno(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "orders_customer_id_fkey"}

	msg, status := Classify(pgErr)
	if msg != MsgInternal || status != http.StatusInternalServerError {
		t.Fatalf("Classify = (%q, %d)", msg, status)
	}
}

func TestCodeForStatus(t *testing.T) {
	cases := map[int]string{
		http.StatusBadRequest:          "VALIDATION",
		http.StatusUnauthorized:        "AUTH",
		http.StatusForbidden:           "FORBIDDEN",
		http.StatusNotFound:            "NOT_FOUND",
		http.StatusConflict:            "CONFLICT",
		http.StatusInternalServerError: "INTERNAL",
		http.StatusServiceUnavailable:  "INTERNAL",
	}
	for status, want := range cases {
		if got := CodeForStatus(status); got != want {
			t.Errorf("CodeForStatus(%d) = %q, esperava %q", status, got, want)
		}
	}
}
