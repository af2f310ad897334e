package forms

import (
	"context"
	"testing"

	"selecao/internal/common"
)

type fakeAuth struct {
	calls int
	token string
	err   error
}

func (f *fakeAuth) Login(ctx context.Context, email, senha string) (string, error) {
	f.calls++
	return f.token, f.err
}

type fakeSink struct {
	saved []string
	err   error
}

func (f *fakeSink) Save(token string) error {
	f.saved = append(f.saved, token)
	return f.err
}

func TestLoginShortPasswordNeverReachesNetwork(t *testing.T) {
	auth := &fakeAuth{}
	form := NewLoginForm(auth, &fakeSink{})
	form.SetField(FieldEmail, "admin@example.com")
	form.SetField(FieldSenha, "12345")

	err := form.Submit(context.Background())
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if auth.calls != 0 {
		t.Fatalf("expected no network call, got %d", auth.calls)
	}
	if got := form.Errors()[FieldSenha]; got != "Senha deve ter pelo menos 6 caracteres" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	auth := &fakeAuth{err: common.NewError(common.CodeUnauthorized, "Credenciais inválidas", nil)}
	form := NewLoginForm(auth, &fakeSink{})
	form.SetField(FieldEmail, "admin@example.com")
	form.SetField(FieldSenha, "errada123")

	if err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if form.GeneralError() != "Credenciais inválidas" {
		t.Fatalf("unexpected general error: %q", form.GeneralError())
	}
}

func TestLoginTransportFailure(t *testing.T) {
	auth := &fakeAuth{err: common.NewError(common.CodeUnavailable, "api request failed", nil)}
	form := NewLoginForm(auth, &fakeSink{})
	form.SetField(FieldEmail, "admin@example.com")
	form.SetField(FieldSenha, "segredo1")

	if err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if form.GeneralError() != "Erro ao fazer login. Tente novamente." {
		t.Fatalf("unexpected general error: %q", form.GeneralError())
	}
}

func TestLoginSuccessPersistsToken(t *testing.T) {
	auth := &fakeAuth{token: "tok-123"}
	sink := &fakeSink{}
	form := NewLoginForm(auth, sink)
	form.SetField(FieldEmail, "admin@example.com")
	form.SetField(FieldSenha, "segredo1")

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(sink.saved) != 1 || sink.saved[0] != "tok-123" {
		t.Fatalf("token not persisted: %v", sink.saved)
	}
	if form.GeneralError() != "" {
		t.Fatalf("general error set on success: %q", form.GeneralError())
	}
	if form.InFlight() {
		t.Fatal("in-flight flag not cleared")
	}
}

func TestLoginEditClearsGeneralError(t *testing.T) {
	auth := &fakeAuth{err: common.NewError(common.CodeUnauthorized, "Credenciais inválidas", nil)}
	form := NewLoginForm(auth, &fakeSink{})
	form.SetField(FieldEmail, "admin@example.com")
	form.SetField(FieldSenha, "errada123")
	_ = form.Submit(context.Background())

	form.SetField(FieldSenha, "outra1234")
	if form.GeneralError() != "" {
		t.Fatalf("general error not cleared on edit: %q", form.GeneralError())
	}
}
