package forms

import (
	"context"

	"selecao/internal/common"
)

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, email, senha string) (string, error)
}

// TokenSink persists a freshly issued token. *session.Session satisfies it.
type TokenSink interface {
	Save(token string) error
}

const (
	msgInvalidCredentials = "Credenciais inválidas"
	msgLoginFailed        = "Erro ao fazer login. Tente novamente."
)

// LoginForm drives the admin login screen. Besides per-field errors it
// carries a general message for rejected credentials and transport failures.
type LoginForm struct {
	auth     Authenticator
	tokens   TokenSink
	draft    LoginDraft
	errors   Errors
	general  string
	inFlight bool
}

func NewLoginForm(auth Authenticator, tokens TokenSink) *LoginForm {
	return &LoginForm{
		auth:   auth,
		tokens: tokens,
		errors: Errors{},
	}
}

func (f *LoginForm) SetField(field Field, value string) {
	switch field {
	case FieldEmail:
		f.draft.Email = value
	case FieldSenha:
		f.draft.Senha = value
	default:
		return
	}
	delete(f.errors, field)
	f.general = ""
}

func (f *LoginForm) Draft() LoginDraft {
	return f.draft
}

func (f *LoginForm) Errors() Errors {
	return f.errors
}

// GeneralError is the non-field message from the last failed attempt, empty
// after an edit or a success.
func (f *LoginForm) GeneralError() string {
	return f.general
}

func (f *LoginForm) InFlight() bool {
	return f.inFlight
}

// Submit validates, attempts the login, and on success persists the token
// through the sink.
func (f *LoginForm) Submit(ctx context.Context) error {
	errs := ValidateLogin(f.draft)
	f.errors = errs
	if !errs.Valid() {
		return common.NewValidationError("login inválido", errs.fieldMap())
	}
	f.general = ""

	f.inFlight = true
	defer func() { f.inFlight = false }()

	token, err := f.auth.Login(ctx, f.draft.Email, f.draft.Senha)
	if err != nil {
		if common.Is(err, common.CodeUnauthorized) || common.Is(err, common.CodeValidation) {
			f.general = common.Message(err, msgInvalidCredentials)
		} else {
			f.general = msgLoginFailed
		}
		return err
	}

	if err := f.tokens.Save(token); err != nil {
		f.general = msgLoginFailed
		return err
	}
	return nil
}
