package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"selecao/internal/api"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s()\-+]+$`)
)

const maxResumeBytes = 10 * 1024 * 1024

// ApplicationDraft holds the public form's in-memory values.
type ApplicationDraft struct {
	FullName    string
	Email       string
	Phone       string
	Linkedin    string
	SelectedJob string
	DescDaVaga  string
	Resume      *api.ResumeFile
}

// ValidateApplication checks the full draft and returns one message per
// failing field. Pure and deterministic; the draft is valid iff the result is
// empty.
func ValidateApplication(d ApplicationDraft) Errors {
	errs := Errors{}

	name := strings.TrimSpace(d.FullName)
	if name == "" {
		errs[FieldFullName] = "Nome completo é obrigatório"
	} else if utf8.RuneCountInString(name) < 2 {
		errs[FieldFullName] = "Nome deve ter pelo menos 2 caracteres"
	}

	email := strings.TrimSpace(d.Email)
	if email == "" {
		errs[FieldEmail] = "Email é obrigatório"
	} else if !emailPattern.MatchString(email) {
		errs[FieldEmail] = "Email inválido"
	}

	phone := strings.TrimSpace(d.Phone)
	if phone == "" {
		errs[FieldPhone] = "Telefone é obrigatório"
	} else if utf8.RuneCountInString(phone) < 10 {
		errs[FieldPhone] = "Telefone deve ter pelo menos 10 dígitos"
	} else if !phonePattern.MatchString(d.Phone) {
		errs[FieldPhone] = "Formato de telefone inválido"
	}

	if strings.TrimSpace(d.Linkedin) != "" && !strings.Contains(d.Linkedin, "linkedin.com") {
		errs[FieldLinkedin] = "URL do LinkedIn inválida"
	}

	if d.SelectedJob == "" {
		errs[FieldSelectedJob] = "Seleção de vaga é obrigatória"
	}

	switch {
	case d.Resume == nil:
		errs[FieldPDFFile] = "Arquivo PDF é obrigatório"
	case d.Resume.ContentType != "application/pdf":
		errs[FieldPDFFile] = "Apenas arquivos PDF são aceitos"
	case d.Resume.Size() > maxResumeBytes:
		errs[FieldPDFFile] = "Arquivo deve ter no máximo 10MB"
	}

	return errs
}

// JobDraft holds the admin job form's in-memory values.
type JobDraft struct {
	Title       string
	Description string
}

func ValidateJob(d JobDraft) Errors {
	errs := Errors{}

	title := strings.TrimSpace(d.Title)
	if title == "" {
		errs[FieldTitle] = "Título da vaga é obrigatório"
	} else if utf8.RuneCountInString(title) < 3 {
		errs[FieldTitle] = "Título deve ter pelo menos 3 caracteres"
	}

	description := strings.TrimSpace(d.Description)
	if description == "" {
		errs[FieldDescription] = "Descrição interna é obrigatória"
	} else if utf8.RuneCountInString(description) < 5 {
		errs[FieldDescription] = "Descrição deve ter pelo menos 5 caracteres"
	}

	return errs
}

// LoginDraft holds the admin login form's in-memory values.
type LoginDraft struct {
	Email string
	Senha string
}

func ValidateLogin(d LoginDraft) Errors {
	errs := Errors{}

	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = "Email é obrigatório"
	}

	if strings.TrimSpace(d.Senha) == "" {
		errs[FieldSenha] = "Senha é obrigatória"
	} else if utf8.RuneCountInString(d.Senha) < 6 {
		errs[FieldSenha] = "Senha deve ter pelo menos 6 caracteres"
	}

	return errs
}
