package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"selecao/internal/api"
)

func validResume() *api.ResumeFile {
	return &api.ResumeFile{Name: "curriculo.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
}

func validApplicationDraft() ApplicationDraft {
	return ApplicationDraft{
		FullName:    "Maria Souza",
		Email:       "maria@example.com",
		Phone:       "(81) 99999-9999",
		Linkedin:    "https://linkedin.com/in/maria",
		SelectedJob: "5",
		DescDaVaga:  "Rotinas de recrutamento",
		Resume:      validResume(),
	}
}

func TestValidateApplicationValidDraft(t *testing.T) {
	errs := ValidateApplication(validApplicationDraft())
	assert.True(t, errs.Valid(), "expected no errors, got %v", errs)
}

func TestValidateApplicationRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ApplicationDraft)
		field   Field
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(d *ApplicationDraft) { d.FullName = "   " },
			field:   FieldFullName,
			message: "Nome completo é obrigatório",
		},
		{
			name:    "name too short",
			mutate:  func(d *ApplicationDraft) { d.FullName = " M " },
			field:   FieldFullName,
			message: "Nome deve ter pelo menos 2 caracteres",
		},
		{
			name:    "missing email",
			mutate:  func(d *ApplicationDraft) { d.Email = "" },
			field:   FieldEmail,
			message: "Email é obrigatório",
		},
		{
			name:    "malformed email",
			mutate:  func(d *ApplicationDraft) { d.Email = "maria@example" },
			field:   FieldEmail,
			message: "Email inválido",
		},
		{
			name:    "missing phone",
			mutate:  func(d *ApplicationDraft) { d.Phone = "" },
			field:   FieldPhone,
			message: "Telefone é obrigatório",
		},
		{
			name:    "phone too short",
			mutate:  func(d *ApplicationDraft) { d.Phone = "819999" },
			field:   FieldPhone,
			message: "Telefone deve ter pelo menos 10 dígitos",
		},
		{
			name:    "phone with letters",
			mutate:  func(d *ApplicationDraft) { d.Phone = "81 99999x9999" },
			field:   FieldPhone,
			message: "Formato de telefone inválido",
		},
		{
			name:    "linkedin outside expected domain",
			mutate:  func(d *ApplicationDraft) { d.Linkedin = "https://example.com/maria" },
			field:   FieldLinkedin,
			message: "URL do LinkedIn inválida",
		},
		{
			name:    "missing job selection",
			mutate:  func(d *ApplicationDraft) { d.SelectedJob = "" },
			field:   FieldSelectedJob,
			message: "Seleção de vaga é obrigatória",
		},
		{
			name:    "missing file",
			mutate:  func(d *ApplicationDraft) { d.Resume = nil },
			field:   FieldPDFFile,
			message: "Arquivo PDF é obrigatório",
		},
		{
			name: "wrong media type",
			mutate: func(d *ApplicationDraft) {
				d.Resume = &api.ResumeFile{Name: "cv.docx", ContentType: "application/msword", Data: []byte("x")}
			},
			field:   FieldPDFFile,
			message: "Apenas arquivos PDF são aceitos",
		},
		{
			name: "file too large",
			mutate: func(d *ApplicationDraft) {
				d.Resume = &api.ResumeFile{Name: "cv.pdf", ContentType: "application/pdf", Data: make([]byte, maxResumeBytes+1)}
			},
			field:   FieldPDFFile,
			message: "Arquivo deve ter no máximo 10MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validApplicationDraft()
			tt.mutate(&draft)
			errs := ValidateApplication(draft)
			assert.Equal(t, tt.message, errs[tt.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateApplicationOptionalLinkedin(t *testing.T) {
	draft := validApplicationDraft()
	draft.Linkedin = "   "
	assert.True(t, ValidateApplication(draft).Valid())
}

func TestValidateApplicationExactSizeLimit(t *testing.T) {
	draft := validApplicationDraft()
	draft.Resume = &api.ResumeFile{Name: "cv.pdf", ContentType: "application/pdf", Data: make([]byte, maxResumeBytes)}
	assert.True(t, ValidateApplication(draft).Valid())
}

func TestValidateApplicationIdempotent(t *testing.T) {
	draft := ApplicationDraft{Email: "broken", Phone: "81"}
	first := ValidateApplication(draft)
	second := ValidateApplication(draft)
	assert.Equal(t, first, second)
}

func TestValidateJob(t *testing.T) {
	tests := []struct {
		name    string
		draft   JobDraft
		field   Field
		message string
	}{
		{
			name:    "missing title",
			draft:   JobDraft{Title: "  ", Description: "Vaga para o time de produto"},
			field:   FieldTitle,
			message: "Título da vaga é obrigatório",
		},
		{
			name:    "title too short",
			draft:   JobDraft{Title: "UX", Description: "Vaga para o time de produto"},
			field:   FieldTitle,
			message: "Título deve ter pelo menos 3 caracteres",
		},
		{
			name:    "missing description",
			draft:   JobDraft{Title: "Desenvolvedor Frontend", Description: ""},
			field:   FieldDescription,
			message: "Descrição interna é obrigatória",
		},
		{
			name:    "description too short",
			draft:   JobDraft{Title: "Desenvolvedor Frontend", Description: "abcd"},
			field:   FieldDescription,
			message: "Descrição deve ter pelo menos 5 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateJob(tt.draft)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}

	t.Run("valid", func(t *testing.T) {
		errs := ValidateJob(JobDraft{Title: "Desenvolvedor Frontend", Description: "Vaga para o time de produto"})
		assert.True(t, errs.Valid())
	})
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		draft   LoginDraft
		field   Field
		message string
	}{
		{
			name:    "missing email",
			draft:   LoginDraft{Senha: "segredo1"},
			field:   FieldEmail,
			message: "Email é obrigatório",
		},
		{
			name:    "missing password",
			draft:   LoginDraft{Email: "admin@example.com"},
			field:   FieldSenha,
			message: "Senha é obrigatória",
		},
		{
			name:    "password too short",
			draft:   LoginDraft{Email: "admin@example.com", Senha: "12345"},
			field:   FieldSenha,
			message: "Senha deve ter pelo menos 6 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLogin(tt.draft)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.True(t, ValidateLogin(LoginDraft{Email: "admin@example.com", Senha: "segredo1"}).Valid())
	})
}
