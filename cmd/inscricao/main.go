package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"selecao/internal/api"
	"selecao/internal/captcha"
	"selecao/internal/common"
	"selecao/internal/config"
	"selecao/internal/forms"
	"selecao/internal/observability"
)

// Field order mirrors the form layout.
var fieldOrder = []forms.Field{
	forms.FieldFullName,
	forms.FieldEmail,
	forms.FieldPhone,
	forms.FieldLinkedin,
	forms.FieldSelectedJob,
	forms.FieldPDFFile,
}

var fieldLabels = map[forms.Field]string{
	forms.FieldFullName: "Nome completo: ",
	forms.FieldEmail:    "Email: ",
	forms.FieldPhone:    "Telefone: ",
	forms.FieldLinkedin: "LinkedIn (opcional): ",
}

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()

	client := api.NewClient(cfg.APIBaseURL, nil, nil, logger)
	tokens := &captcha.Box{}
	tokens.Set(cfg.CaptchaToken)
	form := forms.NewApplicationForm(client, tokens)

	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Println("Processo seletivo")
	fmt.Println("Preencha os dados abaixo para participar")
	fmt.Println()

	for _, field := range fieldOrder {
		promptField(ctx, in, form, client, field)
	}

	for {
		err := form.Submit(ctx)
		if err == nil {
			fmt.Println("Formulário enviado com sucesso!")
			fmt.Println("Entraremos em contato em breve.")
			return
		}

		switch {
		case errors.Is(err, forms.ErrCaptchaMissing):
			fmt.Println(forms.MsgCaptchaRequired)
			tokens.Set(prompt(in, "Token reCAPTCHA: "))
		case common.Is(err, common.CodeValidation):
			for _, field := range fieldOrder {
				if message, ok := form.Errors()[field]; ok {
					fmt.Println(message)
					promptField(ctx, in, form, client, field)
				}
			}
		default:
			fmt.Println("Erro ao enviar formulário")
			fmt.Println("Tente novamente em alguns instantes.")
			if !confirm(in, "Tentar novamente?") {
				return
			}
		}
	}
}

func promptField(ctx context.Context, in *bufio.Scanner, form *forms.ApplicationForm, client *api.Client, field forms.Field) {
	switch field {
	case forms.FieldSelectedJob:
		promptJob(ctx, in, form, client)
	case forms.FieldPDFFile:
		promptResume(in, form)
	default:
		form.SetField(field, prompt(in, fieldLabels[field]))
	}
}

// promptJob fetches the offered postings at the moment the selector is shown,
// the same way the browser form loads them on focus.
func promptJob(ctx context.Context, in *bufio.Scanner, form *forms.ApplicationForm, client *api.Client) {
	fmt.Println("Carregando vagas...")
	items, err := client.ListActiveJobs(ctx)
	if err != nil {
		fmt.Println("Erro ao buscar vagas. Tente novamente em alguns instantes.")
		return
	}
	form.SetJobs(items)
	if len(form.Jobs()) == 0 {
		fmt.Println("Nenhuma vaga disponível no momento.")
		return
	}
	fmt.Println("Vaga de interesse:")
	for _, item := range form.Jobs() {
		fmt.Printf("  [%s] %s\n", item.ID, item.Titulo)
	}
	form.SelectJob(prompt(in, "Selecione uma vaga (id): "))
}

func promptResume(in *bufio.Scanner, form *forms.ApplicationForm) {
	path := prompt(in, "Arquivo PDF (máx. 10MB): ")
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Não foi possível ler o arquivo:", err)
		return
	}
	form.AttachResume(&api.ResumeFile{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	})
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func confirm(in *bufio.Scanner, question string) bool {
	answer := prompt(in, question+" (s/n): ")
	return strings.EqualFold(answer, "s") || strings.EqualFold(answer, "sim")
}
