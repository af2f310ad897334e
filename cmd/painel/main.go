package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"selecao/internal/api"
	"selecao/internal/common"
	"selecao/internal/config"
	"selecao/internal/forms"
	"selecao/internal/observability"
	"selecao/internal/panel"
	"selecao/internal/session"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()

	sess := session.New(cfg.SessionFile)
	if err := sess.Load(); err != nil {
		log.Fatal(err)
	}
	client := api.NewClient(cfg.APIBaseURL, sess, nil, logger)
	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		if !sess.LoggedIn() {
			if !runLogin(ctx, in, client, sess) {
				return
			}
		}
		jobs := panel.NewJobList(client, logger)
		if err := jobs.Load(ctx); err != nil {
			if common.Is(err, common.CodeUnauthorized) {
				fmt.Println("Sessão expirada. Faça login novamente.")
				_ = sess.Clear()
				continue
			}
			log.Fatal(err)
		}
		candidates := panel.NewCandidateList(client, logger)
		if !runDashboard(ctx, in, client, sess, jobs, candidates) {
			return
		}
	}
}

func runLogin(ctx context.Context, in *bufio.Scanner, client *api.Client, sess *session.Session) bool {
	fmt.Println("Área Administrativa: faça login para acessar o painel")
	form := forms.NewLoginForm(client, sess)
	for {
		email := prompt(in, "Email (vazio para sair): ")
		if email == "" {
			return false
		}
		form.SetField(forms.FieldEmail, email)
		form.SetField(forms.FieldSenha, prompt(in, "Senha: "))

		err := form.Submit(ctx)
		if err == nil {
			return true
		}
		printFieldErrors(form.Errors())
		if form.GeneralError() != "" {
			fmt.Println(form.GeneralError())
		}
	}
}

func runDashboard(ctx context.Context, in *bufio.Scanner, client *api.Client, sess *session.Session, jobs *panel.JobList, candidates *panel.CandidateList) bool {
	for {
		fmt.Println()
		fmt.Println("Dashboard Administrativo")
		fmt.Println("1) Listar vagas")
		fmt.Println("2) Nova vaga")
		fmt.Println("3) Editar vaga")
		fmt.Println("4) Ativar/desativar vaga")
		fmt.Println("5) Excluir vaga")
		fmt.Println("6) Candidatos")
		fmt.Println("7) Sair da conta")
		fmt.Println("0) Fechar")

		switch prompt(in, "> ") {
		case "1":
			printJobs(jobs)
		case "2":
			form := forms.NewJobForm(client)
			if runJobForm(ctx, in, form) {
				reload(ctx, jobs)
			}
		case "3":
			id := prompt(in, "ID da vaga: ")
			item, ok := jobs.Find(id)
			if !ok {
				fmt.Println("Vaga não encontrada.")
				continue
			}
			form := forms.NewJobForm(client)
			form.BeginEdit(item)
			if runJobForm(ctx, in, form) {
				reload(ctx, jobs)
			}
		case "4":
			id := prompt(in, "ID da vaga: ")
			if err := jobs.Toggle(ctx, id); err != nil {
				if expired(err, sess) {
					return true
				}
				fmt.Println("Erro ao atualizar status da vaga. Tente novamente.")
			}
		case "5":
			id := prompt(in, "ID da vaga: ")
			if !confirm(in, "Tem certeza que deseja excluir esta vaga?") {
				continue
			}
			if err := jobs.Delete(ctx, id); err != nil {
				if expired(err, sess) {
					return true
				}
				fmt.Println("Erro ao excluir vaga. Tente novamente.")
			}
		case "6":
			if !runCandidates(ctx, in, sess, candidates) {
				return true
			}
		case "7":
			if confirm(in, "Tem certeza que deseja sair?") {
				_ = sess.Clear()
				return true
			}
		case "0":
			return false
		}
	}
}

func runJobForm(ctx context.Context, in *bufio.Scanner, form *forms.JobForm) bool {
	if form.Editing() {
		fmt.Println("Editar Vaga (vazio mantém o valor atual)")
	} else {
		fmt.Println("Nova Vaga")
	}
	for {
		if value := prompt(in, "Título da Vaga: "); value != "" || !form.Editing() {
			form.SetField(forms.FieldTitle, value)
		}
		if value := prompt(in, "Descrição Interna: "); value != "" || !form.Editing() {
			form.SetField(forms.FieldDescription, value)
		}

		err := form.Submit(ctx)
		if err == nil {
			fmt.Println("Vaga salva.")
			return true
		}
		if common.Is(err, common.CodeValidation) {
			printFieldErrors(form.Errors())
		} else {
			fmt.Println("Erro ao salvar vaga. Tente novamente.")
		}
		if !confirm(in, "Tentar novamente?") {
			return false
		}
	}
}

func runCandidates(ctx context.Context, in *bufio.Scanner, sess *session.Session, candidates *panel.CandidateList) bool {
	if err := candidates.EnsureLoaded(ctx); err != nil {
		if expired(err, sess) {
			return false
		}
		fmt.Println("Erro ao carregar candidatos. Tente novamente.")
		return true
	}
	for {
		for _, item := range candidates.Visible() {
			fmt.Printf("[%s] %s | vaga %s | %d%% de aderência\n", item.ID, item.Nome, item.Vaga, item.MatchPercent())
			fmt.Printf("    %s | %s | currículo: %s\n", item.Email, item.Telefone, item.CurriculoURL)
			if item.AnaliseIA != "" {
				fmt.Printf("    análise: %s\n", item.AnaliseIA)
			}
		}
		value := prompt(in, "Filtrar por vaga (id, vazio = todas, v = voltar): ")
		if strings.EqualFold(value, "v") {
			return true
		}
		candidates.SelectJob(value)
	}
}

func printJobs(jobs *panel.JobList) {
	items := jobs.Items()
	if len(items) == 0 {
		fmt.Println("Nenhuma vaga cadastrada.")
		return
	}
	for _, item := range items {
		status := "inativa"
		if item.Ativa {
			status = "ativa"
		}
		fmt.Printf("[%s] %s (%s), criada em %s\n", item.ID, item.Titulo, status, item.CriadoEm.Format("02/01/2006"))
		fmt.Printf("    %s\n", item.Descricao)
	}
}

func reload(ctx context.Context, jobs *panel.JobList) {
	if err := jobs.Refresh(ctx); err != nil {
		fmt.Println("Erro ao recarregar vagas. Tente novamente.")
	}
}

func expired(err error, sess *session.Session) bool {
	if !common.Is(err, common.CodeUnauthorized) {
		return false
	}
	fmt.Println("Sessão expirada. Faça login novamente.")
	_ = sess.Clear()
	return true
}

func printFieldErrors(errs forms.Errors) {
	for _, message := range errs {
		fmt.Println(message)
	}
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
