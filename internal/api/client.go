package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/google/uuid"

	"selecao/internal/common"
	"selecao/internal/domain/candidate"
	"selecao/internal/domain/job"
)

// TokenProvider supplies the bearer token attached to authenticated calls.
// An empty token means logged out.
type TokenProvider interface {
	Token() string
}

// Client is the typed client for the recruitment API. It deliberately sets no
// timeout of its own: requests run until the transport or the caller's
// context gives up.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, tokens TokenProvider, httpClient *http.Client, logger *slog.Logger) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    trimmed,
		tokens:     tokens,
		httpClient: httpClient,
		logger:     logger,
	}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type jobRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

type jobStatusRequest struct {
	Ativa bool `json:"ativa"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, senha string) (string, error) {
	body, status, err := c.sendJSON(ctx, http.MethodPost, "/api/admin/login", loginRequest{Email: email, Senha: senha}, false)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", c.apiError(status, body)
	}
	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return parsed.Token, nil
}

// ListJobs fetches the full job collection. Authenticated.
func (c *Client) ListJobs(ctx context.Context) ([]job.Job, error) {
	body, status, err := c.sendJSON(ctx, http.MethodGet, "/api/vagas", nil, true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, c.apiError(status, body)
	}
	var items []job.Job
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return items, nil
}

// ListActiveJobs fetches the postings offered to applicants. Public.
func (c *Client) ListActiveJobs(ctx context.Context) ([]job.Job, error) {
	body, status, err := c.sendJSON(ctx, http.MethodGet, "/api/vagas/ativas", nil, false)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, c.apiError(status, body)
	}
	var items []job.Job
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return items, nil
}

func (c *Client) CreateJob(ctx context.Context, titulo, descricao string) error {
	body, status, err := c.sendJSON(ctx, http.MethodPost, "/api/vagas", jobRequest{Titulo: titulo, Descricao: descricao}, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return c.apiError(status, body)
	}
	return nil
}

func (c *Client) UpdateJob(ctx context.Context, id, titulo, descricao string) error {
	body, status, err := c.sendJSON(ctx, http.MethodPut, "/api/vagas/"+id, jobRequest{Titulo: titulo, Descricao: descricao}, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return c.apiError(status, body)
	}
	return nil
}

func (c *Client) SetJobStatus(ctx context.Context, id string, ativa bool) error {
	body, status, err := c.sendJSON(ctx, http.MethodPatch, "/api/vagas/"+id+"/status", jobStatusRequest{Ativa: ativa}, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return c.apiError(status, body)
	}
	return nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	body, status, err := c.sendJSON(ctx, http.MethodDelete, "/api/vagas/"+id, nil, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return c.apiError(status, body)
	}
	return nil
}

// ListCandidates fetches the candidate collection. Authenticated.
func (c *Client) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	body, status, err := c.sendJSON(ctx, http.MethodGet, "/api/candidatos", nil, true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, c.apiError(status, body)
	}
	var items []candidate.Candidate
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return items, nil
}

// ResumeFile is the uploaded resume carried in the multipart payload.
type ResumeFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f ResumeFile) Size() int64 {
	return int64(len(f.Data))
}

// Submission is the public application payload. Job title and description are
// the snapshot resolved from the loaded job list, not user input.
type Submission struct {
	FullName       string
	Email          string
	Phone          string
	Linkedin       string
	JobID          string
	JobTitle       string
	JobDescription string
	CaptchaToken   string
	Resume         ResumeFile
}

// SubmitApplication sends the public form as multipart form data. Public.
func (c *Client) SubmitApplication(ctx context.Context, sub Submission) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := []struct {
		name  string
		value string
	}{
		{"fullName", sub.FullName},
		{"email", sub.Email},
		{"phone", sub.Phone},
		{"linkedin", sub.Linkedin},
		{"selectedJob", sub.JobID},
		{"nomeDaVaga", sub.JobTitle},
		{"descDaVaga", sub.JobDescription},
		{"g-recaptcha-response", sub.CaptchaToken},
	}
	for _, field := range fields {
		if err := mw.WriteField(field.name, field.value); err != nil {
			return fmt.Errorf("encode form field %s: %w", field.name, err)
		}
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdfFile"; filename=%q`, sub.Resume.Name))
	header.Set("Content-Type", sub.Resume.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("encode file part: %w", err)
	}
	if _, err := part.Write(sub.Resume.Data); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/curriculos", &buf, false)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	body, status, err := c.do(req)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return c.apiError(status, body)
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, authenticated bool) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := c.newRequest(ctx, method, path, body, authenticated)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, authenticated bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authenticated {
		token := ""
		if c.tokens != nil {
			token = c.tokens.Token()
		}
		if token == "" {
			return nil, common.NewError(common.CodeUnauthorized, "not logged in", nil)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, 0, common.NewError(common.CodeUnavailable, "api request failed", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) apiError(status int, body []byte) error {
	message := ""
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		message = parsed.Error
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		if message == "" {
			message = "unauthorized"
		}
		return common.NewError(common.CodeUnauthorized, message, nil)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message == "" {
			message = "invalid request"
		}
		return common.NewError(common.CodeValidation, message, nil)
	case http.StatusNotFound:
		if message == "" {
			message = "not found"
		}
		return common.NewError(common.CodeNotFound, message, nil)
	default:
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", status)
		}
		return common.NewError(common.CodeInternal, message, nil)
	}
}
