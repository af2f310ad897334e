package forms

import (
	"context"
	"strings"

	"selecao/internal/api"
	"selecao/internal/captcha"
	"selecao/internal/common"
	"selecao/internal/domain/job"
)

// ApplicationSubmitter sends the assembled multipart payload.
type ApplicationSubmitter interface {
	SubmitApplication(ctx context.Context, sub api.Submission) error
}

// ApplicationForm drives the public application form: draft, per-field
// errors, the captcha gate, and the idle/submitting/succeeded/failed machine.
type ApplicationForm struct {
	submitter ApplicationSubmitter
	captcha   captcha.TokenSource
	jobs      []job.Job
	draft     ApplicationDraft
	errors    Errors
	status    Status
	inFlight  bool
}

func NewApplicationForm(submitter ApplicationSubmitter, tokens captcha.TokenSource) *ApplicationForm {
	return &ApplicationForm{
		submitter: submitter,
		captcha:   tokens,
		errors:    Errors{},
		status:    StatusIdle,
	}
}

// SetJobs replaces the offered postings the selector and the payload snapshot
// resolve against.
func (f *ApplicationForm) SetJobs(items []job.Job) {
	f.jobs = job.Active(items)
}

func (f *ApplicationForm) Jobs() []job.Job {
	return f.jobs
}

// SetField updates one field and optimistically clears its error. The rest of
// the form is not re-validated until the next submit.
func (f *ApplicationForm) SetField(field Field, value string) {
	switch field {
	case FieldFullName:
		f.draft.FullName = value
	case FieldEmail:
		f.draft.Email = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldLinkedin:
		f.draft.Linkedin = value
	default:
		return
	}
	delete(f.errors, field)
}

// SelectJob picks a posting by id and snapshots its description into the
// draft. Unknown ids are ignored; the empty id clears the selection.
func (f *ApplicationForm) SelectJob(id string) {
	if id == "" {
		f.draft.SelectedJob = ""
		f.draft.DescDaVaga = ""
		return
	}
	selected, ok := job.Find(f.jobs, id)
	if !ok {
		return
	}
	f.draft.SelectedJob = selected.ID
	f.draft.DescDaVaga = selected.Descricao
	delete(f.errors, FieldSelectedJob)
}

func (f *ApplicationForm) AttachResume(file *api.ResumeFile) {
	f.draft.Resume = file
	delete(f.errors, FieldPDFFile)
}

func (f *ApplicationForm) Draft() ApplicationDraft {
	return f.draft
}

func (f *ApplicationForm) Errors() Errors {
	return f.errors
}

func (f *ApplicationForm) Status() Status {
	return f.status
}

func (f *ApplicationForm) InFlight() bool {
	return f.inFlight
}

// Submit re-validates the whole draft, enforces the captcha gate, and sends
// the payload. Success resets the draft to its initial empty shape; failure
// preserves it so the user can correct and resubmit.
func (f *ApplicationForm) Submit(ctx context.Context) error {
	errs := ValidateApplication(f.draft)
	f.errors = errs
	if !errs.Valid() {
		return common.NewValidationError("formulário inválido", errs.fieldMap())
	}

	token := ""
	if f.captcha != nil {
		token = strings.TrimSpace(f.captcha.Token())
	}
	if token == "" {
		return ErrCaptchaMissing
	}

	f.status = StatusSubmitting
	f.inFlight = true
	defer func() { f.inFlight = false }()

	selected, _ := job.Find(f.jobs, f.draft.SelectedJob)
	sub := api.Submission{
		FullName:       f.draft.FullName,
		Email:          f.draft.Email,
		Phone:          f.draft.Phone,
		Linkedin:       f.draft.Linkedin,
		JobID:          f.draft.SelectedJob,
		JobTitle:       selected.Titulo,
		JobDescription: selected.Descricao,
		CaptchaToken:   token,
	}
	if f.draft.Resume != nil {
		sub.Resume = *f.draft.Resume
	}

	if err := f.submitter.SubmitApplication(ctx, sub); err != nil {
		f.status = StatusFailed
		return err
	}

	f.status = StatusSucceeded
	f.draft = ApplicationDraft{}
	f.errors = Errors{}
	return nil
}
