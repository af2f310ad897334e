package forms

import (
	"context"

	"selecao/internal/common"
	"selecao/internal/domain/job"
)

// JobWriter sends job mutations. Create is used for a fresh draft, Update
// when the form was opened over an existing posting.
type JobWriter interface {
	CreateJob(ctx context.Context, titulo, descricao string) error
	UpdateJob(ctx context.Context, id, titulo, descricao string) error
}

// JobForm drives the admin create/edit form for postings.
type JobForm struct {
	writer    JobWriter
	draft     JobDraft
	editingID string
	errors    Errors
	status    Status
	inFlight  bool
}

func NewJobForm(writer JobWriter) *JobForm {
	return &JobForm{
		writer: writer,
		errors: Errors{},
		status: StatusIdle,
	}
}

// BeginEdit opens the form over an existing posting.
func (f *JobForm) BeginEdit(j job.Job) {
	f.editingID = j.ID
	f.draft = JobDraft{Title: j.Titulo, Description: j.Descricao}
	f.errors = Errors{}
}

// Reset returns the form to its initial empty create state.
func (f *JobForm) Reset() {
	f.editingID = ""
	f.draft = JobDraft{}
	f.errors = Errors{}
}

func (f *JobForm) SetField(field Field, value string) {
	switch field {
	case FieldTitle:
		f.draft.Title = value
	case FieldDescription:
		f.draft.Description = value
	default:
		return
	}
	delete(f.errors, field)
}

func (f *JobForm) Editing() bool {
	return f.editingID != ""
}

func (f *JobForm) Draft() JobDraft {
	return f.draft
}

func (f *JobForm) Errors() Errors {
	return f.errors
}

func (f *JobForm) Status() Status {
	return f.status
}

func (f *JobForm) InFlight() bool {
	return f.inFlight
}

// Submit validates and sends the draft, using the update verb when editing
// and the create verb otherwise. Success resets the form; failure preserves
// the draft.
func (f *JobForm) Submit(ctx context.Context) error {
	errs := ValidateJob(f.draft)
	f.errors = errs
	if !errs.Valid() {
		return common.NewValidationError("vaga inválida", errs.fieldMap())
	}

	f.status = StatusSubmitting
	f.inFlight = true
	defer func() { f.inFlight = false }()

	var err error
	if f.editingID != "" {
		err = f.writer.UpdateJob(ctx, f.editingID, f.draft.Title, f.draft.Description)
	} else {
		err = f.writer.CreateJob(ctx, f.draft.Title, f.draft.Description)
	}
	if err != nil {
		f.status = StatusFailed
		return err
	}

	f.status = StatusSucceeded
	f.Reset()
	return nil
}
