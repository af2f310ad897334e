package forms

// Field identifies a form field. The set is closed: validation only ever
// produces errors keyed by these values.
type Field string

const (
	FieldFullName    Field = "fullName"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldLinkedin    Field = "linkedin"
	FieldSelectedJob Field = "selectedJob"
	FieldPDFFile     Field = "pdfFile"

	FieldTitle       Field = "title"
	FieldDescription Field = "internalDescription"

	FieldSenha Field = "senha"
)

// Errors maps a field to its human-readable message. A field is absent iff it
// currently passes validation.
type Errors map[Field]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) fieldMap() map[string]string {
	fields := make(map[string]string, len(e))
	for field, message := range e {
		fields[string(field)] = message
	}
	return fields
}
