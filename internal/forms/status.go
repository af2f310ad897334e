package forms

import "errors"

// Status is a form's submission state. A form starts idle; a submit that
// passes the gates moves it through submitting into succeeded or failed, and
// both terminal states accept a new submit.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// ErrCaptchaMissing blocks a submit before any state transition when no
// challenge token has been produced yet. Not a field error.
var ErrCaptchaMissing = errors.New("captcha token missing")

// MsgCaptchaRequired is the user-facing prompt shown for ErrCaptchaMissing.
const MsgCaptchaRequired = "Por favor, confirme o reCAPTCHA antes de enviar."
