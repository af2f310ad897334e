package captcha

// TokenSource supplies the token produced by the third-party challenge. The
// verification itself happens server-side; the client only needs a token in
// hand before it may submit.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource over an already-obtained token.
type StaticToken string

func (t StaticToken) Token() string {
	return string(t)
}

// Box is a mutable TokenSource, filled in once the user completes the
// challenge.
type Box struct {
	value string
}

func (b *Box) Set(token string) {
	b.value = token
}

func (b *Box) Token() string {
	return b.value
}
