package authform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/loganlanou/popx/internal/identity"
)

// ErrUnknownMode is returned when a mode name is not welcome, login or signup
var ErrUnknownMode = errors.New("unknown form mode")

// FormKey is the echo context key the session middleware stores the form under
const FormKey = "auth_form"

// Mode is the screen the auth form is showing
type Mode string

const (
	ModeWelcome Mode = "welcome"
	ModeLogin   Mode = "login"
	ModeSignup  Mode = "signup"
)

// ParseMode converts a posted mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWelcome, ModeLogin, ModeSignup:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Field names as they appear in the HTML form
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
	FieldCompany  = "company"
	FieldIsAgency = "isAgency"
)

// Data is the input buffer of the form currently on screen.
// The password never leaves the server in JSON.
type Data struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	IsAgency bool   `json:"isAgency"`
}

// SignupParams converts the buffer into identity signup input
func (d Data) SignupParams() identity.SignupParams {
	return identity.SignupParams{
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
		Phone:    d.Phone,
		Company:  d.Company,
		IsAgency: d.IsAgency,
	}
}

// FieldEvent is a single input change
type FieldEvent struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

// Snapshot is a copy of the form state used for rendering
type Snapshot struct {
	Mode         Mode `json:"mode"`
	Data         Data `json:"data"`
	ShowPassword bool `json:"showPassword"`
}

// Form holds one browser's auth form state. Entering a mode starts from an
// empty buffer with the password masked.
type Form struct {
	mu           sync.Mutex
	mode         Mode
	data         Data
	showPassword bool
}

// New returns a form on the welcome screen
func New() *Form {
	return &Form{mode: ModeWelcome}
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Mode: f.mode, Data: f.data, ShowPassword: f.showPassword}
}

func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Select switches to mode, discarding the current buffer
func (f *Form) Select(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.enterLocked(mode)
	return nil
}

// Back returns to the welcome screen
func (f *Form) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enterLocked(ModeWelcome)
}

// Reset is used after a successful submission
func (f *Form) Reset() {
	f.Back()
}

// Change applies one input event. Checkbox and radio events carry a boolean,
// every other input type stores the raw string. Unknown field names are ignored.
func (f *Form) Change(ev FieldEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ev.Type == "checkbox" || ev.Type == "radio" {
		if ev.Name == FieldIsAgency {
			f.data.IsAgency = ev.Checked
		}
		return
	}

	switch ev.Name {
	case FieldName:
		f.data.Name = ev.Value
	case FieldEmail:
		f.data.Email = ev.Value
	case FieldPassword:
		f.data.Password = ev.Value
	case FieldPhone:
		f.data.Phone = ev.Value
	case FieldCompany:
		f.data.Company = ev.Value
	}
}

// TogglePassword flips between masked and plain password display
func (f *Form) TogglePassword() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showPassword = !f.showPassword
	return f.showPassword
}

func (f *Form) enterLocked(mode Mode) {
	f.mode = mode
	f.data = Data{}
	f.showPassword = false
}
