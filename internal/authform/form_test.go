package authform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsOnWelcome(t *testing.T) {
	f := New()

	snap := f.Snapshot()

	assert.Equal(t, ModeWelcome, snap.Mode)
	assert.Equal(t, Data{}, snap.Data)
	assert.False(t, snap.ShowPassword)
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name string
		from Mode
		act  func(*Form) error
		want Mode
	}{
		{"welcome to login", ModeWelcome, func(f *Form) error { return f.Select(ModeLogin) }, ModeLogin},
		{"welcome to signup", ModeWelcome, func(f *Form) error { return f.Select(ModeSignup) }, ModeSignup},
		{"login back", ModeLogin, func(f *Form) error { f.Back(); return nil }, ModeWelcome},
		{"signup back", ModeSignup, func(f *Form) error { f.Back(); return nil }, ModeWelcome},
		{"welcome back", ModeWelcome, func(f *Form) error { f.Back(); return nil }, ModeWelcome},
		{"select welcome", ModeSignup, func(f *Form) error { return f.Select(ModeWelcome) }, ModeWelcome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			require.NoError(t, f.Select(tt.from))

			require.NoError(t, tt.act(f))

			assert.Equal(t, tt.want, f.Mode())
		})
	}
}

func TestSelect_UnknownMode(t *testing.T) {
	f := New()
	require.NoError(t, f.Select(ModeLogin))

	err := f.Select(Mode("admin"))

	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, ModeLogin, f.Mode())
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"welcome", "login", "signup"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("Login")
	assert.ErrorIs(t, err, ErrUnknownMode)
	_, err = ParseMode("")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestChange_Coercion(t *testing.T) {
	f := New()
	require.NoError(t, f.Select(ModeSignup))

	f.Change(FieldEvent{Name: FieldName, Type: "text", Value: "Marry Doe"})
	f.Change(FieldEvent{Name: FieldEmail, Type: "email", Value: "marry@example.com"})
	f.Change(FieldEvent{Name: FieldPassword, Type: "password", Value: "secret"})
	f.Change(FieldEvent{Name: FieldPhone, Type: "tel", Value: "555-0100"})
	f.Change(FieldEvent{Name: FieldCompany, Type: "text", Value: "Doe Agency"})
	f.Change(FieldEvent{Name: FieldIsAgency, Type: "checkbox", Value: "on", Checked: true})

	assert.Equal(t, Data{
		Name:     "Marry Doe",
		Email:    "marry@example.com",
		Password: "secret",
		Phone:    "555-0100",
		Company:  "Doe Agency",
		IsAgency: true,
	}, f.Snapshot().Data)

	// the checked flag wins over the value for boolean inputs
	f.Change(FieldEvent{Name: FieldIsAgency, Type: "radio", Value: "true", Checked: false})
	assert.False(t, f.Snapshot().Data.IsAgency)

	// text events for a string field keep the raw value, even "true"
	f.Change(FieldEvent{Name: FieldCompany, Type: "text", Value: "true"})
	assert.Equal(t, "true", f.Snapshot().Data.Company)
}

func TestChange_UnknownFieldIgnored(t *testing.T) {
	f := New()
	require.NoError(t, f.Select(ModeLogin))

	f.Change(FieldEvent{Name: "role", Type: "text", Value: "admin"})
	f.Change(FieldEvent{Name: FieldEmail, Type: "checkbox", Checked: true})

	assert.Equal(t, Data{}, f.Snapshot().Data)
}

func TestModeChangeDiscardsBuffer(t *testing.T) {
	f := New()
	require.NoError(t, f.Select(ModeLogin))
	f.Change(FieldEvent{Name: FieldEmail, Type: "email", Value: "a@b.com"})
	f.TogglePassword()

	f.Back()

	snap := f.Snapshot()
	assert.Equal(t, Data{}, snap.Data)
	assert.False(t, snap.ShowPassword)
}

func TestTogglePassword_TwiceRestoresMask(t *testing.T) {
	f := New()
	require.NoError(t, f.Select(ModeLogin))
	f.Change(FieldEvent{Name: FieldPassword, Type: "password", Value: "secret"})

	assert.True(t, f.TogglePassword())
	assert.Equal(t, "secret", f.Snapshot().Data.Password)
	assert.False(t, f.TogglePassword())

	snap := f.Snapshot()
	assert.False(t, snap.ShowPassword)
	assert.Equal(t, "secret", snap.Data.Password)
}

func TestData_SignupParams(t *testing.T) {
	d := Data{Name: "n", Email: "e", Password: "p", Phone: "ph", Company: "c", IsAgency: true}

	params := d.SignupParams()

	assert.Equal(t, "n", params.Name)
	assert.Equal(t, "e", params.Email)
	assert.Equal(t, "p", params.Password)
	assert.Equal(t, "ph", params.Phone)
	assert.Equal(t, "c", params.Company)
	assert.True(t, params.IsAgency)
}
