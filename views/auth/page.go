package auth

import (
	"context"

	"github.com/a-h/templ"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/views/components"
)

const lorem = `Lorem ipsum dolor sit amet,<br>consectetur adipiscing elit.`

// Page renders the auth card for the form's current mode
func Page(form authform.Snapshot, isLoading bool) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div class="min-h-screen bg-gradient-to-br from-purple-50 via-blue-50 to-indigo-100 flex items-center justify-center p-4 relative overflow-hidden">`)
		hw.Render(ctx, components.Background())
		hw.Raw(`<div class="relative z-10 w-full max-w-md">`)
		hw.Printf(`<div id="auth-card" data-mode="%s" class="%s">`, components.Esc(string(form.Mode)), components.Esc(components.CardClass()))

		switch form.Mode {
		case authform.ModeLogin:
			hw.Render(ctx, Login(form, isLoading))
		case authform.ModeSignup:
			hw.Render(ctx, Signup(form, isLoading))
		default:
			hw.Render(ctx, Welcome())
		}

		hw.Raw(`</div></div></div>`)
	})
}

func Welcome() templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div class="text-center mb-8">`)
		hw.Raw(`<h1 class="text-3xl font-bold text-gray-800 mb-4">Welcome to PopX</h1>`)
		hw.Printf(`<p class="text-gray-600 mb-8">%s</p>`, lorem)
		hw.Raw(`</div><div class="space-y-4">`)
		hw.Render(ctx, components.ActionButton("/auth/mode", "mode", string(authform.ModeSignup), "Create Account", components.ButtonPrimary))
		hw.Render(ctx, components.ActionButton("/auth/mode", "mode", string(authform.ModeLogin), "Already Registered? Login", components.ButtonOutline))
		hw.Raw(`</div>`)
	})
}

func Login(form authform.Snapshot, isLoading bool) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div class="text-center mb-8">`)
		hw.Raw(`<h2 class="text-2xl font-bold text-gray-800 mb-2">Signin to your<br>PopX account</h2>`)
		hw.Printf(`<p class="text-gray-500">%s</p>`, lorem)
		hw.Raw(`</div>`)

		hw.Raw(`<form id="login-form" method="post" action="/auth/login" class="space-y-6">`)
		hw.Render(ctx, defaultSubmit(isLoading))
		hw.Render(ctx, field(authform.FieldEmail, "Email Address", "email", form.Data.Email, "Enter email address", true))
		hw.Render(ctx, passwordField("Password", form, "Enter password"))
		hw.Render(ctx, submitButton("Login", "Signing in...", components.ButtonMuted, isLoading))
		hw.Raw(`</form>`)

		hw.Render(ctx, backLink())
	})
}

func Signup(form authform.Snapshot, isLoading bool) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div class="text-center mb-8">`)
		hw.Raw(`<h2 class="text-2xl font-bold text-gray-800 mb-2">Create your<br>PopX account</h2>`)
		hw.Raw(`</div>`)

		hw.Raw(`<form id="signup-form" method="post" action="/auth/signup" class="space-y-4">`)
		hw.Render(ctx, defaultSubmit(isLoading))
		hw.Render(ctx, field(authform.FieldName, "Full Name*", "text", form.Data.Name, "Marry Doe", true))
		hw.Render(ctx, field(authform.FieldPhone, "Phone number*", "tel", form.Data.Phone, "Marry Doe", false))
		hw.Render(ctx, field(authform.FieldEmail, "Email address*", "email", form.Data.Email, "Marry Doe", true))
		hw.Render(ctx, passwordField("Password *", form, "Marry Doe"))
		hw.Render(ctx, field(authform.FieldCompany, "Company name", "text", form.Data.Company, "Marry Doe", false))
		hw.Render(ctx, agencyField(form.Data.IsAgency))
		hw.Render(ctx, submitButton("Create Account", "Creating Account...", components.ButtonPrimary, isLoading, "mt-6"))
		hw.Raw(`</form>`)

		hw.Render(ctx, backLink())
	})
}

func field(name, label, inputType, value, placeholder string, required bool) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div>`)
		hw.Printf(`<label for="%s" class="%s">%s</label>`, components.Esc(name), components.Esc(components.LabelClass()), components.Esc(label))
		hw.Printf(`<input id="%s" name="%s" type="%s" placeholder="%s" value="%s" class="%s"`,
			components.Esc(name), components.Esc(name), components.Esc(inputType),
			components.Esc(placeholder), components.Esc(value), components.Esc(components.InputClass()))
		if required {
			hw.Raw(` required`)
		}
		hw.Raw(`></div>`)
	})
}

// passwordField renders the password input with its visibility toggle. The
// typed password is never written back into the page. With scripts the toggle
// flips the input in place; without them it posts the form to the toggle endpoint.
func passwordField(label string, form authform.Snapshot, placeholder string) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		inputType := "password"
		toggleLabel := "Show password"
		toggleText := "Show"
		if form.ShowPassword {
			inputType = "text"
			toggleLabel = "Hide password"
			toggleText = "Hide"
		}

		hw.Raw(`<div>`)
		hw.Printf(`<label for="password" class="%s">%s</label>`, components.Esc(components.LabelClass()), components.Esc(label))
		hw.Raw(`<div class="relative">`)
		hw.Printf(`<input id="password" name="password" type="%s" placeholder="%s" value="" autocomplete="current-password" class="%s" required>`,
			components.Esc(inputType), components.Esc(placeholder), components.Esc(components.InputClass("pr-16")))
		hw.Printf(`<button type="submit" formaction="/auth/password-visibility" formnovalidate data-password-toggle aria-label="%s" class="absolute right-3 top-1/2 -translate-y-1/2 text-sm text-gray-500 hover:text-gray-700">%s</button>`,
			components.Esc(toggleLabel), components.Esc(toggleText))
		hw.Raw(`</div></div>`)
	})
}

func agencyField(isAgency bool) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div class="flex items-center space-x-2 py-2">`)
		hw.Raw(`<span class="text-gray-700">Are you an Agency?*</span>`)
		hw.Raw(`<div class="flex space-x-4">`)
		for _, opt := range []struct {
			value string
			label string
			on    bool
		}{
			{"true", "Yes", isAgency},
			{"false", "No", !isAgency},
		} {
			hw.Raw(`<label class="flex items-center">`)
			hw.Printf(`<input type="radio" name="%s" value="%s" class="text-purple-600 focus:ring-purple-500"`, authform.FieldIsAgency, opt.value)
			if opt.on {
				hw.Raw(` checked`)
			}
			hw.Printf(`><span class="ml-2 text-gray-700">%s</span></label>`, opt.label)
		}
		hw.Raw(`</div></div>`)
	})
}

func submitButton(label, loadingLabel string, variant components.ButtonVariant, isLoading bool, extra ...string) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Printf(`<button type="submit" data-loading-label="%s" class="%s"`,
			components.Esc(loadingLabel), components.Esc(components.ButtonClass(variant, extra...)))
		if isLoading {
			hw.Printf(` disabled>%s</button>`, components.Esc(loadingLabel))
			return
		}
		hw.Printf(`>%s</button>`, components.Esc(label))
	})
}

// defaultSubmit comes first in the form so pressing Enter submits instead of
// toggling password visibility
func defaultSubmit(isLoading bool) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		if isLoading {
			hw.Raw(`<button type="submit" class="hidden" tabindex="-1" aria-hidden="true" disabled></button>`)
			return
		}
		hw.Raw(`<button type="submit" class="hidden" tabindex="-1" aria-hidden="true"></button>`)
	})
}

func backLink() templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div class="mt-6 text-center">`)
		hw.Render(ctx, components.ActionButton("/auth/mode", "mode", string(authform.ModeWelcome), "Back to welcome", components.ButtonLink))
		hw.Raw(`</div>`)
	})
}
