package notify

import "encoding/gob"

// Variant selects the toast styling
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient toast shown after an action
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

func (n Notification) IsDestructive() bool {
	return n.Variant == VariantDestructive
}

func init() {
	// stored in session flashes
	gob.Register(Notification{})
}

func LoginSucceeded() Notification {
	return Notification{
		Title:       "Welcome back!",
		Description: "You have successfully logged in.",
		Variant:     VariantDefault,
	}
}

func LoginFailed() Notification {
	return Notification{
		Title:       "Login failed",
		Description: "Please check your credentials and try again.",
		Variant:     VariantDestructive,
	}
}

func SignupSucceeded() Notification {
	return Notification{
		Title:       "Account created!",
		Description: "Welcome to PopX! Your account has been created successfully.",
		Variant:     VariantDefault,
	}
}

func SignupFailed() Notification {
	return Notification{
		Title:       "Signup failed",
		Description: "Please try again with different credentials.",
		Variant:     VariantDestructive,
	}
}

func LoggedOut() Notification {
	return Notification{
		Title:       "Logged out successfully",
		Description: "You have been logged out. See you soon!",
		Variant:     VariantDefault,
	}
}

// Busy is shown when a second submission arrives while one is pending
func Busy() Notification {
	return Notification{
		Title:       "Please wait",
		Description: "A request is already in progress.",
		Variant:     VariantDestructive,
	}
}
