package forms

// Registration wizard steps. The step index only advances when the current
// step's rules pass; the summary step has no rules of its own.
const (
	StepAccount = iota
	StepPassword
	StepSummary
)

const minPasswordLength = 6

// Wizard is the three-step registration flow as an explicit state machine:
// states are step indices, the transition guard is the current step's
// validator.
type Wizard struct {
	step int
	data WizardData
	errs map[string]string
}

// WizardData accumulates the registration fields across steps.
type WizardData struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// NewWizard starts a wizard at the account step.
func NewWizard() *Wizard {
	return &Wizard{errs: map[string]string{}}
}

// Step returns the current step index.
func (w *Wizard) Step() int {
	return w.step
}

// Errors returns the current step's validation errors, empty when the last
// Next succeeded or after Back.
func (w *Wizard) Errors() map[string]string {
	return w.errs
}

// Set merges non-empty fields into the wizard's accumulated data.
func (w *Wizard) Set(data WizardData) {
	if data.Username != "" {
		w.data.Username = data.Username
	}
	if data.Email != "" {
		w.data.Email = data.Email
	}
	if data.Password != "" {
		w.data.Password = data.Password
	}
	if data.ConfirmPassword != "" {
		w.data.ConfirmPassword = data.ConfirmPassword
	}
}

// Next validates the current step and advances on success. It returns true
// when the wizard moved forward.
func (w *Wizard) Next() bool {
	w.errs = ValidateStep(w.step, w.data)
	if len(w.errs) > 0 {
		return false
	}
	if w.step < StepSummary {
		w.step++
	}
	return true
}

// Back moves to the previous step and clears the error state.
func (w *Wizard) Back() {
	if w.step > 0 {
		w.step--
	}
	w.errs = map[string]string{}
}

// Complete reports whether the wizard reached the read-only summary step.
func (w *Wizard) Complete() bool {
	return w.step == StepSummary
}

// Registration returns the assembled payload for final submission.
func (w *Wizard) Registration() WizardData {
	return w.data
}

// ValidateStep applies a single step's rules to the accumulated data.
func ValidateStep(step int, data WizardData) map[string]string {
	errs := map[string]string{}
	switch step {
	case StepAccount:
		if data.Username == "" {
			errs["username"] = "Please fill in all fields"
		}
		if data.Email == "" {
			errs["email"] = "Please fill in all fields"
		} else if !emailPattern.MatchString(data.Email) {
			errs["email"] = "Please enter a valid email address"
		}
	case StepPassword:
		if data.Password == "" {
			errs["password"] = "Please fill in all fields"
		} else if len(data.Password) < minPasswordLength {
			errs["password"] = "Password must be at least 6 characters long"
		}
		if data.ConfirmPassword == "" {
			errs["confirmPassword"] = "Please fill in all fields"
		} else if data.Password != data.ConfirmPassword {
			errs["confirmPassword"] = "Passwords do not match"
		}
	}
	return errs
}

// ValidateRegistration runs every guarded step against the payload, as the
// final submission does before calling the auth service.
func ValidateRegistration(data WizardData) map[string]string {
	for step := StepAccount; step < StepSummary; step++ {
		if errs := ValidateStep(step, data); len(errs) > 0 {
			return errs
		}
	}
	return map[string]string{}
}
