package session

// PasswordField is a password input with a show/hide toggle.
type PasswordField struct {
	ID      string
	visible bool
}

// Toggle flips between masked and visible and reports whether the value is
// now visible.
func (p *PasswordField) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the value is shown in clear text.
func (p *PasswordField) Visible() bool { return p.visible }

// InputType is the type attribute the input carries.
func (p *PasswordField) InputType() string {
	if p.visible {
		return "text"
	}

	return "password"
}

// IconClass is the icon of the toggle button.
func (p *PasswordField) IconClass() string {
	if p.visible {
		return "fas fa-eye-slash"
	}

	return "fas fa-eye"
}
