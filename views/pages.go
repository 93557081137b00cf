package views

type LoginView struct {
	Layout
	Username string
	Error    string
}

// ConfirmView asks before a destructive intent is dispatched. Action is
// posted to perform it; Cancel leads back to the list.
type ConfirmView struct {
	Layout
	Message string
	Subject string
	Action  string
	Cancel  string
}
