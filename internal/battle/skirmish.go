package battle

// DefaultSkirmish is the pre-populated local battle backing the
// offline custom-battle view. The id is synthetic (negative, assigned
// by the session) so it can never collide with a server-assigned one.
func DefaultSkirmish(id int) *Battle {
	return &Battle{
		ID:      id,
		Name:    "Skirmish",
		MapName: "Quicksilver Remake 1.24",
		Open:    true,
		Offline: true,
		ModOptions: map[string]string{
			"startpostype": "fixed",
		},
	}
}
