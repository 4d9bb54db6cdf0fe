package utils

import "strings"

// The API reports validation failures as one free-text message. These helpers
// pick the input field to show it next to by substring-matching the message,
// a knowingly fragile mapping kept for parity with the server's wording.

// LoginErrorField maps a login failure to "password" or "username".
func LoginErrorField(message string) string {
	if strings.Contains(message, "password") {
		return "password"
	}
	return "username"
}

// SignupErrorField maps a registration failure: "already exists!" style
// messages belong to the username field, everything else to the password.
func SignupErrorField(message string) string {
	if strings.Contains(message, "exists!") {
		return "username"
	}
	return "password"
}

// MenuErrorField maps a catalog validation failure to item, unit or rate.
func MenuErrorField(message string) string {
	switch {
	case strings.Contains(message, "unit"):
		return "unit"
	case strings.Contains(message, "rate"):
		return "rate"
	default:
		return "item"
	}
}
