package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/caixa/internal/validation"
)

// Identity is what the first run wizard asks for.
type Identity struct {
	UserID   string
	UserName string
	BaseURL  string
	Token    string
}

func PromptInitIdentity(defaults Identity) (Identity, error) {
	answers := defaults

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to caixa!").
				Description("This is the first run, tell us who is importing and where to send the transactions."),
			huh.NewInput().
				Title("User ID:").
				Description("Every imported transaction is attributed to this user").
				Value(&answers.UserID).
				Validate(validation.Required("user ID")),
			huh.NewInput().
				Title("Your name:").
				Description("Used as the payer when a row has no person").
				Value(&answers.UserName).
				Validate(validation.Required("name")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("API base URL:").
				Value(&answers.BaseURL).
				Validate(validation.ValidateBaseURL),
			huh.NewInput().
				Title("API token:").
				EchoMode(huh.EchoModePassword).
				Value(&answers.Token),
		),
	).Run()

	if err != nil {
		return Identity{}, err
	}

	answers.UserID = strings.TrimSpace(answers.UserID)
	answers.UserName = strings.TrimSpace(answers.UserName)
	answers.BaseURL = strings.TrimSpace(answers.BaseURL)
	answers.Token = strings.TrimSpace(answers.Token)
	return answers, nil
}
