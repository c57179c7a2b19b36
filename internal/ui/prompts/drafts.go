package prompts

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/caixa/internal/store"
	"github.com/hance08/caixa/internal/ui"
)

// PromptDraft picks one saved draft and returns its ID.
func PromptDraft(message string, drafts []*store.Draft) (string, error) {
	if len(drafts) == 0 {
		return "", errors.New("no saved drafts")
	}

	options := make([]string, len(drafts))
	ids := make(map[string]string, len(drafts))
	for i, d := range drafts {
		label := fmt.Sprintf("%s  %s (%d items, %s)",
			d.ID[:min(len(d.ID), 8)], d.Source, d.Items,
			time.Unix(d.UpdatedAt, 0).Format("2006-01-02 15:04"))
		options[i] = label
		ids[label] = d.ID
	}

	var selected string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected, ui.IconOption()); err != nil {
		return "", err
	}
	return ids[selected], nil
}
