package huhforms

import (
	"errors"
	"slices"
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// DueLayout is the date format typed into the due field
const DueLayout = "2006-01-02"

var errBadDue = errors.New("use YYYY-MM-DD or leave empty")

// TicketFormValues holds the fields bound to the ticket form
type TicketFormValues struct {
	Title       string
	Description string
	Tags        []string // picked from models.DefaultLabels
	Labels      string   // any other labels, comma separated
	Due         string
	Confirm     bool
}

// TicketFormValuesFrom fills the form from an existing ticket
func TicketFormValuesFrom(t models.Ticket) *TicketFormValues {
	v := &TicketFormValues{
		Title:       t.Title,
		Description: t.Description,
		Confirm:     true,
	}
	var other []string
	for _, l := range t.Labels {
		switch {
		case slices.Contains(v.Tags, l) || slices.Contains(other, l):
			// already listed
		case slices.Contains(models.DefaultLabels, l):
			v.Tags = append(v.Tags, l)
		default:
			other = append(other, l)
		}
	}
	v.Labels = strings.Join(other, ", ")
	if t.DueDate != nil {
		v.Due = t.DueDate.UTC().Format(DueLayout)
	}
	return v
}

// Update converts the form values into a ticket update. Picked tags come
// first, then the typed labels; the form treats labels as a set. An empty
// due field clears the due date.
func (v *TicketFormValues) Update() (models.TicketUpdate, error) {
	title := strings.TrimSpace(v.Title)
	if title == "" {
		return models.TicketUpdate{}, errEmptyTitle
	}
	labels := mergeLabels(v.Tags, splitLabels(v.Labels))
	u := models.TicketUpdate{
		Title:       &title,
		Description: &v.Description,
		Labels:      &labels,
	}

	due := strings.TrimSpace(v.Due)
	if due == "" {
		u.ClearDueDate = true
		return u, nil
	}
	when, err := time.ParseInLocation(DueLayout, due, time.UTC)
	if err != nil {
		return models.TicketUpdate{}, errBadDue
	}
	u.DueDate = &when
	return u, nil
}

func splitLabels(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

func mergeLabels(groups ...[]string) []string {
	labels := []string{}
	for _, group := range groups {
		for _, l := range group {
			if !slices.Contains(labels, l) {
				labels = append(labels, l)
			}
		}
	}
	return labels
}

// LabelOptions lists the common tags for the multi-select
func LabelOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.DefaultLabels))
	for _, l := range models.DefaultLabels {
		opts = append(opts, huh.NewOption(l, l))
	}
	return opts
}

func validateDue(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DueLayout, s); err != nil {
		return errBadDue
	}
	return nil
}

// CreateTicketForm creates a huh form for editing a ticket
func CreateTicketForm(v *TicketFormValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter ticket title...").
			Validate(requireTitle).
			Value(&v.Title),

		huh.NewText().
			Key("description").
			Title("Description (markdown)").
			Placeholder("Enter ticket description...").
			CharLimit(2000).
			Lines(5).
			Value(&v.Description),

		huh.NewMultiSelect[string]().
			Key("tags").
			Title("Tags").
			Description("Space to toggle, / to filter").
			Options(LabelOptions()...).
			Value(&v.Tags).
			Filterable(true),

		huh.NewInput().
			Key("labels").
			Title("Other labels").
			Placeholder("backend, q3").
			Value(&v.Labels),

		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder(DueLayout).
			Validate(validateDue).
			Value(&v.Due),

		huh.NewConfirm().
			Key("confirm").
			Title("Save changes?").
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(FormKeyMap()).WithShowHelp(false)
}
