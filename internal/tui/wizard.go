// Package tui implements the interactive scaffold wizard used when forgeweb
// runs without arguments.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phravins/forgeweb/internal/config"
	"github.com/phravins/forgeweb/internal/project"
	"github.com/phravins/forgeweb/internal/scaffold"
)

// Wizard States
const (
	StateName = iota
	StateSlug
	StatePort
	StateDatabase
	StateDBName
	StateDBUser
	StateDBPassword
	StateConfirm
	StateCreating
	StateSuccess
	StateError
)

// maxAttempts mirrors the prompt collector: three invalid submissions on one
// field abort the wizard.
const maxAttempts = 3

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

type scaffoldDoneMsg struct {
	result *scaffold.Result
	err    error
}

type WizardModel struct {
	input  textinput.Model
	dbList list.Model
	spin   spinner.Model

	state         int
	width, height int
	attempts      int

	defaults *config.Config
	answers  project.Answers

	result    *scaffold.Result
	runErr    error
	fieldErr  string
	quitError error
}

func NewWizardModel() WizardModel {
	defaults, err := config.Load()
	if err != nil {
		defaults = &config.Config{
			DefaultPort:       project.DefaultPort,
			DefaultDBPassword: project.DefaultDBPassword,
		}
	}

	ti := textinput.New()
	ti.Placeholder = "My Blog"
	ti.CharLimit = 60
	ti.Width = 50
	ti.Focus()

	var dbItems []list.Item
	for _, db := range project.Databases {
		desc := "File-based, zero configuration"
		if db == project.PostgreSQL {
			desc = "Adds a postgres service to docker-compose"
		}
		dbItems = append(dbItems, item{title: db.Label(), desc: desc})
	}
	dl := list.New(dbItems, list.NewDefaultDelegate(), 0, 10)
	dl.Title = "Select a Database"
	dl.SetShowHelp(false)
	dl.SetShowStatusBar(false)
	dl.SetFilteringEnabled(false)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return WizardModel{
		input:    ti,
		dbList:   dl,
		spin:     s,
		state:    StateName,
		defaults: defaults,
	}
}

func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dbList.SetSize(msg.Width-8, 12)
		return m, nil

	case scaffoldDoneMsg:
		if msg.err != nil {
			m.runErr = msg.err
			m.state = StateError
		} else {
			m.result = msg.result
			m.state = StateSuccess
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == StateCreating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.state == StateError {
				m.quitError = m.runErr
			}
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.state == StateDatabase {
		m.dbList, cmd = m.dbList.Update(msg)
	} else if m.state < StateConfirm {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// submit advances the wizard one step, validating the current field first.
func (m WizardModel) submit() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateName:
		name, err := project.ValidateName(m.input.Value())
		if err != nil {
			return m.reject(err)
		}
		m.answers.Name = name
		m.toInput(StateSlug, project.Slugify(name), "")

	case StateSlug:
		slug := strings.TrimSpace(m.input.Value())
		if slug != "" && !project.IsValidSlug(slug) {
			return m.reject(fmt.Errorf("invalid slug: lowercase alphanumerics, hyphens and underscores only"))
		}
		m.answers.Slug = slug
		m.toInput(StatePort, strconv.Itoa(m.defaults.DefaultPort), "")

	case StatePort:
		raw := strings.TrimSpace(m.input.Value())
		if raw == "" {
			raw = strconv.Itoa(m.defaults.DefaultPort)
		}
		if _, err := project.ValidatePort(raw); err != nil {
			return m.reject(err)
		}
		m.answers.Port = raw
		m.attempts = 0
		m.fieldErr = ""
		m.state = StateDatabase

	case StateDatabase:
		selected, ok := m.dbList.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		db, err := project.ParseDatabase(selected.title)
		if err != nil {
			m.runErr = err
			m.state = StateError
			return m, nil
		}
		m.answers.Database = string(db)
		if db == project.PostgreSQL {
			if m.answers.Port == "5432" {
				m.toInput(StatePort, "", "5432 is reserved for the PostgreSQL service")
				return m, nil
			}
			m.toInput(StateDBName, m.slug(), "")
		} else {
			m.state = StateConfirm
		}

	case StateDBName:
		m.answers.DBName = valueOr(m.input, m.slug())
		m.toInput(StateDBUser, m.slug(), "")

	case StateDBUser:
		m.answers.DBUser = valueOr(m.input, m.slug())
		m.toInput(StateDBPassword, m.defaults.DefaultDBPassword, "")

	case StateDBPassword:
		m.answers.DBPassword = valueOr(m.input, m.defaults.DefaultDBPassword)
		m.state = StateConfirm

	case StateConfirm:
		m.state = StateCreating
		answers := m.answers
		workspace := m.defaults.Workspace
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			res, err := scaffold.Run(answers, workspace)
			return scaffoldDoneMsg{result: res, err: err}
		})

	case StateSuccess:
		return m, tea.Quit

	case StateError:
		m.quitError = m.runErr
		return m, tea.Quit
	}
	return m, nil
}

// reject records a validation failure on the current field. The wizard stays
// on the field until the attempt budget runs out, then quits with the error.
func (m WizardModel) reject(err error) (tea.Model, tea.Cmd) {
	m.attempts++
	m.fieldErr = err.Error()
	if m.attempts >= maxAttempts {
		m.quitError = &project.ValidationError{Field: "input", Reason: "too many invalid answers"}
		return m, tea.Quit
	}
	return m, nil
}

// toInput resets the shared text input for the next field.
func (m *WizardModel) toInput(state int, placeholder, fieldErr string) {
	m.state = state
	m.attempts = 0
	m.fieldErr = fieldErr
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
}

func (m WizardModel) slug() string {
	if m.answers.Slug != "" {
		return m.answers.Slug
	}
	return project.Slugify(m.answers.Name)
}

func valueOr(ti textinput.Model, fallback string) string {
	if v := strings.TrimSpace(ti.Value()); v != "" {
		return v
	}
	return fallback
}

func (m WizardModel) View() string {
	switch m.state {
	case StateName:
		return m.inputView("Step 1/5", "What is the project called?")
	case StateSlug:
		return m.inputView("Step 2/5", "Slug (blank to derive from the name)")
	case StatePort:
		return m.inputView("Step 3/5", fmt.Sprintf("Exposure port (blank for %d)", m.defaults.DefaultPort))
	case StateDatabase:
		return titleStyle.Render("Step 4/5") + "\n" + m.dbList.View()
	case StateDBName:
		return m.inputView("PostgreSQL", "Database name (blank for slug)")
	case StateDBUser:
		return m.inputView("PostgreSQL", "Database user (blank for slug)")
	case StateDBPassword:
		return m.inputView("PostgreSQL", "Database password")
	case StateConfirm:
		return m.confirmView()
	case StateCreating:
		return fmt.Sprintf("\n  %s Writing project files...\n", m.spin.View())
	case StateSuccess:
		return m.successView()
	case StateError:
		return errorBoxStyle.Render(errorStyle.Render("Scaffold failed") + "\n\n" + m.runErr.Error() +
			"\n\n" + subtleStyle.Render("press enter to exit"))
	}
	return ""
}

func (m WizardModel) inputView(step, question string) string {
	body := stepStyle.Render(step) + "\n" + question + "\n\n" + m.input.View()
	if m.fieldErr != "" {
		body += "\n" + errorStyle.Render(m.fieldErr)
	}
	body += "\n\n" + subtleStyle.Render("enter to continue, esc to quit")
	return wizardCardStyle.Render(body)
}

func (m WizardModel) confirmView() string {
	var b strings.Builder
	b.WriteString(stepStyle.Render("Step 5/5") + "\n")
	b.WriteString("Ready to create:\n\n")
	fmt.Fprintf(&b, "  Name      %s\n", m.answers.Name)
	fmt.Fprintf(&b, "  Slug      %s\n", m.slug())
	port := m.answers.Port
	if port == "" {
		port = strconv.Itoa(m.defaults.DefaultPort)
	}
	fmt.Fprintf(&b, "  Port      %s\n", port)
	fmt.Fprintf(&b, "  Database  %s\n", m.answers.Database)
	if m.answers.Database == string(project.PostgreSQL) {
		fmt.Fprintf(&b, "  DB name   %s\n  DB user   %s\n", m.answers.DBName, m.answers.DBUser)
	}
	b.WriteString("\n" + subtleStyle.Render("enter to create, esc to quit"))
	return wizardCardStyle.Render(b.String())
}

func (m WizardModel) successView() string {
	body := fmt.Sprintf("Project created in %s\n\n", m.result.Path)
	body += "Next steps:\n"
	body += fmt.Sprintf("  cd %s\n", m.result.Config.Slug)
	body += "  docker compose up --build\n"
	body += "\n" + subtleStyle.Render("press enter to exit")
	return successBoxStyle.Render(body)
}

// RunWizard runs the interactive wizard and reports the run's outcome.
func RunWizard() error {
	p := tea.NewProgram(NewWizardModel())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(WizardModel); ok {
		return m.quitError
	}
	return nil
}
