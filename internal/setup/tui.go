package setup

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/btcterm/config"
)

// DefaultPath file the wizard writes to.
const DefaultPath = "btcterm.gen.yaml"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#1F6F3A"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// Answers values collected by the wizard, as typed.
// LogLevel and NonInteractiveWait are not asked for and pass through from the base config.
type Answers struct {
	BaseURL            string
	RequestTimeout     string
	RefreshInterval    string
	KeyWait            string
	NonInteractiveWait string
	Concurrency        string
	LogFile            string
	LogLevel           string
	ShowBanner         bool
}

// AnswersFrom prefills the wizard with the given configuration.
func AnswersFrom(conf config.Config) Answers {
	return Answers{
		BaseURL:            conf.BaseURL,
		RequestTimeout:     conf.RequestTimeout.String(),
		RefreshInterval:    conf.RefreshInterval.String(),
		KeyWait:            conf.KeyWait.String(),
		NonInteractiveWait: conf.NonInteractiveWait.String(),
		Concurrency:        strconv.Itoa(conf.Concurrency),
		LogFile:            conf.LogFile,
		LogLevel:           conf.LogLevel,
		ShowBanner:         conf.ShowBanner,
	}
}

// RunTUI launches the terminal configuration wizard, saves the result to path
// and returns the resulting configuration.
func RunTUI(base config.Config, path string) (config.Config, error) {
	a := AnswersFrom(base)
	var confirm bool

	// step 1: source
	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("BTC-TERM SETUP"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Tune your dashboard.\n"))

	fmt.Println(stepStyle.Render("STEP 1: QUOTE SOURCE"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Quote API URL").
				Description("Coinbase Exchange compatible endpoint").
				Value(&a.BaseURL),
			huh.NewInput().
				Title("Request Timeout").
				Description("Duration string (e.g. 3s)").
				Value(&a.RequestTimeout).
				Validate(validateDuration),
			huh.NewInput().
				Title("Parallel Fetches").
				Description("1 fetches pairs one by one").
				Value(&a.Concurrency).
				Validate(validateConcurrency),
		),
	).Run()
	if err != nil {
		return config.Config{}, err
	}

	// step 2: timing
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("BTC-TERM SETUP"))
	fmt.Println(stepStyle.Render("STEP 2: TIMING"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh Interval").
				Description("Pause between refreshes (e.g. 2s)").
				Value(&a.RefreshInterval).
				Validate(validateDuration),
			huh.NewInput().
				Title("Key Wait").
				Description("How long to wait for a key after each redraw (e.g. 500ms)").
				Value(&a.KeyWait).
				Validate(validateDuration),
		),
	).Run()
	if err != nil {
		return config.Config{}, err
	}

	// step 3: extras
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("BTC-TERM SETUP"))
	fmt.Println(stepStyle.Render("STEP 3: EXTRAS"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Log File").
				Description("Leave empty to disable logging").
				Value(&a.LogFile),
			huh.NewConfirm().
				Title("Show startup banner?").
				Value(&a.ShowBanner),
		),
	).Run()
	if err != nil {
		return config.Config{}, err
	}

	// confirmation
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("BTC-TERM SETUP"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := fmt.Sprintf(
		"Source: %s\nTimeout: %s\nParallel: %s\nRefresh: %s\nKey wait: %s\n",
		a.BaseURL, a.RequestTimeout, a.Concurrency, a.RefreshInterval, a.KeyWait,
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save and start").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return config.Config{}, err
	}

	if !confirm {
		return config.Config{}, fmt.Errorf("setup cancelled by user")
	}

	conf, err := Save(a, path)
	if err != nil {
		return config.Config{}, err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Configuration saved to %s\nStarting dashboard...", path)))
	time.Sleep(1500 * time.Millisecond) // small pause to read success message
	return conf, nil
}

// Save validates the answers, writes them as yaml to path and returns the configuration.
func Save(a Answers, path string) (config.Config, error) {
	cfgTmp, err := toConfigTmp(a)
	if err != nil {
		return config.Config{}, err
	}

	data, err := yaml.Marshal(cfgTmp)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to generate yaml: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return config.Config{}, fmt.Errorf("failed to save config file: %w", err)
	}

	return config.Get([]string{"--config", path})
}

func toConfigTmp(a Answers) (config.ConfigTmp, error) {
	timeout, err := time.ParseDuration(a.RequestTimeout)
	if err != nil {
		return config.ConfigTmp{}, fmt.Errorf("incorrect request timeout: %w", err)
	}
	interval, err := time.ParseDuration(a.RefreshInterval)
	if err != nil {
		return config.ConfigTmp{}, fmt.Errorf("incorrect refresh interval: %w", err)
	}
	keyWait, err := time.ParseDuration(a.KeyWait)
	if err != nil {
		return config.ConfigTmp{}, fmt.Errorf("incorrect key wait: %w", err)
	}
	var nonInteractiveWait time.Duration
	if a.NonInteractiveWait != "" {
		if nonInteractiveWait, err = time.ParseDuration(a.NonInteractiveWait); err != nil {
			return config.ConfigTmp{}, fmt.Errorf("incorrect non-interactive wait: %w", err)
		}
	}
	if err := validateConcurrency(a.Concurrency); err != nil {
		return config.ConfigTmp{}, fmt.Errorf("incorrect parallel fetches: %w", err)
	}
	concurrency, _ := strconv.Atoi(a.Concurrency)

	showBanner := a.ShowBanner
	return config.ConfigTmp{
		BaseURL:            a.BaseURL,
		RequestTimeout:     timeout,
		RefreshInterval:    interval,
		KeyWait:            keyWait,
		NonInteractiveWait: nonInteractiveWait,
		Concurrency:        concurrency,
		LogFile:            a.LogFile,
		LogLevel:           a.LogLevel,
		ShowBanner:         &showBanner,
	}, nil
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration like 2s or 500ms")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateConcurrency(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n < 1 || n > 16 {
		return fmt.Errorf("must be between 1 and 16")
	}
	return nil
}
