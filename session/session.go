package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"weather-cli/datasource"
	"weather-cli/display"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// ErrInput is matched by every failure to read from the input stream
var ErrInput = errors.New("failed to read input")

// State is a state of the interactive loop
type State int

const (
	Prompting State = iota
	Reporting
	Terminal
)

func (s State) String() string {
	switch s {
	case Prompting:
		return "prompting"
	case Reporting:
		return "reporting"
	default:
		return "terminal"
	}
}

// Session runs the prompt, fetch, present, continue cycle
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	errOut    io.Writer
	provider  datasource.WeatherProvider
	presenter *display.Presenter
	log       *zap.Logger

	banner  *color.Color
	cityAsk *color.Color
	codeAsk *color.Color

	state       State
	city        string
	countryCode string
}

// New creates a session reading answers from in, writing prompts and
// reports to out and failures to errOut
func New(in io.Reader, out, errOut io.Writer, provider datasource.WeatherProvider, presenter *display.Presenter, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		in:        bufio.NewReader(in),
		out:       out,
		errOut:    errOut,
		provider:  provider,
		presenter: presenter,
		log:       log,
		banner:    color.New(color.FgHiYellow),
		cityAsk:   color.New(color.FgHiCyan),
		codeAsk:   color.New(color.FgHiGreen),
		state:     Prompting,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Run loops until the user declines to continue. It returns nil on a
// graceful exit and an error wrapping ErrInput if the input stream fails.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, s.banner.Sprint("Welcome to your weather app!"))

	for s.state != Terminal {
		prev := s.state
		if err := s.step(ctx); err != nil {
			return err
		}
		s.log.Debug("state transition", zap.Stringer("from", prev), zap.Stringer("to", s.state))
	}

	fmt.Fprintln(s.out, s.banner.Sprint("Thank you for using the weather app!"))
	return nil
}

func (s *Session) step(ctx context.Context) error {
	switch s.state {
	case Prompting:
		city, err := s.ask(s.cityAsk.Sprint("Enter city name (e.g. London):"), "city")
		if err != nil {
			return err
		}
		code, err := s.ask(s.codeAsk.Sprint("Enter country code (e.g. GB):"), "country code")
		if err != nil {
			return err
		}
		s.city, s.countryCode = city, code
		s.state = Reporting

	case Reporting:
		s.report(ctx)
		answer, err := s.ask("Do you want to check weather for another city? (y/n)", "continuation answer")
		if err != nil {
			return err
		}
		if ShouldContinue(answer) {
			s.state = Prompting
		} else {
			s.state = Terminal
		}
	}
	return nil
}

// report performs one lookup. Failures are written to errOut and end the
// iteration; they never stop the loop.
func (s *Session) report(ctx context.Context) {
	report, err := s.provider.GetWeather(ctx, s.city, s.countryCode)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error fetching weather data: %v\n", err)
		return
	}
	block, err := s.presenter.Present(report)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error displaying weather data: %v\n", err)
		return
	}
	s.log.Debug("presented report", zap.String("location", report.Location), zap.Stringer("category", block.Category))
}

// ask prints a prompt and reads one trimmed line
func (s *Session) ask(prompt, what string) (string, error) {
	fmt.Fprintln(s.out, prompt)
	line, err := readLine(s.in)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInput, what, err)
	}
	return strings.TrimSpace(line), nil
}

// readLine reads up to and including the next newline. A final line without
// a newline is returned as is; end of input with nothing read is an error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// ShouldContinue reports whether an answer to the continue prompt means yes.
// Only "y", in either case and ignoring surrounding whitespace, does.
func ShouldContinue(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}
