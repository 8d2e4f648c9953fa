package display

import (
	"fmt"
	"io"

	"weather-cli/models"

	"github.com/fatih/color"
)

// Block is a rendered report together with its category
type Block struct {
	Text     string
	Category Category
}

// Render formats a report as a fixed multi-line block and categorizes it
// by its first condition
func Render(report models.WeatherReport) Block {
	description := report.PrimaryCondition().Description
	text := fmt.Sprintf(
		"Weather in %s: %s\n"+
			"  > Temperature: %.1f°C,\n"+
			"  > Humidity: %.1f%%,\n"+
			"  > Pressure: %.1f hPa,\n"+
			"  > Wind Speed: %.1f m/s",
		report.Location,
		description,
		report.Temperature,
		report.Humidity,
		report.Pressure,
		report.WindSpeed,
	)
	return Block{Text: text, Category: Categorize(description)}
}

// Presenter writes rendered reports to an output stream, styling the whole
// block by category
type Presenter struct {
	out    io.Writer
	styles map[Category]*color.Color
}

// NewPresenter creates a presenter writing to out. Neutral blocks are
// written unstyled.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out: out,
		styles: map[Category]*color.Color{
			Sunny:         color.New(color.FgHiYellow),
			Cloudy:        color.New(color.FgHiBlue),
			Hazy:          color.New(color.Faint),
			Precipitation: color.New(color.FgHiCyan),
		},
	}
}

// SetColor forces styling on or off regardless of whether out is a terminal
func (p *Presenter) SetColor(enabled bool) {
	for _, c := range p.styles {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Style returns the text as it would be written for the given category
func (p *Presenter) Style(category Category, text string) string {
	if c, ok := p.styles[category]; ok {
		return c.Sprint(text)
	}
	return text
}

// Present renders a report and writes it followed by a newline
func (p *Presenter) Present(report models.WeatherReport) (Block, error) {
	block := Render(report)
	if _, err := fmt.Fprintln(p.out, p.Style(block.Category, block.Text)); err != nil {
		return block, fmt.Errorf("failed to write report: %w", err)
	}
	return block, nil
}
