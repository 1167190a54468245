package console

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/polytree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config configures tree output.
type Config struct {
	LineWidth int            // maximum display width of a line, in ‘en’s
	Indent    int            // indentation per level of depth
	Colored   bool           // use colors for keys and values
	Context   *uax11.Context // context for display width of labels
}

// DefaultLineWidth is used if neither the config nor the terminal provide a line width.
const DefaultLineWidth = 80

// ConfigFromTerminal creates a config from the properties of stdout.
// Colors are enabled only if stdout is interactive.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: DefaultLineWidth,
		Indent:    2,
		Context:   uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			config.LineWidth = w
		} else if err != nil {
			tracer().Debugf("console: cannot get terminal size: %s", err.Error())
		}
	}
	return config
}

func (config *Config) normalized() *Config {
	c := *config
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Indent < 0 {
		c.Indent = 0
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// Printer prints trees with colored keys and values.
type Printer struct {
	KeyColor   *color.Color
	ValueColor *color.Color
}

// NewPrinter creates a printer. Nil colors are replaced by a default palette.
func NewPrinter(keyColor, valueColor *color.Color) *Printer {
	p := &Printer{KeyColor: keyColor, ValueColor: valueColor}
	if p.KeyColor == nil {
		p.KeyColor = color.New(color.FgBlue, color.Bold)
	}
	if p.ValueColor == nil {
		p.ValueColor = color.New(color.FgGreen)
	}
	return p
}

var setupGraphemes sync.Once

// Print outputs a tree to stdout, using a config from the terminal's properties.
func Print[K cmp.Ordered, V any](t polytree.Tree[K, V]) error {
	return Fprint(os.Stdout, t, nil, nil)
}

// Fprint outputs a tree sideways to w. Lines which would exceed the configured
// line width are truncated.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties. If p is nil, a default printer is used.
func Fprint[K cmp.Ordered, V any](w io.Writer, t polytree.Tree[K, V], p *Printer, config *Config) error {
	if t == nil {
		return polytree.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	config = config.normalized()
	if p == nil {
		p = NewPrinter(nil, nil)
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if t.IsEmpty() {
		_, err := io.WriteString(w, t.String())
		return err
	}
	return polytree.EachNode(t, polytree.RightRootLeft, func(k K, v V, depth int) error {
		indent := strings.Repeat(" ", depth*config.Indent)
		key, value := fmt.Sprint(k), fmt.Sprint(v)
		key, value = fit(indent, key, value, config)
		if !config.Colored {
			_, err := fmt.Fprintf(w, "%s%s: %s\n", indent, key, value)
			return err
		}
		if _, err := io.WriteString(w, indent); err != nil {
			return err
		}
		if _, err := p.KeyColor.Fprint(w, key); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ": "); err != nil {
			return err
		}
		if _, err := p.ValueColor.Fprint(w, value); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	})
}

// fit truncates key and value such that the line fits into the line width.
// Values are truncated first; a truncated label ends in an ellipsis.
func fit(indent, key, value string, config *Config) (string, string) {
	avail := config.LineWidth - width(indent, config) - width(": ", config)
	if width(key, config)+width(value, config) <= avail {
		return key, value
	}
	if kw := width(key, config); kw < avail {
		return key, truncate(value, avail-kw, config)
	}
	return truncate(key, avail, config), ""
}

func width(s string, config *Config) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), config.Context)
}

func truncate(s string, w int, config *Config) string {
	if w <= 0 {
		return ""
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		t := string(runes) + "…"
		if width(t, config) <= w {
			return t
		}
	}
	return ""
}
