// Command sketchctl replays pointer gestures against the sketch engine and
// converts exported curve sets.
package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/tdewolff/argp"
	"honnef.co/go/sketch"
	"honnef.co/go/sketch/svgdraw"
)

type Sketchctl struct{}

type Replay struct {
	Config   string  `short:"c" desc:"TOML configuration file"`
	LogLevel string  `short:"l" default:"warn" desc:"Log level (trace, debug, info, warn, error)"`
	Width    float64 `short:"W" default:"600" desc:"Canvas width in pixels"`
	Height   float64 `short:"H" default:"400" desc:"Canvas height in pixels"`
	SVG      string  `short:"s" desc:"Write the final frame as SVG to this file"`
	Output   string  `short:"o" desc:"Output file for the exported curves"`
	Input    string  `index:"0" desc:"Gesture script, - for stdin"`
}

type Render struct {
	Config   string  `short:"c" desc:"TOML configuration file"`
	LogLevel string  `short:"l" default:"warn" desc:"Log level (trace, debug, info, warn, error)"`
	Width    float64 `short:"W" default:"600" desc:"Canvas width in pixels"`
	Height   float64 `short:"H" default:"400" desc:"Canvas height in pixels"`
	Output   string  `short:"o" desc:"Output file"`
	Input    string  `index:"0" desc:"Exported curves, - for stdin"`
}

type Resize struct {
	Config   string  `short:"c" desc:"TOML configuration file"`
	LogLevel string  `short:"l" default:"warn" desc:"Log level (trace, debug, info, warn, error)"`
	Width    float64 `short:"W" default:"600" desc:"New canvas width in pixels"`
	Height   float64 `short:"H" default:"400" desc:"New canvas height in pixels"`
	Output   string  `short:"o" desc:"Output file"`
	Input    string  `index:"0" desc:"Exported curves, - for stdin"`
}

// common holds the options shared by all commands.
type common struct {
	Config   string
	LogLevel string
	Width    float64
	Height   float64
}

func main() {
	root := argp.NewCmd(&Sketchctl{}, "Replay and convert function sketches")
	root.AddCmd(&Replay{}, "replay", "Run a gesture script and export the resulting curves")
	root.AddCmd(&Render{}, "render", "Render exported curves as SVG")
	root.AddCmd(&Resize{}, "resize", "Move exported curves to a different canvas size")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Sketchctl) Run() error {
	return argp.ShowUsage
}

func (c common) logger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "sketchctl",
		Level:  hclog.LevelFromString(c.LogLevel),
		Output: os.Stderr,
	})
}

func (c common) config() (sketch.Config, error) {
	if c.Config == "" {
		return sketch.DefaultConfig(), nil
	}
	return sketch.LoadConfig(c.Config)
}

// engine returns an engine for the command's canvas, drawing onto a fresh
// renderer.
func (c common) engine(log hclog.Logger) (*sketch.Engine, *svgdraw.Renderer, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, nil, err
	}
	r := svgdraw.New(cfg, cfg.Canvas(c.Width, c.Height))
	e, err := sketch.New(c.Width, c.Height, sketch.Options{
		Config: cfg,
		Logger: log,
		Draw:   r.Draw,
	})
	if err != nil {
		return nil, nil, err
	}
	return e, r, nil
}

func (cmd *Replay) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	c := common{cmd.Config, cmd.LogLevel, cmd.Width, cmd.Height}
	log := c.logger()
	e, r, err := c.engine(log)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd.Input)
	if err != nil {
		return err
	}
	defer closeIn()
	script, err := ParseScript(in)
	if err != nil {
		return err
	}
	p := &Player{Engine: e, Renderer: r, Log: log}
	if err := p.Play(script); err != nil {
		return err
	}

	if cmd.SVG != "" {
		if err := writeFile(cmd.SVG, r.WriteTo); err != nil {
			return err
		}
	}
	ex, err := e.Export()
	if err != nil {
		return err
	}
	return writeExchange(cmd.Output, ex)
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	c := common{cmd.Config, cmd.LogLevel, cmd.Width, cmd.Height}
	e, r, err := c.engine(c.logger())
	if err != nil {
		return err
	}
	ex, err := readExchange(cmd.Input)
	if err != nil {
		return err
	}
	if err := e.SetState(ex); err != nil {
		return err
	}
	return writeFile(cmd.Output, r.WriteTo)
}

func (cmd *Resize) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	ex, err := readExchange(cmd.Input)
	if err != nil {
		return err
	}
	// Load the curves on the canvas they were exported from, then resize.
	src := common{cmd.Config, cmd.LogLevel, ex.CanvasWidth, ex.CanvasHeight}
	log := src.logger()
	e, _, err := src.engine(log)
	if err != nil {
		return err
	}
	if err := e.SetState(ex); err != nil {
		return err
	}
	if err := e.Resize(cmd.Width, cmd.Height); err != nil {
		return err
	}
	out, err := e.Export()
	if err != nil {
		return err
	}
	return writeExchange(cmd.Output, out)
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func readExchange(name string) (*sketch.Exchange, error) {
	in, closeIn, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer closeIn()
	var ex sketch.Exchange
	if err := json.NewDecoder(in).Decode(&ex); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return &ex, nil
}

func writeExchange(name string, ex *sketch.Exchange) error {
	return writeFile(name, func(w io.Writer) (int64, error) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return 0, enc.Encode(ex)
	})
}

// writeFile writes to the named file, or to stdout if name is empty or -.
func writeFile(name string, write func(io.Writer) (int64, error)) error {
	if name == "" || name == "-" {
		_, err := write(os.Stdout)
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", name)
	}
	return f.Close()
}
