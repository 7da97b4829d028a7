package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"honnef.co/go/sketch"
	"honnef.co/go/sketch/svgdraw"
)

// A Step is one line of a gesture script.
//
// Scripts contain one command per line. Blank lines and lines starting with
// # are ignored. The commands are:
//
//	press X Y
//	drag X Y
//	release X Y
//	stroke X0 Y0 X1 Y1 ...   press, drag through and release
//	key delete|backspace|escape|undo|redo
//	undo
//	redo
//	delete                   delete the selected curve
//	clear                    delete all curves
//	linetype bezier|linear
//	color NAME
//	resize W H
type Step struct {
	Line int
	Op   string
	// Nums holds the numeric arguments, Arg the textual one.
	Nums []float64
	Arg  string
}

var keys = map[string]sketch.Key{
	"delete":    sketch.KeyDelete,
	"backspace": sketch.KeyBackspace,
	"escape":    sketch.KeyEscape,
	"undo":      sketch.KeyUndo,
	"redo":      sketch.KeyRedo,
}

// ParseScript reads a gesture script.
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		st, err := parseStep(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		st.Line = line
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return steps, nil
}

func parseStep(fields []string) (Step, error) {
	st := Step{Op: fields[0]}
	args := fields[1:]
	switch st.Op {
	case "press", "drag", "release", "resize":
		if len(args) != 2 {
			return st, errors.Errorf("%s takes 2 arguments, got %d", st.Op, len(args))
		}
	case "stroke":
		if len(args) < 4 || len(args)%2 != 0 {
			return st, errors.Errorf("stroke takes at least two coordinate pairs")
		}
	case "undo", "redo", "delete", "clear":
		if len(args) != 0 {
			return st, errors.Errorf("%s takes no arguments", st.Op)
		}
		return st, nil
	case "key":
		if len(args) != 1 {
			return st, errors.New("key takes 1 argument")
		}
		if _, ok := keys[args[0]]; !ok {
			return st, errors.Errorf("unknown key %q", args[0])
		}
		st.Arg = args[0]
		return st, nil
	case "linetype":
		if len(args) != 1 {
			return st, errors.New("linetype takes 1 argument")
		}
		if _, ok := sketch.ParseLineType(args[0]); !ok {
			return st, errors.Errorf("unknown line type %q", args[0])
		}
		st.Arg = args[0]
		return st, nil
	case "color":
		if len(args) != 1 {
			return st, errors.New("color takes 1 argument")
		}
		st.Arg = args[0]
		return st, nil
	default:
		return st, errors.Errorf("unknown command %q", st.Op)
	}

	st.Nums = make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return st, errors.Wrapf(err, "argument %d", i+1)
		}
		st.Nums[i] = v
	}
	return st, nil
}

// Player applies a script to an engine.
type Player struct {
	Engine *sketch.Engine
	// Renderer, if set, follows canvas size changes.
	Renderer *svgdraw.Renderer
	Log      hclog.Logger
}

// Play runs the steps in order. It stops at the first step the engine
// rejects.
func (p *Player) Play(steps []Step) error {
	log := p.Log
	if log == nil {
		log = hclog.NewNullLogger()
	}
	e := p.Engine
	for _, st := range steps {
		log.Trace("step", "line", st.Line, "op", st.Op)
		switch st.Op {
		case "press":
			e.Press(sketch.Pt(st.Nums[0], st.Nums[1]))
		case "drag":
			e.Drag(sketch.Pt(st.Nums[0], st.Nums[1]))
		case "release":
			e.Release(sketch.Pt(st.Nums[0], st.Nums[1]))
		case "stroke":
			n := len(st.Nums) / 2
			for i := range n {
				pt := sketch.Pt(st.Nums[2*i], st.Nums[2*i+1])
				switch i {
				case 0:
					e.Press(pt)
				case n - 1:
					e.Release(pt)
				default:
					e.Drag(pt)
				}
			}
		case "key":
			e.Key(keys[st.Arg])
		case "undo":
			e.Undo()
		case "redo":
			e.Redo()
		case "delete":
			e.DeleteSelected()
		case "clear":
			e.DeleteAll()
		case "linetype":
			lt, _ := sketch.ParseLineType(st.Arg)
			e.SetLineType(lt)
		case "color":
			if err := e.SetColor(st.Arg); err != nil {
				return errors.Wrapf(err, "line %d", st.Line)
			}
		case "resize":
			if err := e.Resize(st.Nums[0], st.Nums[1]); err != nil {
				return errors.Wrapf(err, "line %d", st.Line)
			}
			if p.Renderer != nil {
				p.Renderer.SetCanvas(e.Canvas())
			}
		}
	}
	return nil
}
