package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fontworld/font"
	"github.com/npillmayer/fontworld/fontload"
	"github.com/npillmayer/fontworld/world"
	"github.com/pterm/pterm"
)

type Op struct {
	code int
	name string
	args []string
}

type Command struct {
	op []Op
}

const (
	QUIT int = iota
	HELP
	FAMILIES
	FACES
	SELECT
	METRICS
	ADVANCE
	RESOLVE
	FILE
	LINE
	INSPECT
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"families": FAMILIES,
	"faces":    FACES,
	"select":   SELECT,
	"metrics":  METRICS,
	"advance":  ADVANCE,
	"resolve":  RESOLVE,
	"file":     FILE,
	"line":     LINE,
	"inspect":  INSPECT,
}

// parseCommand splits a line into operations. Operations are separated by
// ';', the first word of an operation names it, the remaining words are its
// arguments. Unknown operations are turned into a request for help.
func parseCommand(line string) *Command {
	cmd := &Command{}
	for _, part := range strings.Split(line, ";") {
		words := strings.Fields(part)
		if len(words) == 0 {
			continue
		}
		name := strings.ToLower(words[0])
		code, ok := opMap[name]
		if !ok {
			tracer().Infof("unknown command '%s'", name)
			code = HELP
			words = words[:1]
		}
		cmd.op = append(cmd.op, Op{code: code, name: name, args: words[1:]})
	}
	tracer().Debugf("parsed command: %v", cmd.op)
	return cmd
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	FAMILIES: familiesOp,
	FACES:    facesOp,
	SELECT:   selectOp,
	METRICS:  metricsOp,
	ADVANCE:  advanceOp,
	RESOLVE:  resolveOp,
	FILE:     fileOp,
	LINE:     lineOp,
	INSPECT:  inspectOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	for _, c := range cmd.op {
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

var (
	errNoFace     = errors.New("no face selected")
	errNoArgument = errors.New("missing argument")
)

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func familiesOp(intp *Intp, op *Op) (error, bool) {
	printFamilies(intp.store)
	return nil, false
}

func facesOp(intp *Intp, op *Op) (error, bool) {
	printFaces(intp.store, strings.Join(op.args, " "))
	return nil, false
}

// selectOp selects a face: "select Go Mono, bold italic".
func selectOp(intp *Intp, op *Op) (error, bool) {
	family, variant, err := parseSelection(strings.Join(op.args, " "))
	if err != nil {
		return err, false
	}
	id, ok := intp.store.SelectFamily(font.Named(family), variant)
	if !ok {
		return fmt.Errorf("no face for %s (%s)", family, variant), false
	}
	intp.face, intp.hasFace = id, true
	pterm.Printf("selected face %d: %s\n", id, intp.store.Info(id))
	return nil, false
}

// parseSelection splits "family, variant words" into a family name and a variant.
func parseSelection(arg string) (string, font.Variant, error) {
	family, rest, _ := strings.Cut(arg, ",")
	family = strings.TrimSpace(family)
	if family == "" {
		return "", font.Variant{}, errNoArgument
	}
	variant, err := parseVariant(strings.Fields(rest))
	return family, variant, err
}

// parseVariant reads style, weight and stretch from words like "bold",
// "italic", "condensed" or "650". "normal" denotes the style.
func parseVariant(words []string) (font.Variant, error) {
	v := font.DefaultVariant()
	for _, w := range words {
		w = strings.ToLower(w)
		if s, ok := font.ParseStyle(w); ok {
			v.Style = s
		} else if wt, ok := font.ParseWeight(w); ok {
			v.Weight = wt
		} else if st, ok := font.ParseStretch(w); ok {
			v.Stretch = st
		} else if n, err := strconv.Atoi(w); err == nil {
			v.Weight = font.WeightFromNumber(n)
		} else {
			return v, fmt.Errorf("unknown variant property '%s'", w)
		}
	}
	return v, nil
}

func metricsOp(intp *Intp, op *Op) (error, bool) {
	if !intp.hasFace {
		return errNoFace, false
	}
	printMetrics(intp.store.Get(intp.face))
	return nil, false
}

func advanceOp(intp *Intp, op *Op) (error, bool) {
	if !intp.hasFace {
		return errNoFace, false
	}
	if len(op.args) == 0 {
		return errNoArgument, false
	}
	face := intp.store.Get(intp.face)
	data := [][]string{{"Glyph", "Advance"}}
	for _, arg := range op.args {
		gid, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return fmt.Errorf("glyph ID not numeric: %v", arg), false
		}
		adv := "-"
		if em, ok := face.Advance(uint16(gid)); ok {
			adv = em.String()
		}
		data = append(data, []string{arg, adv})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func resolveOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return errNoArgument, false
	}
	id, err := intp.world.Resolve(strings.Join(op.args, " "))
	if err != nil {
		return err, false
	}
	src := intp.world.Source(id)
	pterm.Printf("%s: %s, %d bytes, %d lines\n", id, src.Path(), src.Len(), src.LineCount())
	return nil, false
}

func fileOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return errNoArgument, false
	}
	path := strings.Join(op.args, " ")
	buf, err := intp.world.File(path)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s: %d bytes\n", intp.world.Canonical(path), buf.Len())
	return nil, false
}

// lineOp prints a line of an interned source: "line 0 12".
func lineOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) != 2 {
		return errors.New("usage: line <source-id> <line>"), false
	}
	id, err := strconv.ParseUint(op.args[0], 10, 16)
	if err != nil || int(id) >= intp.world.Len() {
		return fmt.Errorf("unknown source: %s", op.args[0]), false
	}
	n, err := strconv.Atoi(op.args[1])
	if err != nil {
		return fmt.Errorf("line number not numeric: %v", op.args[1]), false
	}
	src := intp.world.Source(world.SourceID(id))
	text, ok := src.Line(n)
	if !ok {
		return fmt.Errorf("line %d out of range [0…%d)", n, src.LineCount()), false
	}
	pterm.Printf("%s:%d: %s\n", src.Path(), n, text)
	return nil, false
}

// inspectOp parses a font file outside of the store: "inspect fonts/Go.ttc 1".
func inspectOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 || len(op.args) > 2 {
		return errors.New("usage: inspect <path> [index]"), false
	}
	index := 0
	if len(op.args) == 2 {
		var err error
		if index, err = strconv.Atoi(op.args[1]); err != nil {
			return fmt.Errorf("face index not numeric: %v", op.args[1]), false
		}
	}
	path := intp.world.Canonical(op.args[0])
	f, err := fontload.LoadOpenTypeFont(intp.fsys, path, index)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s [%d]: %q, %d glyphs, %d units per em\n", path, index,
		f.Fontname, f.SFNT.NumGlyphs(), f.SFNT.UnitsPerEm())
	data := [][]string{{"Index", "Family", "Variant"}}
	for _, info := range font.ParseFaceInfos(path, f.Binary) {
		data = append(data, []string{strconv.Itoa(int(info.Index)), info.Family, info.Variant.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
