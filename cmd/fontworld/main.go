/*
Command fontworld is an interactive inspection tool for font stores and
resource worlds.

Fonts are taken from a catalog file or found by scanning directories given
on the command line or in the config file (.fontworld.json). Resource paths
are resolved relative to a root directory.

	fontworld --fonts /usr/share/fonts/truetype/go --save-catalog go.json
	fontworld --catalog go.json --root ./doc

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontworld/font"
	"github.com/npillmayer/fontworld/fontload"
	"github.com/npillmayer/fontworld/hostfs"
	"github.com/npillmayer/fontworld/world"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.tyse.fonts":     "Info",
		"trace.tyse.resources": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	flags := flag.NewFlagSet("fontworld", flag.ExitOnError)
	configFile := flags.StringP("config", "c", "", "Config file (default "+defaultConfigFile+")")
	catalog := flags.String("catalog", "", "Face catalog to load")
	fontDirs := flags.StringSliceP("fonts", "f", nil, "Font files or directories to scan")
	root := flags.StringP("root", "r", "", "Root directory for resource paths")
	tlevel := flags.StringP("trace", "t", "", "Trace level [Debug|Info|Error]")
	saveCatalog := flags.String("save-catalog", "", "Write the scanned faces to a catalog file")
	_ = flags.Parse(os.Args[1:])
	_ = setTraceLevel("Error")                         // will set the correct level later
	pterm.Info.Println("Welcome to the fontworld CLI") // colored welcome message
	//
	// assemble configuration: defaults < config file < flags
	fsys := hostfs.NewReal()
	path, mustExist := defaultConfigFile, false
	if *configFile != "" {
		path, mustExist = *configFile, true
	}
	fileConf, err := loadConfig(fsys, path, mustExist)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	cfg := mergeConfig(mergeConfig(defaultConfig(), fileConf), Config{
		Catalog:  *catalog,
		FontDirs: *fontDirs,
		Root:     *root,
		Trace:    *tlevel,
	})
	//
	// set up store and world
	intp, err := setup(fsys, cfg, *saveCatalog)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	if intp.repl, err = readline.New("fw > "); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	if err := setTraceLevel(cfg.Trace); err != nil {
		pterm.Error.Println(err)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", cfg.Trace)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) error {
	l := tracing.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
	case "error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	tracing.Select("tyse.fonts").SetTraceLevel(l)
	tracing.Select("tyse.resources").SetTraceLevel(l)
	return nil
}

// setup creates the interpreter with its font store and resource world.
func setup(fsys hostfs.FS, cfg Config, saveCatalog string) (*Intp, error) {
	var faces []font.FaceInfo
	var err error
	if cfg.Catalog != "" && len(cfg.FontDirs) == 0 {
		if faces, err = fontload.LoadCatalog(fsys, cfg.Catalog); err != nil {
			return nil, err
		}
		tracer().Infof("loaded catalog %s with %d faces", cfg.Catalog, len(faces))
	} else if len(cfg.FontDirs) > 0 {
		if faces, err = fontload.Scan(fsys, cfg.FontDirs...); err != nil {
			return nil, err
		}
	}
	if saveCatalog != "" {
		if err := fontload.SaveCatalog(saveCatalog, faces); err != nil {
			return nil, err
		}
		pterm.Info.Printf("wrote catalog %s\n", saveCatalog)
	}
	opts := []font.StoreOption{
		font.WithObserver(func(id font.FaceID, f *font.Face) {
			pterm.Info.Printf("loaded face %d (%d glyphs)\n", id, f.NumGlyphs())
		}),
	}
	for name, families := range cfg.Generic {
		generic := font.Named(name)
		if !generic.IsGeneric() {
			return nil, fmt.Errorf("%q is not a generic family", name)
		}
		opts = append(opts, font.WithGeneric(generic, families...))
	}
	intp := &Intp{
		fsys:  fsys,
		store: font.NewStore(fontload.New(fsys, faces), opts...),
		world: world.New(world.WithFS(fsys), world.WithRoot(cfg.Root)),
	}
	pterm.Printf("%d faces in %d families\n", len(faces), len(intp.store.Families()))
	return intp, nil
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	fsys    hostfs.FS
	store   *font.Store
	world   *world.World
	face    font.FaceID
	hasFace bool
}

func (intp *Intp) String() string {
	if intp == nil || !intp.hasFace {
		return "( no face )"
	}
	info := intp.store.Info(intp.face)
	return fmt.Sprintf("( face=%d %s %s )", intp.face, info.Family, info.Variant)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
