// colorcat-config: manage the colorcat configuration and theme store.
//
// Creates or validates the YAML config, lists, shows, saves, deletes and
// generates themes, applies dotted-path edits to theme documents, prints
// the 256-color reference grid, and cleans or purges the config tree.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"colorcat/config"
	"colorcat/logger"
	"colorcat/theme"
)

// multiFlag collects repeated -set occurrences.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var edits multiFlag
	var (
		cfgDir    = flag.String("d", "", "config directory (default ~/.config/colorcat)")
		cfgFile   = flag.String("f", config.DefaultFileName, "config file name")
		show      = flag.Bool("show", false, "print the active theme document")
		colors    = flag.Bool("colors", false, "print the 256-color reference grid")
		clean     = flag.Bool("clean", false, "empty the config directory, keeping the directory itself")
		purge     = flag.Bool("purge", false, "delete the config directory and everything under it")
		listFlag  = flag.Bool("themes", false, "list saved themes")
		save      = flag.String("save", "", "save the active theme under this name")
		del       = flag.String("delete", "", "delete the named theme")
		generate  = flag.String("generate", "", "derive a theme under this name (see -base, -offsets)")
		baseName  = flag.String("base", "", "base theme for -generate (default from config)")
		offsets   = flag.String("offsets", "", `offset spec for -generate, e.g. "all 10,0 comma 5,5"`)
		themeName = flag.String("t", "", "theme to operate on (default from config)")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Var(&edits, "set", "theme edit as dotted path=value (repeatable)")
	flag.Parse()

	log := logger.New(*verbose)
	defer log.Sync() //nolint:errcheck
	ctx := logger.NewContext(context.Background(), log)

	if *colors {
		printColorGrid(os.Stdout)
		return 0
	}

	dir := *cfgDir
	if dir == "" {
		dir = config.DefaultDir()
	}

	if *clean || *purge {
		if err := runPurge(ctx, dir, *clean); err != nil {
			log.Error("purge", zap.Error(err))
			return 1
		}
		return 0
	}

	cfg, err := config.Load(ctx, dir, *cfgFile)
	if err != nil {
		log.Error("load config", zap.Error(err))
		return 1
	}
	reg := cfg.Registry()

	if *listFlag {
		names, err := reg.List()
		if err != nil {
			log.Error("list themes", zap.Error(err))
			return 1
		}
		if len(names) == 0 {
			fmt.Println("no saved themes")
			return 0
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return 0
	}

	if *del != "" {
		if err := reg.Delete(ctx, *del); err != nil {
			log.Error("delete theme", zap.String("theme", *del), zap.Error(err))
			return 1
		}
		return 0
	}

	if *generate != "" {
		base := *baseName
		if base == "" {
			base = cfg.Script.ThemeName
		}
		bt, err := reg.Load(ctx, base)
		if err != nil {
			log.Error("load base theme", zap.String("theme", base), zap.Error(err))
			return 1
		}
		if _, err := reg.Generate(ctx, *generate, bt, *offsets); err != nil {
			log.Error("generate theme", zap.String("theme", *generate), zap.Error(err))
			return 1
		}
		return 0
	}

	tn := *themeName
	if tn == "" {
		tn = cfg.Script.ThemeName
	}
	th, err := reg.Load(ctx, tn)
	if err != nil {
		log.Error("load theme", zap.String("theme", tn), zap.Error(err))
		return 1
	}

	if len(edits) > 0 {
		if err := theme.Apply(ctx, th, edits); err != nil {
			log.Error("apply edits", zap.Error(err))
			return 1
		}
	}

	if *save != "" {
		if err := reg.Save(ctx, *save, th); err != nil {
			log.Error("save theme", zap.String("theme", *save), zap.Error(err))
			return 1
		}
		return 0
	}
	if len(edits) > 0 {
		// Edits without -save write back under the theme's own name.
		if err := reg.Save(ctx, tn, th); err != nil {
			log.Error("save theme", zap.String("theme", tn), zap.Error(err))
			return 1
		}
	}

	if *show || (len(edits) == 0 && *save == "") {
		cfgData, err := yaml.Marshal(cfg)
		if err != nil {
			log.Error("marshal config", zap.Error(err))
			return 1
		}
		thData, err := yaml.Marshal(th)
		if err != nil {
			log.Error("marshal theme", zap.Error(err))
			return 1
		}
		fmt.Printf("# config: %s\n%s\n# theme: %s\n%s",
			filepath.Join(dir, *cfgFile), cfgData, tn, thData)
	}
	return 0
}

// runPurge plans the deletion, shows the plan, and asks for the WOOF
// confirmation before executing.  Cats hate typing WOOF, so accidental
// purges are unlikely.
func runPurge(ctx context.Context, dir string, keepRoot bool) error {
	plan, err := config.PlanPurge(dir, keepRoot)
	if err != nil {
		return err
	}
	verb := "purge"
	if keepRoot {
		verb = "clean"
	}
	fmt.Printf("About to %s %s (%d paths):\n", verb, plan.Root, len(plan.Paths))
	for _, p := range plan.Paths {
		fmt.Printf("  %s\n", p)
	}
	fmt.Print("Type WOOF to confirm: ")
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "WOOF" {
		fmt.Println("Aborted. The cat lives on.")
		return nil
	}
	return plan.Execute(ctx)
}
