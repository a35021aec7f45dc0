// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pickdemo exercises every dialog the pick package offers,
// either one scenario at a time or through an interactive menu.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shayne/pick"
	"github.com/shayne/pick/internal/clipboard"
	"github.com/shayne/pick/internal/config"
	"github.com/shayne/pick/internal/tui/theme"
	"github.com/shayne/yargs"
)

func main() {
	if err := runCLI(); err != nil {
		reportCLIError(err)
		os.Exit(1)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

func reportCLIError(err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

var (
	version = "dev"
	commit  = ""
)

func runCLI() error {
	args := ensureDemoSubcommand(os.Args[1:])
	handlers := map[string]yargs.SubcommandHandler{
		"demo":    handleDemoCommand,
		"config":  handleConfigCommand,
		"version": handleVersionCommand,
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

// ensureDemoSubcommand lets "pickdemo open-file" work without spelling
// out the demo subcommand. Known subcommands and help/version flags
// pass through untouched.
func ensureDemoSubcommand(args []string) []string {
	if len(args) == 0 {
		return []string{"demo"}
	}
	switch args[0] {
	case "demo", "config", "version", "help", "--help", "-h", "--version":
		return args
	}
	return append([]string{"demo"}, args...)
}

type demoFlags struct {
	Terminal bool `flag:"term" short:"t" help:"use terminal forms instead of native dialogs"`
	Copy     bool `flag:"copy" short:"c" help:"copy the picked path to the clipboard"`
}

type demoArgs struct {
	Scenario string `pos:"0?" help:"open-file|open-files|open-folder|open-folders|save|alert|confirm|message|export"`
	Value    string `pos:"1?" help:"source path for export"`
}

type configFlags struct {
	MaxRequests int    `flag:"max-requests" help:"set the in-flight dialog cap"`
	ImportDir   string `flag:"import-dir" help:"set the browser import bucket"`
	SaveDir     string `flag:"save-dir" help:"set the browser save bucket"`
	DefaultName string `flag:"default-name" help:"set the default save file name"`
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "pickdemo",
		Description: "Try out native file pickers and message dialogs",
		Examples: []string{
			"pickdemo",
			"pickdemo open-file",
			"pickdemo open-files --copy",
			"pickdemo save --term",
			"pickdemo message",
			"pickdemo export ./report.pdf",
			"pickdemo config --max-requests 16",
			"pickdemo version",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"demo": {
			Name:        "demo",
			Description: "Run a dialog scenario, or pick one from a menu",
			Usage:       "[<scenario>] [<value>]",
			Examples: []string{
				"pickdemo open-file",
				"pickdemo confirm --term",
				"pickdemo export ./report.pdf",
			},
			Hidden: true,
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func handleDemoCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, demoFlags, demoArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runDemo(result.SubCommandFlags, result.Args)
}

func handleConfigCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	return runConfig(result.SubCommandFlags)
}

func handleVersionCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, versionString())
	return nil
}

func versionString() string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		trimmed = "dev"
	}
	if strings.TrimSpace(commit) == "" {
		return trimmed
	}
	return fmt.Sprintf("%s (%s)", trimmed, strings.TrimSpace(commit))
}

func runConfig(flags configFlags) error {
	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	changed := false
	if flags.MaxRequests != 0 {
		cfg.MaxRequests = flags.MaxRequests
		changed = true
	}
	if flags.ImportDir != "" {
		cfg.ImportDir = flags.ImportDir
		changed = true
	}
	if flags.SaveDir != "" {
		cfg.SaveDir = flags.SaveDir
		changed = true
	}
	if flags.DefaultName != "" {
		cfg.DefaultSaveName = flags.DefaultName
		changed = true
	}
	if changed {
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}
	fmt.Printf("config: %s\n", path)
	fmt.Printf("  max_requests:      %d\n", cfg.MaxRequests)
	fmt.Printf("  import_dir:        %s\n", cfg.ImportDir)
	fmt.Printf("  save_dir:          %s\n", cfg.SaveDir)
	fmt.Printf("  default_save_name: %s\n", cfg.DefaultSaveName)
	return nil
}

var scenarios = []struct {
	name  string
	label string
	run   func(demoFlags, demoArgs) error
}{
	{"open-file", "Open a single file", runOpenFile},
	{"open-files", "Open multiple files", runOpenFiles},
	{"open-folder", "Choose a folder", runOpenFolder},
	{"open-folders", "Choose multiple folders", runOpenFolders},
	{"save", "Save a file", runSave},
	{"alert", "Show an alert", runAlert},
	{"confirm", "Ask for confirmation", runConfirm},
	{"message", "Yes / No / Cancel message", runMessage},
	{"export", "Export a file", runExport},
}

func findScenario(name string) (func(demoFlags, demoArgs) error, bool) {
	for _, sc := range scenarios {
		if sc.name == name {
			return sc.run, true
		}
	}
	return nil, false
}

func runDemo(flags demoFlags, args demoArgs) error {
	cfg, _, err := config.Load()
	if err == nil {
		pick.Configure(pick.Config{
			MaxRequests:     cfg.MaxRequests,
			ImportDir:       cfg.ImportDir,
			SaveDir:         cfg.SaveDir,
			DefaultSaveName: cfg.DefaultSaveName,
		})
	}
	if flags.Terminal {
		pick.UseTerminal()
	}

	if args.Scenario != "" {
		run, ok := findScenario(args.Scenario)
		if !ok {
			return usageError{message: fmt.Sprintf("unknown scenario %q (try: pickdemo --help)", args.Scenario)}
		}
		return run(flags, args)
	}

	th := theme.ForOutput(os.Stdout)
	for {
		options := make([]huh.Option[string], 0, len(scenarios)+1)
		for _, sc := range scenarios {
			options = append(options, huh.NewOption(sc.label, sc.name))
		}
		options = append(options, huh.NewOption("Quit", "quit"))

		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("pickdemo").
				Description("Choose a dialog to try.").
				Options(options...).
				Value(&choice),
		)).WithTheme(th.HuhTheme())
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if choice == "quit" {
			return nil
		}
		run, _ := findScenario(choice)
		if err := run(flags, args); err != nil {
			return err
		}
	}
}

func reportPath(flags demoFlags, path string, ok bool) {
	th := theme.ForOutput(os.Stdout)
	if !ok {
		fmt.Println(th.Dialog.Muted.Render("cancelled"))
		return
	}
	fmt.Println(th.Dialog.Result.Render("picked ") + th.Dialog.Path.Render(path))
	if flags.Copy {
		if err := clipboard.WriteText(path); err != nil {
			fmt.Println(th.Dialog.Warning.Render("clipboard: " + err.Error()))
			return
		}
		fmt.Println(th.Dialog.Muted.Render("copied to clipboard"))
	}
}

func runOpenFile(flags demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.OpenFile(&pick.FileOptions{
		Title: "Pick a file",
		Filters: []pick.Filter{
			{Name: "Images", Extensions: []string{"png", "jpg", "jpeg", "gif"}},
			{Name: "Documents", Extensions: []string{"pdf", "txt", "md"}},
		},
	}, func(path string, ok bool) {
		reportPath(flags, path, ok)
		close(done)
	})
	<-done
	return nil
}

func runOpenFiles(flags demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.OpenFiles(&pick.FileOptions{Title: "Pick some files"}, func(paths []string) {
		th := theme.ForOutput(os.Stdout)
		if len(paths) == 0 {
			fmt.Println(th.Dialog.Muted.Render("cancelled"))
		} else {
			for _, p := range paths {
				fmt.Println(th.Dialog.Result.Render("picked ") + th.Dialog.Path.Render(p))
			}
			if flags.Copy {
				if err := clipboard.WriteText(strings.Join(paths, "\n")); err == nil {
					fmt.Println(th.Dialog.Muted.Render("copied to clipboard"))
				}
			}
		}
		close(done)
	})
	<-done
	return nil
}

func runOpenFolder(flags demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.OpenFolder(&pick.FileOptions{Title: "Pick a folder"}, func(path string, ok bool) {
		reportPath(flags, path, ok)
		close(done)
	})
	<-done
	return nil
}

func runOpenFolders(flags demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.OpenFolders(&pick.FileOptions{Title: "Pick folders"}, func(paths []string) {
		th := theme.ForOutput(os.Stdout)
		if len(paths) == 0 {
			fmt.Println(th.Dialog.Muted.Render("cancelled"))
		}
		for _, p := range paths {
			fmt.Println(th.Dialog.Result.Render("picked ") + th.Dialog.Path.Render(p))
		}
		close(done)
	})
	<-done
	return nil
}

func runSave(flags demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.SaveFile(&pick.FileOptions{
		Title:         "Save report",
		DefaultName:   "report.txt",
		CanCreateDirs: true,
	}, func(path string, ok bool) {
		reportPath(flags, path, ok)
		close(done)
	})
	<-done
	return nil
}

func runAlert(_ demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.ShowMessage(&pick.MessageOptions{
		Title:   "Heads up",
		Message: "This is a plain informational alert.",
		Detail:  "Alerts resolve as OK no matter how they are dismissed.",
		Buttons: pick.ButtonsOK,
		Style:   pick.StyleInfo,
	}, func(pick.ButtonResult) {
		close(done)
	})
	<-done
	return nil
}

func runConfirm(_ demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.ShowConfirm("Delete everything?", "This cannot be undone.", 0, func(result pick.ButtonResult) {
		th := theme.ForOutput(os.Stdout)
		fmt.Println(th.Dialog.Result.Render("result: " + result.String()))
		close(done)
	})
	<-done
	return nil
}

func runMessage(_ demoFlags, _ demoArgs) error {
	done := make(chan struct{})
	pick.ShowMessage(&pick.MessageOptions{
		Title:   "Save changes?",
		Message: "Your document has unsaved changes.",
		Detail:  "Choosing No discards them.",
		Buttons: pick.ButtonsYesNoCancel,
		Style:   pick.StyleQuestion,
		Icon:    pick.IconCaution,
	}, func(result pick.ButtonResult) {
		th := theme.ForOutput(os.Stdout)
		fmt.Println(th.Dialog.Result.Render("result: " + result.String()))
		close(done)
	})
	<-done
	return nil
}

func runExport(_ demoFlags, args demoArgs) error {
	src := args.Value
	if src == "" {
		return usageError{message: "usage: pickdemo export <path>"}
	}
	done := make(chan struct{})
	pick.ExportFile(src, &pick.FileOptions{Title: "Export file"}, func(ok bool) {
		th := theme.ForOutput(os.Stdout)
		if ok {
			fmt.Println(th.Dialog.Result.Render("exported"))
		} else {
			fmt.Println(th.Dialog.Muted.Render("export cancelled"))
		}
		close(done)
	})
	<-done
	return nil
}
