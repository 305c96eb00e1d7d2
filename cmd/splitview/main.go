package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/charmbracelet/log"
	"github.com/esimov/splitview"
	"github.com/esimov/splitview/ui"
	"github.com/esimov/splitview/utils"
	"github.com/spf13/cobra"
)

const HelpBanner = `
┌─┐┌─┐┬  ┬┌┬┐┬  ┬┬┌─┐┬ ┬
└─┐├─┘│  │ │ └┐┌┘│├┤ │││
└─┘┴  ┴─┘┴ ┴  └┘ ┴└─┘└┴┘

Draggable split pane layout.
    Version: %s

`

// Version indicates the current build version.
var Version string

// options holds the flags shared by the window and the tree commands.
type options struct {
	config   string
	width    int
	height   int
	image    string
	cascade  string
	angle    float64
	minScore float32
	noPanel  bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts    options
		verbose bool
	)

	root := &cobra.Command{
		Use:          "splitview",
		Short:        "Splitview shows a resizable grid of panes",
		Long:         fmt.Sprintf(HelpBanner, Version),
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			img, err := opts.loadImage(logger)
			if err != nil {
				return err
			}

			go func() {
				if err := runWindow(cfg, img, logger); err != nil {
					logger.Error("window closed", "err", err)
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}

	root.SetVersionTemplate("splitview {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().IntVar(&opts.width, "width", 0, "window width, overrides the config")
	root.PersistentFlags().IntVar(&opts.height, "height", 0, "window height, overrides the config")

	root.Flags().StringVarP(&opts.image, "image", "i", "", "image shown below the console (path or URL)")
	root.Flags().StringVar(&opts.cascade, "cascade", "", "pigo cascade file used to outline faces on the image")
	root.Flags().Float64Var(&opts.angle, "angle", 0, "plane rotated faces angle")
	root.Flags().Float32Var(&opts.minScore, "score", 5, "minimum face detection score")
	root.Flags().BoolVar(&opts.noPanel, "no-panel", false, "hide the control panel")

	root.AddCommand(newTreeCmd(&opts))

	return root
}

// resolveConfig loads the config file, if any, and applies the flags
// which were set explicitly on top of it.
func (o *options) resolveConfig(cmd *cobra.Command) (splitview.Config, error) {
	cfg := splitview.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = splitview.LoadConfig(o.config); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = o.width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = o.height
	}
	if o.noPanel {
		cfg.ShowPanel = false
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// loadImage fetches the optional image pane and runs the face detector
// over it while a spinner is shown on the terminal.
func (o *options) loadImage(logger *log.Logger) (*ui.Image, error) {
	if o.image == "" {
		if o.cascade != "" {
			return nil, errors.New("--cascade requires --image")
		}
		return nil, nil
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SPLITVIEW", utils.StatusMessage),
		utils.DecorateText("is loading the image...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	release := restoreCursorOnInterrupt(spinner)

	p := newProgress(logger)
	spinner.Start()
	img, err := o.decorate()
	if err == nil {
		spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ SPLITVIEW", utils.StatusMessage),
			utils.DecorateText("loaded the image in "+utils.FormatTime(time.Since(p.start))+" ✔", utils.DefaultMessage))
	}
	spinner.Stop()
	release()
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	p.done(fmt.Sprintf("Loaded %dx%d image with %d face(s)", b.Dx(), b.Dy(), len(img.Faces())))
	return img, nil
}

// restoreCursorOnInterrupt captures the CTRL-C signal, restores the cursor
// visibility back and exits, until release is called.
func restoreCursorOnInterrupt(s *utils.Spinner) (release func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-sigChan:
			s.RestoreCursor()
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
		<-exited
	}
}

func (o *options) decorate() (*ui.Image, error) {
	img, err := ui.LoadImage(o.image)
	if err != nil {
		return nil, err
	}
	if o.cascade == "" {
		return img, nil
	}

	cascade, err := os.ReadFile(o.cascade)
	if err != nil {
		img.Close()
		return nil, fmt.Errorf("could not read the cascade file: %w", err)
	}
	if _, err := img.DetectFaces(cascade, o.angle, o.minScore); err != nil {
		img.Close()
		return nil, err
	}
	return img, nil
}
