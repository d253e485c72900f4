package dmgbg

import (
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/porua/dmgbg/utils"
	"golang.org/x/term"
)

// Ops holds the output options of the generation process.
type Ops struct {
	Dir      string
	Name     string
	Format   string
	PipeName string
	Retina   bool
}

// variant describes a single output file: its scale factor and name suffix.
type variant struct {
	scale  int
	suffix string
}

// variants lists the output variants to render: the base resolution and,
// when the retina option is active, the @2x one.
func (op *Ops) variants() []variant {
	v := []variant{{scale: 1}}
	if op.Retina {
		v = append(v, variant{scale: 2, suffix: "@2x"})
	}
	return v
}

// Execute renders the background image at base resolution and, when the
// retina option is active, at double resolution, writing one file per
// variant. In case the preview mode is activated the generated image is
// also shown in a window.
func (p *Processor) Execute(op *Ops) {
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("▨ DMGBG", utils.StatusMessage),
		utils.DecorateText("⇢ rendering the installer background...", utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80)

	// Capture CTRL-C signal and restore back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		p.Spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()

	// The `-` destination streams the base resolution variant to stdout.
	if op.Dir == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatalf(utils.DecorateText("`-` should be used with a pipe for stdout\n", utils.ErrorMessage))
		}
		err := p.Process(os.Stdout, 1)
		printOpStatus(op.PipeName, err)
		return
	}

	var preview image.Image
	for _, v := range op.variants() {
		path, img, err := p.generate(op, v)
		printOpStatus(path, err)

		if v.scale == 1 {
			preview = img
		}
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)

	if p.Preview && preview != nil {
		if err := p.showPreview(preview); err != nil {
			log.Fatalf(
				utils.DecorateText("Error showing the preview window: %v\n", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}
}

// generate renders a single variant and writes it into the destination
// directory, returning the path of the written file.
func (p *Processor) generate(op *Ops, v variant) (string, image.Image, error) {
	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("▨ DMGBG", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the background image has been generated successfully ✔\n", utils.SuccessMessage),
	)
	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("▨ DMGBG", utils.StatusMessage),
		utils.DecorateText("⇢ generating the background image failed...", utils.DefaultMessage),
		utils.DecorateText("✘\n", utils.ErrorMessage),
	)

	// Start the progress indicator.
	p.Spinner.Start()

	img, err := p.Render(v.scale)
	if err != nil {
		p.Spinner.StopMsg = errorMsg
		p.Spinner.Stop()
		return "", nil, err
	}

	path := filepath.Join(op.Dir, op.Name+v.suffix+"."+op.Format)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		p.Spinner.StopMsg = errorMsg
		p.Spinner.Stop()
		return "", nil, err
	}

	if err := encodeImg(f, img); err != nil {
		f.Close()
		// remove the generated image file in case of an error
		os.Remove(path)

		p.Spinner.StopMsg = errorMsg
		p.Spinner.Stop()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		p.Spinner.StopMsg = errorMsg
		p.Spinner.Stop()
		return "", nil, err
	}

	p.Spinner.StopMsg = successMsg
	// Stop the progress indicator.
	p.Spinner.Stop()

	return path, img, nil
}

// printOpStatus displays the relevant information about the generation process.
func printOpStatus(fname string, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the background image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
	if fname != "-" {
		fmt.Fprintf(os.Stdout, "The background image has been saved as: %s %s\n",
			utils.DecorateText(fname, utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
