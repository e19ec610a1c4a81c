package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dalseo/xticket-ip/internal/extension"
	"github.com/dalseo/xticket-ip/internal/shell"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	formTitle    = "X-TICKET IP 설정"
	reloadNotice = "저장 후 확장프로그램을 새로고침 해주세요."
	addressLabel = "IP 주소 입력"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#2463EB")).
	Padding(0, 2)

// FormCmd wires the form state machine to the terminal.
type FormCmd struct {
	resolve   func() (extension.Location, error)
	presenter shell.Presenter
	prompter  shell.Prompter
	openURL   func(url string) error
	out       io.Writer
}

// FormOpenInput holds the options shared by the form and set commands.
type FormOpenInput struct {
	OpenAdmin bool
}

// SetInput is the input of `xticket-ip set`.
type SetInput struct {
	FormOpenInput
	Address string
}

func newFormCmd() FormCmd {
	return FormCmd{
		resolve:   extension.DefaultLocation,
		presenter: ptermPresenter{out: os.Stdout},
		prompter:  newPtermPrompter(),
		openURL:   browser.OpenURL,
		out:       os.Stdout,
	}
}

func (f FormCmd) start(in FormOpenInput) (*shell.Shell, error) {
	sh, err := shell.New(f.resolve, f.presenter)
	if err != nil {
		log.Trace("startup failed", log.Args("error", err.Error()))
		return nil, err
	}
	log.Trace("extension directory resolved", log.Args("dir", sh.Location().Dir()))

	if in.OpenAdmin {
		sh.OnSaved(func(string) {
			if err := f.openURL(extension.AdminURL); err != nil {
				pterm.Warning.WithWriter(f.out).Printf("Could not open %s: %v\n", extension.AdminURL, err)
			}
		})
	}
	return sh, nil
}

// Open shows the address form until the operator closes it.
func (f FormCmd) Open(ctx context.Context, in FormOpenInput) error {
	sh, err := f.start(in)
	if err != nil {
		return err
	}

	fmt.Fprintln(f.out, titleStyle.Render(formTitle))
	pterm.Info.WithWriter(f.out).Println(reloadNotice)
	pterm.Info.WithWriter(f.out).Printf("확장프로그램 경로: %s\n", sh.Location().Dir())

	return sh.Run(ctx, f.prompter)
}

// Set saves one address without showing the form.
func (f FormCmd) Set(ctx context.Context, in SetInput) error {
	sh, err := f.start(in.FormOpenInput)
	if err != nil {
		return err
	}

	outcome := sh.Save(in.Address)
	log.Trace("save finished", log.Args("input", outcome.Input, "state", outcome.State.String(), "ok", outcome.OK()))
	if !outcome.OK() {
		return outcome.Err
	}
	return nil
}

func runForm(cmd *cobra.Command, args []string) error {
	openAdmin, _ := cmd.Flags().GetBool("open-admin")
	return newFormCmd().Open(cmd.Context(), FormOpenInput{OpenAdmin: openAdmin})
}

// ptermPresenter renders the form dialogs with pterm.
type ptermPresenter struct {
	out io.Writer
}

func (p ptermPresenter) Fatal(err error) {
	path := extension.ExpectedDir("~")
	var extErr *extension.Error
	if errors.As(err, &extErr) && extErr.Path != "" {
		path = extErr.Path
	}
	msg := fmt.Sprintf("바탕화면에 '%s/%s' 폴더를 찾을 수 없습니다.\n경로: %s",
		extension.ProgramFolder, extension.ExtensionFolder, path)
	pterm.DefaultBox.WithTitle("오류").WithWriter(p.out).Println(msg)
}

func (p ptermPresenter) Warn(input string) {
	pterm.Warning.WithWriter(p.out).Println("올바른 IP 주소를 입력해주세요.")
	log.Trace("rejected address", log.Args("input", input))
}

func (p ptermPresenter) Error(err error) {
	pterm.Error.WithWriter(p.out).Printf("파일 수정 중 오류가 발생했습니다: %v\n", err)
	log.Trace("save failed", log.Args("kind", string(extension.KindOf(err)), "error", err.Error()))
}

func (p ptermPresenter) Success(loc extension.Location, ip string) {
	pterm.Success.WithWriter(p.out).Println("설정이 성공적으로 저장되었습니다!")
	pterm.Info.WithWriter(p.out).Printf("서버 주소: %s\n", extension.ServerURL(ip))
	pterm.Info.WithWriter(p.out).Println(reloadNotice)
	log.Trace("saved", log.Args("dir", loc.Dir(), "ip", ip))
}

// ptermPrompter reads the form fields from the terminal. Ctrl-C closes the
// form instead of exiting the process.
type ptermPrompter struct {
	textInput func(value string, onInterrupt func()) (string, error)
	confirm   func(onInterrupt func()) (bool, error)
}

func newPtermPrompter() ptermPrompter {
	return ptermPrompter{
		textInput: func(value string, onInterrupt func()) (string, error) {
			return pterm.DefaultInteractiveTextInput.
				WithDefaultValue(value).
				WithOnInterruptFunc(onInterrupt).
				Show(addressLabel)
		},
		confirm: func(onInterrupt func()) (bool, error) {
			return pterm.DefaultInteractiveConfirm.
				WithDefaultValue(false).
				WithOnInterruptFunc(onInterrupt).
				Show("다른 주소로 다시 저장하시겠습니까?")
		},
	}
}

func (p ptermPrompter) ReadAddress(ctx context.Context, value string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	interrupted := false
	input, err := p.textInput(value, func() { interrupted = true })
	if interrupted {
		return "", shell.ErrClosed
	}
	return input, err
}

func (p ptermPrompter) KeepOpen(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	interrupted := false
	again, err := p.confirm(func() { interrupted = true })
	if interrupted {
		return false, shell.ErrClosed
	}
	return again, err
}
