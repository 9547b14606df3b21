package cli

import (
	"os"
	"strings"

	"aurora-gff/gff"
	"aurora-gff/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
	}
	InteractiveCmd struct{}
	ConvertCmd     struct {
		From  string `arg:"required" help:"path to source file" placeholder:"trigger.utt"`
		To    string `arg:"required" help:"path to destination file" placeholder:"trigger.json"`
		Force bool   `help:"overwrite the destination file"`
		Debug bool   `help:"dump raw section tables instead of the tree"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to convert GFF (the generic binary container behind",
			"Aurora engine templates like UTT, UTE and GUI) to JSON in the",
			"command line, and back.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func StartConverting(from string, to string, force bool, debug bool) {
	if !CheckExistence(from) {
		println("Source file does not exist!")
		return
	}
	if CheckExistence(to) && !force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		println("Explicit --force is needed to make sure that you paid attention not to overwriting an actual game file in your folder.")
		return
	}
	fileBytes, err := os.ReadFile(from)
	if err != nil {
		println("Error happened reading file at: " + from)
		return
	}

	resultBytes := []byte(nil)
	if gff.IsGFFFile(fileBytes) {
		resultBytes, err = gff.DecodeGFF(fileBytes, debug)
		if err != nil {
			println("Error happened decoding GFF to JSON: " + err.Error())
			return
		}
	} else {
		resultBytes, err = gff.EncodeJSON(fileBytes)
		if err != nil {
			println("Error happened encoding JSON to GFF: " + err.Error())
			return
		}
	}
	if err := os.WriteFile(to, resultBytes, 0644); err != nil {
		println("Error happened writing to file at: " + to)
		return
	}
	println("Done converting. Please check your result file at: " + to)
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if (args.Interactive == nil && args.Convert == nil) ||
		args.Interactive != nil {
		ui.Start()
	} else {
		StartConverting(
			args.Convert.From,
			args.Convert.To,
			args.Convert.Force,
			args.Convert.Debug,
		)
	}
}
