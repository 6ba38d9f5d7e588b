// seehuhn.de/go/fontedit - a tool for editing the "name" table of font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Fontedit rewrites the "name" table of a font file: it can rename the
// font family, embed license information, set or remove manufacturer,
// designer, trademark and copyright records, and it strips all naming
// records outside a fixed allowed set.  The version string of the font
// is always preserved.
//
// When called without any arguments on a terminal, the program asks
// for each setting interactively.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/fontedit"
	"seehuhn.de/go/fontedit/name"
)

var (
	family    = flag.String("family", "", "new font family name")
	subfamily = flag.String("subfamily", "", "new subfamily name (e.g. Bold)")
	output    = flag.String("output", "", "output file (default derived from the font name)")

	license          = flag.String("license", "", "license to embed: OFL, Apache, MIT, Custom or none")
	customLicense    = flag.String("custom-license", "", "license text for -license=Custom")
	customLicenseURL = flag.String("custom-license-url", "", "license URL for -license=Custom")

	manufacturer = flag.String("manufacturer", "", "manufacturer name (empty to remove)")
	designer     = flag.String("designer", "", "designer name (empty to remove)")
	trademark    = flag.String("trademark", "", "trademark text (empty to remove)")
	copyright    = flag.String("copyright", "", "copyright notice (default derived from -manufacturer)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	var inputPath string
	var opt *fontedit.Options
	if flag.NArg() == 0 && flag.NFlag() == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		inputPath, opt = interactiveOptions()
	} else {
		if flag.NArg() != 1 {
			fmt.Fprintf(os.Stderr, "usage: %s [options] font.ttf\n", os.Args[0])
			flag.PrintDefaults()
			os.Exit(2)
		}
		inputPath = flag.Arg(0)
		opt = flagOptions()
	}

	err := run(inputPath, *output, opt)
	if err != nil {
		log.Fatal(err)
	}
}

// flagOptions converts the command line flags into Options.  The
// distinction between a flag given as the empty string (remove the
// field) and a flag not given at all (keep the field) is made here,
// and only here.
func flagOptions() *fontedit.Options {
	supplied := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		supplied[f.Name] = true
	})
	triState := func(flagName, value string) fontedit.Value {
		if !supplied[flagName] {
			return fontedit.Keep()
		}
		return fontedit.Set(value)
	}

	opt := &fontedit.Options{
		Family:           *family,
		Subfamily:        *subfamily,
		CustomLicense:    *customLicense,
		CustomLicenseURL: *customLicenseURL,
		Manufacturer:     triState("manufacturer", *manufacturer),
		Designer:         triState("designer", *designer),
		Trademark:        triState("trademark", *trademark),
		Copyright:        triState("copyright", *copyright),
	}
	if supplied["license"] {
		if strings.EqualFold(*license, "none") {
			opt.RemoveLicense = true
		} else {
			l, err := fontedit.ParseLicense(*license)
			if err != nil {
				log.Fatal(err)
			}
			opt.License = l
		}
	}
	return opt
}

func run(inputPath, outputPath string, opt *fontedit.Options) error {
	plan, err := fontedit.ResolvePlan(opt)
	if err != nil {
		return err
	}

	font, err := fontedit.ReadFile(inputPath)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultOutputName(inputPath, font, plan)
	}

	warnings := fontedit.Transform(font.Names, plan)
	for _, w := range warnings {
		log.Println("warning:", w)
	}

	err = font.WriteFile(outputPath)
	if err != nil {
		return err
	}
	fmt.Println("output written to", outputPath)
	return nil
}

// defaultOutputName builds an output file name of the form
// "Family-Subfamily.ttf" next to the current directory.
func defaultOutputName(inputPath string, font *fontedit.Font, plan *fontedit.Plan) string {
	family := plan.Family
	if family == "" {
		family = "UnknownFamily"
	}
	subfamily := plan.Subfamily
	if subfamily == "" {
		if s, ok := font.Names.Get(name.Subfamily); ok {
			subfamily = s
		} else {
			subfamily = "Regular"
		}
	}
	base := strings.ReplaceAll(family, " ", "") +
		"-" + strings.ReplaceAll(subfamily, " ", "")
	return base + filepath.Ext(inputPath)
}

func interactiveOptions() (string, *fontedit.Options) {
	in := bufio.NewReader(os.Stdin)
	fmt.Println("Interactive mode.  Press return to leave a field unchanged,")
	fmt.Println("enter \"-\" to remove a field from the font.")
	fmt.Println()

	var inputPath string
	for inputPath == "" {
		inputPath = ask(in, "input font file")
	}

	opt := &fontedit.Options{
		Family:    ask(in, "new family name"),
		Subfamily: ask(in, "new subfamily name"),
	}

	choice := ask(in, "license [OFL/Apache/MIT/Custom/none]")
	switch {
	case choice == "":
		// keep the existing license
	case strings.EqualFold(choice, "none"):
		opt.RemoveLicense = true
	default:
		l, err := fontedit.ParseLicense(choice)
		if err != nil {
			log.Fatal(err)
		}
		opt.License = l
		if l == fontedit.Custom {
			opt.CustomLicense = ask(in, "custom license text")
			opt.CustomLicenseURL = ask(in, "custom license URL")
		}
	}

	opt.Manufacturer = askValue(in, "manufacturer")
	opt.Designer = askValue(in, "designer")
	opt.Trademark = askValue(in, "trademark")
	opt.Copyright = askValue(in, "copyright notice")

	return inputPath, opt
}

func ask(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt + ": ")
	line, err := in.ReadString('\n')
	if err != nil {
		log.Fatal(err)
	}
	return strings.TrimSpace(line)
}

func askValue(in *bufio.Reader, prompt string) fontedit.Value {
	switch s := ask(in, prompt); s {
	case "":
		return fontedit.Keep()
	case "-":
		return fontedit.Remove()
	default:
		return fontedit.Set(s)
	}
}
