// Public domain.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/soniakeys/aperture/siaf"
	"github.com/soniakeys/aperture/siafplot"
)

const versionString = "aperture version 0.1 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	cl := parseCommandLine()
	cfg := readConfig(cl)
	frame, err := siaf.ParseFrame(cl.frame)
	if err != nil {
		exit.Log(err)
	}

	s := loadSIAF(cl.instr, cfg)
	printApertures(s)

	if cl.out != "" {
		p := plot.New()
		if err := siafplot.All(p, s, frame, nil); err != nil {
			exit.Log(err)
		}
		size := vg.Length(cfg.PlotCm) * vg.Centimeter
		if err := p.Save(size, size, cl.out); err != nil {
			exit.Log(err)
		}
	}
}

type commandLine struct {
	config string // -c option
	path   string // -p option
	frame  string // -f option
	out    string // -o option
	instr  string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	vers := flag.Bool("v", false, "")
	flag.StringVar(&cl.config, "c", "", "")
	flag.StringVar(&cl.path, "p", "", "")
	flag.StringVar(&cl.frame, "f", "Tel", "")
	flag.StringVar(&cl.out, "o", "", "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: aperture [options] <instrument>   list apertures of an instrument
       aperture -v                       display version and copyright

Options:
       -c <config-file>
       -p <path>
       -f <frame>
       -o <image-file>
`)
	}
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	cl.instr = flag.Arg(0)
	return &cl
}

func readConfig(cl *commandLine) *config {
	cfg, err := loadConfig(cl.config)
	if err != nil {
		exit.Log(err)
	}
	if cl.path != "" {
		cfg.Path = cl.path
	}
	return cfg
}

func loadSIAF(instr string, cfg *config) *siaf.SIAF {
	if fn, ok := cfg.Files[instr]; ok {
		// file name override: whitelist still applies, naming
		// convention does not
		s, err := readOverride(instr, fn)
		if err != nil {
			exit.Log(err)
		}
		return s
	}
	s, err := siaf.Load(instr, cfg.Path)
	if err != nil {
		exit.Log(err)
	}
	return s
}

func readOverride(instr, fn string) (*siaf.SIAF, error) {
	valid := false
	for _, n := range siaf.Instruments {
		if n == instr {
			valid = true
			break
		}
	}
	if !valid {
		return nil, siaf.InstrumentError(instr)
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := siaf.Read(f, instr)
	if err != nil {
		return nil, err
	}
	s.Filename = fn
	return s, nil
}

func printApertures(s *siaf.SIAF) {
	fmt.Println(versionString)
	fmt.Printf("%-20s %10s %10s  %s\n", "Aperture", "V2", "V3", "V3IdlYAng")
	for _, name := range s.Names() {
		a := s.Aperture(name)
		v2, v3, err := a.Center(siaf.Tel)
		if err != nil {
			exit.Log(err)
		}
		fmt.Printf("%-20s %10.3f %10.3f  %v\n",
			name, v2, v3, sexa.FmtAngle(a.V3IdlYAng))
	}
}
