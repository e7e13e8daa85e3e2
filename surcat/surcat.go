// Public domain.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/aperture/sur"
)

const versionString = "surcat version 0.1 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	x := flag.Bool("x", false, "")
	short := flag.Bool("s", false, "")
	vers := flag.Bool("v", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: surcat [options] <surfile>...   print segment update requests
       surcat -v                       display version and copyright

Options:
       -x   write regenerated XML text
       -s   short, one line per update
`)
	}
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	for _, fn := range flag.Args() {
		s, err := sur.ReadFile(fn)
		if err != nil {
			exit.Log(err)
		}
		switch {
		case *x:
			fmt.Println(s.XMLText())
		case *short:
			for _, grp := range s.Groups {
				for _, u := range grp {
					fmt.Println(u.ShortString())
				}
			}
		default:
			fmt.Print(s)
		}
	}
}
