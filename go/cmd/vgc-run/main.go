// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/vikingvm/vgc/go/vgc"
)

type stdLogger struct{}

func (stdLogger) Log(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func main() {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "image",
				Aliases:  []string{"i"},
				Usage:    "binary image to load (flat sequence of 3-byte big-endian words)",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:    "budget",
				Aliases: []string{"b"},
				Usage:   "cycle budget; 0 runs until halt",
				Value:   0,
			},
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "log a line per executed instruction",
			},
			&cli.UintFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "initial program counter",
				Value:   0,
			},
		},
		Name:    "vgc-run",
		Usage:   "Run a Viking guidance computer binary image to halt or budget exhaustion",
		Version: "v0.0.1",
		Action:  run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	f, err := os.Open(c.String("image"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	m := vgc.NewMachine()
	if err := vgc.LoadImage(m, f); err != nil {
		return cli.Exit(err, 1)
	}

	if start := c.Uint("start"); start != 0 {
		m.PC = vgc.MaskAddr(uint32(start))
	}

	if c.Bool("trace") {
		vgc.SetLogger(stdLogger{})
		vgc.SetLogEnable(true)
	}

	spent := vgc.Run(m, c.Uint64("budget"))

	fmt.Printf("halted=%v cycles=%d spent=%d\n", m.Halted, m.Cycles, spent)
	fmt.Printf("PC:%05o A:%08o B:%08o\n", m.PC, m.A, m.B)
	fmt.Printf("X1:%05o X2:%05o X3:%05o overflow:%v\n", m.X[1], m.X[2], m.X[3], m.Overflow)

	return nil
}
